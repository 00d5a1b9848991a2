// Package storage reads question banks from SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// The application never writes questions; authoring happens elsewhere.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/quiz-maze/internal/quiz"
)

// Store manages the SQLite database connection.
type Store struct {
	db   *sql.DB
	path string
}

// QuestionRow is one row of the questions table.
type QuestionRow struct {
	ID           int64
	Text         string
	LevelNum     int
	Rooms        [quiz.OptionCount]string
	CorrectIndex int
	CreatedAt    time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and makes sure the questions
// table exists, so an empty database falls back to the built-in bank.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db, path: dbPath}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS questions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			text TEXT NOT NULL,
			level_num INTEGER NOT NULL DEFAULT 1,
			room1 TEXT NOT NULL,
			room2 TEXT NOT NULL,
			room3 TEXT NOT NULL,
			room4 TEXT NOT NULL,
			correct_index INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_questions_created ON questions(created_at);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// CountQuestions returns the number of stored questions.
func (s *Store) CountQuestions() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM questions").Scan(&n); err != nil {
		return 0, fmt.Errorf("storage: cannot count questions: %w", err)
	}
	return n, nil
}

// Questions returns every stored question, oldest first.
func (s *Store) Questions() ([]QuestionRow, error) {
	rows, err := s.db.Query(
		`SELECT id, text, level_num, room1, room2, room3, room4, correct_index, created_at
		 FROM questions
		 ORDER BY created_at ASC, id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query questions: %w", err)
	}
	defer rows.Close()

	var result []QuestionRow
	for rows.Next() {
		var r QuestionRow
		var createdAt any
		if err := rows.Scan(
			&r.ID,
			&r.Text,
			&r.LevelNum,
			&r.Rooms[0],
			&r.Rooms[1],
			&r.Rooms[2],
			&r.Rooms[3],
			&r.CorrectIndex,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		result = append(result, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return result, nil
}

// LoadBank builds a question bank from the stored rows.
// Invalid rows are skipped with a warning. When nothing usable is stored the
// built-in bank is returned instead.
func (s *Store) LoadBank() (*quiz.Bank, error) {
	rows, err := s.Questions()
	if err != nil {
		return nil, err
	}

	bank := &quiz.Bank{Title: filepath.Base(s.path)}
	for _, r := range rows {
		q, err := quiz.New(r.Text, r.Rooms[:], r.CorrectIndex)
		if err != nil {
			log.Warn("skipping stored question", "id", r.ID, "error", err)
			continue
		}
		bank.Questions = append(bank.Questions, q)
	}

	if bank.Len() == 0 {
		log.Info("no stored questions, using the built-in bank", "db", s.path)
		return quiz.DefaultBank(), nil
	}
	log.Debug("loaded questions from database", "db", s.path, "questions", bank.Len())
	return bank, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
