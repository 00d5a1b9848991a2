package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// insertQuestion seeds a row the way an external authoring tool would.
func insertQuestion(t *testing.T, s *Store, text string, rooms [4]string, correct int, createdAt string) {
	t.Helper()
	_, err := s.db.Exec(
		`INSERT INTO questions (text, room1, room2, room3, room4, correct_index, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		text, rooms[0], rooms[1], rooms[2], rooms[3], correct, createdAt,
	)
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}

	n, err := store.CountQuestions()
	if err != nil {
		t.Fatalf("CountQuestions() failed: %v", err)
	}
	if n != 0 {
		t.Errorf("Expected empty table, got %d rows", n)
	}
}

func TestStoreQuestionsOrderedByCreation(t *testing.T) {
	store := openTestStore(t)

	insertQuestion(t, store, "second", [4]string{"a", "b", "c", "d"}, 1, "2024-05-02 10:00:00")
	insertQuestion(t, store, "first", [4]string{"e", "f", "g", "h"}, 3, "2024-05-01 10:00:00")

	rows, err := store.Questions()
	if err != nil {
		t.Fatalf("Questions() failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}
	if rows[0].Text != "first" || rows[1].Text != "second" {
		t.Errorf("Wrong order: %q, %q", rows[0].Text, rows[1].Text)
	}
	if rows[0].Rooms[3] != "h" || rows[0].CorrectIndex != 3 {
		t.Errorf("Row not scanned correctly: %+v", rows[0])
	}
	if rows[0].CreatedAt.IsZero() {
		t.Error("CreatedAt not parsed")
	}
}

func TestStoreLoadBank(t *testing.T) {
	store := openTestStore(t)

	insertQuestion(t, store, "good", [4]string{"a", "b", "c", "d"}, 2, "2024-05-01 10:00:00")
	insertQuestion(t, store, "bad index", [4]string{"a", "b", "c", "d"}, 7, "2024-05-02 10:00:00")
	insertQuestion(t, store, "blank", [4]string{"a", "", "c", "d"}, 0, "2024-05-03 10:00:00")

	bank, err := store.LoadBank()
	if err != nil {
		t.Fatalf("LoadBank() failed: %v", err)
	}
	if bank.Len() != 1 {
		t.Fatalf("Expected 1 valid question, got %d", bank.Len())
	}
	q, _ := bank.At(0)
	if q.Text != "good" || q.CorrectLabel() != "c" {
		t.Errorf("Unexpected question %+v", q)
	}
}

func TestStoreLoadBankFallsBack(t *testing.T) {
	store := openTestStore(t)

	bank, err := store.LoadBank()
	if err != nil {
		t.Fatalf("LoadBank() failed: %v", err)
	}
	if bank.Len() != 10 {
		t.Errorf("Expected built-in bank of 10, got %d", bank.Len())
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
