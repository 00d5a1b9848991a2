package quiz

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

//go:embed defaults/questions.yaml
var defaultBankYAML []byte

// Bank is an ordered list of questions; question i is played at level i.
type Bank struct {
	Title     string
	Questions []Question
}

// Len returns the number of questions in the bank.
func (b *Bank) Len() int {
	if b == nil {
		return 0
	}
	return len(b.Questions)
}

// At returns question i, or false when i is past the end of the bank.
func (b *Bank) At(i int) (Question, bool) {
	if i < 0 || i >= b.Len() {
		return Question{}, false
	}
	return b.Questions[i], true
}

// bankFile mirrors the YAML layout of a question bank.
type bankFile struct {
	Title     string       `yaml:"title"`
	Questions []entryInput `yaml:"questions"`
}

type entryInput struct {
	Text    string   `yaml:"text"`
	Options []string `yaml:"options"`
	Correct int      `yaml:"correct"`
}

// ParseBank decodes and validates a YAML question bank.
// A bank with no questions is an error because the maze cannot start without one.
func ParseBank(data []byte) (*Bank, error) {
	var f bankFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("quiz: cannot parse bank: %w", err)
	}
	if len(f.Questions) == 0 {
		return nil, fmt.Errorf("%w: bank %q has no questions", ErrInvalidQuestion, f.Title)
	}

	bank := &Bank{Title: f.Title, Questions: make([]Question, 0, len(f.Questions))}
	for i, e := range f.Questions {
		q, err := New(e.Text, e.Options, e.Correct)
		if err != nil {
			return nil, fmt.Errorf("question %d: %w", i+1, err)
		}
		bank.Questions = append(bank.Questions, q)
	}
	return bank, nil
}

// DefaultBank returns the embedded question bank.
func DefaultBank() *Bank {
	bank, err := ParseBank(defaultBankYAML)
	if err != nil {
		// The embedded bank ships with the binary; failing here is a build defect.
		panic(err)
	}
	return bank
}

// LoadBank loads a question bank.
// Search order: customPath -> ~/.quizmaze/questions.yaml -> ./configs/questions.yaml -> embedded default
func LoadBank(customPath string) (*Bank, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return nil, fmt.Errorf("quiz: cannot read bank %s: %w", customPath, err)
		}
		bank, err := ParseBank(data)
		if err != nil {
			return nil, fmt.Errorf("quiz: bank %s: %w", customPath, err)
		}
		return bank, nil
	}

	for _, path := range []string{userBankPath(), filepath.Join("configs", "questions.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		bank, err := ParseBank(data)
		if err != nil {
			log.Warn("ignoring invalid question bank", "path", path, "error", err)
			continue
		}
		log.Debug("loaded question bank", "path", path, "questions", bank.Len())
		return bank, nil
	}

	return DefaultBank(), nil
}

// userBankPath returns the per-user bank location, or empty if home is unavailable.
func userBankPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".quizmaze", "questions.yaml")
}
