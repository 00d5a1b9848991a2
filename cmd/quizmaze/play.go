package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/quiz-maze/internal/core"
	"github.com/vovakirdan/quiz-maze/internal/games/quizmaze"
	"github.com/vovakirdan/quiz-maze/internal/platform/tui"
	"github.com/vovakirdan/quiz-maze/internal/quiz"
	"github.com/vovakirdan/quiz-maze/internal/registry"
	"github.com/vovakirdan/quiz-maze/internal/storage"
)

var (
	flagEndless   bool
	flagQuestions string
	flagDBPath    string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play quiz maze",
	Long: `Start a game. Without a mode argument the campaign is played.

Controls:
  Arrows/WASD  - Move (keeps going until you stop or turn)
  Space        - Stop
  P/Esc        - Pause
  R            - Restart (after game over)
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

Question sources, first match wins:
  --db         - SQLite database with a questions table
  --questions  - YAML question bank
  ~/.quizmaze/questions.yaml
  ./configs/questions.yaml
  the built-in bank

Difficulty options:
  easy   - More lives, slower speed-up
  normal - Default progression
  hard   - Fewer lives, faster speed-up
  fixed  - No progression`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagEndless, "endless", false, "Cycle the question bank forever")
	playCmd.Flags().StringVar(&flagQuestions, "questions", "", "Path to a question bank YAML")
	playCmd.Flags().StringVar(&flagDBPath, "db", "", "Path to a SQLite question database")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := "quizmaze"
	if flagEndless {
		gameID = "quizmaze_endless"
	}
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q, run 'quizmaze list' to see available modes", gameID)
	}

	bank, err := resolveBank()
	if err != nil {
		return err
	}

	cfg := runtimeConfig(func() (int, int, error) {
		return term.GetSize(int(os.Stdout.Fd()))
	}, flagFPS, flagSeed)

	quizmaze.SetConfigPath(flagConfig)
	quizmaze.SetDifficultyPreset(flagDifficulty)
	quizmaze.SetBank(bank)

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	log.Info("starting", "mode", gameID, "questions", bank.Len(), "difficulty", flagDifficulty)
	if err := tui.Run(game, cfg); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// runtimeConfig starts from core.DefaultConfig and applies the terminal
// size and flags. A failing size query keeps the default 80x24.
func runtimeConfig(size func() (int, int, error), fps int, seed int64) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := size(); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	if fps > 0 {
		cfg.TickRate = fps
	}
	cfg.Seed = seed
	return cfg
}

// resolveBank picks the question source from the flags.
func resolveBank() (*quiz.Bank, error) {
	if flagDBPath != "" {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			return nil, err
		}
		defer store.Close()
		return store.LoadBank()
	}
	return quiz.LoadBank(flagQuestions)
}
