package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Print the resolved question bank",
	Long: `Prints the questions that 'quizmaze play' would use with the same
--questions and --db flags. The correct answer is highlighted.`,
	RunE: runQuestions,
}

func init() {
	questionsCmd.Flags().StringVar(&flagQuestions, "questions", "", "Path to a question bank YAML")
	questionsCmd.Flags().StringVar(&flagDBPath, "db", "", "Path to a SQLite question database")
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	correctStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func runQuestions(cmd *cobra.Command, args []string) error {
	bank, err := resolveBank()
	if err != nil {
		return err
	}

	title := bank.Title
	if title == "" {
		title = "Questions"
	}
	fmt.Println(titleStyle.Render(fmt.Sprintf("%s (%d)", title, bank.Len())))
	fmt.Println()

	for i, q := range bank.Questions {
		fmt.Printf("%2d. %s\n", i+1, q.Text)
		for j, opt := range q.Options {
			line := fmt.Sprintf("    %c) %s", 'A'+j, opt)
			if q.IsCorrect(j) {
				fmt.Println(correctStyle.Render(line))
			} else {
				fmt.Println(dimStyle.Render(line))
			}
		}
	}
	return nil
}
