package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/romero-archive/concordia/internal/core/domain"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show corpus and index coverage",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	if err := initServices(); err != nil {
		return err
	}

	stats, err := corpus.Stats(cmd.Context())
	if err != nil {
		return fmt.Errorf("reading corpus stats: %w", err)
	}

	cmd.Println(headerStyle.Render("Corpus"))
	cmd.Printf("  homilies: %d\n", stats.Total)
	if stats.FirstDate != "" {
		cmd.Printf("  range:    %s .. %s\n", stats.FirstDate, stats.LastDate)
	}
	cmd.Println()
	cmd.Println(headerStyle.Render("Index coverage"))
	printCoverage(cmd, "Spanish", stats.Spanish)
	printCoverage(cmd, "English", stats.English)
	return nil
}

func printCoverage(cmd *cobra.Command, name string, c domain.LanguageCoverage) {
	line := fmt.Sprintf("  %-8s %d with text, %d indexed", name, c.WithText, c.Indexed)
	if c.Indexed < c.WithText {
		line += mutedStyle.Render(fmt.Sprintf("  (%d pending)", c.WithText-c.Indexed))
	}
	cmd.Println(line)
}
