package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/romero-archive/concordia/internal/core/domain"
)

var (
	searchLang            string
	searchAccentSensitive bool
	searchTop             int
	searchNorm            string
	searchJSON            bool
)

var searchCmd = &cobra.Command{
	Use:   "search [term]",
	Short: "Search the corpus for a word or phrase",
	Long: `Searches homily texts for a word or phrase and reports match counts
aggregated by month, normalised per 10,000 words or per homily.

Matching is accent-insensitive by default (liberación matches liberacion).
A token may carry one or more * wildcards: "liber*" matches liberacion,
libertad and liberar; "*cion" matches any word ending in cion. Multiple
words form a phrase that must appear contiguously.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&searchLang, "lang", "", "corpus language: es or en (default from config, else es)")
	searchCmd.Flags().BoolVar(&searchAccentSensitive, "accent-sensitive", false, "match accents exactly")
	searchCmd.Flags().IntVarP(&searchTop, "top", "n", 5, "number of top homilies to show")
	searchCmd.Flags().StringVar(&searchNorm, "norm", "", `chart normalisation: "words" (per 10k words) or "homilies" (per homily)`)
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output the report as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if err := initServices(); err != nil {
		return err
	}

	lang, err := defaultLanguage(searchLang)
	if err != nil {
		return err
	}

	if searchNorm != "" && searchNorm != "words" && searchNorm != "homilies" {
		return fmt.Errorf("%w: --norm must be \"words\" or \"homilies\"", domain.ErrInvalidInput)
	}

	report, err := searcher.Search(cmd.Context(), args[0], domain.SearchOptions{
		Language:        lang,
		AccentSensitive: searchAccentSensitive,
	})
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	renderReport(cmd, report, lang, searchAccentSensitive, searchTop, searchNorm)
	return nil
}
