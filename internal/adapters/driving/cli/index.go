package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/romero-archive/concordia/internal/core/domain"
	"github.com/romero-archive/concordia/internal/logger"
)

var (
	flagIndexLang string

	indexCmd = &cobra.Command{
		Use:   "index",
		Short: "Manage the search index",
		Long:  "Build or verify the folded-text search index over the homily corpus.",
	}

	indexBuildCmd = &cobra.Command{
		Use:   "build",
		Short: "Index any homilies that are missing folded text or word counts",
		RunE:  runIndexBuild,
	}

	indexVerifyCmd = &cobra.Command{
		Use:   "verify",
		Short: "Check stored index columns against freshly derived values",
		RunE:  runIndexVerify,
	}
)

func init() {
	indexCmd.PersistentFlags().StringVar(&flagIndexLang, "lang", "", "language to process (es or en, default both)")

	indexCmd.AddCommand(indexBuildCmd)
	indexCmd.AddCommand(indexVerifyCmd)
	rootCmd.AddCommand(indexCmd)
}

// indexLanguages resolves the --lang flag into the set of languages to
// process. An empty flag means both languages.
func indexLanguages() ([]domain.Language, error) {
	if flagIndexLang == "" {
		return []domain.Language{domain.Spanish, domain.English}, nil
	}
	lang, err := domain.ParseLanguage(flagIndexLang)
	if err != nil {
		return nil, err
	}
	return []domain.Language{lang}, nil
}

func runIndexBuild(cmd *cobra.Command, args []string) error {
	if err := initServices(); err != nil {
		return err
	}

	langs, err := indexLanguages()
	if err != nil {
		return err
	}

	for _, lang := range langs {
		stats, err := indexer.Build(cmd.Context(), lang)
		if err != nil {
			return fmt.Errorf("building %s index: %w", lang.Name(), err)
		}
		if stats.Indexed == 0 {
			cmd.Printf("%s: index already up to date (%d homilies)\n", lang.Name(), stats.UpToDate)
			continue
		}
		cmd.Printf("%s: indexed %d homilies in %.2fs\n", lang.Name(), stats.Indexed, stats.ElapsedSeconds)
	}
	return nil
}

func runIndexVerify(cmd *cobra.Command, args []string) error {
	if err := initServices(); err != nil {
		return err
	}

	langs, err := indexLanguages()
	if err != nil {
		return err
	}

	clean := true
	for _, lang := range langs {
		faults, err := indexer.Verify(cmd.Context(), lang)
		if err != nil {
			return fmt.Errorf("verifying %s index: %w", lang.Name(), err)
		}
		logger.Debug("verified %s index: %d faults", lang.Name(), len(faults))
		for _, f := range faults {
			clean = false
			cmd.Printf("%s %s: stale %s (%s)\n", lang.Name(), f.HomilyID, f.Field, f.Detail)
		}
	}
	if clean {
		cmd.Println("index is consistent")
		return nil
	}
	return fmt.Errorf("index verification found stale entries")
}
