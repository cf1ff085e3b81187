// Package cli is the cobra command-line adapter over the driving ports.
// It wires the SQLite corpus store into the search and index services
// and renders reports for the terminal.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/romero-archive/concordia/internal/adapters/driven/config/file"
	"github.com/romero-archive/concordia/internal/adapters/driven/storage/sqlite"
	"github.com/romero-archive/concordia/internal/core/domain"
	"github.com/romero-archive/concordia/internal/core/ports/driven"
	"github.com/romero-archive/concordia/internal/core/ports/driving"
	"github.com/romero-archive/concordia/internal/core/services"
	"github.com/romero-archive/concordia/internal/logger"
)

var (
	flagDBPath  string
	flagVerbose bool

	// Wired by initServices; tests inject fakes instead.
	configStore driven.ConfigStore
	corpus      driven.CorpusStore
	searcher    driving.Searcher
	indexer     driving.Indexer
	dbCloser    io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "concordia",
	Short: "Word and phrase frequency search over the Romero homily corpus",
	Long: `Concordia searches the homilies of Óscar Romero for words and phrases,
aggregated by month. Matching is accent-insensitive by default and
supports * wildcards (liber*, *cion) and exact phrases ("pueblo de dios").

The corpus database is produced by the external ingestion pipeline and
imported with "concordia import"; run "concordia index build" once before
searching.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "",
		"path to the corpus database (default ~/.concordia/concordia.db)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false,
		"enable verbose logging")
}

// initServices opens config and storage and builds the core services.
// Commands call it at the top of RunE; when tests have already injected
// fakes it does nothing.
func initServices() error {
	if corpus != nil && searcher != nil && indexer != nil {
		return nil
	}

	cfg, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	configStore = cfg

	if flagVerbose || cfg.GetBool(file.KeyVerbose) {
		logger.SetVerbose(true)
	}

	dbPath := flagDBPath
	if dbPath == "" {
		dbPath = cfg.GetString(file.KeyDBPath)
	}

	store, err := sqlite.NewStore(dbPath)
	if err != nil {
		return fmt.Errorf("opening corpus database: %w", err)
	}
	logger.Debug("cli: corpus database at %s", store.Path())

	corpus = store
	dbCloser = store
	searcher = services.NewSearchService(store)
	indexer = services.NewIndexService(store)
	return nil
}

// defaultLanguage resolves the language for a command: the --lang value
// when given, then the configured default, then Spanish.
func defaultLanguage(flagValue string) (domain.Language, error) {
	if flagValue != "" {
		return domain.ParseLanguage(flagValue)
	}
	if configStore != nil {
		if code := configStore.GetString(file.KeyDefaultLanguage); code != "" {
			return domain.ParseLanguage(code)
		}
	}
	return domain.Spanish, nil
}

// Execute runs the root command.
func Execute() {
	err := rootCmd.Execute()
	if dbCloser != nil {
		_ = dbCloser.Close()
	}
	if err != nil {
		os.Exit(1)
	}
}
