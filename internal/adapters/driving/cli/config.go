package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/romero-archive/concordia/internal/adapters/driven/config/file"
	"github.com/romero-archive/concordia/internal/core/domain"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View and change settings",
	Long: `View and change settings stored in the config file.

Recognised keys:
  db_path           corpus database location
  default_language  corpus side searched when --lang is not given (es or en)
  verbose           enable verbose logging without --verbose`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func initConfigStore() error {
	if configStore != nil {
		return nil
	}
	cfg, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	configStore = cfg
	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if err := initConfigStore(); err != nil {
		return err
	}

	cmd.Printf("config file: %s\n\n", configStore.Path())
	for _, key := range []string{file.KeyDBPath, file.KeyDefaultLanguage, file.KeyVerbose} {
		val, ok := configStore.Get(key)
		if !ok {
			cmd.Printf("  %-18s %s\n", key, mutedStyle.Render("(not set)"))
			continue
		}
		cmd.Printf("  %-18s %v\n", key, val)
	}
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if err := initConfigStore(); err != nil {
		return err
	}

	key, raw := args[0], args[1]
	var value any
	switch key {
	case file.KeyDBPath:
		value = raw
	case file.KeyDefaultLanguage:
		lang, err := domain.ParseLanguage(raw)
		if err != nil {
			return err
		}
		value = lang.String()
	case file.KeyVerbose:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("%w: verbose expects true or false, got %q", domain.ErrInvalidInput, raw)
		}
		value = b
	default:
		return fmt.Errorf("%w: unknown config key %q", domain.ErrInvalidInput, key)
	}

	if err := configStore.Set(key, value); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	cmd.Printf("%s = %v\n", key, value)
	return nil
}
