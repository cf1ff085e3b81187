package cli

import "github.com/spf13/cobra"

// version is overridden at release time via -ldflags.
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the concordia version",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("concordia version %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
