package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tranvictor/basewatch/ui"
)

const (
	VERSION string = "0.1.0"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show basewatch version",
	Long:  ``,
	Run: func(cmd *cobra.Command, args []string) {
		printVersion(ui.NewTerminalUIWithFile(outputFile(cmd), colored()))
	},
}

func printVersion(u ui.UI) {
	u.Info("Version: %s", VERSION)
	u.Info("Data source: public Base JSON-RPC endpoints, links to Basescan")
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
