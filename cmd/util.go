package cmd

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tranvictor/basewatch/config"
)

// outputFile is the command's output when it is a file, stdout otherwise.
func outputFile(cmd *cobra.Command) *os.File {
	if f, ok := cmd.OutOrStdout().(*os.File); ok {
		return f
	}
	return os.Stdout
}

func colored() bool {
	return !config.NoColor
}

func formatChainID(id uint64) string {
	return strconv.FormatUint(id, 10)
}
