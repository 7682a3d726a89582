// Copyright © 2018 Victor Tran
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tranvictor/basewatch/config"
	"github.com/tranvictor/basewatch/networks"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "basewatch",
	Short: "Watch Base blocks and network metrics from your terminal",
	Long: fmt.Sprintf(`Basewatch polls the public Base RPC endpoints for new blocks and shows
transaction counts, gas utilization, block time and TPS of the latest blocks
together with a small gas usage chart.

Basewatch supports Base mainnet and Base Sepolia testnet. By default it uses
the public nodes run by Base:
	1. For mainnet: https://mainnet.base.org
	2. For testnet: https://sepolia.base.org
You can also add your custom node by setting the following env vars, in the
environment or in a .env file in the working directory:
	1. For mainnet: %s
	2. For testnet: %s

Note: Basewatch will only check if the env vars are not empty and take the env
vars blindly, it will not check if it is a valid url or not, the error will pop
up on the dashboard instead.`,
		networks.BaseMainnet.GetNodeVariableName(),
		networks.BaseSepolia.GetNodeVariableName(),
	),
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.LoadDotEnv(); err != nil {
			return fmt.Errorf("couldn't load %s: %w", config.DotEnvFile, err)
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.PersistentFlags().StringVarP(
		&config.Network, "network", "k", networks.BaseMainnet.GetName(),
		fmt.Sprintf("base network. Valid values: %s.", quotedNames(networks.GetSupportedNetworkNames())),
	)
	rootCmd.PersistentFlags().BoolVar(&config.NoColor, "no-color", false, "disable colored output")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func quotedNames(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = fmt.Sprintf("%q", n)
	}
	return strings.Join(quoted, ", ")
}
