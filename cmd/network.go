package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/tranvictor/basewatch/networks"
	"github.com/tranvictor/basewatch/ui"
)

var listNetworkCmd = &cobra.Command{
	Use:   "list",
	Short: "Show all of supported networks",
	Long:  ``,
	Run: func(cmd *cobra.Command, args []string) {
		printNetworks(ui.NewTerminalUIWithFile(outputFile(cmd), colored()), networks.GetSupportedNetworks())
	},
}

var networkCmd = &cobra.Command{
	Use:   "network",
	Short: "Show the networks basewatch can watch",
	Long:  ``,
}

func printNetworks(u ui.UI, list []networks.Network) {
	for _, n := range list {
		u.Section(n.GetDisplayName())
		names := append([]string{n.GetName()}, n.GetAlternativeNames()...)
		u.KeyValue([][2]string{
			{"Names", strings.Join(names, ", ")},
			{"Chain ID", formatChainID(n.GetChainID())},
			{"Block time", n.GetBlockTime().String()},
			{"Explorer", n.GetExplorerURL()},
			{"Node env var", n.GetNodeVariableName()},
		})

		nodes := networks.GetNodes(n)
		rows := make([][]string, 0, len(nodes))
		for _, name := range networks.SortedNodeNames(nodes) {
			rows = append(rows, []string{name, nodes[name]})
		}
		u.Info("RPC nodes:")
		u.Indent().Table([]string{"Node", "URL"}, rows)
	}

	u.Info("")
	u.Info("Basewatch: to use your own node, set %s or %s, in the environment or in .env.",
		networks.BaseMainnet.GetNodeVariableName(), networks.BaseSepolia.GetNodeVariableName())
}

func init() {
	networkCmd.AddCommand(listNetworkCmd)
	rootCmd.AddCommand(networkCmd)
}
