package networks

// TxURL resolves the explorer page of a transaction on the network selected
// by name. Unknown selectors resolve against Base mainnet.
func TxURL(txHash string, network string) string {
	n, err := GetNetwork(network)
	if err != nil {
		n = BaseMainnet
	}
	return n.TxURL(txHash)
}
