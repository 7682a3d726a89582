package networks

var BaseMainnet Network = NewBaseMainnet()

func NewBaseMainnet() *GenericNetwork {
	return NewGenericNetwork(GenericNetworkConfig{
		Name:              "mainnet",
		DisplayName:       "Base Mainnet",
		AlternativeNames:  []string{"base", "base-mainnet"},
		ChainID:           8453,
		NativeTokenSymbol: "ETH",
		BlockTime:         2,
		NodeVariableName:  "BASE_MAINNET_NODE",
		DefaultNodes: map[string]string{
			"public-base": "https://mainnet.base.org",
		},
		BlockExplorerURL: "https://basescan.org",
	})
}
