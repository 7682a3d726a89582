package networks

var BaseSepolia Network = NewBaseSepolia()

func NewBaseSepolia() *GenericNetwork {
	return NewGenericNetwork(GenericNetworkConfig{
		Name:              "testnet",
		DisplayName:       "Base Sepolia Testnet",
		AlternativeNames:  []string{"sepolia", "base-sepolia"},
		ChainID:           84532,
		NativeTokenSymbol: "ETH",
		BlockTime:         2,
		NodeVariableName:  "BASE_SEPOLIA_NODE",
		DefaultNodes: map[string]string{
			"public-base-sepolia": "https://sepolia.base.org",
		},
		BlockExplorerURL: "https://sepolia.basescan.org",
	})
}
