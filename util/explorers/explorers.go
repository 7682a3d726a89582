package explorers

// BlockExplorer maps chain objects to human browsable pages. Implementations
// must not do any network I/O.
type BlockExplorer interface {
	TxURL(txHash string) string
	BlockURL(number uint64) string
	AddressURL(address string) string
}

func NewBasescan() *EtherscanLikeExplorer {
	return NewEtherscanLikeExplorer("https://basescan.org")
}

func NewSepoliaBasescan() *EtherscanLikeExplorer {
	return NewEtherscanLikeExplorer("https://sepolia.basescan.org")
}
