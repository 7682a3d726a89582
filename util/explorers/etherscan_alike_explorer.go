package explorers

import (
	"fmt"
	"strings"
)

// EtherscanLikeExplorer builds links for explorers sharing the etherscan
// path layout (/tx/<hash>, /block/<number>, /address/<addr>).
type EtherscanLikeExplorer struct {
	Domain string
}

func NewEtherscanLikeExplorer(domain string) *EtherscanLikeExplorer {
	return &EtherscanLikeExplorer{
		Domain: strings.TrimRight(domain, "/"),
	}
}

func (ee *EtherscanLikeExplorer) TxURL(txHash string) string {
	return fmt.Sprintf("%s/tx/%s", ee.Domain, txHash)
}

func (ee *EtherscanLikeExplorer) BlockURL(number uint64) string {
	return fmt.Sprintf("%s/block/%d", ee.Domain, number)
}

func (ee *EtherscanLikeExplorer) AddressURL(address string) string {
	return fmt.Sprintf("%s/address/%s", ee.Domain, address)
}
