package networks

import (
	"time"

	"github.com/tranvictor/basewatch/util/explorers"
)

type GenericNetworkConfig struct {
	Name              string            `json:"name"`
	DisplayName       string            `json:"display_name"`
	AlternativeNames  []string          `json:"alternative_names"`
	ChainID           uint64            `json:"chain_id"`
	NativeTokenSymbol string            `json:"native_token_symbol"`
	BlockTime         uint64            `json:"block_time"`
	NodeVariableName  string            `json:"node_variable_name"`
	DefaultNodes      map[string]string `json:"default_nodes"`
	BlockExplorerURL  string            `json:"block_explorer_url"`
}

// GenericNetwork is a network whose explorer follows the etherscan url layout.
type GenericNetwork struct {
	*explorers.EtherscanLikeExplorer
	config GenericNetworkConfig
}

func NewGenericNetwork(config GenericNetworkConfig) *GenericNetwork {
	return &GenericNetwork{
		EtherscanLikeExplorer: explorers.NewEtherscanLikeExplorer(config.BlockExplorerURL),
		config:                config,
	}
}

func (gn *GenericNetwork) GetName() string {
	return gn.config.Name
}

func (gn *GenericNetwork) GetDisplayName() string {
	if gn.config.DisplayName == "" {
		return gn.config.Name
	}
	return gn.config.DisplayName
}

func (gn *GenericNetwork) GetChainID() uint64 {
	return gn.config.ChainID
}

func (gn *GenericNetwork) GetAlternativeNames() []string {
	return gn.config.AlternativeNames
}

func (gn *GenericNetwork) GetNativeTokenSymbol() string {
	return gn.config.NativeTokenSymbol
}

func (gn *GenericNetwork) GetBlockTime() time.Duration {
	return time.Duration(gn.config.BlockTime) * time.Second
}

func (gn *GenericNetwork) GetNodeVariableName() string {
	return gn.config.NodeVariableName
}

func (gn *GenericNetwork) GetDefaultNodes() map[string]string {
	return gn.config.DefaultNodes
}

func (gn *GenericNetwork) GetExplorerURL() string {
	return gn.EtherscanLikeExplorer.Domain
}
