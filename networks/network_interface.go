package networks

import (
	"time"

	"github.com/tranvictor/basewatch/util/explorers"
)

type Network interface {
	explorers.BlockExplorer

	GetName() string
	GetDisplayName() string
	GetChainID() uint64
	GetAlternativeNames() []string
	GetNativeTokenSymbol() string
	GetBlockTime() time.Duration // expected, used for display only

	GetNodeVariableName() string
	GetDefaultNodes() map[string]string
	GetExplorerURL() string
}
