package reader

import (
	"context"
)

type EthereumNode interface {
	NodeName() string
	NodeURL() string
	Connect(ctx context.Context) error
	BlockNumber(ctx context.Context) (uint64, error)
	// BlockByNumber returns nil without error when the node doesn't know
	// the block yet.
	BlockByNumber(ctx context.Context, number uint64) (*Block, error)
	Close()
}
