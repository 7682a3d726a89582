package tracker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/tranvictor/basewatch/util/reader"
)

// fakeChain is an in-memory BlockSource. Heights and blocks are set by the
// test; every call is counted.
type fakeChain struct {
	mu          sync.Mutex
	height      uint64
	blocks      map[uint64]*reader.Block
	heightErr   error
	blockErr    error
	connectErr  error
	heightCalls int
	blockCalls  int
	released    atomic.Int32
}

func newFakeChain() *fakeChain {
	return &fakeChain{blocks: map[uint64]*reader.Block{}}
}

// mine adds a block at height n with the given timestamp and tx count and
// makes it the chain head.
func (c *fakeChain) mine(n, ts uint64, txCount int) *reader.Block {
	c.mu.Lock()
	defer c.mu.Unlock()
	txs := make([]string, txCount)
	for i := range txs {
		txs[i] = fmt.Sprintf("0x%d-%d", n, i)
	}
	gasUsed := uint64(txCount) * 21000
	b := &reader.Block{
		Number:       n,
		Timestamp:    ts,
		GasUsed:      &gasUsed,
		GasLimit:     30000000,
		Transactions: txs,
	}
	c.blocks[n] = b
	c.height = n
	return b
}

func (c *fakeChain) setHeight(n uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.height = n
}

func (c *fakeChain) setErrors(heightErr, blockErr error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.heightErr = heightErr
	c.blockErr = blockErr
}

func (c *fakeChain) calls() (int, int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.heightCalls, c.blockCalls
}

func (c *fakeChain) BlockHeight(ctx context.Context) (uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.heightCalls++
	if c.heightErr != nil {
		return 0, c.heightErr
	}
	return c.height, nil
}

func (c *fakeChain) BlockByNumber(ctx context.Context, number uint64) (*reader.Block, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.blockCalls++
	if c.blockErr != nil {
		return nil, c.blockErr
	}
	return c.blocks[number], nil
}

func (c *fakeChain) Connect(ctx context.Context) error {
	return c.connectErr
}

func (c *fakeChain) Release() {
	c.released.Add(1)
}

var errUnreachable = errors.New("dial tcp: connection refused")
