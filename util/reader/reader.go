package reader

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// EthReader reads from every configured node of one network at once and
// takes the first successful answer.
type EthReader struct {
	nodes       map[string]EthereumNode
	releaseOnce sync.Once
}

func NewEthReaderGeneric(nodes map[string]string) *EthReader {
	ns := map[string]EthereumNode{}
	for name, c := range nodes {
		ns[name] = NewOneNodeReader(name, c)
	}
	return NewEthReaderWithNodes(ns)
}

func NewEthReaderWithNodes(nodes map[string]EthereumNode) *EthReader {
	return &EthReader{
		nodes: nodes,
	}
}

func wrapError(e error, name string) error {
	if e == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", name, e)
}

// Connect dials every node and succeeds when at least one of them is
// reachable.
func (er *EthReader) Connect(ctx context.Context) error {
	if len(er.nodes) == 0 {
		return fmt.Errorf("no nodes configured")
	}
	resCh := make(chan error, len(er.nodes))
	for i := range er.nodes {
		n := er.nodes[i]
		go func() {
			resCh <- wrapError(n.Connect(ctx), n.NodeName())
		}()
	}
	errs := []error{}
	for i := 0; i < len(er.nodes); i++ {
		if err := <-resCh; err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) == len(er.nodes) {
		return fmt.Errorf("couldn't connect to any nodes: %w", errors.Join(errs...))
	}
	return nil
}

type blockNumberResponse struct {
	Number uint64
	Error  error
}

func (er *EthReader) BlockHeight(ctx context.Context) (uint64, error) {
	if len(er.nodes) == 0 {
		return 0, fmt.Errorf("no nodes configured")
	}
	resCh := make(chan blockNumberResponse, len(er.nodes))
	for i := range er.nodes {
		n := er.nodes[i]
		go func() {
			number, err := n.BlockNumber(ctx)
			resCh <- blockNumberResponse{
				Number: number,
				Error:  wrapError(err, n.NodeName()),
			}
		}()
	}
	errs := []error{}
	for i := 0; i < len(er.nodes); i++ {
		result := <-resCh
		if result.Error == nil {
			return result.Number, nil
		}
		errs = append(errs, result.Error)
	}
	return 0, fmt.Errorf("couldn't read from any nodes: %w", errors.Join(errs...))
}

type blockResponse struct {
	Block *Block
	Error error
}

// BlockByNumber returns the first non nil block any node answers with. It
// returns nil without error when no node had the block and at least one
// node answered that it doesn't have it.
func (er *EthReader) BlockByNumber(ctx context.Context, number uint64) (*Block, error) {
	if len(er.nodes) == 0 {
		return nil, fmt.Errorf("no nodes configured")
	}
	resCh := make(chan blockResponse, len(er.nodes))
	for i := range er.nodes {
		n := er.nodes[i]
		go func() {
			block, err := n.BlockByNumber(ctx, number)
			resCh <- blockResponse{
				Block: block,
				Error: wrapError(err, n.NodeName()),
			}
		}()
	}
	errs := []error{}
	missing := 0
	for i := 0; i < len(er.nodes); i++ {
		result := <-resCh
		if result.Error != nil {
			errs = append(errs, result.Error)
			continue
		}
		if result.Block != nil {
			return result.Block, nil
		}
		missing++
	}
	if missing > 0 {
		return nil, nil
	}
	return nil, fmt.Errorf("couldn't read from any nodes: %w", errors.Join(errs...))
}

// Release closes every node connection. Only the first call has an effect.
func (er *EthReader) Release() {
	er.releaseOnce.Do(func() {
		for _, n := range er.nodes {
			n.Close()
		}
	})
}
