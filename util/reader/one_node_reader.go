package reader

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
)

const TIMEOUT time.Duration = 4 * time.Second

type OneNodeReader struct {
	nodeName  string
	nodeURL   string
	client    *rpc.Client
	ethClient *ethclient.Client
	mu        sync.Mutex
}

func NewOneNodeReader(name, url string) *OneNodeReader {
	return &OneNodeReader{
		nodeName: name,
		nodeURL:  url,
		mu:       sync.Mutex{},
	}
}

func (onr *OneNodeReader) NodeName() string {
	return onr.nodeName
}

func (onr *OneNodeReader) NodeURL() string {
	return onr.nodeURL
}

func (onr *OneNodeReader) initConnection(ctx context.Context) error {
	if onr.client != nil {
		return nil
	}
	client, err := rpc.DialContext(ctx, onr.NodeURL())
	if err != nil {
		return fmt.Errorf("couldn't connect to %s: %w", onr.nodeName, err)
	}
	onr.client = client
	onr.ethClient = ethclient.NewClient(client)
	return nil
}

// Connect dials the node if it isn't connected yet. Other calls connect
// lazily so a failed Connect is retried on the next request.
func (onr *OneNodeReader) Connect(ctx context.Context) error {
	onr.mu.Lock()
	defer onr.mu.Unlock()
	return onr.initConnection(ctx)
}

func (onr *OneNodeReader) clients(ctx context.Context) (*rpc.Client, *ethclient.Client, error) {
	onr.mu.Lock()
	defer onr.mu.Unlock()
	if err := onr.initConnection(ctx); err != nil {
		return nil, nil, err
	}
	return onr.client, onr.ethClient, nil
}

func (onr *OneNodeReader) BlockNumber(ctx context.Context) (uint64, error) {
	_, ethcli, err := onr.clients(ctx)
	if err != nil {
		return 0, err
	}
	timeout, cancel := context.WithTimeout(ctx, TIMEOUT)
	defer cancel()
	return ethcli.BlockNumber(timeout)
}

func (onr *OneNodeReader) BlockByNumber(ctx context.Context, number uint64) (*Block, error) {
	cli, _, err := onr.clients(ctx)
	if err != nil {
		return nil, err
	}
	timeout, cancel := context.WithTimeout(ctx, TIMEOUT)
	defer cancel()
	var raw json.RawMessage
	err = cli.CallContext(timeout, &raw, "eth_getBlockByNumber", hexutil.EncodeUint64(number), true)
	if err != nil {
		return nil, err
	}
	return DecodeBlock(raw)
}

// Close releases the underlying connection. It is safe to call more than
// once; a closed reader reconnects on its next request.
func (onr *OneNodeReader) Close() {
	onr.mu.Lock()
	defer onr.mu.Unlock()
	if onr.client == nil {
		return
	}
	onr.client.Close()
	onr.client = nil
	onr.ethClient = nil
}
