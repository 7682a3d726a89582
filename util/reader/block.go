package reader

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Block is the normalized shape of a block fetched with transaction
// details. Transactions holds the hash of every transaction in block order.
type Block struct {
	Number       uint64
	Timestamp    uint64
	GasUsed      *uint64 // nil when the node omitted it
	GasLimit     uint64
	Transactions []string
}

// rpcBlock keeps only the fields we read from eth_getBlockByNumber. The
// transactions are kept raw because they are either plain hashes or full
// objects depending on the node and the fullTx flag, and OP-stack deposit
// transactions can't be decoded by types.Transaction.
type rpcBlock struct {
	Number       hexutil.Uint64    `json:"number"`
	Timestamp    hexutil.Uint64    `json:"timestamp"`
	GasUsed      *hexutil.Uint64   `json:"gasUsed"`
	GasLimit     hexutil.Uint64    `json:"gasLimit"`
	Transactions []json.RawMessage `json:"transactions"`
}

type rpcTxHash struct {
	Hash string `json:"hash"`
}

func txHashFromRaw(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '"' {
		var hash string
		if err := json.Unmarshal(raw, &hash); err != nil {
			return "", err
		}
		return hash, nil
	}
	var tx rpcTxHash
	if err := json.Unmarshal(raw, &tx); err != nil {
		return "", err
	}
	if tx.Hash == "" {
		return "", fmt.Errorf("transaction object without hash")
	}
	return tx.Hash, nil
}

func (b *rpcBlock) normalize() (*Block, error) {
	result := &Block{
		Number:       uint64(b.Number),
		Timestamp:    uint64(b.Timestamp),
		GasLimit:     uint64(b.GasLimit),
		Transactions: make([]string, 0, len(b.Transactions)),
	}
	if b.GasUsed != nil {
		gasUsed := uint64(*b.GasUsed)
		result.GasUsed = &gasUsed
	}
	for i, raw := range b.Transactions {
		hash, err := txHashFromRaw(raw)
		if err != nil {
			return nil, fmt.Errorf("block %d tx %d: %w", result.Number, i, err)
		}
		result.Transactions = append(result.Transactions, hash)
	}
	return result, nil
}

// DecodeBlock normalizes a raw eth_getBlockByNumber result. A JSON null
// decodes to a nil block.
func DecodeBlock(raw json.RawMessage) (*Block, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}
	var b rpcBlock
	if err := json.Unmarshal(raw, &b); err != nil {
		return nil, fmt.Errorf("couldn't decode block: %w", err)
	}
	return b.normalize()
}
