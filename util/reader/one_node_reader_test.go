package reader

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

type rpcRequest struct {
	ID     json.RawMessage   `json:"id"`
	Method string            `json:"method"`
	Params []json.RawMessage `json:"params"`
}

// newRPCServer serves canned results keyed by JSON-RPC method.
func newRPCServer(t *testing.T, results map[string]string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req rpcRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		result, found := results[req.Method]
		if !found {
			w.Write([]byte(`{"jsonrpc":"2.0","id":` + string(req.ID) + `,"error":{"code":-32601,"message":"method not found"}}`))
			return
		}
		w.Write([]byte(`{"jsonrpc":"2.0","id":` + string(req.ID) + `,"result":` + result + `}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestOneNodeReaderBlockNumber(t *testing.T) {
	srv := newRPCServer(t, map[string]string{
		"eth_blockNumber": `"0x2a"`,
	})
	r := NewOneNodeReader("test", srv.URL)
	defer r.Close()

	got, err := r.BlockNumber(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if got != 42 {
		t.Errorf("block number = %d, want 42", got)
	}
}

func TestOneNodeReaderBlockByNumber(t *testing.T) {
	srv := newRPCServer(t, map[string]string{
		"eth_getBlockByNumber": `{"number":"0x2a","timestamp":"0x64","gasUsed":"0x10","gasLimit":"0x20","transactions":[{"hash":"0xabc"}]}`,
	})
	r := NewOneNodeReader("test", srv.URL)
	defer r.Close()

	b, err := r.BlockByNumber(context.Background(), 42)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if b == nil {
		t.Fatal("expected a block")
	}
	if b.Number != 42 || b.Timestamp != 100 || b.GasLimit != 32 {
		t.Errorf("unexpected block %+v", b)
	}
	if len(b.Transactions) != 1 || b.Transactions[0] != "0xabc" {
		t.Errorf("transactions = %v", b.Transactions)
	}
}

func TestOneNodeReaderMissingBlock(t *testing.T) {
	srv := newRPCServer(t, map[string]string{
		"eth_getBlockByNumber": `null`,
	})
	r := NewOneNodeReader("test", srv.URL)
	defer r.Close()

	b, err := r.BlockByNumber(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if b != nil {
		t.Errorf("expected nil block, got %+v", b)
	}
}

func TestOneNodeReaderRPCError(t *testing.T) {
	srv := newRPCServer(t, map[string]string{})
	r := NewOneNodeReader("test", srv.URL)
	defer r.Close()

	if _, err := r.BlockNumber(context.Background()); err == nil {
		t.Fatal("expected an error")
	}
}

func TestOneNodeReaderCloseIsIdempotent(t *testing.T) {
	srv := newRPCServer(t, map[string]string{
		"eth_blockNumber": `"0x1"`,
	})
	r := NewOneNodeReader("test", srv.URL)
	if err := r.Connect(context.Background()); err != nil {
		t.Fatalf("connect: %s", err)
	}
	r.Close()
	r.Close()

	// reconnects lazily after close
	if _, err := r.BlockNumber(context.Background()); err != nil {
		t.Fatalf("unexpected error after close: %s", err)
	}
	r.Close()
}
