package reader

import (
	"encoding/json"
	"testing"
)

func TestDecodeBlockWithHashStrings(t *testing.T) {
	raw := json.RawMessage(`{
		"number": "0x10",
		"timestamp": "0x65000000",
		"gasUsed": "0x32",
		"gasLimit": "0x64",
		"transactions": ["0xaa", "0xbb"]
	}`)
	b, err := DecodeBlock(raw)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if b.Number != 16 {
		t.Errorf("number = %d, want 16", b.Number)
	}
	if b.Timestamp != 0x65000000 {
		t.Errorf("timestamp = %d", b.Timestamp)
	}
	if b.GasUsed == nil || *b.GasUsed != 50 {
		t.Errorf("gasUsed = %v, want 50", b.GasUsed)
	}
	if b.GasLimit != 100 {
		t.Errorf("gasLimit = %d, want 100", b.GasLimit)
	}
	if len(b.Transactions) != 2 || b.Transactions[0] != "0xaa" || b.Transactions[1] != "0xbb" {
		t.Errorf("transactions = %v", b.Transactions)
	}
}

func TestDecodeBlockWithTxObjects(t *testing.T) {
	raw := json.RawMessage(`{
		"number": "0x1",
		"timestamp": "0x2",
		"gasLimit": "0x3",
		"transactions": [
			{"hash": "0x01", "type": "0x7e", "from": "0xdead"},
			"0x02"
		]
	}`)
	b, err := DecodeBlock(raw)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if b.GasUsed != nil {
		t.Errorf("gasUsed should be absent, got %d", *b.GasUsed)
	}
	if len(b.Transactions) != 2 || b.Transactions[0] != "0x01" || b.Transactions[1] != "0x02" {
		t.Errorf("transactions = %v", b.Transactions)
	}
}

func TestDecodeBlockNull(t *testing.T) {
	for _, raw := range []string{"null", "", "  null "} {
		b, err := DecodeBlock(json.RawMessage(raw))
		if err != nil {
			t.Errorf("%q: unexpected error: %s", raw, err)
		}
		if b != nil {
			t.Errorf("%q: expected nil block", raw)
		}
	}
}

func TestDecodeBlockRejectsTxWithoutHash(t *testing.T) {
	raw := json.RawMessage(`{"number":"0x1","timestamp":"0x1","gasLimit":"0x1","transactions":[{"from":"0x1"}]}`)
	if _, err := DecodeBlock(raw); err == nil {
		t.Fatal("expected an error")
	}
}
