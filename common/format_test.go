package common

import (
	"strings"
	"testing"
	"time"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1234, "1,234"},
		{12345678, "12,345,678"},
	}
	for _, tc := range tests {
		if got := FormatNumber(tc.in); got != tc.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
	if got := FormatNumber(uint64(30000000)); got != "30,000,000" {
		t.Errorf("FormatNumber(uint64) = %q", got)
	}
}

func TestFormatGas(t *testing.T) {
	if got := FormatGas(12345678); got != "12.35M" {
		t.Errorf("FormatGas = %q, want 12.35M", got)
	}
	if got := FormatGas(0); got != "0.00M" {
		t.Errorf("FormatGas(0) = %q", got)
	}
}

func TestFormatChainTime(t *testing.T) {
	got := FormatChainTime(3661, time.UTC)
	if got != "01:01:01" {
		t.Errorf("FormatChainTime = %q, want 01:01:01", got)
	}
}

func TestShortHash(t *testing.T) {
	hash := "0x" + strings.Repeat("ab", 32)
	got := ShortHash(hash)
	if !strings.HasPrefix(got, "0xababab") || !strings.HasSuffix(got, "ababab") {
		t.Errorf("ShortHash = %q", got)
	}
	if ShortHash("0x01") != "0x01" {
		t.Error("short hashes must be kept")
	}
}

func TestOrDash(t *testing.T) {
	if got := OrDash(0, "%.1f"); got != "—" {
		t.Errorf("OrDash(0) = %q", got)
	}
	if got := OrDash(62.5, "%.1f%%"); got != "62.5%" {
		t.Errorf("OrDash(62.5) = %q", got)
	}
}
