package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/tranvictor/basewatch/dashboard"
	"github.com/tranvictor/basewatch/networks"
	"github.com/tranvictor/basewatch/tracker"
)

func sampleSnapshot() dashboard.Snapshot {
	window := []tracker.BlockRecord{
		{Number: 1234567, TransactionCount: 30, Timestamp: "10:00:04", GasUsed: 75, HasGasUsed: true, GasLimit: 100, BlockTime: 2,
			TransactionSample: []string{"0x" + strings.Repeat("ab", 32)}},
		{Number: 1234566, TransactionCount: 20, Timestamp: "10:00:02", GasUsed: 50, HasGasUsed: true, GasLimit: 100, BlockTime: 2},
		{Number: 1234565, TransactionCount: 10, Timestamp: "10:00:00", GasLimit: 100},
	}
	hash := window[0].TransactionSample[0]
	return dashboard.Snapshot{
		Network:      networks.BaseMainnet,
		Connected:    true,
		WindowSize:   3,
		Window:       window,
		TotalTracked: 42,
		Metrics:      tracker.ComputeMetrics(window),
		LatestTxs:    []dashboard.TxLink{{Hash: hash, URL: networks.TxURL(hash, "mainnet")}},
	}
}

func TestRenderDashboard(t *testing.T) {
	out := ansi.Strip(RenderDashboard(sampleSnapshot(), ViewOptions{Width: 140}))
	for _, want := range []string{
		"Base Transaction Visualizer",
		"Base Mainnet",
		"● Live",
		"Blocks to Display: 3",
		"Currently showing 3 of 42 tracked",
		"#1,234,567",
		"62.5%",
		"60",
		"across 3 blocks",
		"2.00s",
		"15.0",
		"Gas Usage Trend",
		"Older",
		"Latest",
		"https://basescan.org/tx/0x",
		"[q] quit",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("frame is missing %q:\n%s", want, out)
		}
	}
}

func TestRenderDashboardWaiting(t *testing.T) {
	snap := dashboard.Snapshot{Network: networks.BaseSepolia, Error: "Error fetching testnet block data. Retrying..."}
	out := ansi.Strip(RenderDashboard(snap, ViewOptions{Width: 80, Tick: 3}))
	for _, want := range []string{
		"Base Sepolia Testnet",
		"Disconnected",
		"Waiting for new blocks...",
		"Error fetching testnet block data. Retrying...",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("frame is missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Gas Usage Trend") {
		t.Error("no chart should be drawn without blocks")
	}
}

func TestBlockRows(t *testing.T) {
	rows := BlockRows(sampleSnapshot().Window)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	want := []string{"#1,234,567", "10:00:04", "30", "0.00M", "75.0%", "2s"}
	for i, cell := range want {
		if rows[0][i] != cell {
			t.Errorf("row 0 cell %d = %q, want %q", i, rows[0][i], cell)
		}
	}
	if rows[2][3] != "—" || rows[2][4] != "—" || rows[2][5] != "—" {
		t.Errorf("missing data should render as dashes, got %v", rows[2])
	}
}

func TestWindowSlider(t *testing.T) {
	empty := ansi.Strip(WindowSlider(dashboard.MinWindowSize))
	if strings.Contains(empty, "━") {
		t.Errorf("min size should have an empty slider: %q", empty)
	}
	full := ansi.Strip(WindowSlider(dashboard.MaxWindowSize))
	if strings.Contains(full, "─") {
		t.Errorf("max size should have a full slider: %q", full)
	}
}
