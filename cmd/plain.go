package cmd

import (
	"fmt"

	"github.com/tranvictor/basewatch/common"
	"github.com/tranvictor/basewatch/dashboard"
	"github.com/tranvictor/basewatch/tracker"
	"github.com/tranvictor/basewatch/ui"
)

// blockPrinter prints every new block of the selected network once, in
// chain order, followed by the metrics of the current window.
type blockPrinter struct {
	u          ui.UI
	lastBlock  uint64
	lastError  string
	lastStatus string
}

func newBlockPrinter(u ui.UI) *blockPrinter {
	return &blockPrinter{u: u}
}

// print writes the records of s newer than the last printed one and
// returns how many it printed. Changes of the status and of the error
// banner are printed too.
func (p *blockPrinter) print(s dashboard.Snapshot, records []tracker.BlockRecord) int {
	if label := s.StatusLabel(); label != p.lastStatus {
		p.u.Info("Status: %s", p.u.Style(ui.StatusText(label)))
		p.lastStatus = label
	}
	if s.Error != p.lastError {
		if s.Error != "" {
			p.u.Error("%s", s.Error)
		}
		p.lastError = s.Error
	}

	printed := 0
	for i := len(records) - 1; i >= 0; i-- {
		r := records[i]
		if r.Number <= p.lastBlock {
			continue
		}
		p.u.Info("%s", blockLine(s.Network.GetName(), r))
		p.lastBlock = r.Number
		printed++
	}
	if printed > 0 {
		p.u.Indent().Info("%s", metricsLine(s.Metrics))
	}
	return printed
}

func blockLine(network string, r tracker.BlockRecord) string {
	gas := "—"
	if u, ok := r.Utilization(); ok {
		gas = fmt.Sprintf("%s (%.1f%%)", r.GasUsedDisplay(), u)
	}
	blockTime := "—"
	if r.BlockTime > 0 {
		blockTime = fmt.Sprintf("%ds", r.BlockTime)
	}
	return fmt.Sprintf("[%s] #%s at %s  txs: %s  gas: %s  block time: %s",
		network,
		common.FormatNumber(r.Number),
		r.Timestamp,
		common.FormatNumber(r.TransactionCount),
		gas,
		blockTime,
	)
}

func metricsLine(m tracker.Metrics) string {
	return fmt.Sprintf("last %d blocks: %s txs, utilization %s, avg block time %s, TPS %s",
		m.Count,
		common.FormatNumber(m.VisibleTotalTransactions),
		common.OrDash(m.NetworkUtilization, "%.1f%%"),
		common.OrDash(m.AvgBlockTime, "%.2fs"),
		common.OrDash(m.TPS, "%.1f"),
	)
}
