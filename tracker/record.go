package tracker

import (
	"time"

	"github.com/tranvictor/basewatch/common"
	"github.com/tranvictor/basewatch/util/reader"
)

// SampleSize is the number of transaction hashes kept per record.
const SampleSize = 5

// BlockRecord is the normalized view of one fetched block.
type BlockRecord struct {
	Number            uint64
	TransactionCount  int
	Timestamp         string // local wall clock time
	ChainTime         uint64 // unix seconds as reported by the chain
	TransactionSample []string
	GasUsed           float64
	HasGasUsed        bool
	GasLimit          float64
	// BlockTime is the number of seconds since the previous fetched block
	// of the same network, 0 when there was none.
	BlockTime uint64
}

// Utilization returns gas used over gas limit in percent and whether the
// record has the data to compute it.
func (r BlockRecord) Utilization() (float64, bool) {
	if !r.HasGasUsed || r.GasLimit <= 0 {
		return 0, false
	}
	return r.GasUsed / r.GasLimit * 100, true
}

// GasUsedDisplay renders gas used in millions, or an empty string when the
// chain didn't report it.
func (r BlockRecord) GasUsedDisplay() string {
	if !r.HasGasUsed {
		return ""
	}
	return common.FormatGas(r.GasUsed)
}

func newBlockRecord(b *reader.Block, blockTime uint64, loc *time.Location) BlockRecord {
	sample := b.Transactions
	if len(sample) > SampleSize {
		sample = sample[:SampleSize]
	}
	record := BlockRecord{
		Number:            b.Number,
		TransactionCount:  len(b.Transactions),
		Timestamp:         common.FormatChainTime(b.Timestamp, loc),
		ChainTime:         b.Timestamp,
		TransactionSample: append([]string{}, sample...),
		GasLimit:          float64(b.GasLimit),
		BlockTime:         blockTime,
	}
	if b.GasUsed != nil {
		record.GasUsed = float64(*b.GasUsed)
		record.HasGasUsed = true
	}
	return record
}
