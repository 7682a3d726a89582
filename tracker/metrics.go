package tracker

// Metrics summarizes a visible window of records.
type Metrics struct {
	Count                    int
	LatestBlock              uint64
	VisibleTotalTransactions int
	NetworkUtilization       float64 // percent
	AvgBlockTime             float64 // seconds
	TPS                      float64
}

// ComputeMetrics derives Metrics from window, which is newest first as
// returned by History.Window. It has no state and never modifies window.
//
// Block times are taken from every record but the oldest one: the oldest
// record's block time measures a gap to a block outside of the window. The
// TPS numerator still counts the transactions of the whole window.
func ComputeMetrics(window []BlockRecord) Metrics {
	m := Metrics{Count: len(window)}
	if len(window) == 0 {
		return m
	}
	m.LatestBlock = window[0].Number

	var utilizationSum float64
	var withGas int
	for _, r := range window {
		m.VisibleTotalTransactions += r.TransactionCount
		if u, ok := r.Utilization(); ok {
			utilizationSum += u
			withGas++
		}
	}
	if withGas > 0 {
		m.NetworkUtilization = utilizationSum / float64(withGas)
	}

	if len(window) < 2 {
		return m
	}
	var timeSpan uint64
	var intervals int
	for _, r := range window[:len(window)-1] {
		if r.BlockTime == 0 {
			continue
		}
		timeSpan += r.BlockTime
		intervals++
	}
	if intervals > 0 {
		m.AvgBlockTime = float64(timeSpan) / float64(intervals)
	}
	if timeSpan > 0 {
		m.TPS = float64(m.VisibleTotalTransactions) / float64(timeSpan)
	}
	return m
}
