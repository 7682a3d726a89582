package tracker

import (
	"sync"
)

// MaxRecords caps the number of records a History keeps.
const MaxRecords = 20

// History is the bounded, newest first list of records of one network.
// Only the network's Session appends to it; everybody else reads copies.
type History struct {
	mu           sync.RWMutex
	records      []BlockRecord
	totalTracked uint64
}

func NewHistory() *History {
	return &History{
		records: []BlockRecord{},
	}
}

// push prepends r, evicting the oldest record past MaxRecords. Callers
// guarantee r.Number is greater than every number already present.
func (h *History) push(r BlockRecord) {
	h.mu.Lock()
	defer h.mu.Unlock()
	records := make([]BlockRecord, 0, MaxRecords)
	records = append(records, r)
	for _, old := range h.records {
		if len(records) == MaxRecords {
			break
		}
		records = append(records, old)
	}
	h.records = records
	h.totalTracked++
}

// Records returns a copy of every record, newest first.
func (h *History) Records() []BlockRecord {
	return h.Window(MaxRecords)
}

// Window returns a copy of the n most recent records, newest first.
func (h *History) Window(n int) []BlockRecord {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if n > len(h.records) {
		n = len(h.records)
	}
	if n < 0 {
		n = 0
	}
	return append([]BlockRecord{}, h.records[:n]...)
}

func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.records)
}

// TotalTracked counts every block ever accepted, evicted ones included.
func (h *History) TotalTracked() uint64 {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.totalTracked
}
