package tracker

import "testing"

func TestHistoryWindow(t *testing.T) {
	h := NewHistory()
	for i := uint64(1); i <= 25; i++ {
		h.push(BlockRecord{Number: i})
	}
	if h.Len() != MaxRecords {
		t.Fatalf("len = %d, want %d", h.Len(), MaxRecords)
	}
	if h.TotalTracked() != 25 {
		t.Errorf("total tracked = %d, want 25", h.TotalTracked())
	}

	window := h.Window(3)
	if len(window) != 3 || window[0].Number != 25 || window[2].Number != 23 {
		t.Errorf("unexpected window %v", window)
	}
	if got := h.Window(100); len(got) != MaxRecords || got[MaxRecords-1].Number != 6 {
		t.Errorf("oversized window should return every record, got %d", len(got))
	}
	if got := h.Window(-1); len(got) != 0 {
		t.Errorf("negative window should be empty, got %d", len(got))
	}
}

func TestHistoryWindowIsACopy(t *testing.T) {
	h := NewHistory()
	h.push(BlockRecord{Number: 1})
	window := h.Window(1)
	window[0].Number = 99
	if h.Records()[0].Number != 1 {
		t.Error("mutating a window must not change the history")
	}
}
