package dashboard

import (
	"fmt"
	"sync"

	"github.com/tranvictor/basewatch/networks"
	"github.com/tranvictor/basewatch/tracker"
)

const (
	MinWindowSize     = 2
	MaxWindowSize     = tracker.MaxRecords
	DefaultWindowSize = 10
)

// TxLink is a sample transaction of the latest block with its explorer page.
type TxLink struct {
	Hash string
	URL  string
}

// Snapshot is everything the presentation layer needs for one frame.
type Snapshot struct {
	Network      networks.Network
	Paused       bool
	Connected    bool
	Error        string
	WindowSize   int
	Window       []tracker.BlockRecord // newest first
	TotalTracked uint64
	Metrics      tracker.Metrics
	LatestTxs    []TxLink
}

// Dashboard holds the user selection on top of a Tracker. Selection changes
// never touch the tracked histories.
type Dashboard struct {
	tracker *tracker.Tracker

	mu         sync.RWMutex
	network    string
	windowSize int
	paused     bool
}

func New(t *tracker.Tracker, network string) (*Dashboard, error) {
	d := &Dashboard{
		tracker:    t,
		windowSize: DefaultWindowSize,
	}
	if err := d.SelectNetwork(network); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Dashboard) Tracker() *tracker.Tracker {
	return d.tracker
}

// SelectNetwork switches the displayed network. Alternative network names
// are accepted.
func (d *Dashboard) SelectNetwork(name string) error {
	n, err := networks.GetNetwork(name)
	if err != nil {
		return err
	}
	if _, found := d.tracker.Session(n.GetName()); !found {
		return fmt.Errorf("network '%s' is not tracked: %w", name, networks.ErrNetworkNotFound)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.network = n.GetName()
	return nil
}

func (d *Dashboard) Network() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.network
}

// TogglePause pauses or resumes every tracked network and returns the new
// paused state.
func (d *Dashboard) TogglePause() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.paused = !d.paused
	if d.paused {
		d.tracker.PauseAll()
	} else {
		d.tracker.ResumeAll()
	}
	return d.paused
}

func (d *Dashboard) Paused() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.paused
}

// SetWindowSize sets the number of records metrics are computed over,
// clamped to [MinWindowSize, MaxWindowSize]. It returns the applied size.
func (d *Dashboard) SetWindowSize(n int) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.windowSize = clampWindow(n)
	return d.windowSize
}

func (d *Dashboard) GrowWindow() int {
	return d.SetWindowSize(d.WindowSize() + 1)
}

func (d *Dashboard) ShrinkWindow() int {
	return d.SetWindowSize(d.WindowSize() - 1)
}

func (d *Dashboard) WindowSize() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.windowSize
}

func clampWindow(n int) int {
	if n < MinWindowSize {
		return MinWindowSize
	}
	if n > MaxWindowSize {
		return MaxWindowSize
	}
	return n
}

// Snapshot reads the selected network's window and recomputes its metrics.
func (d *Dashboard) Snapshot() Snapshot {
	d.mu.RLock()
	network, windowSize, paused := d.network, d.windowSize, d.paused
	d.mu.RUnlock()

	n, err := networks.GetNetwork(network)
	if err != nil {
		n = networks.BaseMainnet
	}
	status := d.tracker.Status()
	snap := Snapshot{
		Network:    n,
		Paused:     paused,
		Connected:  status.Connected(),
		Error:      status.Message(),
		WindowSize: windowSize,
	}
	session, found := d.tracker.Session(network)
	if !found {
		return snap
	}
	history := session.History()
	snap.Window = history.Window(windowSize)
	snap.TotalTracked = history.TotalTracked()
	snap.Metrics = tracker.ComputeMetrics(snap.Window)
	if len(snap.Window) > 0 {
		for _, hash := range snap.Window[0].TransactionSample {
			snap.LatestTxs = append(snap.LatestTxs, TxLink{
				Hash: hash,
				URL:  networks.TxURL(hash, network),
			})
		}
	}
	return snap
}

// StatusLabel is the short connection label shown in the header.
func (s Snapshot) StatusLabel() string {
	switch {
	case s.Paused:
		return "Paused"
	case s.Connected:
		return "Live"
	default:
		return "Disconnected"
	}
}
