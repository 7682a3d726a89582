package tracker

import (
	"context"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Connector is implemented by sources that can be dialed up front.
type Connector interface {
	Connect(ctx context.Context) error
}

// Tracker runs one Session per network. Sessions share only the Status.
type Tracker struct {
	sessions map[string]*Session
	order    []string
	status   *Status
	log      *logrus.Entry
}

func NewTracker(log *logrus.Entry) *Tracker {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Tracker{
		sessions: map[string]*Session{},
		status:   NewStatus(),
		log:      log,
	}
}

// Add registers a session for network. Adding the same network twice
// replaces the previous session.
func (t *Tracker) Add(network string, source BlockSource, opts ...SessionOption) *Session {
	opts = append([]SessionOption{WithLogger(t.log)}, opts...)
	s := NewSession(network, source, t.status, opts...)
	if _, found := t.sessions[network]; !found {
		t.order = append(t.order, network)
	}
	t.sessions[network] = s
	return s
}

func (t *Tracker) Session(network string) (*Session, bool) {
	s, found := t.sessions[network]
	return s, found
}

// Networks returns the tracked network names in the order they were added.
func (t *Tracker) Networks() []string {
	return append([]string{}, t.order...)
}

func (t *Tracker) Status() *Status {
	return t.status
}

func (t *Tracker) PauseAll() {
	for _, s := range t.sessions {
		s.Pause()
	}
}

func (t *Tracker) ResumeAll() {
	for _, s := range t.sessions {
		s.Resume()
	}
}

// Connect dials every source that supports it. Failures only raise the
// connection banner; the sessions keep retrying once they run.
func (t *Tracker) Connect(ctx context.Context) {
	connected := false
	for _, network := range t.order {
		c, ok := t.sessions[network].source.(Connector)
		if !ok {
			connected = true
			continue
		}
		if err := c.Connect(ctx); err != nil {
			t.log.WithError(err).WithField("network", network).Error("connection failed")
			t.status.Set(network, ConnectionFailedMessage)
			continue
		}
		connected = true
	}
	t.status.SetConnected(connected)
}

// Run polls every network until ctx is done, then releases every source.
func (t *Tracker) Run(ctx context.Context) error {
	defer t.release()
	g, gctx := errgroup.WithContext(ctx)
	for _, network := range t.order {
		s := t.sessions[network]
		g.Go(func() error {
			return s.Run(gctx)
		})
	}
	return g.Wait()
}

func (t *Tracker) release() {
	for _, network := range t.order {
		t.sessions[network].source.Release()
	}
	t.log.Debug("released all connections")
}
