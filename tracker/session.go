package tracker

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sirupsen/logrus"

	"github.com/tranvictor/basewatch/util/reader"
)

// DefaultInterval is the delay between two ticks of a session.
const DefaultInterval = 2 * time.Second

// BlockSource is what a Session polls. *reader.EthReader implements it.
type BlockSource interface {
	BlockHeight(ctx context.Context) (uint64, error)
	BlockByNumber(ctx context.Context, number uint64) (*reader.Block, error)
	// Release closes held connections. It must be idempotent.
	Release()
}

// Session polls one network and owns its History and block cursor.
type Session struct {
	network  string
	source   BlockSource
	history  *History
	status   *Status
	interval backoff.BackOff
	location *time.Location
	log      *logrus.Entry

	paused            atomic.Bool
	lastSeenNumber    atomic.Uint64
	lastSeenTimestamp uint64 // only touched by Tick
}

type SessionOption func(*Session)

func WithInterval(d time.Duration) SessionOption {
	return func(s *Session) {
		s.interval = backoff.NewConstantBackOff(d)
	}
}

func WithLocation(loc *time.Location) SessionOption {
	return func(s *Session) {
		s.location = loc
	}
}

func WithLogger(log *logrus.Entry) SessionOption {
	return func(s *Session) {
		s.log = log
	}
}

func NewSession(network string, source BlockSource, status *Status, opts ...SessionOption) *Session {
	s := &Session{
		network:  network,
		source:   source,
		history:  NewHistory(),
		status:   status,
		interval: backoff.NewConstantBackOff(DefaultInterval),
		location: time.Local,
		log:      logrus.NewEntry(logrus.StandardLogger()),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.status == nil {
		s.status = NewStatus()
	}
	s.log = s.log.WithField("network", network)
	return s
}

func (s *Session) Network() string {
	return s.network
}

func (s *Session) History() *History {
	return s.history
}

func (s *Session) Source() BlockSource {
	return s.source
}

// LastSeenNumber is the highest block height the session has seen.
func (s *Session) LastSeenNumber() uint64 {
	return s.lastSeenNumber.Load()
}

// Pause makes the following ticks skip querying. The loop keeps running so
// polling resumes on the same connection after Resume.
func (s *Session) Pause() {
	s.paused.Store(true)
}

func (s *Session) Resume() {
	s.paused.Store(false)
}

func (s *Session) Paused() bool {
	return s.paused.Load()
}

// Tick checks for a new block and records it. It reports whether a record
// was added. The returned error has already been reported to Status and
// logged; it never needs to stop the loop.
func (s *Session) Tick(ctx context.Context) (bool, error) {
	if ctx.Err() != nil || s.paused.Load() {
		return false, nil
	}

	height, err := s.source.BlockHeight(ctx)
	if err != nil {
		return false, s.fail(ctx, err)
	}
	if height <= s.lastSeenNumber.Load() {
		return false, nil
	}
	s.lastSeenNumber.Store(height)

	if ctx.Err() != nil {
		return false, nil
	}
	block, err := s.source.BlockByNumber(ctx, height)
	if err != nil {
		return false, s.fail(ctx, err)
	}
	if block == nil {
		s.log.WithField("block", height).Debug("block not available yet")
		return false, nil
	}

	var blockTime uint64
	if s.lastSeenTimestamp != 0 && block.Timestamp >= s.lastSeenTimestamp {
		blockTime = block.Timestamp - s.lastSeenTimestamp
	}
	s.lastSeenTimestamp = block.Timestamp

	record := newBlockRecord(block, blockTime, s.location)
	s.history.push(record)
	s.status.Clear(s.network)
	s.status.SetConnected(true)

	s.log.WithFields(logrus.Fields{
		"block":      record.Number,
		"txs":        record.TransactionCount,
		"block_time": record.BlockTime,
	}).Debug("new block")
	return true, nil
}

// fail reports err. Until the first block is recorded the user sees a
// retry banner, afterwards errors are only logged.
func (s *Session) fail(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return err
	}
	if s.history.TotalTracked() == 0 {
		s.status.Set(s.network, fetchFailedMessage(s.network))
		s.log.WithError(err).Warn("couldn't fetch block data")
		return err
	}
	s.log.WithError(err).Debug("transient fetch error")
	return err
}

// Run ticks until ctx is done, waiting the session interval between ticks.
func (s *Session) Run(ctx context.Context) error {
	s.interval.Reset()
	for {
		s.Tick(ctx)
		if ctx.Err() != nil {
			return nil
		}
		next := s.interval.NextBackOff()
		if next == backoff.Stop {
			return nil
		}
		timer := time.NewTimer(next)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case <-timer.C:
		}
	}
}
