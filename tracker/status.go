package tracker

import (
	"fmt"
	"sync"
)

const ConnectionFailedMessage = "Failed to connect to Base network. Please check your connection."

func fetchFailedMessage(network string) string {
	return fmt.Sprintf("Error fetching %s block data. Retrying...", network)
}

// Status is the error banner and connection flag shared by every session.
// The last writer wins. A network only clears a message it set itself.
type Status struct {
	mu        sync.RWMutex
	message   string
	owner     string
	connected bool
}

func NewStatus() *Status {
	return &Status{}
}

func (s *Status) Set(owner, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.owner = owner
	s.message = message
}

func (s *Status) Clear(owner string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.owner != owner {
		return
	}
	s.owner = ""
	s.message = ""
}

func (s *Status) Message() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.message
}

func (s *Status) SetConnected(connected bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.connected = connected
}

func (s *Status) Connected() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.connected
}
