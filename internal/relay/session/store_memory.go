package session

import (
	"context"
	"sync"
	"time"
)

// InMemory tracks sender activity in a map, for tests and single-instance
// deployments without Redis.
type InMemory struct {
	mu       sync.RWMutex
	lastSeen map[string]time.Time
	ttl      time.Duration
}

// NewInMemory constructs an empty in-memory session store.
func NewInMemory(ttl time.Duration) *InMemory {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &InMemory{
		lastSeen: make(map[string]time.Time),
		ttl:      ttl,
	}
}

func (s *InMemory) Touch(_ context.Context, senderID string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen[senderID] = at
	return nil
}

func (s *InMemory) ActiveCount(_ context.Context, now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int64
	for sender, seen := range s.lastSeen {
		if now.Sub(seen) > s.ttl {
			delete(s.lastSeen, sender)
			continue
		}
		count++
	}
	return count, nil
}
