package market

import (
	"sync"
	"time"
)

// InstanceState is the small per-strategy-instance memory that
// survives between evaluation cycles. LastOrderUpdate is the virtual
// entry watermark: it is set the first time an order is observed open
// (or on a fresh entry signal), which is not necessarily the broker's
// own open timestamp when positions are averaged.
type InstanceState struct {
	LastOrderUpdate time.Time
}

// StateStore keeps InstanceState per strategy instance ID. Instances
// evaluated in parallel each touch only their own entry.
type StateStore struct {
	mu     sync.Mutex
	states map[int]*InstanceState
}

func NewStateStore() *StateStore {
	return &StateStore{states: make(map[int]*InstanceState)}
}

func (s *StateStore) get(id int) *InstanceState {
	st, ok := s.states[id]
	if !ok {
		st = &InstanceState{}
		s.states[id] = st
	}
	return st
}

func (s *StateStore) LastOrderUpdate(id int) time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.get(id).LastOrderUpdate
}

func (s *StateStore) SetLastOrderUpdate(id int, t time.Time) time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.get(id).LastOrderUpdate = t
	return t
}

// Reset clears the watermark for an instance, e.g. after all its
// orders close.
func (s *StateStore) Reset(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.states, id)
}
