package engine

import (
	"sync"
)

// Store owns the current engine snapshot. All mutation goes through Update,
// which applies a pure State function under the store's lock, so readers can
// never observe a partial write. The snapshot handed to View and to update
// functions must be treated as immutable.
type Store struct {
	mu    sync.Mutex
	state State
}

// NewStore returns a store with an empty snapshot.
func NewStore() *Store {
	return &Store{}
}

// View returns the current snapshot.
func (s *Store) View() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

// Update atomically replaces the snapshot with the result of fn and returns
// the new snapshot.
func (s *Store) Update(fn func(State) State) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = fn(s.state)
	return s.state
}

// UpdateErr applies fn and replaces the snapshot only when fn succeeds.
func (s *Store) UpdateErr(fn func(State) (State, error)) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := fn(s.state)
	if err != nil {
		return s.state, err
	}

	s.state = state
	return state, nil
}

// BeginCalculation marks a calculation run as in progress. It reports false
// when a run is already marked, callers then skip starting a second busy
// indicator but still queue their run: completion order is last write wins.
func (s *Store) BeginCalculation() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	started := !s.state.Calculating
	s.state.Calculating = true
	return started
}

// EndCalculation clears the in-progress flag.
func (s *Store) EndCalculation() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Calculating = false
}
