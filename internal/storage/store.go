package storage

import (
	"log/slog"
	"sort"
	"sync"
)

// Persister loads and saves the full subscriber mapping
type Persister interface {
	Load() (map[string]Subscriber, error)
	Save(data map[string]Subscriber) error
}

// Store owns the subscriber mapping. Every mutation is written through to the
// persister; persistence failures are logged and the in-memory copy stays
// authoritative for the life of the process.
type Store struct {
	mu        sync.Mutex
	persister Persister
	data      map[string]Subscriber
}

// NewStore loads the mapping once. An unreadable or corrupt source yields an empty store.
func NewStore(p Persister) *Store {
	s := &Store{persister: p, data: make(map[string]Subscriber)}

	data, err := p.Load()
	if err != nil {
		slog.Warn("Failed to load subscriptions, starting empty", "error", err)
		return s
	}
	for id, sub := range data {
		s.data[id] = sub
	}

	slog.Info("Loaded subscriptions", "count", len(s.data))
	return s
}

// Toggle subscribes an unknown user or unsubscribes a known one
func (s *Store) Toggle(userID string) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := Subscribed
	if _, ok := s.data[userID]; ok {
		delete(s.data, userID)
		state = Unsubscribed
	} else {
		s.data[userID] = Subscriber{Subscribed: true}
	}

	s.saveLocked()
	slog.Info("Subscription toggled", "user", userID, "state", state)
	return state
}

// Remove drops a user and reports whether they were present
func (s *Store) Remove(userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data[userID]; !ok {
		return false
	}
	delete(s.data, userID)
	s.saveLocked()
	return true
}

// IsSubscribed reports whether the user receives the broadcast
func (s *Store) IsSubscribed(userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.data[userID]
	return ok
}

// Get returns a copy of the user's record
func (s *Store) Get(userID string) (Subscriber, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sub, ok := s.data[userID]
	return sub, ok
}

// Subscribers returns the subscribed user ids, sorted
func (s *Store) Subscribers() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, 0, len(s.data))
	for id := range s.data {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Snapshot returns a copy of the whole mapping
func (s *Store) Snapshot() map[string]Subscriber {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyLocked()
}

// Len returns the number of subscribers
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data)
}

// Leaderboard returns up to n users ordered by streak, highest first
func (s *Store) Leaderboard(n int) []Entry {
	s.mu.Lock()
	entries := make([]Entry, 0, len(s.data))
	for id, sub := range s.data {
		entries = append(entries, Entry{UserID: id, Streak: sub.Streak})
	}
	s.mu.Unlock()

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Streak != entries[j].Streak {
			return entries[i].Streak > entries[j].Streak
		}
		return entries[i].UserID < entries[j].UserID
	})

	if n >= 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

func (s *Store) copyLocked() map[string]Subscriber {
	out := make(map[string]Subscriber, len(s.data))
	for id, sub := range s.data {
		out[id] = sub
	}
	return out
}

func (s *Store) saveLocked() {
	if err := s.persister.Save(s.copyLocked()); err != nil {
		slog.Warn("Failed to persist subscriptions", "error", err)
	}
}
