// Package session keeps interview transcripts in process memory.
package session

import (
	"context"
	"sync"
)

// Store keeps the ordered transcript of every interview session.
type Store interface {
	History(ctx context.Context, sessionID string) []string
	Append(ctx context.Context, sessionID, entry string)
	Len(ctx context.Context, sessionID string) int
	Count() int
}

// MemoryStore is the process-local Store. Sessions are created lazily on
// first Append and live until the process exits.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string][]string
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string][]string),
	}
}

// History returns a copy of the session's entries in insertion order.
// Unknown sessions yield an empty, non-nil slice.
func (s *MemoryStore) History(_ context.Context, sessionID string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := s.sessions[sessionID]
	copied := make([]string, len(entries))
	copy(copied, entries)
	return copied
}

// Append adds entry to the end of the session, creating it if needed.
func (s *MemoryStore) Append(_ context.Context, sessionID, entry string) {
	s.mu.Lock()
	s.sessions[sessionID] = append(s.sessions[sessionID], entry)
	s.mu.Unlock()
}

// Len reports how many entries the session holds.
func (s *MemoryStore) Len(_ context.Context, sessionID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions[sessionID])
}

// Count reports how many sessions have at least one entry.
func (s *MemoryStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
