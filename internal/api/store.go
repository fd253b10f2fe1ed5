package api

import "sync"

// ContextStore holds the current résumé context: the single piece of shared
// mutable state in the process. Each successful upload replaces the value
// wholesale; chats only read it. Racing uploads remain last-writer-wins,
// but access is synchronized because unsynchronized concurrent writes are
// undefined behavior in Go.
type ContextStore struct {
	mu      sync.RWMutex
	context string
}

func NewContextStore() *ContextStore {
	return &ContextStore{}
}

// Set replaces the stored context.
func (s *ContextStore) Set(context string) {
	s.mu.Lock()
	s.context = context
	s.mu.Unlock()
}

// Get returns the stored context; the second value is false when no résumé
// has been uploaded yet.
func (s *ContextStore) Get() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.context, s.context != ""
}

// Loaded reports whether a résumé has been uploaded.
func (s *ContextStore) Loaded() bool {
	_, ok := s.Get()
	return ok
}
