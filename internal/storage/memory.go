package storage

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory Store used in tests and as a throwaway
// backend. Values are copied on read and write so callers cannot alias the
// stored bytes.
type MemoryStore struct {
	mu          sync.Mutex
	collections map[string][]byte
	session     []byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string][]byte)}
}

func (s *MemoryStore) ReadCollection(_ context.Context, name string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok := s.collections[name]
	if !ok {
		return nil, nil
	}
	return clone(data), nil
}

func (s *MemoryStore) WriteCollection(_ context.Context, name string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.collections[name] = clone(data)
	return nil
}

func (s *MemoryStore) ReadSession(_ context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return nil, nil
	}
	return clone(s.session), nil
}

func (s *MemoryStore) WriteSession(_ context.Context, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = clone(data)
	return nil
}

func (s *MemoryStore) ClearSession(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = nil
	return nil
}

func clone(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
