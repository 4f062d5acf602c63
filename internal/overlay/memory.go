// internal/overlay/memory.go
package overlay

import "sync"

type memoryStore struct {
	mu   sync.RWMutex
	rows map[string]string
}

// NewMemoryStore returns a process-local Store. It backs tests and carries
// the same read-your-writes guarantee as the database-backed store.
func NewMemoryStore() Store {
	return &memoryStore{rows: make(map[string]string)}
}

func (s *memoryStore) Get(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.rows[key]
	return v, ok, nil
}

func (s *memoryStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows[key] = value
	return nil
}

func (s *memoryStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rows, key)
	return nil
}
