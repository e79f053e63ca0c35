package memory

import (
	"sync"

	"github.com/maryamb/redirector/internal/model"
	"github.com/maryamb/redirector/internal/storage"
)

// Storage implements in-memory redirect storage. A single RWMutex guards
// the whole collection: lookups share the read lock, stores hold the write
// lock across the existence check and the insert, so no two concurrent
// stores can both succeed for the same ID.
type Storage struct {
	redirects map[string]model.Redirect
	mutex     sync.RWMutex
}

// NewStorage creates an empty in-memory storage instance.
func NewStorage() *Storage {
	return &Storage{
		redirects: make(map[string]model.Redirect),
	}
}

// Lookup returns the target URL for the given ID.
func (s *Storage) Lookup(id string) (string, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	rec, found := s.redirects[id]
	if !found {
		return "", storage.ErrNotFound
	}

	return rec.TargetURL, nil
}

// Store creates a new redirect record unless the ID is already taken.
func (s *Storage) Store(id, targetURL, owner string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.redirects[id]; exists {
		return storage.ErrAlreadyExists
	}

	s.redirects[id] = model.Redirect{
		ID:        id,
		TargetURL: targetURL,
		Owner:     owner,
	}

	return nil
}
