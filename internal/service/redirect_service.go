package service

import (
	"github.com/maryamb/redirector/internal/storage"
	"github.com/rs/zerolog/log"
)

// RedirectService provides business logic for creating and resolving
// redirects. Handlers talk to this service and never hold a reference to
// the underlying collection.
type RedirectService struct {
	storage storage.Storage
}

// NewRedirectService constructs a RedirectService over the given storage.
func NewRedirectService(st storage.Storage) *RedirectService {
	return &RedirectService{
		storage: st,
	}
}

// Create stores a new redirect under the given ID. The ID is chosen by the
// caller; neither it nor the target URL is validated.
func (s *RedirectService) Create(id, targetURL, owner string) error {
	return s.storage.Store(id, targetURL, owner)
}

// Resolve returns the target URL for the given ID.
func (s *RedirectService) Resolve(id string) (string, error) {
	log.Debug().Str("id", id).Msg("Looked up redirect")

	return s.storage.Lookup(id)
}
