// Package store persists small JSON records across sessions.
//
// In the browser the records live in window.localStorage; tests and the
// native preview use Memory. The store never fills in defaults: a missing
// key is reported as absent and the caller decides what it means.
package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"voyagex-front/logger"
)

// Keys of the records the application persists.
const (
	KeyUser     = "user"
	KeyStats    = "stats"
	KeyRewards  = "rewards"
	KeyBookings = "bookings"
	KeyTheme    = "theme"
)

// ErrCorrupt is returned by Get when a stored value cannot be decoded.
var ErrCorrupt = errors.New("store: corrupt record")

// Backend is the raw string key/value storage, shaped after the Web
// Storage API.
type Backend interface {
	GetItem(key string) (string, bool)
	SetItem(key, value string) error
	RemoveItem(key string)
}

type Store struct {
	backend Backend
	prefix  string
	log     *logger.Logger
}

func New(backend Backend, prefix string, log *logger.Logger) *Store {
	if log == nil {
		log = logger.Nop()
	}
	return &Store{backend: backend, prefix: prefix, log: log.With("component", "store")}
}

func (s *Store) key(k string) string {
	return s.prefix + k
}

// Get decodes the record stored under key into out. A missing key yields
// (false, nil).
func (s *Store) Get(key string, out interface{}) (bool, error) {
	raw, ok := s.backend.GetItem(s.key(key))
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		s.log.Warn("undecodable record", "key", key, "error", err)
		return false, fmt.Errorf("%w: %s: %v", ErrCorrupt, key, err)
	}
	return true, nil
}

// Set replaces the record under key. The value is encoded before the
// backend is touched, so a failed encode leaves the previous record intact.
func (s *Store) Set(key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", key, err)
	}
	if err := s.backend.SetItem(s.key(key), string(data)); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

func (s *Store) Remove(key string) {
	s.backend.RemoveItem(s.key(key))
}
