// Package store holds the authoritative in-memory list of contacts shown by
// the CLI.
//
// The list is only ever replaced wholesale by Reload; nothing patches it in
// place after a create, update or delete. Overlapping reloads are ordered by
// start time: a result older than the one currently shown is discarded and
// reported as ErrStale.
package store

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/dmitrijs2005/contactbook/internal/client/models"
	"github.com/dmitrijs2005/contactbook/internal/logging"
)

// ErrStale means the reload finished after a newer one had already been
// applied, so its outcome was dropped.
var ErrStale = errors.New("stale reload result discarded")

// Lister is the slice of client.Client the store needs.
type Lister interface {
	List(ctx context.Context) ([]models.Contact, error)
}

type Store struct {
	lister Lister
	logger logging.Logger

	mu       sync.RWMutex
	contacts []models.Contact
	loaded   bool
	inFlight int
	issued   uint64
	shown    uint64
}

func New(lister Lister, logger logging.Logger) *Store {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Store{
		lister:   lister,
		logger:   logger.With("module", "store"),
		contacts: []models.Contact{},
	}
}

// Reload fetches the full list and, on success, replaces the stored
// collection with it in the order received. On failure the previous
// collection stays in place and the wrapped error is returned.
func (s *Store) Reload(ctx context.Context) error {
	s.mu.Lock()
	s.issued++
	seq := s.issued
	s.inFlight++
	s.mu.Unlock()

	contacts, err := s.lister.List(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight--

	if seq < s.shown {
		s.logger.Debug(ctx, "reload result discarded", "seq", seq, "shown", s.shown, "failed", err != nil)
		return ErrStale
	}
	if err != nil {
		return fmt.Errorf("list contacts: %w", err)
	}

	s.contacts = slices.Clone(contacts)
	if s.contacts == nil {
		s.contacts = []models.Contact{}
	}
	s.shown = seq
	s.loaded = true
	s.logger.Debug(ctx, "contacts reloaded", "count", len(s.contacts), "seq", seq)
	return nil
}

// Snapshot returns a copy of the current collection.
func (s *Store) Snapshot() []models.Contact {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.contacts)
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.contacts)
}

// Find looks id up in the last loaded snapshot.
func (s *Store) Find(id string) (models.Contact, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := slices.IndexFunc(s.contacts, func(c models.Contact) bool { return c.ID == id })
	if i < 0 {
		return models.Contact{}, false
	}
	return s.contacts[i], true
}

// Loading reports whether any reload is in flight.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inFlight > 0
}

// Loaded reports whether at least one reload has succeeded.
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}
