package offer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/idomichaeli/Sublet-sub000/internal/storage"
)

// collectionKey is the well-known storage key holding the complete serialized
// offer collection. The collection is the authoritative state — there is no
// incremental format.
const collectionKey = "sublet.offers"

var (
	// ErrNotFound is returned when an operation references an unknown offer id.
	ErrNotFound = errors.New("offer not found")

	// ErrDuplicateID is returned when inserting an offer whose id already exists.
	ErrDuplicateID = errors.New("offer id already exists")
)

// Store owns the authoritative in-memory offer collection and persists it
// wholesale to the backing storage on every mutation. A single mutex
// serializes mutations so two concurrent writers cannot lose updates against
// the single persisted blob.
type Store struct {
	storage storage.Store
	now     func() time.Time

	mu     sync.Mutex
	offers []Offer
}

// NewStore creates a Store over the given storage. Call Load before use.
func NewStore(st storage.Store) *Store {
	return &Store{storage: st, now: time.Now}
}

// Load reads the persisted collection. Missing or corrupt data initializes an
// empty collection rather than surfacing an error — a restart must never be
// blocked by a bad blob — but corruption is logged so it isn't hidden as
// silently-empty state.
func (s *Store) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	blob, ok, err := s.storage.Get(ctx, collectionKey)
	if err != nil {
		log.Printf("offer: reading %s: %v (starting empty)", collectionKey, err)
		s.offers = nil
		return
	}
	if !ok {
		s.offers = nil
		return
	}
	var offers []Offer
	if err := json.Unmarshal(blob, &offers); err != nil {
		log.Printf("offer: corrupt collection under %s: %v (starting empty)", collectionKey, err)
		s.offers = nil
		return
	}
	s.offers = offers
}

// persist writes the whole collection. Callers hold s.mu.
func (s *Store) persist(ctx context.Context) error {
	blob, err := json.Marshal(s.offers)
	if err != nil {
		return fmt.Errorf("encoding offers: %w", err)
	}
	if err := s.storage.Set(ctx, collectionKey, blob); err != nil {
		return fmt.Errorf("persisting offers: %w", err)
	}
	return nil
}

// Insert appends o and persists. A write failure leaves the in-memory
// collection mutated — the caller must treat it as "may not survive a
// restart", not "had no effect".
func (s *Store) Insert(ctx context.Context, o Offer) (Offer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.offers {
		if existing.ID == o.ID {
			return Offer{}, fmt.Errorf("%w: %s", ErrDuplicateID, o.ID)
		}
	}
	s.offers = append(s.offers, o)
	if err := s.persist(ctx); err != nil {
		return Offer{}, err
	}
	return o, nil
}

// Find returns the offer with the given id, or ErrNotFound.
func (s *Store) Find(id string) (Offer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, o := range s.offers {
		if o.ID == id {
			return o, nil
		}
	}
	return Offer{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// allowTransition gates status changes. Any status may currently be set from
// any status; tightening to a transition table is a change to this one
// function only.
func allowTransition(_, _ Status) bool {
	return true
}

// UpdateStatus sets the status of the offer with the given id, refreshes
// updated_at, and persists. Returns ErrNotFound for unknown ids.
func (s *Store) UpdateStatus(ctx context.Context, id string, status Status) (Offer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.offers {
		if s.offers[i].ID != id {
			continue
		}
		if !allowTransition(s.offers[i].Status, status) {
			return Offer{}, fmt.Errorf("transition %s -> %s not allowed", s.offers[i].Status, status)
		}
		s.offers[i].Status = status
		s.offers[i].UpdatedAt = s.now()
		if err := s.persist(ctx); err != nil {
			return Offer{}, err
		}
		return s.offers[i], nil
	}
	return Offer{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Remove deletes the offer with the given id and persists. Reports whether
// the offer was present.
func (s *Store) Remove(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.offers {
		if s.offers[i].ID != id {
			continue
		}
		s.offers = append(s.offers[:i], s.offers[i+1:]...)
		if err := s.persist(ctx); err != nil {
			return true, err
		}
		return true, nil
	}
	return false, nil
}

// Clear drops the whole collection and removes the persisted blob.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.offers = nil
	if err := s.storage.Delete(ctx, collectionKey); err != nil {
		return fmt.Errorf("clearing offers: %w", err)
	}
	return nil
}

// ExpireStale transitions every pending offer whose expiry has passed to
// expired, refreshing updated_at, and persists the batch once. Offers in any
// other status are never touched, which also makes the sweep idempotent.
func (s *Store) ExpireStale(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	expired := 0
	for i := range s.offers {
		if s.offers[i].Status != StatusPending {
			continue
		}
		if s.offers[i].ExpiresAt.After(now) {
			continue
		}
		s.offers[i].Status = StatusExpired
		s.offers[i].UpdatedAt = now
		expired++
	}
	if expired == 0 {
		return 0, nil
	}
	if err := s.persist(ctx); err != nil {
		return expired, err
	}
	return expired, nil
}
