package listing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/idomichaeli/Sublet-sub000/internal/storage"
)

// ErrNotFound is returned when an operation references an unknown property id.
var ErrNotFound = errors.New("property not found")

// Store owns one owner's property collection, persisted wholesale under an
// owner-scoped key. Same mutation discipline as the offer store: mutate under
// the mutex, persist before returning.
type Store struct {
	storage storage.Store
	ownerID string
	now     func() time.Time

	mu    sync.Mutex
	items []OwnerProperty
}

// NewStore creates a Store for the given owner. Call Load before use.
func NewStore(st storage.Store, ownerID string) *Store {
	return &Store{storage: st, ownerID: ownerID, now: time.Now}
}

func (s *Store) key() string {
	return "sublet.listings." + s.ownerID
}

// Load reads the persisted collection; missing or corrupt data initializes
// an empty catalogue, with corruption logged.
func (s *Store) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	blob, ok, err := s.storage.Get(ctx, s.key())
	if err != nil {
		log.Printf("listing: reading %s: %v (starting empty)", s.key(), err)
		s.items = nil
		return
	}
	if !ok {
		s.items = nil
		return
	}
	var items []OwnerProperty
	if err := json.Unmarshal(blob, &items); err != nil {
		log.Printf("listing: corrupt collection under %s: %v (starting empty)", s.key(), err)
		s.items = nil
		return
	}
	s.items = items
}

// persist writes the whole collection. Callers hold s.mu.
func (s *Store) persist(ctx context.Context) error {
	blob, err := json.Marshal(s.items)
	if err != nil {
		return fmt.Errorf("encoding listings: %w", err)
	}
	if err := s.storage.Set(ctx, s.key(), blob); err != nil {
		return fmt.Errorf("persisting listings: %w", err)
	}
	return nil
}

// Add creates a draft property in the owner's catalogue and persists.
func (s *Store) Add(ctx context.Context, p OwnerProperty) (OwnerProperty, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	p.ID = uuid.New().String()
	p.OwnerID = s.ownerID
	if p.Status == "" {
		p.Status = StatusDraft
	}
	p.CreatedAt = now
	p.UpdatedAt = now

	s.items = append(s.items, p)
	if err := s.persist(ctx); err != nil {
		return OwnerProperty{}, err
	}
	return p, nil
}

// Find returns the property with the given id, or ErrNotFound.
func (s *Store) Find(id string) (OwnerProperty, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.items {
		if p.ID == id {
			return p, nil
		}
	}
	return OwnerProperty{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// SetStatus updates a property's publication state and persists.
func (s *Store) SetStatus(ctx context.Context, id string, status Status) (OwnerProperty, error) {
	return s.mutate(ctx, id, func(p *OwnerProperty) {
		p.Status = status
	})
}

// RecordView increments the property's view counter.
func (s *Store) RecordView(ctx context.Context, id string) (OwnerProperty, error) {
	return s.mutate(ctx, id, func(p *OwnerProperty) {
		p.Views++
	})
}

// RecordInquiry increments the property's inquiry counter.
func (s *Store) RecordInquiry(ctx context.Context, id string) (OwnerProperty, error) {
	return s.mutate(ctx, id, func(p *OwnerProperty) {
		p.Inquiries++
	})
}

// RecordBooking increments the property's booking counter.
func (s *Store) RecordBooking(ctx context.Context, id string) (OwnerProperty, error) {
	return s.mutate(ctx, id, func(p *OwnerProperty) {
		p.Bookings++
	})
}

func (s *Store) mutate(ctx context.Context, id string, apply func(*OwnerProperty)) (OwnerProperty, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}
		apply(&s.items[i])
		s.items[i].UpdatedAt = s.now()
		if err := s.persist(ctx); err != nil {
			return OwnerProperty{}, err
		}
		return s.items[i], nil
	}
	return OwnerProperty{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Remove deletes the property with the given id and persists. Reports
// whether it was present.
func (s *Store) Remove(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}
		s.items = append(s.items[:i], s.items[i+1:]...)
		if err := s.persist(ctx); err != nil {
			return true, err
		}
		return true, nil
	}
	return false, nil
}

// All returns the owner's catalogue, newest first.
func (s *Store) All() []OwnerProperty {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := append([]OwnerProperty(nil), s.items...)
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})
	return all
}
