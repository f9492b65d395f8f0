// Package lifecycle exposes the offer lifecycle facade consumed by UI
// collaborators: renter-side submission forms and owner-side inbox screens.
// Every mutating call persists through the offer store first, then fans out
// notifications for the affected interest keys.
package lifecycle

import (
	"context"
	"time"

	"github.com/idomichaeli/Sublet-sub000/internal/notify"
	"github.com/idomichaeli/Sublet-sub000/internal/offer"
)

// Manager is the offer lifecycle facade. Construct one per running app via
// the composition root — there is no hidden process-wide instance.
type Manager struct {
	store    *offer.Store
	registry *notify.Registry
	now      func() time.Time
}

// NewManager creates a Manager over the given store and registry.
func NewManager(store *offer.Store, registry *notify.Registry) *Manager {
	return &Manager{store: store, registry: registry, now: time.Now}
}

// Submit validates the renter's submission, derives a pending offer with the
// renter and owner snapshots stamped on, persists it, and notifies the
// owner's subscribers. Validation failures return *offer.ValidationError with
// the first violated rule's message; the store is left unchanged.
func (m *Manager) Submit(ctx context.Context, in offer.Submission, renter offer.RenterSnapshot, owner offer.OwnerInfo) (offer.Offer, error) {
	if err := offer.ValidateSubmission(in, m.now()); err != nil {
		return offer.Offer{}, err
	}
	o := offer.Derive(in, renter, owner, m.now())
	stored, err := m.store.Insert(ctx, o)
	if err != nil {
		return offer.Offer{}, err
	}
	m.registry.Notify(notify.ForOwner(stored.OwnerID))
	return stored, nil
}

// UpdateStatus applies an owner-driven status change and notifies every
// registered key — the mutator doesn't know which keys observe this offer.
// On offer.ErrNotFound the store is unchanged and no notification fires.
func (m *Manager) UpdateStatus(ctx context.Context, id string, status offer.Status) (offer.Offer, error) {
	updated, err := m.store.UpdateStatus(ctx, id, status)
	if err != nil {
		return offer.Offer{}, err
	}
	m.registry.NotifyAll()
	return updated, nil
}

// ForOwner returns the owner's offers, newest first, optionally filtered.
func (m *Manager) ForOwner(ownerID string, f *offer.Filters) []offer.Offer {
	return m.store.ByOwner(ownerID, f)
}

// ForProperty returns a property's offers, newest first.
func (m *Manager) ForProperty(propertyID string) []offer.Offer {
	return m.store.ByProperty(propertyID)
}

// Stats aggregates the owner's offers for the dashboard.
func (m *Manager) Stats(ownerID string) offer.Stats {
	return offer.ComputeStats(m.store.ByOwner(ownerID, nil), m.now())
}

// Subscribe registers fn for key and returns its cancel function.
func (m *Manager) Subscribe(key notify.Key, fn notify.Callback) func() {
	return m.registry.Subscribe(key, fn)
}

// Delete removes an offer outside the owner-facing lifecycle (administrative).
// Reports whether the offer was present.
func (m *Manager) Delete(ctx context.Context, id string) (bool, error) {
	removed, err := m.store.Remove(ctx, id)
	if err != nil {
		return removed, err
	}
	if removed {
		m.registry.NotifyAll()
	}
	return removed, nil
}

// ClearAll drops the whole collection (administrative) and notifies every
// registered key with its now-empty view.
func (m *Manager) ClearAll(ctx context.Context) error {
	if err := m.store.Clear(ctx); err != nil {
		return err
	}
	m.registry.NotifyAll()
	return nil
}
