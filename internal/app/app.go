// Package app is the composition root: it wires storage, the offer store,
// the subscription registry, the expiry sweeper, and the lifecycle facade
// into one explicitly-owned object — no hidden process-wide state.
package app

import (
	"context"
	"time"

	"github.com/idomichaeli/Sublet-sub000/internal/lifecycle"
	"github.com/idomichaeli/Sublet-sub000/internal/listing"
	"github.com/idomichaeli/Sublet-sub000/internal/notify"
	"github.com/idomichaeli/Sublet-sub000/internal/offer"
	"github.com/idomichaeli/Sublet-sub000/internal/storage"
	"github.com/idomichaeli/Sublet-sub000/internal/worker"
)

// Config holds composition-root configuration. Zero values get defaults.
type Config struct {
	// Storage backs all durability. Defaults to an in-memory store; pass
	// storage.NewFileStore or storage.OpenSQLite for a persistent app.
	Storage storage.Store

	// SweepInterval is the expiry sweeper period. Defaults to one hour.
	SweepInterval time.Duration
}

// App bundles the wired offer subsystem for the UI layer.
type App struct {
	Offers  *lifecycle.Manager
	storage storage.Store
	store   *offer.Store
	sweeper *worker.Sweeper
}

// New constructs the dependency graph from cfg.
func New(cfg Config) *App {
	if cfg.Storage == nil {
		cfg.Storage = storage.NewMemoryStore()
	}
	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = worker.DefaultSweepInterval
	}

	store := offer.NewStore(cfg.Storage)
	registry := notify.NewRegistry(lifecycle.StoreSource{Store: store})
	sweeper := worker.NewSweeper(store, registry, cfg.SweepInterval)

	return &App{
		Offers:  lifecycle.NewManager(store, registry),
		storage: cfg.Storage,
		store:   store,
		sweeper: sweeper,
	}
}

// Start loads the persisted collection and starts the expiry sweeper. The
// sweeper's startup sweep corrects offers that expired while the process was
// not running.
func (a *App) Start(ctx context.Context) {
	a.store.Load(ctx)
	a.sweeper.Start(ctx)
}

// Stop terminates the sweeper deterministically.
func (a *App) Stop() {
	a.sweeper.Stop()
}

// Listings returns the owner-property manager for one owner, loaded and
// ready. Listing catalogues are persisted per owner.
func (a *App) Listings(ctx context.Context, ownerID string) *listing.Store {
	s := listing.NewStore(a.storage, ownerID)
	s.Load(ctx)
	return s
}
