package notify

import (
	"log"
	"sync"

	"github.com/idomichaeli/Sublet-sub000/internal/offer"
)

// Callback receives the current filtered offer view for a key.
type Callback func(offers []offer.Offer)

// Source resolves the offer subset relevant to an interest key, using the
// same owner/property matching rules as the store queries.
type Source interface {
	OffersFor(key Key) []offer.Offer
}

type subscription struct {
	seq int
	fn  Callback
}

// Registry is the subscription registry. Callbacks for a key run in
// registration order; a panicking callback is isolated so the remaining
// callbacks for that key still run.
type Registry struct {
	source Source

	mu   sync.Mutex
	next int
	subs map[Key][]subscription
}

// NewRegistry creates a Registry resolving views through source.
func NewRegistry(source Source) *Registry {
	return &Registry{
		source: source,
		subs:   make(map[Key][]subscription),
	}
}

// Subscribe registers fn for key and returns a cancel function that removes
// exactly this registration. Removing the last callback for a key frees the
// key entirely.
func (r *Registry) Subscribe(key Key, fn Callback) func() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.next++
	seq := r.next
	r.subs[key] = append(r.subs[key], subscription{seq: seq, fn: fn})

	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()

		subs := r.subs[key]
		for i := range subs {
			if subs[i].seq != seq {
				continue
			}
			subs = append(subs[:i], subs[i+1:]...)
			break
		}
		if len(subs) == 0 {
			delete(r.subs, key)
		} else {
			r.subs[key] = subs
		}
	}
}

// Notify recomputes the view for key and delivers it to every registered
// callback, in registration order.
func (r *Registry) Notify(key Key) {
	r.mu.Lock()
	subs := append([]subscription(nil), r.subs[key]...)
	r.mu.Unlock()

	if len(subs) == 0 {
		return
	}
	view := r.source.OffersFor(key)
	for _, sub := range subs {
		deliver(key, sub, view)
	}
}

// NotifyAll notifies every currently-registered key. Used after system-wide
// mutations (expiry sweeps, status changes) whose observer keys the mutator
// doesn't know in advance.
func (r *Registry) NotifyAll() {
	r.mu.Lock()
	keys := make([]Key, 0, len(r.subs))
	for k := range r.subs {
		keys = append(keys, k)
	}
	r.mu.Unlock()

	for _, k := range keys {
		r.Notify(k)
	}
}

func deliver(key Key, sub subscription, view []offer.Offer) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("notify: %s subscriber panic: %v", key, rec)
		}
	}()
	sub.fn(view)
}
