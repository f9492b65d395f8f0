package offer

import (
	"sort"
	"time"
)

// Filters narrows owner-scoped queries. A nil *Filters or zero field means
// "no constraint". Price bounds are inclusive; the date range matches any
// offer whose renter window overlaps it, boundaries included.
type Filters struct {
	Statuses []Status
	MinPrice *float64
	MaxPrice *float64
	From     *time.Time
	To       *time.Time
}

func (f *Filters) match(o Offer) bool {
	if f == nil {
		return true
	}
	if len(f.Statuses) > 0 && !statusIn(f.Statuses, o.Status) {
		return false
	}
	if f.MinPrice != nil && o.RenterOfferPrice < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && o.RenterOfferPrice > *f.MaxPrice {
		return false
	}
	if f.From != nil && o.RenterEndDate.Before(*f.From) {
		return false
	}
	if f.To != nil && o.RenterStartDate.After(*f.To) {
		return false
	}
	return true
}

func statusIn(set []Status, s Status) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

// ByOwner returns the owner's offers, newest first. Ordering is part of the
// query contract: created_at descending, ties stable in insertion order.
func (s *Store) ByOwner(ownerID string, f *Filters) []Offer {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matched []Offer
	for _, o := range s.offers {
		if o.OwnerID != ownerID {
			continue
		}
		if !f.match(o) {
			continue
		}
		matched = append(matched, o)
	}
	sortNewestFirst(matched)
	return matched
}

// ByProperty returns the property's offers, newest first.
func (s *Store) ByProperty(propertyID string) []Offer {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matched []Offer
	for _, o := range s.offers {
		if o.PropertyID != propertyID {
			continue
		}
		matched = append(matched, o)
	}
	sortNewestFirst(matched)
	return matched
}

// All returns a copy of the whole collection, newest first.
func (s *Store) All() []Offer {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := append([]Offer(nil), s.offers...)
	sortNewestFirst(all)
	return all
}

func sortNewestFirst(offers []Offer) {
	sort.SliceStable(offers, func(i, j int) bool {
		return offers[i].CreatedAt.After(offers[j].CreatedAt)
	})
}
