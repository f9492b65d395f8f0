package lifecycle

import (
	"github.com/idomichaeli/Sublet-sub000/internal/notify"
	"github.com/idomichaeli/Sublet-sub000/internal/offer"
)

// StoreSource adapts the offer store to the registry's Source interface,
// keeping the store ignorant of which keys are currently observed.
type StoreSource struct {
	Store *offer.Store
}

func (s StoreSource) OffersFor(key notify.Key) []offer.Offer {
	switch key.Scope {
	case notify.ScopeOwner:
		return s.Store.ByOwner(key.ID, nil)
	case notify.ScopeProperty:
		return s.Store.ByProperty(key.ID)
	}
	return nil
}
