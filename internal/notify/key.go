// Package notify provides the pub/sub fan-out that keeps UI collaborators
// (owner inbox views, property screens) reactive to offer changes without
// polling. Subscribers register an interest key; every relevant mutation
// re-delivers the current filtered offer view for that key.
package notify

// Scope tags what an interest key refers to.
type Scope string

const (
	ScopeOwner    Scope = "owner"
	ScopeProperty Scope = "property"
)

// Key identifies a subscriber's scope of interest. The tagged form replaces
// the stringly-typed "owner_<id>" keys the UI previously parsed by hand.
type Key struct {
	Scope Scope
	ID    string
}

// ForOwner returns the interest key for an owner's inbox.
func ForOwner(ownerID string) Key {
	return Key{Scope: ScopeOwner, ID: ownerID}
}

// ForProperty returns the interest key for a single property's offers.
func ForProperty(propertyID string) Key {
	return Key{Scope: ScopeProperty, ID: propertyID}
}

func (k Key) String() string {
	return string(k.Scope) + ":" + k.ID
}
