// Package offer provides the rental offer entity model and the authoritative
// persisted offer collection. An Offer snapshots the listing terms and the
// renter profile at submission time, so it stays interpretable even if the
// listing later changes.
package offer

import "time"

// Status is the lifecycle state of an offer.
type Status string

const (
	StatusPending   Status = "pending"
	StatusAccepted  Status = "accepted"
	StatusRejected  Status = "rejected"
	StatusCountered Status = "countered"
	StatusExpired   Status = "expired"
)

// Terminal reports whether no further automatic transition occurs from s.
// Countered offers can still be accepted or rejected in later negotiation.
func (s Status) Terminal() bool {
	switch s {
	case StatusAccepted, StatusRejected, StatusExpired:
		return true
	}
	return false
}

// ExpiryWindow is how long a pending offer stays open before the sweeper
// expires it. Fixed at creation and never recalculated.
const ExpiryWindow = 48 * time.Hour

// Offer is one rental proposal from a renter to an owner for a property.
// Derived fields are computed once at creation and never independently
// mutated.
type Offer struct {
	ID         string `json:"id"`
	PropertyID string `json:"property_id"`
	OwnerID    string `json:"owner_id"`
	RenterID   string `json:"renter_id"`

	// Listing snapshot — a point-in-time copy of the listing terms.
	PropertyTitle  string    `json:"property_title"`
	PropertyImage  string    `json:"property_image"`
	OwnerName      string    `json:"owner_name"`
	OwnerPrice     float64   `json:"owner_price"`
	OwnerStartDate time.Time `json:"owner_start_date"`
	OwnerEndDate   time.Time `json:"owner_end_date"`

	// Renter proposal.
	RenterOfferPrice float64   `json:"renter_offer_price"`
	RenterStartDate  time.Time `json:"renter_start_date"`
	RenterEndDate    time.Time `json:"renter_end_date"`
	RenterNote       string    `json:"renter_note"`

	// Renter profile snapshot, copied at submission time.
	RenterName         string `json:"renter_name"`
	RenterAge          int    `json:"renter_age"`
	RenterOccupation   string `json:"renter_occupation"`
	RenterLocation     string `json:"renter_location"`
	RenterProfileImage string `json:"renter_profile_image"`
	RenterIsVerified   bool   `json:"renter_is_verified"`

	Status Status `json:"status"`

	// Derived fields.
	PriceDifference      float64 `json:"price_difference"`
	IsPriceIncrease      bool    `json:"is_price_increase"`
	WeeklyRate           float64 `json:"weekly_rate"`
	DailyRate            float64 `json:"daily_rate"`
	RentalDurationMonths int     `json:"rental_duration_months"`
	MessagePreview       string  `json:"message_preview"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Submission is the flat input a renter-side collaborator hands to the
// facade: listing snapshot plus proposal terms.
type Submission struct {
	PropertyID string `json:"property_id"`
	OwnerID    string `json:"owner_id"`
	RenterID   string `json:"renter_id"`

	PropertyTitle  string    `json:"property_title"`
	PropertyImage  string    `json:"property_image"`
	OwnerPrice     float64   `json:"owner_price"`
	OwnerStartDate time.Time `json:"owner_start_date"`
	OwnerEndDate   time.Time `json:"owner_end_date"`

	RenterOfferPrice float64   `json:"renter_offer_price"`
	RenterStartDate  time.Time `json:"renter_start_date"`
	RenterEndDate    time.Time `json:"renter_end_date"`
	RenterNote       string    `json:"renter_note"`
}

// RenterSnapshot is the renter profile copied onto the offer at submission.
type RenterSnapshot struct {
	Name         string `json:"name"`
	Age          int    `json:"age"`
	Occupation   string `json:"occupation"`
	Location     string `json:"location"`
	ProfileImage string `json:"profile_image"`
	Verified     bool   `json:"verified"`
}

// OwnerInfo carries the owner-side display data stamped onto the offer.
type OwnerInfo struct {
	Name string `json:"name"`
}
