// Package listing provides the owner-property manager: the owner-side
// catalogue of listed properties with engagement counters. It follows the
// same persisted-collection pattern as the offer store, keyed per owner.
package listing

import "time"

// Status is the publication state of an owner property.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusRented    Status = "rented"
	StatusArchived  Status = "archived"
)

// OwnerProperty is one property in an owner's catalogue, with the engagement
// counters shown on the owner dashboard.
type OwnerProperty struct {
	ID      string `json:"id"`
	OwnerID string `json:"owner_id"`

	Title     string    `json:"title"`
	Image     string    `json:"image"`
	Price     float64   `json:"price"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`

	Status Status `json:"status"`

	Views     int `json:"views"`
	Inquiries int `json:"inquiries"`
	Bookings  int `json:"bookings"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
