package offer

import (
	"time"
	"unicode/utf8"
)

const (
	maxNoteRunes = 500
	minStartLead = 24 * time.Hour
)

// ValidationError is a business-rule failure on a submission. The message is
// shown to the renter as-is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// ValidateSubmission checks a submission against the business rules and
// returns the first violated rule only. Collect-all semantics would change
// the messages renters see, so the stop-at-first-error order is fixed.
func ValidateSubmission(in Submission, now time.Time) error {
	if in.PropertyID == "" {
		return &ValidationError{Field: "property_id", Message: "property id is required"}
	}
	if in.OwnerID == "" {
		return &ValidationError{Field: "owner_id", Message: "owner id is required"}
	}
	if in.RenterID == "" {
		return &ValidationError{Field: "renter_id", Message: "renter id is required"}
	}
	if in.RenterOfferPrice <= 0 {
		return &ValidationError{Field: "renter_offer_price", Message: "offer price must be greater than zero"}
	}
	if in.RenterStartDate.IsZero() || in.RenterEndDate.IsZero() {
		return &ValidationError{Field: "renter_start_date", Message: "start and end dates are required"}
	}
	if !in.RenterStartDate.Before(in.RenterEndDate) {
		return &ValidationError{Field: "renter_start_date", Message: "start date must be before end date"}
	}
	if in.RenterStartDate.Before(now.Add(minStartLead)) {
		return &ValidationError{Field: "renter_start_date", Message: "start date must be at least 1 day in the future"}
	}
	if utf8.RuneCountInString(in.RenterNote) > maxNoteRunes {
		return &ValidationError{Field: "renter_note", Message: "note must be 500 characters or less"}
	}
	return nil
}
