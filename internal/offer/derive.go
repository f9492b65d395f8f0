package offer

import (
	"math"
	"time"

	"github.com/google/uuid"
)

const previewRunes = 50

// Derive constructs a well-formed pending Offer from a validated submission
// and the renter/owner snapshots. It never fails for well-formed input —
// callers run ValidateSubmission first.
func Derive(in Submission, renter RenterSnapshot, owner OwnerInfo, now time.Time) Offer {
	diff := in.RenterOfferPrice - in.OwnerPrice
	return Offer{
		ID:         uuid.New().String(),
		PropertyID: in.PropertyID,
		OwnerID:    in.OwnerID,
		RenterID:   in.RenterID,

		PropertyTitle:  in.PropertyTitle,
		PropertyImage:  in.PropertyImage,
		OwnerName:      owner.Name,
		OwnerPrice:     in.OwnerPrice,
		OwnerStartDate: in.OwnerStartDate,
		OwnerEndDate:   in.OwnerEndDate,

		RenterOfferPrice: in.RenterOfferPrice,
		RenterStartDate:  in.RenterStartDate,
		RenterEndDate:    in.RenterEndDate,
		RenterNote:       in.RenterNote,

		RenterName:         renter.Name,
		RenterAge:          renter.Age,
		RenterOccupation:   renter.Occupation,
		RenterLocation:     renter.Location,
		RenterProfileImage: renter.ProfileImage,
		RenterIsVerified:   renter.Verified,

		Status: StatusPending,

		PriceDifference:      diff,
		IsPriceIncrease:      diff > 0,
		WeeklyRate:           math.Round(in.RenterOfferPrice / 4.33),
		DailyRate:            math.Round(in.RenterOfferPrice / 30),
		RentalDurationMonths: durationMonths(in.RenterStartDate, in.RenterEndDate),
		MessagePreview:       preview(in.RenterNote),

		CreatedAt: now,
		UpdatedAt: now,
		ExpiresAt: now.Add(ExpiryWindow),
	}
}

// durationMonths counts whole 30-day months in the renter window.
// A rental shorter than one month still counts as one.
func durationMonths(start, end time.Time) int {
	days := end.Sub(start).Hours() / 24
	months := int(days / 30)
	if months < 1 {
		months = 1
	}
	return months
}

// preview returns the first 50 runes of note, with an ellipsis iff truncated.
func preview(note string) string {
	r := []rune(note)
	if len(r) <= previewRunes {
		return note
	}
	return string(r[:previewRunes]) + "..."
}
