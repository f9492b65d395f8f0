package offer

import "time"

// Stats summarizes an offer set for the owner dashboard.
type Stats struct {
	Total             int     `json:"total"`
	Pending           int     `json:"pending"`
	Accepted          int     `json:"accepted"`
	Rejected          int     `json:"rejected"`
	Expired           int     `json:"expired"`
	AverageOfferPrice float64 `json:"average_offer_price"`
	TotalToday        int     `json:"total_today"`
}

// ComputeStats aggregates the given offers. AverageOfferPrice is the mean
// renter offer price (0 for an empty set); TotalToday counts offers created
// on the current UTC calendar day.
func ComputeStats(offers []Offer, now time.Time) Stats {
	st := Stats{Total: len(offers)}
	if len(offers) == 0 {
		return st
	}

	today := now.UTC()
	ty, tm, td := today.Date()
	var priceSum float64
	for _, o := range offers {
		switch o.Status {
		case StatusPending:
			st.Pending++
		case StatusAccepted:
			st.Accepted++
		case StatusRejected:
			st.Rejected++
		case StatusExpired:
			st.Expired++
		}
		priceSum += o.RenterOfferPrice

		y, m, d := o.CreatedAt.UTC().Date()
		if y == ty && m == tm && d == td {
			st.TotalToday++
		}
	}
	st.AverageOfferPrice = priceSum / float64(len(offers))
	return st
}
