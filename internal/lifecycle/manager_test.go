package lifecycle

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idomichaeli/Sublet-sub000/internal/notify"
	"github.com/idomichaeli/Sublet-sub000/internal/offer"
	"github.com/idomichaeli/Sublet-sub000/internal/storage"
)

func newTestManager(t *testing.T, now time.Time) (*Manager, *offer.Store) {
	t.Helper()
	store := offer.NewStore(storage.NewMemoryStore())
	store.Load(context.Background())
	registry := notify.NewRegistry(StoreSource{Store: store})
	m := NewManager(store, registry)
	m.now = func() time.Time { return now }
	return m, store
}

func scenarioSubmission() offer.Submission {
	return offer.Submission{
		PropertyID:       "prop-1",
		OwnerID:          "owner-1",
		RenterID:         "renter-1",
		PropertyTitle:    "Sunny 2BR near the park",
		OwnerPrice:       4500,
		OwnerStartDate:   time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		OwnerEndDate:     time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
		RenterOfferPrice: 4800,
		RenterStartDate:  time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC),
		RenterEndDate:    time.Date(2024, 11, 30, 0, 0, 0, 0, time.UTC),
		RenterNote:       "Looking forward to it.",
	}
}

func TestManager_SubmitAndNotify(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	m, _ := newTestManager(t, now)

	calls := 0
	var view []offer.Offer
	m.Subscribe(notify.ForOwner("owner-1"), func(offers []offer.Offer) {
		calls++
		view = offers
	})

	stored, err := m.Submit(ctx, scenarioSubmission(), offer.RenterSnapshot{Name: "Dana"}, offer.OwnerInfo{Name: "Ido"})
	require.NoError(t, err)

	assert.Equal(t, float64(300), stored.PriceDifference)
	assert.True(t, stored.IsPriceIncrease)
	assert.Equal(t, 9, stored.RentalDurationMonths)

	require.Equal(t, 1, calls, "owner subscriber receives exactly one callback")
	require.Len(t, view, 1)
	assert.Equal(t, stored.ID, view[0].ID)
}

func TestManager_Submit_ValidationRejection(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	m, store := newTestManager(t, now)

	calls := 0
	m.Subscribe(notify.ForOwner("owner-1"), func([]offer.Offer) { calls++ })

	// Start date is tomorrow minus one hour: less than 24h out.
	in := scenarioSubmission()
	in.RenterStartDate = now.Add(23 * time.Hour)
	in.RenterEndDate = now.AddDate(0, 6, 0)

	_, err := m.Submit(ctx, in, offer.RenterSnapshot{}, offer.OwnerInfo{})
	require.Error(t, err)

	var verr *offer.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "start date must be at least 1 day in the future", verr.Message)

	assert.Empty(t, store.All(), "store unchanged on validation failure")
	assert.Equal(t, 0, calls, "no notification on validation failure")
}

func TestManager_UpdateStatus_NotifiesAllKeys(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	m, _ := newTestManager(t, now)

	stored, err := m.Submit(ctx, scenarioSubmission(), offer.RenterSnapshot{}, offer.OwnerInfo{})
	require.NoError(t, err)

	ownerCalls, propCalls := 0, 0
	var propView []offer.Offer
	m.Subscribe(notify.ForOwner("owner-1"), func([]offer.Offer) { ownerCalls++ })
	m.Subscribe(notify.ForProperty("prop-1"), func(offers []offer.Offer) {
		propCalls++
		propView = offers
	})

	updated, err := m.UpdateStatus(ctx, stored.ID, offer.StatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, offer.StatusAccepted, updated.Status)

	assert.Equal(t, 1, ownerCalls)
	assert.Equal(t, 1, propCalls)
	require.Len(t, propView, 1)
	assert.Equal(t, offer.StatusAccepted, propView[0].Status)
}

func TestManager_UpdateStatus_UnknownID(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	m, store := newTestManager(t, now)

	_, err := m.Submit(ctx, scenarioSubmission(), offer.RenterSnapshot{}, offer.OwnerInfo{})
	require.NoError(t, err)
	before := store.All()

	calls := 0
	m.Subscribe(notify.ForOwner("owner-1"), func([]offer.Offer) { calls++ })

	_, err = m.UpdateStatus(ctx, "does-not-exist", offer.StatusAccepted)
	assert.ErrorIs(t, err, offer.ErrNotFound)
	assert.Equal(t, before, store.All(), "store unchanged")
	assert.Equal(t, 0, calls, "no notification fired")
}

func TestManager_StatsAndQueries(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	m, _ := newTestManager(t, now)

	first, err := m.Submit(ctx, scenarioSubmission(), offer.RenterSnapshot{}, offer.OwnerInfo{})
	require.NoError(t, err)

	in := scenarioSubmission()
	in.PropertyID = "prop-2"
	in.RenterOfferPrice = 4200
	second, err := m.Submit(ctx, in, offer.RenterSnapshot{}, offer.OwnerInfo{})
	require.NoError(t, err)

	_, err = m.UpdateStatus(ctx, second.ID, offer.StatusRejected)
	require.NoError(t, err)

	st := m.Stats("owner-1")
	assert.Equal(t, 2, st.Total)
	assert.Equal(t, 1, st.Pending)
	assert.Equal(t, 1, st.Rejected)
	assert.Equal(t, 4500.0, st.AverageOfferPrice)
	assert.Equal(t, 2, st.TotalToday)

	assert.Len(t, m.ForOwner("owner-1", nil), 2)
	got := m.ForProperty("prop-1")
	require.Len(t, got, 1)
	assert.Equal(t, first.ID, got[0].ID)
}

func TestManager_ClearAllNotifies(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	m, store := newTestManager(t, now)

	_, err := m.Submit(ctx, scenarioSubmission(), offer.RenterSnapshot{}, offer.OwnerInfo{})
	require.NoError(t, err)

	calls := 0
	var lastView []offer.Offer
	m.Subscribe(notify.ForOwner("owner-1"), func(offers []offer.Offer) {
		calls++
		lastView = offers
	})

	require.NoError(t, m.ClearAll(ctx))
	assert.Empty(t, store.All())
	assert.Equal(t, 1, calls)
	assert.Empty(t, lastView, "subscribers see the now-empty view")
}

func TestManager_Delete(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	m, store := newTestManager(t, now)

	stored, err := m.Submit(ctx, scenarioSubmission(), offer.RenterSnapshot{}, offer.OwnerInfo{})
	require.NoError(t, err)

	removed, err := m.Delete(ctx, stored.ID)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Empty(t, store.All())

	removed, err = m.Delete(ctx, stored.ID)
	require.NoError(t, err)
	assert.False(t, removed)
}
