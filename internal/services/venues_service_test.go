package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vikramKumar-01/Hotel-mangement/internal/models"
)

func seedVenues(t *testing.T, vs *VenuesService) {
	t.Helper()
	ctx := context.Background()
	for _, v := range []models.Venue{
		{Name: "Grand Hall", Location: "New Delhi", Capacity: 300, Price: 50000},
		{Name: "Rooftop Garden", Location: "Mumbai", Capacity: 80, Price: 20000},
		{Name: "Lakeside Lawn", Location: "Old Delhi", Capacity: 150, Price: 35000},
	} {
		venue := v
		_, err := vs.Create(ctx, &venue)
		require.NoError(t, err)
	}
}

func TestVenueCreateValidation(t *testing.T) {
	vs := NewVenuesService(newFakeVenueRepo())
	ctx := context.Background()

	_, err := vs.Create(ctx, &models.Venue{Name: "No Location", Capacity: 10, Price: 100})
	assert.ErrorIs(t, err, models.ErrValidation)

	_, err = vs.Create(ctx, &models.Venue{Name: "Bad Capacity", Location: "Pune", Capacity: 0, Price: 100})
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestVenueFilterByLocation(t *testing.T) {
	vs := NewVenuesService(newFakeVenueRepo())
	seedVenues(t, vs)

	venues, err := vs.Filter(context.Background(), models.VenueQuery{Location: "delhi"})
	require.NoError(t, err)
	require.Len(t, venues, 2)
	for _, v := range venues {
		assert.Contains(t, []string{"New Delhi", "Old Delhi"}, v.Location)
	}
}

func TestVenueFilterByCapacity(t *testing.T) {
	vs := NewVenuesService(newFakeVenueRepo())
	seedVenues(t, vs)

	venues, err := vs.Filter(context.Background(), models.VenueQuery{MinCapacity: 100})
	require.NoError(t, err)
	require.Len(t, venues, 2)
	for _, v := range venues {
		assert.GreaterOrEqual(t, v.Capacity, 100)
	}
}

func TestVenueFilterPriceSort(t *testing.T) {
	vs := NewVenuesService(newFakeVenueRepo())
	seedVenues(t, vs)
	ctx := context.Background()

	low, err := vs.Filter(ctx, models.VenueQuery{PriceSort: "low"})
	require.NoError(t, err)
	require.Len(t, low, 3)
	assert.True(t, low[0].Price <= low[1].Price && low[1].Price <= low[2].Price)

	high, err := vs.Filter(ctx, models.VenueQuery{PriceSort: "high"})
	require.NoError(t, err)
	assert.True(t, high[0].Price >= high[1].Price && high[1].Price >= high[2].Price)

	_, err = vs.Filter(ctx, models.VenueQuery{PriceSort: "sideways"})
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestVenueFilterWithoutFiltersEqualsList(t *testing.T) {
	vs := NewVenuesService(newFakeVenueRepo())
	seedVenues(t, vs)
	ctx := context.Background()

	all, err := vs.List(ctx)
	require.NoError(t, err)
	filtered, err := vs.Filter(ctx, models.VenueQuery{})
	require.NoError(t, err)
	assert.Equal(t, all, filtered)
}

func TestVenueUpdateWhitelist(t *testing.T) {
	vs := NewVenuesService(newFakeVenueRepo())
	ctx := context.Background()

	venue, err := vs.Create(ctx, &models.Venue{Name: "Grand Hall", Location: "Delhi", Capacity: 300, Price: 50000})
	require.NoError(t, err)

	updated, err := vs.Update(ctx, venue.ID.Hex(), map[string]interface{}{
		"name":     "Grander Hall",
		"capacity": float64(350),
		"_id":      "ffffffffffffffffffffffff", // ignored
	})
	require.NoError(t, err)
	assert.Equal(t, "Grander Hall", updated.Name)
	assert.Equal(t, 350, updated.Capacity)
	assert.Equal(t, venue.ID, updated.ID)

	_, err = vs.Update(ctx, venue.ID.Hex(), map[string]interface{}{"capacity": float64(-5)})
	assert.ErrorIs(t, err, models.ErrValidation)

	_, err = vs.Update(ctx, venue.ID.Hex(), map[string]interface{}{"price": "free"})
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestVenueGetAndDeleteUnknown(t *testing.T) {
	vs := NewVenuesService(newFakeVenueRepo())
	ctx := context.Background()

	_, err := vs.Get(ctx, "64f1b2c3d4e5f60718293a4b")
	assert.ErrorIs(t, err, models.ErrNotFound)

	_, err = vs.Get(ctx, "not-hex")
	assert.ErrorIs(t, err, models.ErrValidation)

	assert.ErrorIs(t, vs.Delete(ctx, "64f1b2c3d4e5f60718293a4b"), models.ErrNotFound)
}
