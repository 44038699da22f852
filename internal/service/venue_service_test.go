package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Eursukkul/venue-staffing/internal/models"
	"github.com/Eursukkul/venue-staffing/internal/repository"
)

func TestUpdateVenue_KeepsIdentity(t *testing.T) {
	db := setupTestDB(t)
	svc := NewVenueService(repository.NewVenueRepository(db))
	ctx := context.Background()

	venue := &models.Venue{Name: "Club Nine", Capacity: 100}
	require.NoError(t, svc.CreateVenue(ctx, venue))
	created := venue.CreatedAt

	updated, err := svc.UpdateVenue(ctx, venue.ID, func(v *models.Venue) {
		v.ID = "hijacked"
		v.Name = "Club Ten"
		v.Capacity = 150
		v.Amenities = []string{"stage"}
	})
	require.NoError(t, err)
	assert.Equal(t, venue.ID, updated.ID)
	assert.True(t, created.Equal(updated.CreatedAt))

	reloaded, err := svc.GetVenue(ctx, venue.ID)
	require.NoError(t, err)
	assert.Equal(t, "Club Ten", reloaded.Name)
	assert.Equal(t, 150, reloaded.Capacity)
	assert.Equal(t, []string{"stage"}, []string(reloaded.Amenities))
}

func TestGetVenue_NotFound(t *testing.T) {
	svc := NewVenueService(repository.NewVenueRepository(setupTestDB(t)))

	_, err := svc.GetVenue(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrVenueNotFound)

	_, err = svc.UpdateVenue(context.Background(), "missing", func(v *models.Venue) {})
	assert.ErrorIs(t, err, ErrVenueNotFound)
}

func TestListVenues_SortedByName(t *testing.T) {
	svc := NewVenueService(repository.NewVenueRepository(setupTestDB(t)))
	ctx := context.Background()

	for _, name := range []string{"Zephyr", "Aurora", "Mosaic"} {
		require.NoError(t, svc.CreateVenue(ctx, &models.Venue{Name: name}))
	}

	venues, err := svc.ListVenues(ctx)
	require.NoError(t, err)
	require.Len(t, venues, 3)
	assert.Equal(t, "Aurora", venues[0].Name)
	assert.Equal(t, "Zephyr", venues[2].Name)
}
