package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hanbyul-dev/tripnote-backend/models"
	"github.com/hanbyul-dev/tripnote-backend/utils"
)

var errNotFound = errors.New("not found")

type fakeTripStore struct {
	trips map[string]*models.Trip
	days  map[string][]*models.TripDay
}

func newFakeTripStore() *fakeTripStore {
	return &fakeTripStore{
		trips: make(map[string]*models.Trip),
		days:  make(map[string][]*models.TripDay),
	}
}

func (f *fakeTripStore) StoreTrip(trip *models.Trip, days []*models.TripDay) error {
	f.trips[trip.ID] = trip
	f.days[trip.ID] = days
	return nil
}

func (f *fakeTripStore) GetTrip(tripID string) (*models.Trip, error) {
	trip, ok := f.trips[tripID]
	if !ok {
		return nil, errNotFound
	}
	return trip, nil
}

func (f *fakeTripStore) ListTrips() ([]models.Trip, error) {
	var out []models.Trip
	for _, trip := range f.trips {
		out = append(out, *trip)
	}
	return out, nil
}

func (f *fakeTripStore) DeleteTrip(tripID string) error {
	delete(f.trips, tripID)
	delete(f.days, tripID)
	return nil
}

func TestBuildTripDays_GeneratesSentinelPlusCalendarDays(t *testing.T) {
	trip := models.NewTrip("t1", "Tokyo", "2026-05-01", "2026-05-04")

	days := BuildTripDays(trip)

	assert.Len(t, days, 5)

	assert.Equal(t, utils.DayKindUnassigned, days[0].Kind)
	assert.Equal(t, 0, days[0].DayOrder)
	assert.Nil(t, days[0].Date)

	assert.Equal(t, utils.DayKindRegular, days[1].Kind)
	assert.Equal(t, "2026-05-01", *days[1].Date)
	assert.Equal(t, 1, days[1].DayOrder)
	assert.Equal(t, "2026-05-04", *days[4].Date)
	assert.Equal(t, 4, days[4].DayOrder)
}

func TestBuildTripDays_SingleDayTrip(t *testing.T) {
	trip := models.NewTrip("t1", "Day trip", "2026-05-01", "2026-05-01")

	days := BuildTripDays(trip)

	assert.Len(t, days, 2)
	assert.Equal(t, utils.DayKindUnassigned, days[0].Kind)
	assert.Equal(t, "2026-05-01", *days[1].Date)
}

func TestCreateTrip_RejectsReversedRange(t *testing.T) {
	service := &TripService{trips: newFakeTripStore()}

	_, err := service.CreateTrip(&models.CreateTripRequest{
		Title: "Tokyo", StartDate: "2026-05-04", EndDate: "2026-05-01",
	})

	assert.Error(t, err)
}

func TestCreateTrip_StoresTripWithDays(t *testing.T) {
	store := newFakeTripStore()
	service := &TripService{trips: store}

	trip, err := service.CreateTrip(&models.CreateTripRequest{
		Title: "Tokyo", StartDate: "2026-05-01", EndDate: "2026-05-03",
	})

	assert.NoError(t, err)
	assert.Len(t, store.days[trip.ID], 4)
}

func TestRemoveTrip_RequiresConfirmation(t *testing.T) {
	store := newFakeTripStore()
	service := &TripService{trips: store}
	trip, _ := service.CreateTrip(&models.CreateTripRequest{
		Title: "Tokyo", StartDate: "2026-05-01", EndDate: "2026-05-03",
	})

	deleted, err := service.RemoveTrip(trip.ID, false)

	assert.NoError(t, err)
	assert.False(t, deleted)
	assert.Contains(t, store.trips, trip.ID)

	deleted, err = service.RemoveTrip(trip.ID, true)

	assert.NoError(t, err)
	assert.True(t, deleted)
	assert.NotContains(t, store.trips, trip.ID)
}
