// services/trip_service.go
package services

import (
	"time"

	"github.com/hanbyul-dev/tripnote-backend/models"
	"github.com/hanbyul-dev/tripnote-backend/repository"
	"github.com/hanbyul-dev/tripnote-backend/utils"
)

// tripStore is the persistence gateway for trips
type tripStore interface {
	StoreTrip(trip *models.Trip, days []*models.TripDay) error
	GetTrip(tripID string) (*models.Trip, error)
	ListTrips() ([]models.Trip, error)
	DeleteTrip(tripID string) error
}

// dayStore is the persistence gateway for trip days
type dayStore interface {
	ListByTrip(tripID string) ([]models.TripDay, error)
	GetDay(dayID string) (*models.TripDay, error)
	UpdateHighlight(dayID string, highlight *string) error
}

// TripService handles trip business logic
type TripService struct {
	trips tripStore
	days  dayStore
}

// NewTripService creates a new trip service
func NewTripService() *TripService {
	return &TripService{
		trips: repository.NewTripRepository(),
		days:  repository.NewDayRepository(),
	}
}

// CreateTrip creates a trip and generates its days: one row per calendar
// day in the range, plus the unassigned sentinel day for prepaid and
// undated entries.
func (s *TripService) CreateTrip(req *models.CreateTripRequest) (*models.Trip, error) {
	if err := utils.ValidateRequired(req.Title, "title"); err != nil {
		return nil, err
	}
	if err := utils.ValidateDateRange(req.StartDate, req.EndDate); err != nil {
		return nil, err
	}

	trip := models.NewTrip(utils.GenerateID(), req.Title, req.StartDate, req.EndDate)
	days := BuildTripDays(trip)

	if err := s.trips.StoreTrip(trip, days); err != nil {
		return nil, utils.NewStoreUnavailableError(err)
	}

	return trip, nil
}

// BuildTripDays generates the day rows for a trip. Day order 0 is the
// unassigned bucket; calendar days follow in order starting at 1.
func BuildTripDays(trip *models.Trip) []*models.TripDay {
	days := []*models.TripDay{{
		ID:       utils.GenerateID(),
		TripID:   trip.ID,
		DayOrder: 0,
		Kind:     utils.DayKindUnassigned,
	}}

	start, err := time.Parse("2006-01-02", trip.StartDate)
	if err != nil {
		return days
	}
	end, err := time.Parse("2006-01-02", trip.EndDate)
	if err != nil {
		return days
	}

	order := 1
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		date := d.Format("2006-01-02")
		days = append(days, &models.TripDay{
			ID:       utils.GenerateID(),
			TripID:   trip.ID,
			Date:     &date,
			DayOrder: order,
			Kind:     utils.DayKindRegular,
		})
		order++
	}

	return days
}

// GetTrip retrieves a trip by ID
func (s *TripService) GetTrip(tripID string) (*models.Trip, error) {
	trip, err := s.trips.GetTrip(tripID)
	if err != nil {
		return nil, utils.NewNotFoundError("Trip")
	}
	return trip, nil
}

// ListTrips retrieves all trips, newest first
func (s *TripService) ListTrips() ([]models.Trip, error) {
	trips, err := s.trips.ListTrips()
	if err != nil {
		return nil, utils.NewStoreUnavailableError(err)
	}
	if trips == nil {
		trips = []models.Trip{}
	}
	return trips, nil
}

// ListDays retrieves a trip's days in day order
func (s *TripService) ListDays(tripID string) ([]models.TripDay, error) {
	days, err := s.days.ListByTrip(tripID)
	if err != nil {
		return nil, utils.NewStoreUnavailableError(err)
	}
	if days == nil {
		days = []models.TripDay{}
	}
	return days, nil
}

// RemoveTrip deletes a trip after explicit confirmation. Without the
// confirmation no delete is issued.
func (s *TripService) RemoveTrip(tripID string, confirm bool) (bool, error) {
	if !confirm {
		return false, nil
	}
	if err := s.trips.DeleteTrip(tripID); err != nil {
		return false, utils.NewStoreUnavailableError(err)
	}
	return true, nil
}

// UpdateHighlight sets or clears a day's highlight text
func (s *TripService) UpdateHighlight(dayID, highlight string) (*models.TripDay, error) {
	if err := s.days.UpdateHighlight(dayID, utils.TrimToNil(highlight)); err != nil {
		return nil, utils.NewStoreUnavailableError(err)
	}
	day, err := s.days.GetDay(dayID)
	if err != nil {
		return nil, utils.NewNotFoundError("Trip day")
	}
	return day, nil
}
