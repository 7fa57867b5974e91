// repository/trip_repository.go
package repository

import (
	"database/sql"
	"fmt"

	"github.com/hanbyul-dev/tripnote-backend/models"
)

// TripRepository handles database operations for trips
type TripRepository struct {
	DB *sql.DB
}

// NewTripRepository creates a new TripRepository
func NewTripRepository() *TripRepository {
	return &TripRepository{
		DB: GetDB(),
	}
}

// StoreTrip saves a trip together with its generated days
func (r *TripRepository) StoreTrip(trip *models.Trip, days []*models.TripDay) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		"INSERT INTO trips (id, title, start_date, end_date, created_at) VALUES ($1, $2, $3, $4, $5)",
		trip.ID, trip.Title, trip.StartDate, trip.EndDate, trip.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert trip: %v", err)
	}

	for _, day := range days {
		_, err = tx.Exec(
			"INSERT INTO trip_days (id, trip_id, date, day_order, highlight, kind) VALUES ($1, $2, $3, $4, $5, $6)",
			day.ID, day.TripID, day.Date, day.DayOrder, day.Highlight, day.Kind,
		)
		if err != nil {
			return fmt.Errorf("failed to insert trip day: %v", err)
		}
	}

	return tx.Commit()
}

// GetTrip retrieves a trip by its ID
func (r *TripRepository) GetTrip(tripID string) (*models.Trip, error) {
	var trip models.Trip
	err := r.DB.QueryRow(
		"SELECT id, title, start_date, end_date, created_at FROM trips WHERE id = $1",
		tripID,
	).Scan(&trip.ID, &trip.Title, &trip.StartDate, &trip.EndDate, &trip.CreatedAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("trip not found")
		}
		return nil, fmt.Errorf("failed to get trip: %v", err)
	}

	return &trip, nil
}

// ListTrips retrieves all trips, newest first
func (r *TripRepository) ListTrips() ([]models.Trip, error) {
	rows, err := r.DB.Query(
		"SELECT id, title, start_date, end_date, created_at FROM trips ORDER BY created_at DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list trips: %v", err)
	}
	defer rows.Close()

	var trips []models.Trip
	for rows.Next() {
		var trip models.Trip
		if err := rows.Scan(&trip.ID, &trip.Title, &trip.StartDate, &trip.EndDate, &trip.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan trip: %v", err)
		}
		trips = append(trips, trip)
	}

	return trips, nil
}

// DeleteTrip removes a trip. Dependent rows are removed by cascade.
func (r *TripRepository) DeleteTrip(tripID string) error {
	_, err := r.DB.Exec("DELETE FROM trips WHERE id = $1", tripID)
	if err != nil {
		return fmt.Errorf("failed to delete trip: %v", err)
	}
	return nil
}
