// repository/day_repository.go
package repository

import (
	"database/sql"
	"fmt"

	"github.com/hanbyul-dev/tripnote-backend/models"
)

// DayRepository handles database operations for trip days
type DayRepository struct {
	DB *sql.DB
}

// NewDayRepository creates a new DayRepository
func NewDayRepository() *DayRepository {
	return &DayRepository{
		DB: GetDB(),
	}
}

// ListByTrip retrieves the days of a trip ordered by day order
func (r *DayRepository) ListByTrip(tripID string) ([]models.TripDay, error) {
	rows, err := r.DB.Query(
		`SELECT id, trip_id, date, day_order, highlight, kind
         FROM trip_days WHERE trip_id = $1 ORDER BY day_order ASC`,
		tripID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list trip days: %v", err)
	}
	defer rows.Close()

	var days []models.TripDay
	for rows.Next() {
		var day models.TripDay
		if err := rows.Scan(&day.ID, &day.TripID, &day.Date, &day.DayOrder, &day.Highlight, &day.Kind); err != nil {
			return nil, fmt.Errorf("failed to scan trip day: %v", err)
		}
		days = append(days, day)
	}

	return days, nil
}

// GetDay retrieves one trip day by ID
func (r *DayRepository) GetDay(dayID string) (*models.TripDay, error) {
	var day models.TripDay
	err := r.DB.QueryRow(
		"SELECT id, trip_id, date, day_order, highlight, kind FROM trip_days WHERE id = $1",
		dayID,
	).Scan(&day.ID, &day.TripID, &day.Date, &day.DayOrder, &day.Highlight, &day.Kind)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("trip day not found")
		}
		return nil, fmt.Errorf("failed to get trip day: %v", err)
	}

	return &day, nil
}

// UpdateHighlight sets or clears a day's highlight text
func (r *DayRepository) UpdateHighlight(dayID string, highlight *string) error {
	_, err := r.DB.Exec(
		"UPDATE trip_days SET highlight = $1 WHERE id = $2",
		highlight, dayID,
	)
	if err != nil {
		return fmt.Errorf("failed to update highlight: %v", err)
	}
	return nil
}
