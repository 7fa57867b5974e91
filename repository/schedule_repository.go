// repository/schedule_repository.go
package repository

import (
	"database/sql"
	"fmt"

	"github.com/hanbyul-dev/tripnote-backend/models"
)

// ScheduleRepository handles database operations for schedules
type ScheduleRepository struct {
	DB *sql.DB
}

// NewScheduleRepository creates a new ScheduleRepository
func NewScheduleRepository() *ScheduleRepository {
	return &ScheduleRepository{
		DB: GetDB(),
	}
}

const scheduleColumns = `id, trip_id, trip_day_id, title, date, time, place, memo, memo2, category, order_no, created_at`

func scanSchedule(rows *sql.Rows) (models.Schedule, error) {
	var s models.Schedule
	err := rows.Scan(&s.ID, &s.TripID, &s.TripDayID, &s.Title, &s.Date, &s.Time,
		&s.Place, &s.Memo, &s.Memo2, &s.Category, &s.OrderNo, &s.CreatedAt)
	return s, err
}

// ListByTrip retrieves all schedules for a trip ordered by date then order number
func (r *ScheduleRepository) ListByTrip(tripID string) ([]models.Schedule, error) {
	rows, err := r.DB.Query(
		`SELECT `+scheduleColumns+` FROM schedules
         WHERE trip_id = $1 ORDER BY date ASC, order_no ASC`,
		tripID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %v", err)
	}
	defer rows.Close()

	var schedules []models.Schedule
	for rows.Next() {
		s, err := scanSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan schedule: %v", err)
		}
		schedules = append(schedules, s)
	}

	return schedules, nil
}

// ListByDate retrieves one day's schedules for a trip ordered by order number
func (r *ScheduleRepository) ListByDate(tripID, date string) ([]models.Schedule, error) {
	rows, err := r.DB.Query(
		`SELECT `+scheduleColumns+` FROM schedules
         WHERE trip_id = $1 AND date = $2 ORDER BY order_no ASC`,
		tripID, date,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules for date: %v", err)
	}
	defer rows.Close()

	var schedules []models.Schedule
	for rows.Next() {
		s, err := scanSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan schedule: %v", err)
		}
		schedules = append(schedules, s)
	}

	return schedules, nil
}

// Insert saves a schedule
func (r *ScheduleRepository) Insert(s *models.Schedule) error {
	_, err := r.DB.Exec(
		`INSERT INTO schedules
         (id, trip_id, trip_day_id, title, date, time, place, memo, memo2, category, order_no, created_at)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		s.ID, s.TripID, s.TripDayID, s.Title, s.Date, s.Time, s.Place, s.Memo, s.Memo2,
		s.Category, s.OrderNo, s.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert schedule: %v", err)
	}
	return nil
}

// Update replaces a schedule's editable fields. The order number is not
// touched here; reordering goes through UpdateOrderNo.
func (r *ScheduleRepository) Update(s *models.Schedule) error {
	_, err := r.DB.Exec(
		`UPDATE schedules SET title = $1, date = $2, time = $3, place = $4,
         memo = $5, memo2 = $6, category = $7 WHERE id = $8`,
		s.Title, s.Date, s.Time, s.Place, s.Memo, s.Memo2, s.Category, s.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update schedule: %v", err)
	}
	return nil
}

// Delete removes a schedule
func (r *ScheduleRepository) Delete(scheduleID string) error {
	_, err := r.DB.Exec("DELETE FROM schedules WHERE id = $1", scheduleID)
	if err != nil {
		return fmt.Errorf("failed to delete schedule: %v", err)
	}
	return nil
}

// UpdateOrderNo writes one schedule's position
func (r *ScheduleRepository) UpdateOrderNo(scheduleID string, orderNo int) error {
	_, err := r.DB.Exec(
		"UPDATE schedules SET order_no = $1 WHERE id = $2",
		orderNo, scheduleID,
	)
	if err != nil {
		return fmt.Errorf("failed to update schedule order: %v", err)
	}
	return nil
}
