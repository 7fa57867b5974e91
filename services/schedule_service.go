// services/schedule_service.go
package services

import (
	"log"
	"sort"
	"strings"
	"time"

	"github.com/hanbyul-dev/tripnote-backend/models"
	"github.com/hanbyul-dev/tripnote-backend/repository"
	"github.com/hanbyul-dev/tripnote-backend/utils"
)

// scheduleStore is the persistence gateway for schedules
type scheduleStore interface {
	ListByTrip(tripID string) ([]models.Schedule, error)
	ListByDate(tripID, date string) ([]models.Schedule, error)
	Insert(s *models.Schedule) error
	Update(s *models.Schedule) error
	Delete(scheduleID string) error
	UpdateOrderNo(scheduleID string, orderNo int) error
}

// schedulePositions adapts the schedule store to the shared reorder core
type schedulePositions struct {
	store scheduleStore
}

func (w schedulePositions) UpdateDisplayOrder(id string, order int) error {
	return w.store.UpdateOrderNo(id, order)
}

// ScheduleService handles itinerary business logic
type ScheduleService struct {
	store scheduleStore
}

// NewScheduleService creates a new schedule service
func NewScheduleService() *ScheduleService {
	return &ScheduleService{
		store: repository.NewScheduleRepository(),
	}
}

// List retrieves a trip's schedules ordered by date, order number and
// start time
func (s *ScheduleService) List(tripID string) ([]models.Schedule, error) {
	schedules, err := s.store.ListByTrip(tripID)
	if err != nil {
		return []models.Schedule{}, utils.NewStoreUnavailableError(err)
	}
	if schedules == nil {
		schedules = []models.Schedule{}
	}
	SortSchedulesByTime(schedules)
	return schedules, nil
}

// scheduleStartTime extracts the comparable start of a schedule's time.
// A range like "10:00 ~ 12:30" compares on its start.
func scheduleStartTime(t *string) string {
	if t == nil {
		return ""
	}
	if idx := strings.Index(*t, "~"); idx >= 0 {
		return strings.TrimSpace((*t)[:idx])
	}
	return strings.TrimSpace(*t)
}

// SortSchedulesByTime sorts schedules by date, then by start time within a
// day. Timed entries come before untimed ones; untimed entries keep their
// persisted order.
func SortSchedulesByTime(schedules []models.Schedule) {
	sort.SliceStable(schedules, func(i, j int) bool {
		if schedules[i].Date != schedules[j].Date {
			return schedules[i].Date < schedules[j].Date
		}
		ti := scheduleStartTime(schedules[i].Time)
		tj := scheduleStartTime(schedules[j].Time)
		if ti != "" && tj != "" {
			return ti < tj
		}
		if ti != "" {
			return true
		}
		return false
	})
}

// Add creates a schedule. The order number defaults to the creation
// timestamp so new entries append after existing ones.
func (s *ScheduleService) Add(req *models.AddScheduleRequest) (*models.Schedule, error) {
	if err := utils.ValidateRequired(req.Title, "title"); err != nil {
		return nil, err
	}
	if err := utils.ValidateDate(req.Date, "date"); err != nil {
		return nil, err
	}

	now := time.Now().UnixMilli()
	orderNo := now
	if req.OrderNo != nil {
		orderNo = *req.OrderNo
	}

	schedule := &models.Schedule{
		ID:        utils.GenerateID(),
		TripID:    req.TripID,
		Title:     strings.TrimSpace(req.Title),
		Date:      req.Date,
		Time:      utils.TrimToNil(req.Time),
		Place:     utils.TrimToNil(req.Place),
		Memo:      utils.TrimToNil(req.Memo),
		Memo2:     utils.TrimToNil(req.Memo2),
		Category:  utils.TrimToNil(req.Category),
		OrderNo:   orderNo,
		CreatedAt: now,
	}

	if err := s.store.Insert(schedule); err != nil {
		return nil, utils.NewStoreUnavailableError(err)
	}

	return schedule, nil
}

// Update replaces a schedule's editable fields. The order number is never
// changed by an edit.
func (s *ScheduleService) Update(req *models.UpdateScheduleRequest) error {
	if err := utils.ValidateRequired(req.Title, "title"); err != nil {
		return err
	}
	if err := utils.ValidateDate(req.Date, "date"); err != nil {
		return err
	}

	schedule := &models.Schedule{
		ID:       req.ID,
		Title:    strings.TrimSpace(req.Title),
		Date:     req.Date,
		Time:     utils.TrimToNil(req.Time),
		Place:    utils.TrimToNil(req.Place),
		Memo:     utils.TrimToNil(req.Memo),
		Memo2:    utils.TrimToNil(req.Memo2),
		Category: utils.TrimToNil(req.Category),
	}

	if err := s.store.Update(schedule); err != nil {
		return utils.NewStoreUnavailableError(err)
	}
	return nil
}

// Remove deletes a schedule after explicit confirmation
func (s *ScheduleService) Remove(scheduleID string, confirm bool) (bool, error) {
	if !confirm {
		return false, nil
	}
	if err := s.store.Delete(scheduleID); err != nil {
		return false, utils.NewStoreUnavailableError(err)
	}
	return true, nil
}

// Reorder moves a schedule within one day's group and renumbers that group
// densely from zero. Schedules on other dates are never touched. The
// returned sequence is the reconciled canonical group, which supersedes the
// attempted order when part of the position batch failed.
func (s *ScheduleService) Reorder(req *models.ScheduleReorderRequest) ([]models.Schedule, bool, error) {
	if req.ActiveID == req.OverID {
		return nil, false, nil
	}

	group, err := s.store.ListByDate(req.TripID, req.Date)
	if err != nil {
		return []models.Schedule{}, false, utils.NewStoreUnavailableError(err)
	}

	moved, ok := MoveItem(group, req.ActiveID, req.OverID)
	if !ok {
		return group, false, nil
	}

	if err := PersistOrder[models.Schedule](schedulePositions{s.store}, moved); err != nil {
		log.Printf("schedule reorder batch incomplete: %v", err)
	}

	reconciled, err := s.store.ListByDate(req.TripID, req.Date)
	if err != nil {
		return []models.Schedule{}, true, utils.NewStoreUnavailableError(err)
	}
	return reconciled, true, nil
}
