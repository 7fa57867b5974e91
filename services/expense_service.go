// services/expense_service.go
package services

import (
	"log"
	"strings"
	"time"

	"github.com/hanbyul-dev/tripnote-backend/models"
	"github.com/hanbyul-dev/tripnote-backend/repository"
	"github.com/hanbyul-dev/tripnote-backend/utils"
)

// expenseStore is the persistence gateway for expenses
type expenseStore interface {
	ListByTrip(tripID string) ([]models.Expense, error)
	ListByDay(tripID, dayID string) ([]models.Expense, error)
	ListByCategory(tripID, categoryID string) ([]models.Expense, error)
	Insert(e *models.Expense) error
	Update(e *models.Expense) error
	Delete(expenseID string) error
	UpdateDisplayOrder(expenseID string, order int) error
}

// ExpenseService handles expense business logic
type ExpenseService struct {
	store expenseStore
}

// NewExpenseService creates a new expense service
func NewExpenseService() *ExpenseService {
	return &ExpenseService{
		store: repository.NewExpenseRepository(),
	}
}

// List retrieves expenses in canonical order. The day filter and category
// filter are the two mutually exclusive view modes; with neither set the
// whole trip is returned.
func (s *ExpenseService) List(req *models.ListExpensesRequest) ([]models.Expense, error) {
	if req.DayID != nil && req.CategoryID != nil {
		return nil, utils.NewValidationError("day and category filters are mutually exclusive")
	}

	var expenses []models.Expense
	var err error
	switch {
	case req.DayID != nil:
		expenses, err = s.store.ListByDay(req.TripID, *req.DayID)
	case req.CategoryID != nil:
		expenses, err = s.store.ListByCategory(req.TripID, *req.CategoryID)
	default:
		expenses, err = s.store.ListByTrip(req.TripID)
	}
	if err != nil {
		return []models.Expense{}, utils.NewStoreUnavailableError(err)
	}
	if expenses == nil {
		expenses = []models.Expense{}
	}
	return expenses, nil
}

// normalizeExpense fills defaults on a freshly bound expense: quantity 1,
// rate 1, base currency, planned status, and a computed base-currency total
// when the client did not supply one.
func normalizeExpense(e *models.Expense) {
	if e.Quantity <= 0 {
		e.Quantity = 1
	}
	if e.ExchangeRate <= 0 {
		e.ExchangeRate = 1
	}
	if e.Currency = utils.NormalizeCurrency(e.Currency); e.Currency == "" {
		e.Currency = utils.BaseCurrency
	}
	if e.PaymentStatus == "" {
		e.PaymentStatus = utils.PaymentStatusPlanned
	}
	if e.TotalAmountKrw == 0 {
		e.TotalAmountKrw = utils.Round(e.UnitAmount * float64(e.Quantity) * e.ExchangeRate)
	}
	e.Title = strings.TrimSpace(e.Title)
}

// Add creates an expense. The display order is normally left unset so the
// row appends; grouped creation flows may pass an explicit order derived
// from the current group length.
func (s *ExpenseService) Add(req *models.AddExpenseRequest) (*models.Expense, error) {
	if err := utils.ValidateRequired(req.Title, "title"); err != nil {
		return nil, err
	}
	if err := utils.ValidateNonNegative(req.UnitAmount, "unit amount"); err != nil {
		return nil, err
	}
	if req.PaymentStatus != "" {
		if err := utils.ValidatePaymentStatus(req.PaymentStatus); err != nil {
			return nil, err
		}
	}

	expense := &models.Expense{
		ID:                utils.GenerateID(),
		TripID:            req.TripID,
		TripDayID:         utils.TrimToNil(req.TripDayID),
		CategoryID:        utils.TrimToNil(req.CategoryID),
		Title:             req.Title,
		PaymentMethod:     req.PaymentMethod,
		Currency:          req.Currency,
		UnitAmount:        req.UnitAmount,
		Quantity:          req.Quantity,
		ExchangeRate:      req.ExchangeRate,
		TotalAmountKrw:    req.TotalAmountKrw,
		PaymentStatus:     req.PaymentStatus,
		IsPrepaid:         req.IsPrepaid,
		IsCash:            req.IsCash,
		IsCard:            req.IsCard,
		ReservationStatus: utils.TrimToNil(req.ReservationStatus),
		Memo:              utils.TrimToNil(req.Memo),
		Memo2:             utils.TrimToNil(req.Memo2),
		ExpenseDate:       utils.TrimToNil(req.ExpenseDate),
		DisplayOrder:      req.DisplayOrder,
		CreatedAt:         time.Now().UnixMilli(),
	}
	normalizeExpense(expense)

	if err := s.store.Insert(expense); err != nil {
		return nil, utils.NewStoreUnavailableError(err)
	}

	return expense, nil
}

// Update replaces an expense's editable fields. Moving an expense to a
// different day or category never changes its display order.
func (s *ExpenseService) Update(req *models.UpdateExpenseRequest) error {
	if err := utils.ValidateRequired(req.Title, "title"); err != nil {
		return err
	}
	if err := utils.ValidateNonNegative(req.UnitAmount, "unit amount"); err != nil {
		return err
	}
	if req.PaymentStatus != "" {
		if err := utils.ValidatePaymentStatus(req.PaymentStatus); err != nil {
			return err
		}
	}

	expense := &models.Expense{
		ID:                req.ID,
		TripDayID:         utils.TrimToNil(req.TripDayID),
		CategoryID:        utils.TrimToNil(req.CategoryID),
		Title:             req.Title,
		PaymentMethod:     req.PaymentMethod,
		Currency:          req.Currency,
		UnitAmount:        req.UnitAmount,
		Quantity:          req.Quantity,
		ExchangeRate:      req.ExchangeRate,
		TotalAmountKrw:    req.TotalAmountKrw,
		PaymentStatus:     req.PaymentStatus,
		IsPrepaid:         req.IsPrepaid,
		IsCash:            req.IsCash,
		IsCard:            req.IsCard,
		ReservationStatus: utils.TrimToNil(req.ReservationStatus),
		Memo:              utils.TrimToNil(req.Memo),
		Memo2:             utils.TrimToNil(req.Memo2),
		ExpenseDate:       utils.TrimToNil(req.ExpenseDate),
	}
	normalizeExpense(expense)

	if err := s.store.Update(expense); err != nil {
		return utils.NewStoreUnavailableError(err)
	}
	return nil
}

// Remove deletes an expense after explicit confirmation
func (s *ExpenseService) Remove(expenseID string, confirm bool) (bool, error) {
	if !confirm {
		return false, nil
	}
	if err := s.store.Delete(expenseID); err != nil {
		return false, utils.NewStoreUnavailableError(err)
	}
	return true, nil
}

// Reorder moves an expense within one visible group — one day or one
// category, whichever view mode is active — and renumbers exactly that
// group densely from zero. Expenses outside the group keep their orders,
// so two different groupings can each carry their own zero-based numbering;
// that matches how reordering behaves against a filtered view and is kept
// deliberately. The returned sequence is the reconciled canonical group.
func (s *ExpenseService) Reorder(req *models.ExpenseReorderRequest) ([]models.Expense, bool, error) {
	if (req.DayID == nil) == (req.CategoryID == nil) {
		return nil, false, utils.NewValidationError("exactly one of dayId and categoryId is required")
	}
	if req.ActiveID == req.OverID {
		return nil, false, nil
	}

	load := func() ([]models.Expense, error) {
		if req.DayID != nil {
			return s.store.ListByDay(req.TripID, *req.DayID)
		}
		return s.store.ListByCategory(req.TripID, *req.CategoryID)
	}

	group, err := load()
	if err != nil {
		return []models.Expense{}, false, utils.NewStoreUnavailableError(err)
	}

	moved, ok := MoveItem(group, req.ActiveID, req.OverID)
	if !ok {
		return group, false, nil
	}

	if err := PersistOrder[models.Expense](s.store, moved); err != nil {
		log.Printf("expense reorder batch incomplete: %v", err)
	}

	reconciled, err := load()
	if err != nil {
		return []models.Expense{}, true, utils.NewStoreUnavailableError(err)
	}
	return reconciled, true, nil
}

// Stats summarizes a trip's expenses in the base currency
func (s *ExpenseService) Stats(tripID string) (*models.ExpenseStats, error) {
	expenses, err := s.store.ListByTrip(tripID)
	if err != nil {
		return nil, utils.NewStoreUnavailableError(err)
	}
	return CalculateExpenseStats(expenses), nil
}

// CalculateExpenseStats computes totals from a canonical expense list.
// The planned amount is whatever is neither prepaid nor already paid.
func CalculateExpenseStats(expenses []models.Expense) *models.ExpenseStats {
	stats := &models.ExpenseStats{
		DayTotals:      make(map[string]float64),
		CategoryTotals: make(map[string]float64),
	}

	for _, e := range expenses {
		stats.Total += e.TotalAmountKrw
		if e.IsPrepaid || e.PaymentStatus == utils.PaymentStatusPrepaid {
			stats.Prepaid += e.TotalAmountKrw
		} else if e.PaymentStatus == utils.PaymentStatusPaid {
			stats.Paid += e.TotalAmountKrw
		}
	}
	stats.Planned = utils.Round(stats.Total - stats.Prepaid - stats.Paid)

	byDay := GroupBy(expenses, func(e models.Expense) string {
		if e.TripDayID == nil {
			return ""
		}
		return *e.TripDayID
	})
	for dayID, group := range byDay {
		var sum float64
		for _, e := range group {
			sum += e.TotalAmountKrw
		}
		stats.DayTotals[dayID] = utils.Round(sum)
	}

	byCategory := GroupBy(expenses, func(e models.Expense) string {
		if e.CategoryID == nil {
			return ""
		}
		return *e.CategoryID
	})
	for categoryID, group := range byCategory {
		var sum float64
		for _, e := range group {
			sum += e.TotalAmountKrw
		}
		stats.CategoryTotals[categoryID] = utils.Round(sum)
	}

	stats.Total = utils.Round(stats.Total)
	stats.Prepaid = utils.Round(stats.Prepaid)
	stats.Paid = utils.Round(stats.Paid)

	return stats
}
