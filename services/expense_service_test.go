package services

import (
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hanbyul-dev/tripnote-backend/models"
	"github.com/hanbyul-dev/tripnote-backend/utils"
)

type fakeExpenseStore struct {
	mu       sync.Mutex
	expenses []models.Expense
}

func newFakeExpenseStore(expenses ...models.Expense) *fakeExpenseStore {
	return &fakeExpenseStore{expenses: expenses}
}

func (f *fakeExpenseStore) sorted(match func(models.Expense) bool) []models.Expense {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Expense
	for _, e := range f.expenses {
		if match(e) {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		pi, iok := out[i].Position()
		pj, jok := out[j].Position()
		if iok != jok {
			return jok
		}
		if iok && pi != pj {
			return pi < pj
		}
		return out[i].CreatedAt < out[j].CreatedAt
	})
	return out
}

func (f *fakeExpenseStore) ListByTrip(tripID string) ([]models.Expense, error) {
	return f.sorted(func(e models.Expense) bool { return e.TripID == tripID }), nil
}

func (f *fakeExpenseStore) ListByDay(tripID, dayID string) ([]models.Expense, error) {
	return f.sorted(func(e models.Expense) bool {
		return e.TripID == tripID && e.TripDayID != nil && *e.TripDayID == dayID
	}), nil
}

func (f *fakeExpenseStore) ListByCategory(tripID, categoryID string) ([]models.Expense, error) {
	return f.sorted(func(e models.Expense) bool {
		return e.TripID == tripID && e.CategoryID != nil && *e.CategoryID == categoryID
	}), nil
}

func (f *fakeExpenseStore) Insert(e *models.Expense) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.expenses = append(f.expenses, *e)
	return nil
}

func (f *fakeExpenseStore) Update(e *models.Expense) error { return nil }
func (f *fakeExpenseStore) Delete(expenseID string) error  { return nil }

func (f *fakeExpenseStore) UpdateDisplayOrder(expenseID string, order int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.expenses {
		if f.expenses[i].ID == expenseID {
			o := order
			f.expenses[i].DisplayOrder = &o
		}
	}
	return nil
}

func expense(id, tripID string, dayID, categoryID *string, order *int, created int64) models.Expense {
	return models.Expense{
		ID:           id,
		TripID:       tripID,
		TripDayID:    dayID,
		CategoryID:   categoryID,
		Title:        "expense " + id,
		DisplayOrder: order,
		CreatedAt:    created,
	}
}

func TestExpenseList_RejectsBothFilters(t *testing.T) {
	service := &ExpenseService{store: newFakeExpenseStore()}

	_, err := service.List(&models.ListExpensesRequest{
		TripID: "t1", DayID: strptr("d1"), CategoryID: strptr("c1"),
	})

	assert.Error(t, err)
	appErr, ok := err.(*utils.AppError)
	assert.True(t, ok)
	assert.Equal(t, 400, appErr.Code)
}

func TestExpenseList_EmptyTripReturnsEmptySlice(t *testing.T) {
	service := &ExpenseService{store: newFakeExpenseStore()}

	expenses, err := service.List(&models.ListExpensesRequest{TripID: "t1"})

	assert.NoError(t, err)
	assert.NotNil(t, expenses)
	assert.Empty(t, expenses)
}

func TestExpenseAdd_FillsDefaults(t *testing.T) {
	store := newFakeExpenseStore()
	service := &ExpenseService{store: store}

	created, err := service.Add(&models.AddExpenseRequest{
		TripID: "t1", Title: "  Museum tickets ", UnitAmount: 25, Currency: "usd",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Museum tickets", created.Title)
	assert.Equal(t, "USD", created.Currency)
	assert.Equal(t, 1, created.Quantity)
	assert.Equal(t, float64(1), created.ExchangeRate)
	assert.Equal(t, utils.PaymentStatusPlanned, created.PaymentStatus)
	assert.Equal(t, float64(25), created.TotalAmountKrw)
	assert.Nil(t, created.DisplayOrder)
}

func TestExpenseAdd_ComputesTotalFromRate(t *testing.T) {
	service := &ExpenseService{store: newFakeExpenseStore()}

	created, err := service.Add(&models.AddExpenseRequest{
		TripID: "t1", Title: "Ramen", UnitAmount: 1200, Quantity: 2,
		Currency: "JPY", ExchangeRate: 9,
	})

	assert.NoError(t, err)
	assert.Equal(t, float64(21600), created.TotalAmountKrw)
}

func TestExpenseAdd_RejectsInvalidStatus(t *testing.T) {
	service := &ExpenseService{store: newFakeExpenseStore()}

	_, err := service.Add(&models.AddExpenseRequest{
		TripID: "t1", Title: "Ramen", PaymentStatus: "maybe",
	})

	assert.Error(t, err)
}

func TestExpenseReorder_RequiresExactlyOneFilter(t *testing.T) {
	service := &ExpenseService{store: newFakeExpenseStore()}

	_, _, err := service.Reorder(&models.ExpenseReorderRequest{
		TripID: "t1", ActiveID: "e1", OverID: "e2",
	})
	assert.Error(t, err)

	_, _, err = service.Reorder(&models.ExpenseReorderRequest{
		TripID: "t1", DayID: strptr("d1"), CategoryID: strptr("c1"),
		ActiveID: "e1", OverID: "e2",
	})
	assert.Error(t, err)
}

func TestExpenseReorder_RenumbersOnlyTheDayGroup(t *testing.T) {
	d1, d2 := strptr("d1"), strptr("d2")
	other := 5
	store := newFakeExpenseStore(
		expense("e1", "t1", d1, nil, pos(0), 100),
		expense("e2", "t1", d1, nil, pos(1), 200),
		expense("e3", "t1", d1, nil, pos(2), 300),
		expense("x1", "t1", d2, nil, &other, 400),
	)
	service := &ExpenseService{store: store}

	items, changed, err := service.Reorder(&models.ExpenseReorderRequest{
		TripID: "t1", DayID: d1, ActiveID: "e3", OverID: "e1",
	})

	assert.NoError(t, err)
	assert.True(t, changed)

	got := make([]string, len(items))
	for i, e := range items {
		got[i] = e.ID
		assert.Equal(t, i, *e.DisplayOrder)
	}
	assert.Equal(t, []string{"e3", "e1", "e2"}, got)

	// The other day keeps its own numbering
	outside, _ := store.ListByDay("t1", "d2")
	assert.Equal(t, 5, *outside[0].DisplayOrder)
}

func TestExpenseReorder_CategoryGroupNumbersIndependently(t *testing.T) {
	c1 := strptr("c1")
	d1 := strptr("d1")
	store := newFakeExpenseStore(
		expense("e1", "t1", d1, c1, pos(0), 100),
		expense("e2", "t1", d1, c1, pos(1), 200),
	)
	service := &ExpenseService{store: store}

	items, changed, err := service.Reorder(&models.ExpenseReorderRequest{
		TripID: "t1", CategoryID: c1, ActiveID: "e2", OverID: "e1",
	})

	assert.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "e2", items[0].ID)
	assert.Equal(t, 0, *items[0].DisplayOrder)
}

func TestExpenseReorder_SameIDTouchesNothing(t *testing.T) {
	store := newFakeExpenseStore(
		expense("e1", "t1", strptr("d1"), nil, pos(0), 100),
	)
	service := &ExpenseService{store: store}

	items, changed, err := service.Reorder(&models.ExpenseReorderRequest{
		TripID: "t1", DayID: strptr("d1"), ActiveID: "e1", OverID: "e1",
	})

	assert.NoError(t, err)
	assert.False(t, changed)
	assert.Nil(t, items)
}

func TestCalculateExpenseStats_SplitsByStatus(t *testing.T) {
	d1 := strptr("d1")
	c1 := strptr("c1")
	expenses := []models.Expense{
		{ID: "e1", TripID: "t1", TripDayID: d1, CategoryID: c1, TotalAmountKrw: 10000, PaymentStatus: utils.PaymentStatusPaid},
		{ID: "e2", TripID: "t1", TripDayID: d1, TotalAmountKrw: 30000, IsPrepaid: true, PaymentStatus: utils.PaymentStatusPlanned},
		{ID: "e3", TripID: "t1", CategoryID: c1, TotalAmountKrw: 5000, PaymentStatus: utils.PaymentStatusPlanned},
	}

	stats := CalculateExpenseStats(expenses)

	assert.Equal(t, float64(45000), stats.Total)
	assert.Equal(t, float64(30000), stats.Prepaid)
	assert.Equal(t, float64(10000), stats.Paid)
	assert.Equal(t, float64(5000), stats.Planned)
	assert.Equal(t, float64(40000), stats.DayTotals["d1"])
	assert.Equal(t, float64(15000), stats.CategoryTotals["c1"])
	assert.Equal(t, float64(5000), stats.DayTotals[""])
}
