// repository/expense_repository.go
package repository

import (
	"database/sql"
	"fmt"

	"github.com/hanbyul-dev/tripnote-backend/models"
)

// ExpenseRepository handles database operations for expenses
type ExpenseRepository struct {
	DB *sql.DB
}

// NewExpenseRepository creates a new ExpenseRepository
func NewExpenseRepository() *ExpenseRepository {
	return &ExpenseRepository{
		DB: GetDB(),
	}
}

const expenseColumns = `id, trip_id, trip_day_id, category_id, title, payment_method, currency,
    unit_amount, quantity, exchange_rate, total_amount_krw, payment_status, is_prepaid,
    is_cash, is_card, reservation_status, memo, memo2, expense_date, display_order, created_at`

// Canonical order: expense date first, then the persisted display order.
// Rows that have never been reordered (NULL display_order) append at the end.
const expenseOrder = `ORDER BY expense_date ASC NULLS LAST, display_order ASC NULLS LAST, created_at ASC`

func scanExpense(rows *sql.Rows) (models.Expense, error) {
	var e models.Expense
	err := rows.Scan(&e.ID, &e.TripID, &e.TripDayID, &e.CategoryID, &e.Title, &e.PaymentMethod,
		&e.Currency, &e.UnitAmount, &e.Quantity, &e.ExchangeRate, &e.TotalAmountKrw,
		&e.PaymentStatus, &e.IsPrepaid, &e.IsCash, &e.IsCard, &e.ReservationStatus,
		&e.Memo, &e.Memo2, &e.ExpenseDate, &e.DisplayOrder, &e.CreatedAt)
	return e, err
}

func (r *ExpenseRepository) queryExpenses(query string, args ...interface{}) ([]models.Expense, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get expenses: %v", err)
	}
	defer rows.Close()

	var expenses []models.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense: %v", err)
		}
		expenses = append(expenses, e)
	}

	return expenses, nil
}

// ListByTrip retrieves all expenses for a trip in canonical order
func (r *ExpenseRepository) ListByTrip(tripID string) ([]models.Expense, error) {
	return r.queryExpenses(
		`SELECT `+expenseColumns+` FROM expenses WHERE trip_id = $1 `+expenseOrder,
		tripID,
	)
}

// ListByDay retrieves one day group's expenses in canonical order
func (r *ExpenseRepository) ListByDay(tripID, dayID string) ([]models.Expense, error) {
	return r.queryExpenses(
		`SELECT `+expenseColumns+` FROM expenses
         WHERE trip_id = $1 AND trip_day_id = $2 `+expenseOrder,
		tripID, dayID,
	)
}

// ListByCategory retrieves one category group's expenses in canonical order
func (r *ExpenseRepository) ListByCategory(tripID, categoryID string) ([]models.Expense, error) {
	return r.queryExpenses(
		`SELECT `+expenseColumns+` FROM expenses
         WHERE trip_id = $1 AND category_id = $2 `+expenseOrder,
		tripID, categoryID,
	)
}

// Insert saves an expense
func (r *ExpenseRepository) Insert(e *models.Expense) error {
	_, err := r.DB.Exec(
		`INSERT INTO expenses
         (id, trip_id, trip_day_id, category_id, title, payment_method, currency, unit_amount,
          quantity, exchange_rate, total_amount_krw, payment_status, is_prepaid, is_cash,
          is_card, reservation_status, memo, memo2, expense_date, display_order, created_at)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`,
		e.ID, e.TripID, e.TripDayID, e.CategoryID, e.Title, e.PaymentMethod, e.Currency,
		e.UnitAmount, e.Quantity, e.ExchangeRate, e.TotalAmountKrw, e.PaymentStatus,
		e.IsPrepaid, e.IsCash, e.IsCard, e.ReservationStatus, e.Memo, e.Memo2,
		e.ExpenseDate, e.DisplayOrder, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %v", err)
	}
	return nil
}

// Update replaces an expense's editable fields. Changing the day or category
// never touches the display order.
func (r *ExpenseRepository) Update(e *models.Expense) error {
	_, err := r.DB.Exec(
		`UPDATE expenses SET trip_day_id = $1, category_id = $2, title = $3, payment_method = $4,
         currency = $5, unit_amount = $6, quantity = $7, exchange_rate = $8, total_amount_krw = $9,
         payment_status = $10, is_prepaid = $11, is_cash = $12, is_card = $13,
         reservation_status = $14, memo = $15, memo2 = $16, expense_date = $17
         WHERE id = $18`,
		e.TripDayID, e.CategoryID, e.Title, e.PaymentMethod, e.Currency, e.UnitAmount,
		e.Quantity, e.ExchangeRate, e.TotalAmountKrw, e.PaymentStatus, e.IsPrepaid,
		e.IsCash, e.IsCard, e.ReservationStatus, e.Memo, e.Memo2, e.ExpenseDate, e.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update expense: %v", err)
	}
	return nil
}

// Delete removes an expense
func (r *ExpenseRepository) Delete(expenseID string) error {
	_, err := r.DB.Exec("DELETE FROM expenses WHERE id = $1", expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %v", err)
	}
	return nil
}

// UpdateDisplayOrder writes one expense's position
func (r *ExpenseRepository) UpdateDisplayOrder(expenseID string, order int) error {
	_, err := r.DB.Exec(
		"UPDATE expenses SET display_order = $1 WHERE id = $2",
		order, expenseID,
	)
	if err != nil {
		return fmt.Errorf("failed to update expense order: %v", err)
	}
	return nil
}
