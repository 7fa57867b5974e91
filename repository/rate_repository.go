// repository/rate_repository.go
package repository

import (
	"database/sql"
	"fmt"

	"github.com/hanbyul-dev/tripnote-backend/models"
)

// RateRepository handles database operations for exchange rates
type RateRepository struct {
	DB *sql.DB
}

// NewRateRepository creates a new RateRepository
func NewRateRepository() *RateRepository {
	return &RateRepository{
		DB: GetDB(),
	}
}

// ListByUser retrieves one user's exchange rates
func (r *RateRepository) ListByUser(userID string) ([]models.ExchangeRate, error) {
	rows, err := r.DB.Query(
		`SELECT id, user_id, currency, rate_to_base, created_at
         FROM exchange_rates WHERE user_id = $1 ORDER BY currency ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list exchange rates: %v", err)
	}
	defer rows.Close()

	var rates []models.ExchangeRate
	for rows.Next() {
		var rate models.ExchangeRate
		if err := rows.Scan(&rate.ID, &rate.UserID, &rate.Currency, &rate.RateToBase, &rate.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan exchange rate: %v", err)
		}
		rates = append(rates, rate)
	}

	return rates, nil
}

// InsertAll saves a batch of rates in one transaction
func (r *RateRepository) InsertAll(rates []*models.ExchangeRate) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	for _, rate := range rates {
		_, err = tx.Exec(
			`INSERT INTO exchange_rates (id, user_id, currency, rate_to_base, created_at)
             VALUES ($1, $2, $3, $4, $5)`,
			rate.ID, rate.UserID, rate.Currency, rate.RateToBase, rate.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert exchange rate: %v", err)
		}
	}

	return tx.Commit()
}

// Upsert inserts or replaces one user's rate for a currency
func (r *RateRepository) Upsert(rate *models.ExchangeRate) error {
	_, err := r.DB.Exec(
		`INSERT INTO exchange_rates (id, user_id, currency, rate_to_base, created_at)
         VALUES ($1, $2, $3, $4, $5)
         ON CONFLICT (user_id, currency) DO UPDATE SET rate_to_base = EXCLUDED.rate_to_base`,
		rate.ID, rate.UserID, rate.Currency, rate.RateToBase, rate.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert exchange rate: %v", err)
	}
	return nil
}
