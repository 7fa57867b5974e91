// services/rate_service.go
package services

import (
	"time"

	"github.com/hanbyul-dev/tripnote-backend/models"
	"github.com/hanbyul-dev/tripnote-backend/repository"
	"github.com/hanbyul-dev/tripnote-backend/utils"
)

// Rates bootstrapped for a user with none, in base currency units
var defaultRates = []struct {
	Currency string
	Rate     float64
}{
	{"KRW", 1},
	{"USD", 1300},
	{"JPY", 9},
	{"EUR", 1400},
	{"CNY", 180},
}

// rateStore is the persistence gateway for exchange rates
type rateStore interface {
	ListByUser(userID string) ([]models.ExchangeRate, error)
	InsertAll(rates []*models.ExchangeRate) error
	Upsert(rate *models.ExchangeRate) error
}

// RateService handles exchange rate business logic
type RateService struct {
	store rateStore
}

// NewRateService creates a new rate service
func NewRateService() *RateService {
	return &RateService{
		store: repository.NewRateRepository(),
	}
}

// List retrieves a user's rates, creating the default set the first time
// the user shows up with none
func (s *RateService) List(userID string) ([]models.ExchangeRate, error) {
	rates, err := s.store.ListByUser(userID)
	if err != nil {
		return []models.ExchangeRate{}, utils.NewStoreUnavailableError(err)
	}
	if len(rates) > 0 {
		return rates, nil
	}

	if err := s.store.InsertAll(DefaultRates(userID)); err != nil {
		return []models.ExchangeRate{}, utils.NewStoreUnavailableError(err)
	}

	rates, err = s.store.ListByUser(userID)
	if err != nil {
		return []models.ExchangeRate{}, utils.NewStoreUnavailableError(err)
	}
	return rates, nil
}

// DefaultRates builds the bootstrap rate set for a user
func DefaultRates(userID string) []*models.ExchangeRate {
	now := time.Now().UnixMilli()
	rates := make([]*models.ExchangeRate, 0, len(defaultRates))
	for _, d := range defaultRates {
		rates = append(rates, &models.ExchangeRate{
			ID:         utils.GenerateID(),
			UserID:     userID,
			Currency:   d.Currency,
			RateToBase: d.Rate,
			CreatedAt:  now,
		})
	}
	return rates
}

// Set inserts or replaces the user's rate for one currency
func (s *RateService) Set(userID string, req *models.SetRateRequest) (*models.ExchangeRate, error) {
	currency := utils.NormalizeCurrency(req.Currency)
	if currency == "" {
		return nil, utils.NewValidationError("currency is required")
	}
	if err := utils.ValidatePositive(req.RateToBase, "rate"); err != nil {
		return nil, err
	}

	rate := &models.ExchangeRate{
		ID:         utils.GenerateID(),
		UserID:     userID,
		Currency:   currency,
		RateToBase: req.RateToBase,
		CreatedAt:  time.Now().UnixMilli(),
	}

	if err := s.store.Upsert(rate); err != nil {
		return nil, utils.NewStoreUnavailableError(err)
	}
	return rate, nil
}
