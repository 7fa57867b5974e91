// services/category_service.go
package services

import (
	"log"
	"strings"
	"time"

	"github.com/hanbyul-dev/tripnote-backend/models"
	"github.com/hanbyul-dev/tripnote-backend/repository"
	"github.com/hanbyul-dev/tripnote-backend/utils"
)

// Default category set bootstrapped for a user with none
var defaultCategoryNames = []string{
	"Lodging", "Sightseeing", "Activity", "Food", "Transport", "Shopping", "Other",
}

const (
	defaultBgColor   = "#000000"
	defaultTextColor = "#ffffff"
)

// categoryStore is the persistence gateway for expense categories
type categoryStore interface {
	ListByUser(userID string) ([]models.ExpenseCategory, error)
	InsertAll(categories []*models.ExpenseCategory) error
	Insert(c *models.ExpenseCategory) error
	Update(c *models.ExpenseCategory) error
	Delete(categoryID, userID string) error
	UpdateDisplayOrder(categoryID string, order int) error
}

// CategoryService handles expense category business logic
type CategoryService struct {
	store categoryStore
}

// NewCategoryService creates a new category service
func NewCategoryService() *CategoryService {
	return &CategoryService{
		store: repository.NewCategoryRepository(),
	}
}

// List retrieves a user's categories, creating the default set the first
// time the user shows up with none.
func (s *CategoryService) List(userID string) ([]models.ExpenseCategory, error) {
	categories, err := s.store.ListByUser(userID)
	if err != nil {
		return []models.ExpenseCategory{}, utils.NewStoreUnavailableError(err)
	}
	if len(categories) > 0 {
		return categories, nil
	}

	defaults := DefaultCategories(userID)
	if err := s.store.InsertAll(defaults); err != nil {
		return []models.ExpenseCategory{}, utils.NewStoreUnavailableError(err)
	}

	categories, err = s.store.ListByUser(userID)
	if err != nil {
		return []models.ExpenseCategory{}, utils.NewStoreUnavailableError(err)
	}
	return categories, nil
}

// DefaultCategories builds the bootstrap category set for a user
func DefaultCategories(userID string) []*models.ExpenseCategory {
	now := time.Now().UnixMilli()
	categories := make([]*models.ExpenseCategory, 0, len(defaultCategoryNames))
	for _, name := range defaultCategoryNames {
		categories = append(categories, &models.ExpenseCategory{
			ID:        utils.GenerateID(),
			UserID:    userID,
			Name:      name,
			BgColor:   defaultBgColor,
			TextColor: defaultTextColor,
			CreatedAt: now,
		})
	}
	return categories
}

// Add creates a category for the user
func (s *CategoryService) Add(userID string, req *models.AddCategoryRequest) (*models.ExpenseCategory, error) {
	category, err := newCategory(userID, "", req.Name, req.BgColor, req.TextColor)
	if err != nil {
		return nil, err
	}

	if err := s.store.Insert(category); err != nil {
		return nil, utils.NewStoreUnavailableError(err)
	}
	return category, nil
}

// Update replaces a category's name and colors
func (s *CategoryService) Update(userID string, req *models.UpdateCategoryRequest) error {
	category, err := newCategory(userID, req.ID, req.Name, req.BgColor, req.TextColor)
	if err != nil {
		return err
	}

	if err := s.store.Update(category); err != nil {
		return utils.NewStoreUnavailableError(err)
	}
	return nil
}

func newCategory(userID, id, name, bgColor, textColor string) (*models.ExpenseCategory, error) {
	if err := utils.ValidateRequired(name, "category name"); err != nil {
		return nil, err
	}
	if bgColor == "" {
		bgColor = defaultBgColor
	}
	if textColor == "" {
		textColor = defaultTextColor
	}
	if err := utils.ValidateHexColor(bgColor, "background color"); err != nil {
		return nil, err
	}
	if err := utils.ValidateHexColor(textColor, "text color"); err != nil {
		return nil, err
	}
	if id == "" {
		id = utils.GenerateID()
	}

	return &models.ExpenseCategory{
		ID:        id,
		UserID:    userID,
		Name:      strings.TrimSpace(name),
		BgColor:   bgColor,
		TextColor: textColor,
		CreatedAt: time.Now().UnixMilli(),
	}, nil
}

// Remove deletes a category after explicit confirmation
func (s *CategoryService) Remove(categoryID, userID string, confirm bool) (bool, error) {
	if !confirm {
		return false, nil
	}
	if err := s.store.Delete(categoryID, userID); err != nil {
		return false, utils.NewStoreUnavailableError(err)
	}
	return true, nil
}

// Reorder moves a category within the user's list and renumbers it densely
// from zero. The returned sequence is the reconciled canonical list.
func (s *CategoryService) Reorder(userID string, req *models.CategoryReorderRequest) ([]models.ExpenseCategory, bool, error) {
	if req.ActiveID == req.OverID {
		return nil, false, nil
	}

	categories, err := s.store.ListByUser(userID)
	if err != nil {
		return []models.ExpenseCategory{}, false, utils.NewStoreUnavailableError(err)
	}

	moved, ok := MoveItem(categories, req.ActiveID, req.OverID)
	if !ok {
		return categories, false, nil
	}

	if err := PersistOrder[models.ExpenseCategory](s.store, moved); err != nil {
		log.Printf("category reorder batch incomplete: %v", err)
	}

	reconciled, err := s.store.ListByUser(userID)
	if err != nil {
		return []models.ExpenseCategory{}, true, utils.NewStoreUnavailableError(err)
	}
	return reconciled, true, nil
}
