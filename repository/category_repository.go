// repository/category_repository.go
package repository

import (
	"database/sql"
	"fmt"

	"github.com/hanbyul-dev/tripnote-backend/models"
)

// CategoryRepository handles database operations for expense categories
type CategoryRepository struct {
	DB *sql.DB
}

// NewCategoryRepository creates a new CategoryRepository
func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{
		DB: GetDB(),
	}
}

// ListByUser retrieves one user's categories, reordered ones first, the
// rest alphabetically
func (r *CategoryRepository) ListByUser(userID string) ([]models.ExpenseCategory, error) {
	rows, err := r.DB.Query(
		`SELECT id, user_id, name, bg_color, text_color, display_order, created_at
         FROM expense_categories WHERE user_id = $1
         ORDER BY display_order ASC NULLS FIRST, name ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %v", err)
	}
	defer rows.Close()

	var categories []models.ExpenseCategory
	for rows.Next() {
		var c models.ExpenseCategory
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.BgColor, &c.TextColor, &c.DisplayOrder, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan category: %v", err)
		}
		categories = append(categories, c)
	}

	return categories, nil
}

// InsertAll saves a batch of categories in one transaction
func (r *CategoryRepository) InsertAll(categories []*models.ExpenseCategory) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	for _, c := range categories {
		_, err = tx.Exec(
			`INSERT INTO expense_categories (id, user_id, name, bg_color, text_color, display_order, created_at)
             VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			c.ID, c.UserID, c.Name, c.BgColor, c.TextColor, c.DisplayOrder, c.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert category: %v", err)
		}
	}

	return tx.Commit()
}

// Insert saves one category
func (r *CategoryRepository) Insert(c *models.ExpenseCategory) error {
	return r.InsertAll([]*models.ExpenseCategory{c})
}

// Update replaces a category's name and colors
func (r *CategoryRepository) Update(c *models.ExpenseCategory) error {
	_, err := r.DB.Exec(
		`UPDATE expense_categories SET name = $1, bg_color = $2, text_color = $3
         WHERE id = $4 AND user_id = $5`,
		c.Name, c.BgColor, c.TextColor, c.ID, c.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update category: %v", err)
	}
	return nil
}

// Delete removes a category owned by the given user
func (r *CategoryRepository) Delete(categoryID, userID string) error {
	_, err := r.DB.Exec(
		"DELETE FROM expense_categories WHERE id = $1 AND user_id = $2",
		categoryID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete category: %v", err)
	}
	return nil
}

// UpdateDisplayOrder writes one category's position
func (r *CategoryRepository) UpdateDisplayOrder(categoryID string, order int) error {
	_, err := r.DB.Exec(
		"UPDATE expense_categories SET display_order = $1 WHERE id = $2",
		order, categoryID,
	)
	if err != nil {
		return fmt.Errorf("failed to update category order: %v", err)
	}
	return nil
}
