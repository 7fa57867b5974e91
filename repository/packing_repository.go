// repository/packing_repository.go
package repository

import (
	"database/sql"
	"fmt"

	"github.com/hanbyul-dev/tripnote-backend/models"
)

// PackingRepository handles database operations for packing items
type PackingRepository struct {
	DB *sql.DB
}

// NewPackingRepository creates a new PackingRepository
func NewPackingRepository() *PackingRepository {
	return &PackingRepository{
		DB: GetDB(),
	}
}

// ListByTrip retrieves a trip's packing items. Never-reordered rows sort
// first, newest first among themselves.
func (r *PackingRepository) ListByTrip(tripID string) ([]models.PackingItem, error) {
	rows, err := r.DB.Query(
		`SELECT id, trip_id, category_id, name, memo, is_done, display_order, created_at
         FROM packing_items WHERE trip_id = $1
         ORDER BY display_order ASC NULLS FIRST, created_at DESC`,
		tripID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list packing items: %v", err)
	}
	defer rows.Close()

	var items []models.PackingItem
	for rows.Next() {
		var item models.PackingItem
		if err := rows.Scan(&item.ID, &item.TripID, &item.CategoryID, &item.Name, &item.Memo,
			&item.IsDone, &item.DisplayOrder, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan packing item: %v", err)
		}
		items = append(items, item)
	}

	return items, nil
}

// Insert saves a packing item
func (r *PackingRepository) Insert(item *models.PackingItem) error {
	_, err := r.DB.Exec(
		`INSERT INTO packing_items (id, trip_id, category_id, name, memo, is_done, display_order, created_at)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		item.ID, item.TripID, item.CategoryID, item.Name, item.Memo, item.IsDone,
		item.DisplayOrder, item.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert packing item: %v", err)
	}
	return nil
}

// Update replaces a packing item's name, memo and category
func (r *PackingRepository) Update(item *models.PackingItem) error {
	_, err := r.DB.Exec(
		"UPDATE packing_items SET name = $1, memo = $2, category_id = $3 WHERE id = $4",
		item.Name, item.Memo, item.CategoryID, item.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update packing item: %v", err)
	}
	return nil
}

// UpdateDone writes the done flag for one item
func (r *PackingRepository) UpdateDone(itemID string, done bool) error {
	_, err := r.DB.Exec(
		"UPDATE packing_items SET is_done = $1 WHERE id = $2",
		done, itemID,
	)
	if err != nil {
		return fmt.Errorf("failed to update packing item status: %v", err)
	}
	return nil
}

// Delete removes a packing item
func (r *PackingRepository) Delete(itemID string) error {
	_, err := r.DB.Exec("DELETE FROM packing_items WHERE id = $1", itemID)
	if err != nil {
		return fmt.Errorf("failed to delete packing item: %v", err)
	}
	return nil
}

// UpdateDisplayOrder writes one item's position
func (r *PackingRepository) UpdateDisplayOrder(itemID string, order int) error {
	_, err := r.DB.Exec(
		"UPDATE packing_items SET display_order = $1 WHERE id = $2",
		order, itemID,
	)
	if err != nil {
		return fmt.Errorf("failed to update packing item order: %v", err)
	}
	return nil
}
