// repository/gallery_repository.go
package repository

import (
	"database/sql"
	"fmt"

	"github.com/hanbyul-dev/tripnote-backend/models"
)

// GalleryRepository handles database operations for gallery items
type GalleryRepository struct {
	DB *sql.DB
}

// NewGalleryRepository creates a new GalleryRepository
func NewGalleryRepository() *GalleryRepository {
	return &GalleryRepository{
		DB: GetDB(),
	}
}

// ListByTrip retrieves a trip's gallery items, newest first
func (r *GalleryRepository) ListByTrip(tripID string) ([]models.GalleryItem, error) {
	rows, err := r.DB.Query(
		`SELECT id, trip_id, memo, image_url, image_path, created_at
         FROM gallery_items WHERE trip_id = $1 ORDER BY created_at DESC`,
		tripID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list gallery items: %v", err)
	}
	defer rows.Close()

	var items []models.GalleryItem
	for rows.Next() {
		var item models.GalleryItem
		if err := rows.Scan(&item.ID, &item.TripID, &item.Memo, &item.ImageURL,
			&item.ImagePath, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan gallery item: %v", err)
		}
		items = append(items, item)
	}

	return items, nil
}

// Get retrieves one gallery item
func (r *GalleryRepository) Get(itemID string) (*models.GalleryItem, error) {
	var item models.GalleryItem
	err := r.DB.QueryRow(
		`SELECT id, trip_id, memo, image_url, image_path, created_at
         FROM gallery_items WHERE id = $1`,
		itemID,
	).Scan(&item.ID, &item.TripID, &item.Memo, &item.ImageURL, &item.ImagePath, &item.CreatedAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("gallery item not found")
		}
		return nil, fmt.Errorf("failed to get gallery item: %v", err)
	}

	return &item, nil
}

// Insert saves a gallery item
func (r *GalleryRepository) Insert(item *models.GalleryItem) error {
	_, err := r.DB.Exec(
		`INSERT INTO gallery_items (id, trip_id, memo, image_url, image_path, created_at)
         VALUES ($1, $2, $3, $4, $5, $6)`,
		item.ID, item.TripID, item.Memo, item.ImageURL, item.ImagePath, item.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert gallery item: %v", err)
	}
	return nil
}

// UpdateMemo replaces a gallery item's memo
func (r *GalleryRepository) UpdateMemo(itemID string, memo *string) error {
	_, err := r.DB.Exec(
		"UPDATE gallery_items SET memo = $1 WHERE id = $2",
		memo, itemID,
	)
	if err != nil {
		return fmt.Errorf("failed to update gallery item: %v", err)
	}
	return nil
}

// Delete removes a gallery item
func (r *GalleryRepository) Delete(itemID string) error {
	_, err := r.DB.Exec("DELETE FROM gallery_items WHERE id = $1", itemID)
	if err != nil {
		return fmt.Errorf("failed to delete gallery item: %v", err)
	}
	return nil
}
