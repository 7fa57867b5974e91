// repository/word_repository.go
package repository

import (
	"database/sql"
	"fmt"

	"github.com/hanbyul-dev/tripnote-backend/models"
)

// WordRepository handles database operations for word entries
type WordRepository struct {
	DB *sql.DB
}

// NewWordRepository creates a new WordRepository
func NewWordRepository() *WordRepository {
	return &WordRepository{
		DB: GetDB(),
	}
}

// ListByTrip retrieves a trip's word entries. Never-reordered rows sort
// first, newest first among themselves.
func (r *WordRepository) ListByTrip(tripID string) ([]models.Word, error) {
	rows, err := r.DB.Query(
		`SELECT id, trip_id, category_id, foreign_text, native_text, memo, display_order, created_at
         FROM words WHERE trip_id = $1
         ORDER BY display_order ASC NULLS FIRST, created_at DESC`,
		tripID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list words: %v", err)
	}
	defer rows.Close()

	var words []models.Word
	for rows.Next() {
		var w models.Word
		if err := rows.Scan(&w.ID, &w.TripID, &w.CategoryID, &w.ForeignText, &w.NativeText,
			&w.Memo, &w.DisplayOrder, &w.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan word: %v", err)
		}
		words = append(words, w)
	}

	return words, nil
}

// Insert saves a word entry
func (r *WordRepository) Insert(w *models.Word) error {
	_, err := r.DB.Exec(
		`INSERT INTO words (id, trip_id, category_id, foreign_text, native_text, memo, display_order, created_at)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		w.ID, w.TripID, w.CategoryID, w.ForeignText, w.NativeText, w.Memo, w.DisplayOrder, w.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert word: %v", err)
	}
	return nil
}

// Update replaces a word entry's text fields and category
func (r *WordRepository) Update(w *models.Word) error {
	_, err := r.DB.Exec(
		`UPDATE words SET foreign_text = $1, native_text = $2, memo = $3, category_id = $4
         WHERE id = $5`,
		w.ForeignText, w.NativeText, w.Memo, w.CategoryID, w.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update word: %v", err)
	}
	return nil
}

// Delete removes a word entry
func (r *WordRepository) Delete(wordID string) error {
	_, err := r.DB.Exec("DELETE FROM words WHERE id = $1", wordID)
	if err != nil {
		return fmt.Errorf("failed to delete word: %v", err)
	}
	return nil
}

// UpdateDisplayOrder writes one word's position
func (r *WordRepository) UpdateDisplayOrder(wordID string, order int) error {
	_, err := r.DB.Exec(
		"UPDATE words SET display_order = $1 WHERE id = $2",
		order, wordID,
	)
	if err != nil {
		return fmt.Errorf("failed to update word order: %v", err)
	}
	return nil
}
