// services/word_service.go
package services

import (
	"log"
	"strings"
	"time"

	"github.com/hanbyul-dev/tripnote-backend/models"
	"github.com/hanbyul-dev/tripnote-backend/repository"
	"github.com/hanbyul-dev/tripnote-backend/utils"
)

// wordStore is the persistence gateway for the phrase list
type wordStore interface {
	ListByTrip(tripID string) ([]models.Word, error)
	Insert(word *models.Word) error
	Update(word *models.Word) error
	Delete(wordID string) error
	UpdateDisplayOrder(wordID string, order int) error
}

// WordService handles phrase list business logic
type WordService struct {
	store wordStore
}

// NewWordService creates a new word service
func NewWordService() *WordService {
	return &WordService{
		store: repository.NewWordRepository(),
	}
}

// List retrieves a trip's words, optionally filtered by a search over one
// field. Text fields match on a case-insensitive substring; the category
// field matches exactly.
func (s *WordService) List(req *models.ListWordsRequest) ([]models.Word, error) {
	words, err := s.store.ListByTrip(req.TripID)
	if err != nil {
		return []models.Word{}, utils.NewStoreUnavailableError(err)
	}

	text := strings.TrimSpace(req.SearchText)
	if text == "" {
		return words, nil
	}

	filtered := make([]models.Word, 0, len(words))
	for _, word := range words {
		if matchWord(word, req.SearchField, text) {
			filtered = append(filtered, word)
		}
	}
	return filtered, nil
}

func matchWord(word models.Word, field, text string) bool {
	switch field {
	case utils.SearchFieldNative:
		return containsFold(word.NativeText, text)
	case utils.SearchFieldMemo:
		return word.Memo != nil && containsFold(*word.Memo, text)
	case utils.SearchFieldCategory:
		return word.CategoryID != nil && *word.CategoryID == text
	default:
		// unknown selectors fall back to the foreign field
		return containsFold(word.ForeignText, text)
	}
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// Add creates a word
func (s *WordService) Add(req *models.AddWordRequest) (*models.Word, error) {
	if err := utils.ValidateRequired(req.ForeignText, "foreign text"); err != nil {
		return nil, err
	}
	if err := utils.ValidateRequired(req.NativeText, "native text"); err != nil {
		return nil, err
	}

	word := &models.Word{
		ID:          utils.GenerateID(),
		TripID:      req.TripID,
		CategoryID:  utils.TrimToNil(req.CategoryID),
		ForeignText: strings.TrimSpace(req.ForeignText),
		NativeText:  strings.TrimSpace(req.NativeText),
		Memo:        utils.TrimToNil(req.Memo),
		CreatedAt:   time.Now().UnixMilli(),
	}

	if err := s.store.Insert(word); err != nil {
		return nil, utils.NewStoreUnavailableError(err)
	}
	return word, nil
}

// Update replaces a word's editable fields
func (s *WordService) Update(req *models.UpdateWordRequest) error {
	if err := utils.ValidateRequired(req.ForeignText, "foreign text"); err != nil {
		return err
	}
	if err := utils.ValidateRequired(req.NativeText, "native text"); err != nil {
		return err
	}

	word := &models.Word{
		ID:          req.ID,
		CategoryID:  utils.TrimToNil(req.CategoryID),
		ForeignText: strings.TrimSpace(req.ForeignText),
		NativeText:  strings.TrimSpace(req.NativeText),
		Memo:        utils.TrimToNil(req.Memo),
	}

	if err := s.store.Update(word); err != nil {
		return utils.NewStoreUnavailableError(err)
	}
	return nil
}

// Remove deletes a word after explicit confirmation
func (s *WordService) Remove(wordID string, confirm bool) (bool, error) {
	if !confirm {
		return false, nil
	}
	if err := s.store.Delete(wordID); err != nil {
		return false, utils.NewStoreUnavailableError(err)
	}
	return true, nil
}

// Reorder moves a word within the trip's list and renumbers the list
// densely from zero
func (s *WordService) Reorder(req *models.CollectionReorderRequest) ([]models.Word, bool, error) {
	if req.ActiveID == req.OverID {
		return nil, false, nil
	}

	words, err := s.store.ListByTrip(req.TripID)
	if err != nil {
		return []models.Word{}, false, utils.NewStoreUnavailableError(err)
	}

	moved, ok := MoveItem(words, req.ActiveID, req.OverID)
	if !ok {
		return words, false, nil
	}

	if err := PersistOrder[models.Word](s.store, moved); err != nil {
		log.Printf("word reorder batch incomplete: %v", err)
	}

	reconciled, err := s.store.ListByTrip(req.TripID)
	if err != nil {
		return []models.Word{}, true, utils.NewStoreUnavailableError(err)
	}
	return reconciled, true, nil
}
