// services/packing_service.go
package services

import (
	"log"
	"strings"
	"time"

	"github.com/hanbyul-dev/tripnote-backend/models"
	"github.com/hanbyul-dev/tripnote-backend/repository"
	"github.com/hanbyul-dev/tripnote-backend/utils"
)

// packingStore is the persistence gateway for packing items
type packingStore interface {
	ListByTrip(tripID string) ([]models.PackingItem, error)
	Insert(item *models.PackingItem) error
	Update(item *models.PackingItem) error
	UpdateDone(itemID string, isDone bool) error
	Delete(itemID string) error
	UpdateDisplayOrder(itemID string, order int) error
}

// PackingService handles packing checklist business logic
type PackingService struct {
	store packingStore
}

// NewPackingService creates a new packing service
func NewPackingService() *PackingService {
	return &PackingService{
		store: repository.NewPackingRepository(),
	}
}

// List retrieves a trip's packing items, optionally narrowed by category
// and done state. Both filters combine with AND when given together.
func (s *PackingService) List(req *models.ListPackingRequest) ([]models.PackingItem, error) {
	items, err := s.store.ListByTrip(req.TripID)
	if err != nil {
		return []models.PackingItem{}, utils.NewStoreUnavailableError(err)
	}
	if req.CategoryID == nil && req.Done == nil {
		return items, nil
	}

	filtered := make([]models.PackingItem, 0, len(items))
	for _, item := range items {
		if req.CategoryID != nil && (item.CategoryID == nil || *item.CategoryID != *req.CategoryID) {
			continue
		}
		if req.Done != nil && item.IsDone != *req.Done {
			continue
		}
		filtered = append(filtered, item)
	}
	return filtered, nil
}

// Add creates a packing item
func (s *PackingService) Add(req *models.AddPackingItemRequest) (*models.PackingItem, error) {
	if err := utils.ValidateRequired(req.Name, "item name"); err != nil {
		return nil, err
	}

	item := &models.PackingItem{
		ID:         utils.GenerateID(),
		TripID:     req.TripID,
		CategoryID: utils.TrimToNil(req.CategoryID),
		Name:       strings.TrimSpace(req.Name),
		Memo:       utils.TrimToNil(req.Memo),
		IsDone:     false,
		CreatedAt:  time.Now().UnixMilli(),
	}

	if err := s.store.Insert(item); err != nil {
		return nil, utils.NewStoreUnavailableError(err)
	}
	return item, nil
}

// Update replaces a packing item's editable fields
func (s *PackingService) Update(req *models.UpdatePackingItemRequest) error {
	if err := utils.ValidateRequired(req.Name, "item name"); err != nil {
		return err
	}

	item := &models.PackingItem{
		ID:         req.ID,
		CategoryID: utils.TrimToNil(req.CategoryID),
		Name:       strings.TrimSpace(req.Name),
		Memo:       utils.TrimToNil(req.Memo),
	}

	if err := s.store.Update(item); err != nil {
		return utils.NewStoreUnavailableError(err)
	}
	return nil
}

// Toggle flips an item's done state. The write carries the negation of
// the state the caller last saw, so a failed write leaves the stored
// value untouched.
func (s *PackingService) Toggle(req *models.TogglePackingRequest) (bool, error) {
	next := !req.IsDone
	if err := s.store.UpdateDone(req.ID, next); err != nil {
		return req.IsDone, utils.NewStoreUnavailableError(err)
	}
	return next, nil
}

// Remove deletes a packing item after explicit confirmation
func (s *PackingService) Remove(itemID string, confirm bool) (bool, error) {
	if !confirm {
		return false, nil
	}
	if err := s.store.Delete(itemID); err != nil {
		return false, utils.NewStoreUnavailableError(err)
	}
	return true, nil
}

// Reorder moves a packing item within the trip's list and renumbers the
// list densely from zero
func (s *PackingService) Reorder(req *models.CollectionReorderRequest) ([]models.PackingItem, bool, error) {
	if req.ActiveID == req.OverID {
		return nil, false, nil
	}

	items, err := s.store.ListByTrip(req.TripID)
	if err != nil {
		return []models.PackingItem{}, false, utils.NewStoreUnavailableError(err)
	}

	moved, ok := MoveItem(items, req.ActiveID, req.OverID)
	if !ok {
		return items, false, nil
	}

	if err := PersistOrder[models.PackingItem](s.store, moved); err != nil {
		log.Printf("packing reorder batch incomplete: %v", err)
	}

	reconciled, err := s.store.ListByTrip(req.TripID)
	if err != nil {
		return []models.PackingItem{}, true, utils.NewStoreUnavailableError(err)
	}
	return reconciled, true, nil
}
