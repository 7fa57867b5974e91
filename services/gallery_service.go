// services/gallery_service.go
package services

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/hanbyul-dev/tripnote-backend/models"
	"github.com/hanbyul-dev/tripnote-backend/repository"
	"github.com/hanbyul-dev/tripnote-backend/utils"
)

// galleryStore is the persistence gateway for gallery items
type galleryStore interface {
	ListByTrip(tripID string) ([]models.GalleryItem, error)
	Get(itemID string) (*models.GalleryItem, error)
	Insert(item *models.GalleryItem) error
	UpdateMemo(itemID string, memo *string) error
	Delete(itemID string) error
}

// GalleryService handles photo gallery business logic
type GalleryService struct {
	store galleryStore
}

// NewGalleryService creates a new gallery service
func NewGalleryService() *GalleryService {
	return &GalleryService{
		store: repository.NewGalleryRepository(),
	}
}

// List retrieves a trip's gallery, newest first, optionally filtered by a
// case-insensitive memo search
func (s *GalleryService) List(req *models.ListGalleryRequest) ([]models.GalleryItem, error) {
	items, err := s.store.ListByTrip(req.TripID)
	if err != nil {
		return []models.GalleryItem{}, utils.NewStoreUnavailableError(err)
	}

	search := strings.TrimSpace(req.Search)
	if search == "" {
		return items, nil
	}

	filtered := make([]models.GalleryItem, 0, len(items))
	for _, item := range items {
		if item.Memo != nil && containsFold(*item.Memo, search) {
			filtered = append(filtered, item)
		}
	}
	return filtered, nil
}

// Add records an uploaded photo. The handler has already written the
// file; imagePath is its location on disk and imageURL the public URL.
func (s *GalleryService) Add(tripID, memo, imageURL, imagePath string) (*models.GalleryItem, error) {
	item := &models.GalleryItem{
		ID:        utils.GenerateID(),
		TripID:    tripID,
		Memo:      utils.TrimToNil(memo),
		ImageURL:  imageURL,
		ImagePath: imagePath,
		CreatedAt: time.Now().UnixMilli(),
	}

	if err := s.store.Insert(item); err != nil {
		return nil, utils.NewStoreUnavailableError(err)
	}
	return item, nil
}

// UpdateMemo replaces a gallery item's memo
func (s *GalleryService) UpdateMemo(req *models.UpdateGalleryRequest) error {
	if err := s.store.UpdateMemo(req.ID, utils.TrimToNil(req.Memo)); err != nil {
		return utils.NewStoreUnavailableError(err)
	}
	return nil
}

// Remove deletes a gallery item and its file after explicit confirmation.
// A file already gone from disk is not an error.
func (s *GalleryService) Remove(itemID string, confirm bool) (bool, error) {
	if !confirm {
		return false, nil
	}

	item, err := s.store.Get(itemID)
	if err != nil {
		return false, utils.NewNotFoundError("Gallery item")
	}

	if err := s.store.Delete(itemID); err != nil {
		return false, utils.NewStoreUnavailableError(err)
	}

	if item.ImagePath != "" {
		if err := os.Remove(item.ImagePath); err != nil && !os.IsNotExist(err) {
			log.Printf("failed to remove gallery file %s: %v", item.ImagePath, err)
		}
	}
	return true, nil
}
