package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/hanbyul-dev/tripnote-backend/models"
	"github.com/hanbyul-dev/tripnote-backend/utils"
)

// ListPackingItems handles retrieving a trip's packing checklist with the
// optional category and done filters
func ListPackingItems(c *gin.Context) {
	var request models.ListPackingRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	items, err := handlerServices.PackingService.List(&request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, items)
}

// AddPackingItem handles creating a packing item
func AddPackingItem(c *gin.Context) {
	var request models.AddPackingItemRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	item, err := handlerServices.PackingService.Add(&request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, item)
}

// UpdatePackingItem handles replacing a packing item's editable fields
func UpdatePackingItem(c *gin.Context) {
	var request models.UpdatePackingItemRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	if err := handlerServices.PackingService.Update(&request); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, gin.H{"updated": true})
}

// TogglePackingItem handles flipping a packing item's done state
func TogglePackingItem(c *gin.Context) {
	var request models.TogglePackingRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	isDone, err := handlerServices.PackingService.Toggle(&request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, gin.H{"id": request.ID, "isDone": isDone})
}

// RemovePackingItem handles the confirmation-gated deletion of an item
func RemovePackingItem(c *gin.Context) {
	var request models.RemoveEntityRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	deleted, err := handlerServices.PackingService.Remove(request.ID, request.Confirm)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, models.RemoveResponse{Deleted: deleted})
}

// ReorderPackingItems handles a drag-and-drop move within the trip's list
func ReorderPackingItems(c *gin.Context) {
	var request models.CollectionReorderRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	items, changed, err := handlerServices.PackingService.Reorder(&request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, models.ReorderResponse{Changed: changed, Items: items})
}
