package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/hanbyul-dev/tripnote-backend/models"
	"github.com/hanbyul-dev/tripnote-backend/utils"
)

// ListWords handles retrieving a trip's phrase list with the optional
// single-field search filter
func ListWords(c *gin.Context) {
	var request models.ListWordsRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	words, err := handlerServices.WordService.List(&request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, words)
}

// AddWord handles creating a phrase list entry
func AddWord(c *gin.Context) {
	var request models.AddWordRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	word, err := handlerServices.WordService.Add(&request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, word)
}

// UpdateWord handles replacing a phrase list entry's editable fields
func UpdateWord(c *gin.Context) {
	var request models.UpdateWordRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	if err := handlerServices.WordService.Update(&request); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, gin.H{"updated": true})
}

// RemoveWord handles the confirmation-gated deletion of an entry
func RemoveWord(c *gin.Context) {
	var request models.RemoveEntityRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	deleted, err := handlerServices.WordService.Remove(request.ID, request.Confirm)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, models.RemoveResponse{Deleted: deleted})
}

// ReorderWords handles a drag-and-drop move within the trip's list
func ReorderWords(c *gin.Context) {
	var request models.CollectionReorderRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	items, changed, err := handlerServices.WordService.Reorder(&request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, models.ReorderResponse{Changed: changed, Items: items})
}
