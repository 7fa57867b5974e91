package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/hanbyul-dev/tripnote-backend/models"
	"github.com/hanbyul-dev/tripnote-backend/utils"
)

// ListCategories handles retrieving the current user's expense categories,
// bootstrapping the default set on first use
func ListCategories(c *gin.Context) {
	categories, err := handlerServices.CategoryService.List(CurrentUserID(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, categories)
}

// AddCategory handles creating an expense category
func AddCategory(c *gin.Context) {
	var request models.AddCategoryRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	category, err := handlerServices.CategoryService.Add(CurrentUserID(c), &request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, category)
}

// UpdateCategory handles replacing a category's name and colors
func UpdateCategory(c *gin.Context) {
	var request models.UpdateCategoryRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	if err := handlerServices.CategoryService.Update(CurrentUserID(c), &request); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, gin.H{"updated": true})
}

// RemoveCategory handles the confirmation-gated deletion of a category
func RemoveCategory(c *gin.Context) {
	var request models.RemoveEntityRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	deleted, err := handlerServices.CategoryService.Remove(request.ID, CurrentUserID(c), request.Confirm)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, models.RemoveResponse{Deleted: deleted})
}

// ReorderCategories handles a drag-and-drop move within the user's list
func ReorderCategories(c *gin.Context) {
	var request models.CategoryReorderRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	items, changed, err := handlerServices.CategoryService.Reorder(CurrentUserID(c), &request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, models.ReorderResponse{Changed: changed, Items: items})
}
