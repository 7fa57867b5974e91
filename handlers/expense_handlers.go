package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/hanbyul-dev/tripnote-backend/models"
	"github.com/hanbyul-dev/tripnote-backend/utils"
)

// ListExpenses handles retrieving a trip's expenses, optionally narrowed
// to one day group or one category group
func ListExpenses(c *gin.Context) {
	var request models.ListExpensesRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	expenses, err := handlerServices.ExpenseService.List(&request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, expenses)
}

// AddExpense handles creating an expense
func AddExpense(c *gin.Context) {
	var request models.AddExpenseRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	expense, err := handlerServices.ExpenseService.Add(&request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, expense)
}

// UpdateExpense handles replacing an expense's editable fields
func UpdateExpense(c *gin.Context) {
	var request models.UpdateExpenseRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	if err := handlerServices.ExpenseService.Update(&request); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, gin.H{"updated": true})
}

// RemoveExpense handles the confirmation-gated deletion of an expense
func RemoveExpense(c *gin.Context) {
	var request models.RemoveEntityRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	deleted, err := handlerServices.ExpenseService.Remove(request.ID, request.Confirm)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, models.RemoveResponse{Deleted: deleted})
}

// ReorderExpenses handles a drag-and-drop move within one visible group
func ReorderExpenses(c *gin.Context) {
	var request models.ExpenseReorderRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	items, changed, err := handlerServices.ExpenseService.Reorder(&request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, models.ReorderResponse{Changed: changed, Items: items})
}

// GetExpenseStats handles retrieving a trip's expense summary
func GetExpenseStats(c *gin.Context) {
	var request models.GetTripRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	stats, err := handlerServices.ExpenseService.Stats(request.TripID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, stats)
}
