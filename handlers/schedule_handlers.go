package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/hanbyul-dev/tripnote-backend/models"
	"github.com/hanbyul-dev/tripnote-backend/utils"
)

// ListSchedules handles retrieving a trip's itinerary in display order
func ListSchedules(c *gin.Context) {
	var request models.GetTripRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	schedules, err := handlerServices.ScheduleService.List(request.TripID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, schedules)
}

// AddSchedule handles creating an itinerary entry
func AddSchedule(c *gin.Context) {
	var request models.AddScheduleRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	schedule, err := handlerServices.ScheduleService.Add(&request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, schedule)
}

// UpdateSchedule handles replacing an itinerary entry's editable fields
func UpdateSchedule(c *gin.Context) {
	var request models.UpdateScheduleRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	if err := handlerServices.ScheduleService.Update(&request); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, gin.H{"updated": true})
}

// RemoveSchedule handles the confirmation-gated deletion of an entry
func RemoveSchedule(c *gin.Context) {
	var request models.RemoveEntityRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	deleted, err := handlerServices.ScheduleService.Remove(request.ID, request.Confirm)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, models.RemoveResponse{Deleted: deleted})
}

// ReorderSchedules handles a drag-and-drop move within one day's group
func ReorderSchedules(c *gin.Context) {
	var request models.ScheduleReorderRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	items, changed, err := handlerServices.ScheduleService.Reorder(&request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, models.ReorderResponse{Changed: changed, Items: items})
}
