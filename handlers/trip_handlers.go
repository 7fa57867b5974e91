package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/hanbyul-dev/tripnote-backend/models"
	"github.com/hanbyul-dev/tripnote-backend/utils"
)

// CreateTrip handles the creation of a new trip with its day rows
func CreateTrip(c *gin.Context) {
	var request models.CreateTripRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	trip, err := handlerServices.TripService.CreateTrip(&request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, trip)
}

// ListTrips handles retrieving every trip, newest first
func ListTrips(c *gin.Context) {
	trips, err := handlerServices.TripService.ListTrips()
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, trips)
}

// GetTrip handles retrieving one trip
func GetTrip(c *gin.Context) {
	var request models.GetTripRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	trip, err := handlerServices.TripService.GetTrip(request.TripID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, trip)
}

// ListTripDays handles retrieving a trip's day rows in calendar order
func ListTripDays(c *gin.Context) {
	var request models.GetTripRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	days, err := handlerServices.TripService.ListDays(request.TripID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, days)
}

// RemoveTrip handles the confirmation-gated deletion of a trip
func RemoveTrip(c *gin.Context) {
	var request models.RemoveTripRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	deleted, err := handlerServices.TripService.RemoveTrip(request.TripID, request.Confirm)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, models.RemoveResponse{Deleted: deleted})
}

// UpdateDayHighlight handles replacing a day's highlight text
func UpdateDayHighlight(c *gin.Context) {
	var request models.UpdateHighlightRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	day, err := handlerServices.TripService.UpdateHighlight(request.DayID, request.Highlight)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, day)
}
