package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/hanbyul-dev/tripnote-backend/models"
	"github.com/hanbyul-dev/tripnote-backend/utils"
)

// ListRates handles retrieving the current user's exchange rates,
// bootstrapping the default set on first use
func ListRates(c *gin.Context) {
	rates, err := handlerServices.RateService.List(CurrentUserID(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, rates)
}

// SetRate handles inserting or replacing one currency's rate
func SetRate(c *gin.Context) {
	var request models.SetRateRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	rate, err := handlerServices.RateService.Set(CurrentUserID(c), &request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, rate)
}
