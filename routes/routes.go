package routes

import (
	"os"

	"github.com/hanbyul-dev/tripnote-backend/handlers"

	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all API routes for the application
func SetupRoutes(router *gin.Engine) {
	// Create uploads directory if not exists
	os.MkdirAll("uploads", os.ModePerm)

	// Initialize handlers
	handlers.InitHandlers()

	// Uploaded gallery images are served directly
	router.Static("/uploads", "./uploads")

	v1 := router.Group("/api/v1")
	{
		// Trip endpoints
		v1.POST("/trips/create", handlers.CreateTrip)
		v1.POST("/trips/list", handlers.ListTrips)
		v1.POST("/trips/get", handlers.GetTrip)
		v1.POST("/trips/remove", handlers.RemoveTrip)

		// Day endpoints
		v1.POST("/days/list", handlers.ListTripDays)
		v1.POST("/days/updateHighlight", handlers.UpdateDayHighlight)

		// Schedule endpoints
		v1.POST("/schedules/list", handlers.ListSchedules)
		v1.POST("/schedules/add", handlers.AddSchedule)
		v1.POST("/schedules/update", handlers.UpdateSchedule)
		v1.POST("/schedules/remove", handlers.RemoveSchedule)
		v1.POST("/schedules/reorder", handlers.ReorderSchedules)

		// Expense endpoints
		v1.POST("/expenses/list", handlers.ListExpenses)
		v1.POST("/expenses/add", handlers.AddExpense)
		v1.POST("/expenses/update", handlers.UpdateExpense)
		v1.POST("/expenses/remove", handlers.RemoveExpense)
		v1.POST("/expenses/reorder", handlers.ReorderExpenses)
		v1.POST("/expenses/stats", handlers.GetExpenseStats)
		v1.POST("/expenses/export", handlers.ExportTripExpenses)

		// Packing endpoints
		v1.POST("/packing/list", handlers.ListPackingItems)
		v1.POST("/packing/add", handlers.AddPackingItem)
		v1.POST("/packing/update", handlers.UpdatePackingItem)
		v1.POST("/packing/toggle", handlers.TogglePackingItem)
		v1.POST("/packing/remove", handlers.RemovePackingItem)
		v1.POST("/packing/reorder", handlers.ReorderPackingItems)

		// Word endpoints
		v1.POST("/words/list", handlers.ListWords)
		v1.POST("/words/add", handlers.AddWord)
		v1.POST("/words/update", handlers.UpdateWord)
		v1.POST("/words/remove", handlers.RemoveWord)
		v1.POST("/words/reorder", handlers.ReorderWords)

		// Gallery endpoints
		v1.POST("/gallery/list", handlers.ListGallery)
		v1.POST("/gallery/upload", handlers.UploadGalleryImage)
		v1.POST("/gallery/update", handlers.UpdateGalleryMemo)
		v1.POST("/gallery/remove", handlers.RemoveGalleryItem)

		// User-scoped endpoints require the session identity header
		categories := v1.Group("/categories", handlers.RequireUser())
		{
			categories.POST("/list", handlers.ListCategories)
			categories.POST("/add", handlers.AddCategory)
			categories.POST("/update", handlers.UpdateCategory)
			categories.POST("/remove", handlers.RemoveCategory)
			categories.POST("/reorder", handlers.ReorderCategories)
		}

		rates := v1.Group("/rates", handlers.RequireUser())
		{
			rates.POST("/list", handlers.ListRates)
			rates.POST("/set", handlers.SetRate)
		}
	}
}
