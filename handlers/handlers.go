package handlers

import (
	"github.com/hanbyul-dev/tripnote-backend/services"
)

// HandlerServices contains all service dependencies
type HandlerServices struct {
	TripService     *services.TripService
	ScheduleService *services.ScheduleService
	ExpenseService  *services.ExpenseService
	CategoryService *services.CategoryService
	PackingService  *services.PackingService
	WordService     *services.WordService
	GalleryService  *services.GalleryService
	RateService     *services.RateService
	ExcelService    *services.ExcelService
}

// NewHandlerServices creates a new handler services instance
func NewHandlerServices() *HandlerServices {
	tripService := services.NewTripService()
	expenseService := services.NewExpenseService()
	categoryService := services.NewCategoryService()
	return &HandlerServices{
		TripService:     tripService,
		ScheduleService: services.NewScheduleService(),
		ExpenseService:  expenseService,
		CategoryService: categoryService,
		PackingService:  services.NewPackingService(),
		WordService:     services.NewWordService(),
		GalleryService:  services.NewGalleryService(),
		RateService:     services.NewRateService(),
		ExcelService:    services.NewExcelService(tripService, expenseService, categoryService),
	}
}

var handlerServices *HandlerServices

// InitHandlers initializes the handler services
func InitHandlers() {
	handlerServices = NewHandlerServices()
}
