// models/requests.go
package models

// CreateTrip request model
type CreateTripRequest struct {
	Title     string `json:"title" binding:"required"`
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
}

// GetTripRequest request model
type GetTripRequest struct {
	TripID string `json:"tripId" binding:"required"`
}

// RemoveTripRequest request model
type RemoveTripRequest struct {
	TripID  string `json:"tripId" binding:"required"`
	Confirm bool   `json:"confirm"`
}

// UpdateHighlightRequest request model
type UpdateHighlightRequest struct {
	DayID     string `json:"dayId" binding:"required"`
	Highlight string `json:"highlight"`
}

// AddScheduleRequest request model
type AddScheduleRequest struct {
	TripID   string `json:"tripId" binding:"required"`
	Title    string `json:"title" binding:"required"`
	Date     string `json:"date" binding:"required"`
	Time     string `json:"time"`
	Place    string `json:"place"`
	Memo     string `json:"memo"`
	Memo2    string `json:"memo2"`
	Category string `json:"category"`
	OrderNo  *int64 `json:"orderNo"`
}

// UpdateScheduleRequest request model
type UpdateScheduleRequest struct {
	ID       string `json:"id" binding:"required"`
	Title    string `json:"title" binding:"required"`
	Date     string `json:"date" binding:"required"`
	Time     string `json:"time"`
	Place    string `json:"place"`
	Memo     string `json:"memo"`
	Memo2    string `json:"memo2"`
	Category string `json:"category"`
}

// RemoveEntityRequest is the shared confirmation-gated delete request
type RemoveEntityRequest struct {
	ID      string `json:"id" binding:"required"`
	Confirm bool   `json:"confirm"`
}

// ScheduleReorderRequest reorders a schedule within one day's group
type ScheduleReorderRequest struct {
	TripID   string `json:"tripId" binding:"required"`
	Date     string `json:"date" binding:"required"`
	ActiveID string `json:"activeId" binding:"required"`
	OverID   string `json:"overId" binding:"required"`
}

// ListExpensesRequest request model. DayID and CategoryID filters are
// mutually exclusive view modes.
type ListExpensesRequest struct {
	TripID     string  `json:"tripId" binding:"required"`
	DayID      *string `json:"dayId"`
	CategoryID *string `json:"categoryId"`
}

// AddExpenseRequest request model
type AddExpenseRequest struct {
	TripID            string  `json:"tripId" binding:"required"`
	TripDayID         string  `json:"tripDayId"`
	CategoryID        string  `json:"categoryId"`
	Title             string  `json:"title" binding:"required"`
	PaymentMethod     string  `json:"paymentMethod"`
	Currency          string  `json:"currency"`
	UnitAmount        float64 `json:"unitAmount" binding:"min=0"`
	Quantity          int     `json:"quantity"`
	ExchangeRate      float64 `json:"exchangeRate"`
	TotalAmountKrw    float64 `json:"totalAmountKrw" binding:"min=0"`
	PaymentStatus     string  `json:"paymentStatus"`
	IsPrepaid         bool    `json:"isPrepaid"`
	IsCash            bool    `json:"isCash"`
	IsCard            bool    `json:"isCard"`
	ReservationStatus string  `json:"reservationStatus"`
	Memo              string  `json:"memo"`
	Memo2             string  `json:"memo2"`
	ExpenseDate       string  `json:"expenseDate"`
	DisplayOrder      *int    `json:"displayOrder"`
}

// UpdateExpenseRequest request model
type UpdateExpenseRequest struct {
	ID                string  `json:"id" binding:"required"`
	TripDayID         string  `json:"tripDayId"`
	CategoryID        string  `json:"categoryId"`
	Title             string  `json:"title" binding:"required"`
	PaymentMethod     string  `json:"paymentMethod"`
	Currency          string  `json:"currency"`
	UnitAmount        float64 `json:"unitAmount" binding:"min=0"`
	Quantity          int     `json:"quantity"`
	ExchangeRate      float64 `json:"exchangeRate"`
	TotalAmountKrw    float64 `json:"totalAmountKrw" binding:"min=0"`
	PaymentStatus     string  `json:"paymentStatus"`
	IsPrepaid         bool    `json:"isPrepaid"`
	IsCash            bool    `json:"isCash"`
	IsCard            bool    `json:"isCard"`
	ReservationStatus string  `json:"reservationStatus"`
	Memo              string  `json:"memo"`
	Memo2             string  `json:"memo2"`
	ExpenseDate       string  `json:"expenseDate"`
}

// ExpenseReorderRequest reorders an expense within one day group or one
// category group — exactly one of DayID/CategoryID must be set.
type ExpenseReorderRequest struct {
	TripID     string  `json:"tripId" binding:"required"`
	DayID      *string `json:"dayId"`
	CategoryID *string `json:"categoryId"`
	ActiveID   string  `json:"activeId" binding:"required"`
	OverID     string  `json:"overId" binding:"required"`
}

// AddCategoryRequest request model
type AddCategoryRequest struct {
	Name      string `json:"name" binding:"required"`
	BgColor   string `json:"bgColor"`
	TextColor string `json:"textColor"`
}

// UpdateCategoryRequest request model
type UpdateCategoryRequest struct {
	ID        string `json:"id" binding:"required"`
	Name      string `json:"name" binding:"required"`
	BgColor   string `json:"bgColor"`
	TextColor string `json:"textColor"`
}

// CollectionReorderRequest reorders within a whole per-trip collection
// (packing items, words)
type CollectionReorderRequest struct {
	TripID   string `json:"tripId" binding:"required"`
	ActiveID string `json:"activeId" binding:"required"`
	OverID   string `json:"overId" binding:"required"`
}

// CategoryReorderRequest reorders a user's expense categories
type CategoryReorderRequest struct {
	ActiveID string `json:"activeId" binding:"required"`
	OverID   string `json:"overId" binding:"required"`
}

// ListPackingRequest request model. CategoryID and Done are AND-combined.
type ListPackingRequest struct {
	TripID     string  `json:"tripId" binding:"required"`
	CategoryID *string `json:"categoryId"`
	Done       *bool   `json:"done"`
}

// AddPackingItemRequest request model
type AddPackingItemRequest struct {
	TripID     string `json:"tripId" binding:"required"`
	Name       string `json:"name" binding:"required"`
	Memo       string `json:"memo"`
	CategoryID string `json:"categoryId"`
}

// UpdatePackingItemRequest request model
type UpdatePackingItemRequest struct {
	ID         string `json:"id" binding:"required"`
	Name       string `json:"name" binding:"required"`
	Memo       string `json:"memo"`
	CategoryID string `json:"categoryId"`
}

// TogglePackingRequest flips the done flag from the value the client saw
type TogglePackingRequest struct {
	ID     string `json:"id" binding:"required"`
	IsDone bool   `json:"isDone"`
}

// ListWordsRequest request model with the optional search filter
type ListWordsRequest struct {
	TripID      string `json:"tripId" binding:"required"`
	SearchField string `json:"searchField"`
	SearchText  string `json:"searchText"`
}

// AddWordRequest request model
type AddWordRequest struct {
	TripID      string `json:"tripId" binding:"required"`
	ForeignText string `json:"foreignText" binding:"required"`
	NativeText  string `json:"nativeText" binding:"required"`
	Memo        string `json:"memo"`
	CategoryID  string `json:"categoryId"`
}

// UpdateWordRequest request model
type UpdateWordRequest struct {
	ID          string `json:"id" binding:"required"`
	ForeignText string `json:"foreignText" binding:"required"`
	NativeText  string `json:"nativeText" binding:"required"`
	Memo        string `json:"memo"`
	CategoryID  string `json:"categoryId"`
}

// ListGalleryRequest request model
type ListGalleryRequest struct {
	TripID string `json:"tripId" binding:"required"`
	Search string `json:"search"`
}

// UpdateGalleryRequest request model
type UpdateGalleryRequest struct {
	ID   string `json:"id" binding:"required"`
	Memo string `json:"memo"`
}

// SetRateRequest upserts one currency rate for the current user
type SetRateRequest struct {
	Currency   string  `json:"currency" binding:"required"`
	RateToBase float64 `json:"rateToBase" binding:"required,gt=0"`
}

// RemoveResponse reports whether a confirmation-gated delete was issued
type RemoveResponse struct {
	Deleted bool `json:"deleted"`
}

// ReorderResponse carries the reconciled collection after a reorder.
// Changed is false when the request was a no-op and nothing was written.
type ReorderResponse struct {
	Changed bool        `json:"changed"`
	Items   interface{} `json:"items"`
}
