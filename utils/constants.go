package utils

const (
	// Trip day kinds
	DayKindRegular    = "regular"
	DayKindUnassigned = "unassigned"

	// Payment statuses
	PaymentStatusPlanned = "planned"
	PaymentStatusPaid    = "paid"
	PaymentStatusPrepaid = "prepaid"

	// Expense list view modes
	ViewModeDay      = "day"
	ViewModeCategory = "category"

	// Word search fields
	SearchFieldForeign  = "foreign"
	SearchFieldNative   = "native"
	SearchFieldMemo     = "memo"
	SearchFieldCategory = "category"

	// All monetary totals are kept in the base currency
	BaseCurrency = "KRW"

	// HTTP status messages
	ErrInvalidRequest      = "Invalid request"
	ErrTripNotFound        = "Trip not found"
	ErrStoreUnavailable    = "Store unavailable"
	ErrConfirmationMissing = "Confirmation required"
	ErrFailedToStore       = "Failed to store data"
	ErrFailedToRetrieve    = "Failed to retrieve data"
)
