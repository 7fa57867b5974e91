// models/models.go
package models

import "time"

// Trip represents one planned trip
type Trip struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	CreatedAt int64  `json:"createdAt"`
}

// TripDay represents one calendar day of a trip. Every trip also owns a
// single "unassigned" day (nil date, day order 0) used as the bucket for
// prepaid and undated entries.
type TripDay struct {
	ID        string  `json:"id"`
	TripID    string  `json:"tripId"`
	Date      *string `json:"date,omitempty"`
	DayOrder  int     `json:"dayOrder"`
	Highlight *string `json:"highlight,omitempty"`
	Kind      string  `json:"kind"`
}

// Schedule represents one itinerary entry.
// OrderNo defaults to the creation timestamp in unix milliseconds, so new
// entries append; a reorder renumbers a day's entries densely from zero.
type Schedule struct {
	ID        string  `json:"id"`
	TripID    string  `json:"tripId"`
	TripDayID *string `json:"tripDayId,omitempty"`
	Title     string  `json:"title"`
	Date      string  `json:"date"`
	Time      *string `json:"time,omitempty"`
	Place     *string `json:"place,omitempty"`
	Memo      *string `json:"memo,omitempty"`
	Memo2     *string `json:"memo2,omitempty"`
	Category  *string `json:"category,omitempty"`
	OrderNo   int64   `json:"orderNo"`
	CreatedAt int64   `json:"createdAt"`
}

// Expense represents one cost entry, priced in an arbitrary currency and
// converted to the base currency at the stored exchange rate.
type Expense struct {
	ID                string  `json:"id"`
	TripID            string  `json:"tripId"`
	TripDayID         *string `json:"tripDayId,omitempty"`
	CategoryID        *string `json:"categoryId,omitempty"`
	Title             string  `json:"title"`
	PaymentMethod     string  `json:"paymentMethod"`
	Currency          string  `json:"currency"`
	UnitAmount        float64 `json:"unitAmount"`
	Quantity          int     `json:"quantity"`
	ExchangeRate      float64 `json:"exchangeRate"`
	TotalAmountKrw    float64 `json:"totalAmountKrw"`
	PaymentStatus     string  `json:"paymentStatus"`
	IsPrepaid         bool    `json:"isPrepaid"`
	IsCash            bool    `json:"isCash"`
	IsCard            bool    `json:"isCard"`
	ReservationStatus *string `json:"reservationStatus,omitempty"`
	Memo              *string `json:"memo,omitempty"`
	Memo2             *string `json:"memo2,omitempty"`
	ExpenseDate       *string `json:"expenseDate,omitempty"`
	DisplayOrder      *int    `json:"displayOrder,omitempty"`
	CreatedAt         int64   `json:"createdAt"`
}

// ExpenseCategory is a user-owned expense grouping with display colors
type ExpenseCategory struct {
	ID           string `json:"id"`
	UserID       string `json:"userId"`
	Name         string `json:"name"`
	BgColor      string `json:"bgColor"`
	TextColor    string `json:"textColor"`
	DisplayOrder *int   `json:"displayOrder,omitempty"`
	CreatedAt    int64  `json:"createdAt"`
}

// PackingItem represents one packing checklist entry
type PackingItem struct {
	ID           string  `json:"id"`
	TripID       string  `json:"tripId"`
	CategoryID   *string `json:"categoryId,omitempty"`
	Name         string  `json:"name"`
	Memo         *string `json:"memo,omitempty"`
	IsDone       bool    `json:"isDone"`
	DisplayOrder *int    `json:"displayOrder,omitempty"`
	CreatedAt    int64   `json:"createdAt"`
}

// Word represents one bilingual phrase list entry
type Word struct {
	ID           string  `json:"id"`
	TripID       string  `json:"tripId"`
	CategoryID   *string `json:"categoryId,omitempty"`
	ForeignText  string  `json:"foreignText"`
	NativeText   string  `json:"nativeText"`
	Memo         *string `json:"memo,omitempty"`
	DisplayOrder *int    `json:"displayOrder,omitempty"`
	CreatedAt    int64   `json:"createdAt"`
}

// GalleryItem represents one uploaded photo with an optional memo
type GalleryItem struct {
	ID        string  `json:"id"`
	TripID    string  `json:"tripId"`
	Memo      *string `json:"memo,omitempty"`
	ImageURL  string  `json:"imageUrl"`
	ImagePath string  `json:"-"`
	CreatedAt int64   `json:"createdAt"`
}

// ExchangeRate represents one user-owned currency rate to the base currency
type ExchangeRate struct {
	ID         string  `json:"id"`
	UserID     string  `json:"userId"`
	Currency   string  `json:"currency"`
	RateToBase float64 `json:"rateToBase"`
	CreatedAt  int64   `json:"createdAt"`
}

// ExpenseStats summarizes a trip's expenses in the base currency
type ExpenseStats struct {
	Total          float64            `json:"total"`
	Prepaid        float64            `json:"prepaid"`
	Paid           float64            `json:"paid"`
	Planned        float64            `json:"planned"`
	DayTotals      map[string]float64 `json:"dayTotals"`
	CategoryTotals map[string]float64 `json:"categoryTotals"`
}

// NewTrip creates a new Trip instance
func NewTrip(id, title, startDate, endDate string) *Trip {
	return &Trip{
		ID:        id,
		Title:     title,
		StartDate: startDate,
		EndDate:   endDate,
		CreatedAt: time.Now().UnixMilli(),
	}
}

// Orderable accessors. Every reorderable row type exposes its identity,
// its persisted position (unset when the row has never been reordered)
// and its creation time for the secondary sort.

func (s Schedule) EntityID() string       { return s.ID }
func (s Schedule) Position() (int, bool)  { return int(s.OrderNo), true }
func (s Schedule) CreatedAtMillis() int64 { return s.CreatedAt }

func (e Expense) EntityID() string       { return e.ID }
func (e Expense) CreatedAtMillis() int64 { return e.CreatedAt }
func (e Expense) Position() (int, bool) {
	if e.DisplayOrder == nil {
		return 0, false
	}
	return *e.DisplayOrder, true
}

func (c ExpenseCategory) EntityID() string       { return c.ID }
func (c ExpenseCategory) CreatedAtMillis() int64 { return c.CreatedAt }
func (c ExpenseCategory) Position() (int, bool) {
	if c.DisplayOrder == nil {
		return 0, false
	}
	return *c.DisplayOrder, true
}

func (p PackingItem) EntityID() string       { return p.ID }
func (p PackingItem) CreatedAtMillis() int64 { return p.CreatedAt }
func (p PackingItem) Position() (int, bool) {
	if p.DisplayOrder == nil {
		return 0, false
	}
	return *p.DisplayOrder, true
}

func (w Word) EntityID() string       { return w.ID }
func (w Word) CreatedAtMillis() int64 { return w.CreatedAt }
func (w Word) Position() (int, bool) {
	if w.DisplayOrder == nil {
		return 0, false
	}
	return *w.DisplayOrder, true
}
