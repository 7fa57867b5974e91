// services/excel_service.go
package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/hanbyul-dev/tripnote-backend/models"
	"github.com/hanbyul-dev/tripnote-backend/utils"
	"github.com/xuri/excelize/v2"
)

// ExcelService handles Excel export functionality
type ExcelService struct {
	tripService     *TripService
	expenseService  *ExpenseService
	categoryService *CategoryService
}

// NewExcelService creates a new Excel service
func NewExcelService(tripService *TripService, expenseService *ExpenseService, categoryService *CategoryService) *ExcelService {
	return &ExcelService{
		tripService:     tripService,
		expenseService:  expenseService,
		categoryService: categoryService,
	}
}

// ExportTripToExcel generates an Excel workbook for a trip's expenses
func (s *ExcelService) ExportTripToExcel(tripID, userID string) (*excelize.File, string, error) {
	trip, err := s.tripService.GetTrip(tripID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to get trip: %v", err)
	}

	expenses, err := s.expenseService.List(&models.ListExpensesRequest{TripID: tripID})
	if err != nil {
		return nil, "", fmt.Errorf("failed to get expenses: %v", err)
	}

	stats := CalculateExpenseStats(expenses)

	// Category names for readable labels; an empty map falls back to IDs
	categoryNames := make(map[string]string)
	if categories, err := s.categoryService.List(userID); err == nil {
		for _, c := range categories {
			categoryNames[c.ID] = c.Name
		}
	}

	f := excelize.NewFile()

	if err := s.createSummarySheet(f, trip, stats, categoryNames); err != nil {
		return nil, "", fmt.Errorf("failed to create summary sheet: %v", err)
	}
	if err := s.createExpenseSheet(f, expenses, categoryNames); err != nil {
		return nil, "", fmt.Errorf("failed to create expense sheet: %v", err)
	}

	f.DeleteSheet("Sheet1")

	filename := fmt.Sprintf("%s_Export_%s.xlsx",
		utils.CleanFileName(trip.Title),
		time.Now().Format("2006-01-02"))

	return f, filename, nil
}

// createSummarySheet creates Sheet 1: Summary
func (s *ExcelService) createSummarySheet(f *excelize.File, trip *models.Trip, stats *models.ExpenseStats, categoryNames map[string]string) error {
	sheetName := "Summary"
	f.NewSheet(sheetName)
	sheetIndex, _ := f.GetSheetIndex(sheetName)
	f.SetActiveSheet(sheetIndex)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E6F3FF"}, Pattern: 1},
	})

	f.SetCellValue(sheetName, "A1", trip.Title)
	f.SetCellValue(sheetName, "A2", fmt.Sprintf("%s ~ %s", trip.StartDate, trip.EndDate))

	rows := [][2]interface{}{
		{"Total", stats.Total},
		{"Prepaid", stats.Prepaid},
		{"Paid", stats.Paid},
		{"Planned", stats.Planned},
	}
	f.SetCellValue(sheetName, "A4", "Status")
	f.SetCellValue(sheetName, "B4", fmt.Sprintf("Amount (%s)", utils.BaseCurrency))
	f.SetCellStyle(sheetName, "A4", "B4", headerStyle)
	for i, row := range rows {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", i+5), row[0])
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", i+5), row[1])
	}

	// Category breakdown, sorted by name for consistent output
	type categoryTotal struct {
		Name  string
		Total float64
	}
	var totals []categoryTotal
	for id, total := range stats.CategoryTotals {
		name := categoryNames[id]
		if name == "" {
			name = id
		}
		totals = append(totals, categoryTotal{Name: name, Total: total})
	}
	sort.Slice(totals, func(i, j int) bool {
		return totals[i].Name < totals[j].Name
	})

	startRow := len(rows) + 6
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", startRow), "Category")
	f.SetCellValue(sheetName, fmt.Sprintf("B%d", startRow), fmt.Sprintf("Amount (%s)", utils.BaseCurrency))
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", startRow), fmt.Sprintf("B%d", startRow), headerStyle)
	for i, total := range totals {
		row := startRow + 1 + i
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), total.Name)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), total.Total)
	}

	f.SetColWidth(sheetName, "A", "B", 18)

	return nil
}

// createExpenseSheet creates Sheet 2: Expenses
func (s *ExcelService) createExpenseSheet(f *excelize.File, expenses []models.Expense, categoryNames map[string]string) error {
	sheetName := "Expenses"
	f.NewSheet(sheetName)

	headers := []string{"Date", "Title", "Category", "Currency", "Unit Amount",
		"Quantity", "Rate", fmt.Sprintf("Total (%s)", utils.BaseCurrency), "Status", "Memo"}
	for i, header := range headers {
		cell := fmt.Sprintf("%s1", string(rune('A'+i)))
		f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E6F3FF"}, Pattern: 1},
	})
	lastCol := string(rune('A' + len(headers) - 1))
	f.SetCellStyle(sheetName, "A1", fmt.Sprintf("%s1", lastCol), headerStyle)

	for i, expense := range expenses {
		row := i + 2
		date := ""
		if expense.ExpenseDate != nil {
			date = *expense.ExpenseDate
		}
		category := ""
		if expense.CategoryID != nil {
			category = categoryNames[*expense.CategoryID]
			if category == "" {
				category = *expense.CategoryID
			}
		}
		memo := ""
		if expense.Memo != nil {
			memo = *expense.Memo
		}

		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), date)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), expense.Title)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), category)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), expense.Currency)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), expense.UnitAmount)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), expense.Quantity)
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), expense.ExchangeRate)
		f.SetCellValue(sheetName, fmt.Sprintf("H%d", row), expense.TotalAmountKrw)
		f.SetCellValue(sheetName, fmt.Sprintf("I%d", row), expense.PaymentStatus)
		f.SetCellValue(sheetName, fmt.Sprintf("J%d", row), memo)
	}

	f.SetColWidth(sheetName, "A", lastCol, 12)
	f.SetColWidth(sheetName, "B", "B", 24)

	return nil
}
