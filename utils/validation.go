package utils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// ValidateRequired checks if a string field is not empty
func ValidateRequired(value, fieldName string) error {
	if strings.TrimSpace(value) == "" {
		return NewValidationError(fmt.Sprintf("%s is required", fieldName))
	}
	return nil
}

// ValidatePositive checks if a number is positive
func ValidatePositive(value float64, fieldName string) error {
	if value <= 0 {
		return NewValidationError(fmt.Sprintf("%s must be positive", fieldName))
	}
	return nil
}

// ValidateNonNegative checks if a number is non-negative
func ValidateNonNegative(value float64, fieldName string) error {
	if value < 0 {
		return NewValidationError(fmt.Sprintf("%s cannot be negative", fieldName))
	}
	return nil
}

// ValidateDate checks that a value is a YYYY-MM-DD calendar date
func ValidateDate(value, fieldName string) error {
	if _, err := time.Parse("2006-01-02", value); err != nil {
		return NewValidationError(fmt.Sprintf("%s must be a YYYY-MM-DD date", fieldName))
	}
	return nil
}

// ValidateDateRange checks that start and end are dates and start <= end
func ValidateDateRange(start, end string) error {
	if err := ValidateDate(start, "start date"); err != nil {
		return err
	}
	if err := ValidateDate(end, "end date"); err != nil {
		return err
	}
	if start > end {
		return NewValidationError("start date must not be after end date")
	}
	return nil
}

// ValidateHexColor checks a #RRGGBB color value
func ValidateHexColor(value, fieldName string) error {
	if !hexColorPattern.MatchString(value) {
		return NewValidationError(fmt.Sprintf("%s must be a #RRGGBB color", fieldName))
	}
	return nil
}

// ValidatePaymentStatus checks an expense payment status value
func ValidatePaymentStatus(value string) error {
	switch value {
	case PaymentStatusPlanned, PaymentStatusPaid, PaymentStatusPrepaid:
		return nil
	}
	return NewValidationError("payment status must be planned, paid or prepaid")
}
