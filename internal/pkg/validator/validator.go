package validator

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// UUID regex: any RFC 4122 version, lowercase hex digits.
var uuidRegex = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[1-8][0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

// UUID validation
func IsValidUUID(uuid string) bool {
	return uuidRegex.MatchString(strings.ToLower(uuid))
}

// Numeric validation
var numericRegex = regexp.MustCompile(`^[0-9]+$`)

func IsNumeric(s string) bool {
	return numericRegex.MatchString(s)
}

// Date validation. The ledger requires the zero-padded fixed-width form:
// "2024-1-5" must be rejected even though time.Parse would accept a
// round-trip, because date ordering elsewhere is lexical.
func IsValidDate(dateStr string) (time.Time, bool) {
	if len(dateStr) != len("2006-01-02") {
		return time.Time{}, false
	}
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// Month validation, "YYYY-MM".
func IsValidMonth(monthStr string) bool {
	if len(monthStr) != len("2006-01") {
		return false
	}
	_, err := time.Parse("2006-01", monthStr)
	return err == nil
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}

// Itoa converts an integer to a string.
func Itoa(i int) string {
	return strconv.Itoa(i)
}

// IsNonNegativeAmount reports whether a monetary amount is zero or positive.
func IsNonNegativeAmount(d decimal.Decimal) bool {
	return !d.IsNegative()
}

// IsPositiveAmount reports whether a monetary amount is strictly positive.
func IsPositiveAmount(d decimal.Decimal) bool {
	return d.IsPositive()
}
