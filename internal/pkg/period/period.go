package period

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Dates are carried as zero-padded YYYY-MM-DD strings throughout the ledger,
// so plain string comparison is a correct chronological ordering. Every
// helper here assumes that fixed-width format.

// Period is an inclusive date range. An empty Start means "everything up to
// End", which is how the carry-forward balance addresses all history before a
// report window.
type Period struct {
	Start string
	End   string
}

// Contains reports whether date falls inside the period.
func (p Period) Contains(date string) bool {
	if p.Start != "" && date < p.Start {
		return false
	}
	if p.End != "" && date > p.End {
		return false
	}
	return true
}

// New validates both bounds and their ordering.
func New(start, end string) (Period, error) {
	if !IsValidDate(start) {
		return Period{}, fmt.Errorf("invalid start date %q: want YYYY-MM-DD", start)
	}
	if !IsValidDate(end) {
		return Period{}, fmt.Errorf("invalid end date %q: want YYYY-MM-DD", end)
	}
	if end < start {
		return Period{}, fmt.Errorf("end date %s is before start date %s", end, start)
	}
	return Period{Start: start, End: end}, nil
}

// Month returns the period spanning a calendar month given as YYYY-MM.
func Month(month string) (Period, error) {
	t, err := time.Parse("2006-01", month)
	if err != nil {
		return Period{}, fmt.Errorf("invalid month %q: want YYYY-MM", month)
	}
	start := t.Format(dateLayout)
	end := t.AddDate(0, 1, -1).Format(dateLayout)
	return Period{Start: start, End: end}, nil
}

// HistoryBefore returns the unbounded period covering every date strictly
// before cut.
func HistoryBefore(cut string) Period {
	return Period{End: PrevDay(cut)}
}

// PrevDay returns the calendar day before date. The input must be a valid
// YYYY-MM-DD string.
func PrevDay(date string) string {
	t, _ := time.Parse(dateLayout, date)
	return t.AddDate(0, 0, -1).Format(dateLayout)
}

// IsValidDate reports whether s is a well-formed zero-padded calendar date.
func IsValidDate(s string) bool {
	if len(s) != len(dateLayout) {
		return false
	}
	_, err := time.Parse(dateLayout, s)
	return err == nil
}
