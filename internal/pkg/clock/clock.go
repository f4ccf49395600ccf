package clock

import "time"

// Clock provides the current calendar date. Submission validation and the
// payroll carry-forward cut both depend on "today", so the time source is
// injected rather than read from the wall clock directly.
type Clock interface {
	// Today returns the current local calendar date as YYYY-MM-DD.
	Today() string
}

// System reads the machine's local time.
type System struct{}

func (System) Today() string {
	return time.Now().Format("2006-01-02")
}

// Fixed always reports the same date. Test use.
type Fixed struct {
	Date string
}

func (f Fixed) Today() string {
	return f.Date
}
