package attendance

import (
	"time"
)

// Status is the daily attendance mark for one labourer.
type Status string

const (
	StatusFull   Status = "full"
	StatusHalf   Status = "half"
	StatusAbsent Status = "absent"
)

// Statuses lists every valid attendance status.
var Statuses = []string{string(StatusFull), string(StatusHalf), string(StatusAbsent)}

// Attendance is one labourer's mark for one calendar day. The row is keyed
// by (labourer_id, date) alone: a later submission for the same labourer and
// day at a different site overwrites the earlier row.
type Attendance struct {
	ID           string
	LabourerID   string
	SiteID       string
	SupervisorID string
	Date         string // YYYY-MM-DD
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// DTO
	LabourerName    *string
	DayFoodProvided *bool // joined from the site-day row; nil when no row exists
}

// SiteDay records the submission state for one site on one day. IsLocked is
// terminal: once a day is submitted it can never be reopened through this
// service.
type SiteDay struct {
	ID           string
	SiteID       string
	Date         string // YYYY-MM-DD
	IsLocked     bool
	FoodProvided bool
	SubmittedBy  string
	SubmittedAt  time.Time
}
