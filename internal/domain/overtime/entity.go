package overtime

import (
	"time"

	"github.com/shopspring/decimal"
)

// Overtime is one labourer's extra-hours entry for one day. Rows are keyed
// by (labourer_id, date): a later submission for the same day replaces
// hours, amount and site instead of creating a duplicate.
type Overtime struct {
	ID         string
	LabourerID string
	SiteID     string
	Date       string // YYYY-MM-DD
	Hours      decimal.Decimal
	Amount     decimal.Decimal
	Notes      *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO
	LabourerName *string
}
