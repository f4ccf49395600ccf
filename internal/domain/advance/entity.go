package advance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Advance is a cash payment made to a labourer ahead of payroll. Advances
// are append-only, carry no site association and are never revised through
// this service.
type Advance struct {
	ID         string
	LabourerID string
	Date       string // YYYY-MM-DD
	Amount     decimal.Decimal
	Notes      *string
	CreatedAt  time.Time

	// DTO
	LabourerName *string
}
