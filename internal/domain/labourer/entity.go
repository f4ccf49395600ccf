package labourer

import (
	"time"

	"github.com/shopspring/decimal"
)

// Labourer carries the daily wage unit in Rate. A labourer without an
// agreed rate has a nil Rate and computes as zero in payroll.
type Labourer struct {
	ID        string
	Name      string
	Phone     *string
	Rate      *decimal.Decimal
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
