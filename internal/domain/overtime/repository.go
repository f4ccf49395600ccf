package overtime

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/sitewage/sitewage-backend-go/internal/pkg/period"
)

// OvertimeRepository defines data access for the overtime ledger.
type OvertimeRepository interface {
	// Upsert inserts the row or, when a row for (labourer_id, date) already
	// exists, replaces its hours, amount, site and notes.
	Upsert(ctx context.Context, ot Overtime) (Overtime, error)

	// List returns rows inside a period, optionally filtered by labourer
	// and site, oldest first.
	List(ctx context.Context, p period.Period, labourerID *string, siteID *string) ([]Overtime, error)

	// SumAmount totals one labourer's overtime amounts inside a period.
	// An empty range sums to zero.
	SumAmount(ctx context.Context, labourerID string, p period.Period, siteID *string) (decimal.Decimal, error)
}
