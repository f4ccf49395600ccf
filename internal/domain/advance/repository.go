package advance

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/sitewage/sitewage-backend-go/internal/pkg/period"
)

// AdvanceRepository defines data access for the cash-advance ledger.
// Advances carry no site association, so nothing here takes a site filter.
type AdvanceRepository interface {
	Create(ctx context.Context, adv Advance) (Advance, error)

	// List returns rows inside a period, optionally one labourer's, oldest first.
	List(ctx context.Context, p period.Period, labourerID *string) ([]Advance, error)

	// SumAmount totals one labourer's advances inside a period. An empty
	// range sums to zero.
	SumAmount(ctx context.Context, labourerID string, p period.Period) (decimal.Decimal, error)
}
