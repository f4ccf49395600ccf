package advance

import "context"

// AdvanceService defines business logic for the cash-advance ledger.
type AdvanceService interface {
	// RecordAdvance appends one cash advance.
	RecordAdvance(ctx context.Context, req RecordAdvanceRequest) (AdvanceResponse, error)

	// ListAdvances returns entries inside a date range.
	ListAdvances(ctx context.Context, filter AdvanceFilter) ([]AdvanceResponse, error)
}
