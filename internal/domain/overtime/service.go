package overtime

import "context"

// OvertimeService defines business logic for the overtime ledger.
type OvertimeService interface {
	// RecordOvertime upserts one labourer's overtime entry for a day.
	RecordOvertime(ctx context.Context, req RecordOvertimeRequest) (OvertimeResponse, error)

	// ListOvertime returns entries inside a date range.
	ListOvertime(ctx context.Context, filter OvertimeFilter) ([]OvertimeResponse, error)
}
