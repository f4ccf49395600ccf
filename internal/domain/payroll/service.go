package payroll

import "context"

// PayrollService aggregates attendance, overtime and advances into
// settlement reports. It writes nothing.
type PayrollService interface {
	// GetReport builds per-labourer summaries for an arbitrary date range.
	GetReport(ctx context.Context, req PayrollReportRequest) (PayrollReportResponse, error)

	// GetMonthlyReport is GetReport over one calendar month.
	GetMonthlyReport(ctx context.Context, req MonthlyReportRequest) (PayrollReportResponse, error)
}
