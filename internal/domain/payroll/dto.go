package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/sitewage/sitewage-backend-go/internal/pkg/validator"
)

type PayrollReportRequest struct {
	StartDate  string  `json:"start_date"` // YYYY-MM-DD
	EndDate    string  `json:"end_date"`   // YYYY-MM-DD
	SiteID     *string `json:"site_id,omitempty"`
	LabourerID *string `json:"labourer_id,omitempty"`
}

func (r *PayrollReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, valid := validator.IsValidDate(r.StartDate); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	if _, valid := validator.IsValidDate(r.EndDate); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if r.EndDate < r.StartDate {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type MonthlyReportRequest struct {
	Month  string  `json:"month"` // YYYY-MM
	SiteID *string `json:"site_id,omitempty"`
}

func (r *MonthlyReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be in YYYY-MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// PayrollSummaryResponse is one labourer's settlement line for a period.
// CurrentNetPayable covers the period itself; PreviousBalance folds in all
// unsettled history before it, and TotalPayable is the sum of the two.
type PayrollSummaryResponse struct {
	LabourerID          string          `json:"labourer_id"`
	LabourerName        string          `json:"labourer_name"`
	Rate                decimal.Decimal `json:"rate"`
	FullDays            int             `json:"full_days"`
	HalfDays            int             `json:"half_days"`
	AbsentDays          int             `json:"absent_days"`
	Wage                decimal.Decimal `json:"wage"`
	OvertimeAmount      decimal.Decimal `json:"overtime_amount"`
	FoodAllowanceAmount decimal.Decimal `json:"food_allowance_amount"`
	AdvanceAmount       decimal.Decimal `json:"advance_amount"`
	CurrentNetPayable   decimal.Decimal `json:"current_net_payable"`
	PreviousBalance     decimal.Decimal `json:"previous_balance"`
	TotalPayable        decimal.Decimal `json:"total_payable"`
}

type PayrollReportResponse struct {
	StartDate string                   `json:"start_date"`
	EndDate   string                   `json:"end_date"`
	SiteID    *string                  `json:"site_id,omitempty"`
	Summaries []PayrollSummaryResponse `json:"summaries"`
}
