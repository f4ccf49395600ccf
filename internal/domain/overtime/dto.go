package overtime

import (
	"github.com/shopspring/decimal"

	"github.com/sitewage/sitewage-backend-go/internal/pkg/validator"
)

type RecordOvertimeRequest struct {
	LabourerID string          `json:"labourer_id"`
	SiteID     string          `json:"site_id"`
	Date       string          `json:"date"` // YYYY-MM-DD
	Hours      decimal.Decimal `json:"hours"`
	Amount     decimal.Decimal `json:"amount"`
	Notes      *string         `json:"notes,omitempty"`
}

func (r *RecordOvertimeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LabourerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "labourer_id",
			Message: "labourer_id is required",
		})
	}

	if validator.IsEmpty(r.SiteID) {
		errs = append(errs, validator.ValidationError{
			Field:   "site_id",
			Message: "site_id is required",
		})
	}

	if _, valid := validator.IsValidDate(r.Date); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if !validator.IsPositiveAmount(r.Hours) {
		errs = append(errs, validator.ValidationError{
			Field:   "hours",
			Message: "hours must be greater than zero",
		})
	}

	if !validator.IsNonNegativeAmount(r.Amount) {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type OvertimeFilter struct {
	StartDate  string  `json:"start_date"` // YYYY-MM-DD
	EndDate    string  `json:"end_date"`   // YYYY-MM-DD
	LabourerID *string `json:"labourer_id,omitempty"`
	SiteID     *string `json:"site_id,omitempty"`
}

func (f *OvertimeFilter) Validate() error {
	var errs validator.ValidationErrors

	if _, valid := validator.IsValidDate(f.StartDate); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	if _, valid := validator.IsValidDate(f.EndDate); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if f.EndDate < f.StartDate {
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

type OvertimeResponse struct {
	ID           string          `json:"id"`
	LabourerID   string          `json:"labourer_id"`
	LabourerName *string         `json:"labourer_name,omitempty"`
	SiteID       string          `json:"site_id"`
	Date         string          `json:"date"`
	Hours        decimal.Decimal `json:"hours"`
	Amount       decimal.Decimal `json:"amount"`
	Notes        *string         `json:"notes,omitempty"`
}
