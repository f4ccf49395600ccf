package advance

import (
	"github.com/shopspring/decimal"

	"github.com/sitewage/sitewage-backend-go/internal/pkg/validator"
)

type RecordAdvanceRequest struct {
	LabourerID string          `json:"labourer_id"`
	Date       string          `json:"date"` // YYYY-MM-DD
	Amount     decimal.Decimal `json:"amount"`
	Notes      *string         `json:"notes,omitempty"`
}

func (r *RecordAdvanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LabourerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "labourer_id",
			Message: "labourer_id is required",
		})
	}

	if _, valid := validator.IsValidDate(r.Date); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if !validator.IsPositiveAmount(r.Amount) {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must be greater than zero",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AdvanceFilter struct {
	StartDate  string  `json:"start_date"` // YYYY-MM-DD
	EndDate    string  `json:"end_date"`   // YYYY-MM-DD
	LabourerID *string `json:"labourer_id,omitempty"`
}

func (f *AdvanceFilter) Validate() error {
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

type AdvanceResponse struct {
	ID           string          `json:"id"`
	LabourerID   string          `json:"labourer_id"`
	LabourerName *string         `json:"labourer_name,omitempty"`
	Date         string          `json:"date"`
	Amount       decimal.Decimal `json:"amount"`
	Notes        *string         `json:"notes,omitempty"`
}
