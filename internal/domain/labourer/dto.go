package labourer

import (
	"github.com/shopspring/decimal"

	"github.com/sitewage/sitewage-backend-go/internal/pkg/validator"
)

type CreateLabourerRequest struct {
	Name  string           `json:"name"`
	Phone *string          `json:"phone,omitempty"`
	Rate  *decimal.Decimal `json:"rate,omitempty"`
}

func (r *CreateLabourerRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if r.Rate != nil && !validator.IsNonNegativeAmount(*r.Rate) {
		errs = append(errs, validator.ValidationError{
			Field:   "rate",
			Message: "rate must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateLabourerRequest struct {
	ID       string           `json:"-"`
	Name     *string          `json:"name,omitempty"`
	Phone    *string          `json:"phone,omitempty"`
	Rate     *decimal.Decimal `json:"rate,omitempty"`
	IsActive *bool            `json:"is_active,omitempty"`
}

func (r *UpdateLabourerRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if r.Rate != nil && !validator.IsNonNegativeAmount(*r.Rate) {
		errs = append(errs, validator.ValidationError{
			Field:   "rate",
			Message: "rate must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LabourerResponse struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Phone    *string          `json:"phone,omitempty"`
	Rate     *decimal.Decimal `json:"rate,omitempty"`
	IsActive bool             `json:"is_active"`
}
