package attendance

import (
	"strings"

	"github.com/sitewage/sitewage-backend-go/internal/pkg/validator"
)

// ========================================
// SUBMISSION DTOs
// ========================================

// SubmitAttendanceEntry is one labourer's mark inside a submission batch.
// SiteID and Date are optional; when present they must match the batch
// header, otherwise the whole submission is rejected.
type SubmitAttendanceEntry struct {
	LabourerID string  `json:"labourer_id"`
	Status     string  `json:"status"`
	SiteID     *string `json:"site_id,omitempty"`
	Date       *string `json:"date,omitempty"`
}

type SubmitAttendanceRequest struct {
	SiteID       string                  `json:"site_id"`
	Date         string                  `json:"date"` // YYYY-MM-DD
	FoodProvided bool                    `json:"food_provided"`
	Records      []SubmitAttendanceEntry `json:"records"`
}

func (r *SubmitAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

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

	if len(r.Records) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "records",
			Message: "at least one attendance record is required",
		})
	}

	seen := make(map[string]bool, len(r.Records))
	for i, rec := range r.Records {
		field := "records[" + validator.Itoa(i) + "]"

		if validator.IsEmpty(rec.LabourerID) {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".labourer_id",
				Message: "labourer_id is required",
			})
		} else if seen[rec.LabourerID] {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".labourer_id",
				Message: "labourer appears more than once in the batch",
			})
		}
		seen[rec.LabourerID] = true

		if !validator.IsInSlice(strings.ToLower(rec.Status), Statuses) {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".status",
				Message: "status must be one of: full, half, absent",
			})
		}

		// Homogeneity: every record belongs to the batch's site and date.
		if rec.SiteID != nil && *rec.SiteID != r.SiteID {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".site_id",
				Message: "record site_id does not match the batch site_id",
			})
		}
		if rec.Date != nil && *rec.Date != r.Date {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".date",
				Message: "record date does not match the batch date",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SubmitAttendanceResponse struct {
	SiteID       string `json:"site_id"`
	Date         string `json:"date"`
	FoodProvided bool   `json:"food_provided"`
	RecordCount  int    `json:"record_count"`
	SubmittedBy  string `json:"submitted_by"`
	SubmittedAt  string `json:"submitted_at"`
}

// ========================================
// QUERY DTOs
// ========================================

type LockStatusResponse struct {
	SiteID       string `json:"site_id"`
	Date         string `json:"date"`
	IsLocked     bool   `json:"is_locked"`
	FoodProvided bool   `json:"food_provided"`
}

type AttendanceFilter struct {
	Date   string  `json:"date"` // YYYY-MM-DD, required
	SiteID *string `json:"site_id,omitempty"`
}

func (f *AttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if _, valid := validator.IsValidDate(f.Date); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if f.SiteID != nil && validator.IsEmpty(*f.SiteID) {
		errs = append(errs, validator.ValidationError{
			Field:   "site_id",
			Message: "site_id must not be empty when provided",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceResponse struct {
	ID           string  `json:"id"`
	LabourerID   string  `json:"labourer_id"`
	LabourerName *string `json:"labourer_name,omitempty"`
	SiteID       string  `json:"site_id"`
	SupervisorID string  `json:"supervisor_id"`
	Date         string  `json:"date"`
	Status       string  `json:"status"`
}
