package response

import (
	"errors"
	"net/http"

	"github.com/sitewage/sitewage-backend-go/internal/domain/advance"
	"github.com/sitewage/sitewage-backend-go/internal/domain/attendance"
	"github.com/sitewage/sitewage-backend-go/internal/domain/labourer"
	"github.com/sitewage/sitewage-backend-go/internal/domain/overtime"
	"github.com/sitewage/sitewage-backend-go/internal/domain/site"
	"github.com/sitewage/sitewage-backend-go/internal/pkg/database"
	"github.com/sitewage/sitewage-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Attendance domain errors
	case errors.Is(err, attendance.ErrDayLocked):
		Conflict(w, "Attendance for this site and date is already submitted and locked")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Registry errors
	case errors.Is(err, labourer.ErrLabourerNotFound):
		NotFound(w, "Labourer not found")
	case errors.Is(err, site.ErrSiteNotFound):
		NotFound(w, "Site not found")
	case errors.Is(err, site.ErrSiteNameExists):
		Conflict(w, "Site name already exists")

	// Supplementary ledger errors
	case errors.Is(err, overtime.ErrOvertimeNotFound):
		NotFound(w, "Overtime record not found")
	case errors.Is(err, advance.ErrAdvanceNotFound):
		NotFound(w, "Advance record not found")

	// Store failures are retryable by the caller: preconditions are
	// re-checked on every submission attempt.
	case database.IsStoreError(err):
		ServiceUnavailable(w, "Record store temporarily unavailable, please retry")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
