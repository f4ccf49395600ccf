package attendance

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/sitewage/sitewage-backend-go/internal/domain/attendance"
	"github.com/sitewage/sitewage-backend-go/internal/pkg/clock"
	"github.com/sitewage/sitewage-backend-go/internal/pkg/database"
	"github.com/sitewage/sitewage-backend-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	siteDayRepo    attendance.SiteDayRepository
	txManager      database.TxManager
	clock          clock.Clock
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	siteDayRepo attendance.SiteDayRepository,
	txManager database.TxManager,
	clk clock.Clock,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		siteDayRepo:    siteDayRepo,
		txManager:      txManager,
		clock:          clk,
	}
}

// SubmitAttendance implements attendance.AttendanceService. The site-day
// lock row is written first inside the transaction; if that insert loses a
// race or finds the day already locked, the whole batch rolls back untouched.
func (s *AttendanceServiceImpl) SubmitAttendance(ctx context.Context, req attendance.SubmitAttendanceRequest) (attendance.SubmitAttendanceResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return attendance.SubmitAttendanceResponse{}, fmt.Errorf("failed to get claims from context: %w", err)
	}

	supervisorID, ok := claims["supervisor_id"].(string)
	if !ok {
		return attendance.SubmitAttendanceResponse{}, fmt.Errorf("supervisor_id not found in claims")
	}

	if err := req.Validate(); err != nil {
		return attendance.SubmitAttendanceResponse{}, err
	}

	if req.Date > s.clock.Today() {
		return attendance.SubmitAttendanceResponse{}, validator.ValidationErrors{
			{Field: "date", Message: "date must not be in the future"},
		}
	}

	var day attendance.SiteDay
	err = s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		day, err = s.siteDayRepo.Lock(ctx, attendance.SiteDay{
			SiteID:       req.SiteID,
			Date:         req.Date,
			FoodProvided: req.FoodProvided,
			SubmittedBy:  supervisorID,
		})
		if err != nil {
			return err
		}

		for _, rec := range req.Records {
			_, err := s.attendanceRepo.Upsert(ctx, attendance.Attendance{
				LabourerID:   rec.LabourerID,
				SiteID:       req.SiteID,
				SupervisorID: supervisorID,
				Date:         req.Date,
				Status:       attendance.Status(strings.ToLower(rec.Status)),
			})
			if err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return attendance.SubmitAttendanceResponse{}, err
	}

	return attendance.SubmitAttendanceResponse{
		SiteID:       day.SiteID,
		Date:         day.Date,
		FoodProvided: day.FoodProvided,
		RecordCount:  len(req.Records),
		SubmittedBy:  day.SubmittedBy,
		SubmittedAt:  day.SubmittedAt.Format(time.RFC3339),
	}, nil
}

// GetLockStatus implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetLockStatus(ctx context.Context, siteID string, date string) (attendance.LockStatusResponse, error) {
	var errs validator.ValidationErrors
	if validator.IsEmpty(siteID) {
		errs = append(errs, validator.ValidationError{Field: "site_id", Message: "site_id is required"})
	}
	if _, valid := validator.IsValidDate(date); !valid {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"})
	}
	if len(errs) > 0 {
		return attendance.LockStatusResponse{}, errs
	}

	day, err := s.siteDayRepo.Get(ctx, siteID, date)
	if err != nil {
		return attendance.LockStatusResponse{}, err
	}

	resp := attendance.LockStatusResponse{SiteID: siteID, Date: date}
	if day != nil {
		resp.IsLocked = day.IsLocked
		resp.FoodProvided = day.FoodProvided
	}

	return resp, nil
}

// GetAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetAttendance(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.AttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	rows, err := s.attendanceRepo.ListByDate(ctx, filter.Date, filter.SiteID)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(rows))
	for _, att := range rows {
		responses = append(responses, attendance.AttendanceResponse{
			ID:           att.ID,
			LabourerID:   att.LabourerID,
			LabourerName: att.LabourerName,
			SiteID:       att.SiteID,
			SupervisorID: att.SupervisorID,
			Date:         att.Date,
			Status:       string(att.Status),
		})
	}

	return responses, nil
}
