package overtime

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-chi/jwtauth/v5"

	"github.com/sitewage/sitewage-backend-go/internal/domain/overtime"
	"github.com/sitewage/sitewage-backend-go/internal/pkg/clock"
	"github.com/sitewage/sitewage-backend-go/internal/pkg/period"
	"github.com/sitewage/sitewage-backend-go/internal/pkg/validator"
)

type OvertimeServiceImpl struct {
	overtimeRepo overtime.OvertimeRepository
	clock        clock.Clock
}

func NewOvertimeService(overtimeRepo overtime.OvertimeRepository, clk clock.Clock) overtime.OvertimeService {
	return &OvertimeServiceImpl{overtimeRepo: overtimeRepo, clock: clk}
}

// RecordOvertime upserts one labourer's overtime for a day. Resubmitting
// the same day replaces the earlier entry.
func (s *OvertimeServiceImpl) RecordOvertime(ctx context.Context, req overtime.RecordOvertimeRequest) (overtime.OvertimeResponse, error) {
	token, _, err := jwtauth.FromContext(ctx)
	if err != nil {
		return overtime.OvertimeResponse{}, fmt.Errorf("failed to get claims from context: %w", err)
	}
	if token == nil {
		return overtime.OvertimeResponse{}, fmt.Errorf("missing access token")
	}

	if err := req.Validate(); err != nil {
		return overtime.OvertimeResponse{}, err
	}

	if req.Date > s.clock.Today() {
		return overtime.OvertimeResponse{}, validator.ValidationErrors{
			{Field: "date", Message: "date must not be in the future"},
		}
	}

	var notes *string
	if req.Notes != nil && !validator.IsEmpty(*req.Notes) {
		trimmed := strings.TrimSpace(*req.Notes)
		notes = &trimmed
	}

	saved, err := s.overtimeRepo.Upsert(ctx, overtime.Overtime{
		LabourerID: req.LabourerID,
		SiteID:     req.SiteID,
		Date:       req.Date,
		Hours:      req.Hours,
		Amount:     req.Amount,
		Notes:      notes,
	})
	if err != nil {
		return overtime.OvertimeResponse{}, err
	}

	return toResponse(saved), nil
}

// ListOvertime returns entries inside a date range.
func (s *OvertimeServiceImpl) ListOvertime(ctx context.Context, filter overtime.OvertimeFilter) ([]overtime.OvertimeResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	p, err := period.New(filter.StartDate, filter.EndDate)
	if err != nil {
		return nil, err
	}

	rows, err := s.overtimeRepo.List(ctx, p, filter.LabourerID, filter.SiteID)
	if err != nil {
		return nil, err
	}

	responses := make([]overtime.OvertimeResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, toResponse(row))
	}
	return responses, nil
}

func toResponse(ot overtime.Overtime) overtime.OvertimeResponse {
	return overtime.OvertimeResponse{
		ID:           ot.ID,
		LabourerID:   ot.LabourerID,
		LabourerName: ot.LabourerName,
		SiteID:       ot.SiteID,
		Date:         ot.Date,
		Hours:        ot.Hours,
		Amount:       ot.Amount,
		Notes:        ot.Notes,
	}
}
