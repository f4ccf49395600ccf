package advance

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-chi/jwtauth/v5"

	"github.com/sitewage/sitewage-backend-go/internal/domain/advance"
	"github.com/sitewage/sitewage-backend-go/internal/pkg/clock"
	"github.com/sitewage/sitewage-backend-go/internal/pkg/period"
	"github.com/sitewage/sitewage-backend-go/internal/pkg/validator"
)

type AdvanceServiceImpl struct {
	advanceRepo advance.AdvanceRepository
	clock       clock.Clock
}

func NewAdvanceService(advanceRepo advance.AdvanceRepository, clk clock.Clock) advance.AdvanceService {
	return &AdvanceServiceImpl{advanceRepo: advanceRepo, clock: clk}
}

// RecordAdvance appends one cash advance. Advances are never revised or
// deleted through this service.
func (s *AdvanceServiceImpl) RecordAdvance(ctx context.Context, req advance.RecordAdvanceRequest) (advance.AdvanceResponse, error) {
	token, _, err := jwtauth.FromContext(ctx)
	if err != nil {
		return advance.AdvanceResponse{}, fmt.Errorf("failed to get claims from context: %w", err)
	}
	if token == nil {
		return advance.AdvanceResponse{}, fmt.Errorf("missing access token")
	}

	if err := req.Validate(); err != nil {
		return advance.AdvanceResponse{}, err
	}

	if req.Date > s.clock.Today() {
		return advance.AdvanceResponse{}, validator.ValidationErrors{
			{Field: "date", Message: "date must not be in the future"},
		}
	}

	var notes *string
	if req.Notes != nil && !validator.IsEmpty(*req.Notes) {
		trimmed := strings.TrimSpace(*req.Notes)
		notes = &trimmed
	}

	saved, err := s.advanceRepo.Create(ctx, advance.Advance{
		LabourerID: req.LabourerID,
		Date:       req.Date,
		Amount:     req.Amount,
		Notes:      notes,
	})
	if err != nil {
		return advance.AdvanceResponse{}, err
	}

	return toResponse(saved), nil
}

// ListAdvances returns entries inside a date range.
func (s *AdvanceServiceImpl) ListAdvances(ctx context.Context, filter advance.AdvanceFilter) ([]advance.AdvanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	p, err := period.New(filter.StartDate, filter.EndDate)
	if err != nil {
		return nil, err
	}

	rows, err := s.advanceRepo.List(ctx, p, filter.LabourerID)
	if err != nil {
		return nil, err
	}

	responses := make([]advance.AdvanceResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, toResponse(row))
	}
	return responses, nil
}

func toResponse(adv advance.Advance) advance.AdvanceResponse {
	return advance.AdvanceResponse{
		ID:           adv.ID,
		LabourerID:   adv.LabourerID,
		LabourerName: adv.LabourerName,
		Date:         adv.Date,
		Amount:       adv.Amount,
		Notes:        adv.Notes,
	}
}
