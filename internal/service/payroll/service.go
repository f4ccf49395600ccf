package payroll

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/sitewage/sitewage-backend-go/internal/domain/advance"
	"github.com/sitewage/sitewage-backend-go/internal/domain/attendance"
	"github.com/sitewage/sitewage-backend-go/internal/domain/labourer"
	"github.com/sitewage/sitewage-backend-go/internal/domain/overtime"
	"github.com/sitewage/sitewage-backend-go/internal/domain/payroll"
	"github.com/sitewage/sitewage-backend-go/internal/pkg/period"
)

var (
	hoursFullDay  = decimal.NewFromInt(8)
	hoursHalfDay  = decimal.NewFromInt(4)
	foodAllowance = decimal.NewFromInt(70) // per eligible day
)

type PayrollServiceImpl struct {
	labourerRepo   labourer.LabourerRepository
	attendanceRepo attendance.AttendanceRepository
	overtimeRepo   overtime.OvertimeRepository
	advanceRepo    advance.AdvanceRepository
}

func NewPayrollService(
	labourerRepo labourer.LabourerRepository,
	attendanceRepo attendance.AttendanceRepository,
	overtimeRepo overtime.OvertimeRepository,
	advanceRepo advance.AdvanceRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		labourerRepo:   labourerRepo,
		attendanceRepo: attendanceRepo,
		overtimeRepo:   overtimeRepo,
		advanceRepo:    advanceRepo,
	}
}

// GetReport implements payroll.PayrollService. Summaries are recomputed
// from the ledgers on every call; nothing here is cached or persisted, so
// the report always reflects the latest submissions.
func (s *PayrollServiceImpl) GetReport(ctx context.Context, req payroll.PayrollReportRequest) (payroll.PayrollReportResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollReportResponse{}, err
	}

	p, err := period.New(req.StartDate, req.EndDate)
	if err != nil {
		return payroll.PayrollReportResponse{}, err
	}

	var labourers []labourer.Labourer
	if req.LabourerID != nil {
		lab, err := s.labourerRepo.GetByID(ctx, *req.LabourerID)
		if err != nil {
			return payroll.PayrollReportResponse{}, err
		}
		labourers = []labourer.Labourer{lab}
	} else {
		// Inactive labourers stay in the report: they may still carry an
		// unsettled balance.
		labourers, err = s.labourerRepo.List(ctx, false)
		if err != nil {
			return payroll.PayrollReportResponse{}, err
		}
	}

	summaries := make([]payroll.PayrollSummaryResponse, 0, len(labourers))
	for _, lab := range labourers {
		summary, err := s.summarize(ctx, lab, p, req.SiteID)
		if err != nil {
			return payroll.PayrollReportResponse{}, err
		}
		summaries = append(summaries, summary)
	}

	return payroll.PayrollReportResponse{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		SiteID:    req.SiteID,
		Summaries: summaries,
	}, nil
}

// GetMonthlyReport implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetMonthlyReport(ctx context.Context, req payroll.MonthlyReportRequest) (payroll.PayrollReportResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollReportResponse{}, err
	}

	p, err := period.Month(req.Month)
	if err != nil {
		return payroll.PayrollReportResponse{}, err
	}

	return s.GetReport(ctx, payroll.PayrollReportRequest{
		StartDate: p.Start,
		EndDate:   p.End,
		SiteID:    req.SiteID,
	})
}

// summarize builds one labourer's settlement line. The previous balance
// runs the same computation over the unbounded period before the window, a
// full history re-scan on every call so the figure is always consistent
// with the ledgers.
func (s *PayrollServiceImpl) summarize(ctx context.Context, lab labourer.Labourer, p period.Period, siteID *string) (payroll.PayrollSummaryResponse, error) {
	rate := decimal.Zero
	if lab.Rate != nil {
		rate = *lab.Rate
	}

	current, err := s.netForPeriod(ctx, lab.ID, rate, p, siteID)
	if err != nil {
		return payroll.PayrollSummaryResponse{}, err
	}

	previous, err := s.netForPeriod(ctx, lab.ID, rate, period.HistoryBefore(p.Start), siteID)
	if err != nil {
		return payroll.PayrollSummaryResponse{}, err
	}

	return payroll.PayrollSummaryResponse{
		LabourerID:          lab.ID,
		LabourerName:        lab.Name,
		Rate:                rate,
		FullDays:            current.fullDays,
		HalfDays:            current.halfDays,
		AbsentDays:          current.absentDays,
		Wage:                current.wage,
		OvertimeAmount:      current.overtimeAmount,
		FoodAllowanceAmount: current.foodAllowanceAmount,
		AdvanceAmount:       current.advanceAmount,
		CurrentNetPayable:   current.net,
		PreviousBalance:     previous.net,
		TotalPayable:        previous.net.Add(current.net),
	}, nil
}

type periodTotals struct {
	fullDays            int
	halfDays            int
	absentDays          int
	wage                decimal.Decimal
	overtimeAmount      decimal.Decimal
	foodAllowanceAmount decimal.Decimal
	advanceAmount       decimal.Decimal
	net                 decimal.Decimal
}

// netForPeriod runs the five-step aggregation for one labourer and period.
// Advances are deliberately never site-filtered: they are debts against the
// labourer, not against a site.
func (s *PayrollServiceImpl) netForPeriod(ctx context.Context, labourerID string, rate decimal.Decimal, p period.Period, siteID *string) (periodTotals, error) {
	rows, err := s.attendanceRepo.ListForPayroll(ctx, labourerID, p, siteID)
	if err != nil {
		return periodTotals{}, err
	}

	overtimeAmount, err := s.overtimeRepo.SumAmount(ctx, labourerID, p, siteID)
	if err != nil {
		return periodTotals{}, err
	}

	advanceAmount, err := s.advanceRepo.SumAmount(ctx, labourerID, p)
	if err != nil {
		return periodTotals{}, err
	}

	totals := computeTotals(rate, rows)
	totals.overtimeAmount = overtimeAmount
	totals.advanceAmount = advanceAmount
	totals.net = totals.wage.Add(overtimeAmount).Add(totals.foodAllowanceAmount).Sub(advanceAmount)

	return totals, nil
}

// computeTotals folds attendance rows into day counts, wage and food
// allowance. A full day pays 8 rate units and a half day 4. The allowance
// credits 70 per worked day unless that day's site-day row says food was
// provided; a missing row counts as not provided.
func computeTotals(rate decimal.Decimal, rows []attendance.Attendance) periodTotals {
	totals := periodTotals{
		wage:                decimal.Zero,
		overtimeAmount:      decimal.Zero,
		foodAllowanceAmount: decimal.Zero,
		advanceAmount:       decimal.Zero,
		net:                 decimal.Zero,
	}

	for _, row := range rows {
		switch row.Status {
		case attendance.StatusFull:
			totals.fullDays++
		case attendance.StatusHalf:
			totals.halfDays++
		case attendance.StatusAbsent:
			totals.absentDays++
			continue
		default:
			continue
		}

		if row.DayFoodProvided == nil || !*row.DayFoodProvided {
			totals.foodAllowanceAmount = totals.foodAllowanceAmount.Add(foodAllowance)
		}
	}

	full := decimal.NewFromInt(int64(totals.fullDays))
	half := decimal.NewFromInt(int64(totals.halfDays))
	totals.wage = full.Mul(hoursFullDay).Mul(rate).Add(half.Mul(hoursHalfDay).Mul(rate))

	return totals
}
