package payroll

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitewage/sitewage-backend-go/internal/domain/advance"
	"github.com/sitewage/sitewage-backend-go/internal/domain/attendance"
	"github.com/sitewage/sitewage-backend-go/internal/domain/labourer"
	"github.com/sitewage/sitewage-backend-go/internal/domain/overtime"
	"github.com/sitewage/sitewage-backend-go/internal/domain/payroll"
	"github.com/sitewage/sitewage-backend-go/internal/repository/memory"
)

func newTestService(store *memory.Store) payroll.PayrollService {
	return NewPayrollService(store.Labourers(), store, store.Overtimes(), store.Advances())
}

func seedLabourer(t *testing.T, store *memory.Store, name string, rate int64) labourer.Labourer {
	t.Helper()
	r := decimal.NewFromInt(rate)
	lab, err := store.Labourers().Create(context.Background(), labourer.Labourer{
		Name: name, Rate: &r, IsActive: true,
	})
	require.NoError(t, err)
	return lab
}

func seedAttendance(t *testing.T, store *memory.Store, labourerID, siteID, date string, status attendance.Status) {
	t.Helper()
	_, err := store.Upsert(context.Background(), attendance.Attendance{
		LabourerID: labourerID, SiteID: siteID, SupervisorID: "sup-1", Date: date, Status: status,
	})
	require.NoError(t, err)
}

func seedSiteDay(t *testing.T, store *memory.Store, siteID, date string, foodProvided bool) {
	t.Helper()
	_, err := store.Lock(context.Background(), attendance.SiteDay{
		SiteID: siteID, Date: date, FoodProvided: foodProvided, SubmittedBy: "sup-1",
	})
	require.NoError(t, err)
}

func seedOvertime(t *testing.T, store *memory.Store, labourerID, siteID, date string, amount int64) {
	t.Helper()
	_, err := store.Overtimes().Upsert(context.Background(), overtime.Overtime{
		LabourerID: labourerID, SiteID: siteID, Date: date,
		Hours:  decimal.NewFromInt(2),
		Amount: decimal.NewFromInt(amount),
	})
	require.NoError(t, err)
}

func seedAdvance(t *testing.T, store *memory.Store, labourerID, date string, amount int64) {
	t.Helper()
	_, err := store.Advances().Create(context.Background(), advance.Advance{
		LabourerID: labourerID, Date: date, Amount: decimal.NewFromInt(amount),
	})
	require.NoError(t, err)
}

func assertAmount(t *testing.T, expected int64, actual decimal.Decimal, label string) {
	t.Helper()
	assert.True(t, actual.Equal(decimal.NewFromInt(expected)),
		"%s: expected %d, got %s", label, expected, actual.String())
}

func reportOne(t *testing.T, svc payroll.PayrollService, req payroll.PayrollReportRequest) payroll.PayrollSummaryResponse {
	t.Helper()
	resp, err := svc.GetReport(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, resp.Summaries, 1)
	return resp.Summaries[0]
}

func TestComputeTotals_WageFormula(t *testing.T) {
	rate := decimal.NewFromInt(500)
	food := true
	rows := []attendance.Attendance{
		{Date: "2024-05-02", Status: attendance.StatusFull, DayFoodProvided: &food},
		{Date: "2024-05-03", Status: attendance.StatusHalf, DayFoodProvided: &food},
	}

	totals := computeTotals(rate, rows)

	assert.Equal(t, 1, totals.fullDays)
	assert.Equal(t, 1, totals.halfDays)
	assert.Equal(t, 0, totals.absentDays)
	assertAmount(t, 6000, totals.wage, "wage") // 1*8*500 + 1*4*500
	assertAmount(t, 0, totals.foodAllowanceAmount, "food allowance")
}

func TestComputeTotals_FoodAllowance(t *testing.T) {
	rate := decimal.NewFromInt(500)
	notProvided := false
	rows := []attendance.Attendance{
		{Date: "2024-05-02", Status: attendance.StatusFull, DayFoodProvided: &notProvided},
		{Date: "2024-05-03", Status: attendance.StatusHalf, DayFoodProvided: nil}, // no site-day row
		{Date: "2024-05-04", Status: attendance.StatusAbsent, DayFoodProvided: &notProvided},
	}

	totals := computeTotals(rate, rows)

	// 70 per worked day without food; absent days never earn the allowance.
	assertAmount(t, 140, totals.foodAllowanceAmount, "food allowance")
}

func TestGetReport_CanonicalScenario(t *testing.T) {
	store := memory.NewStore()
	svc := newTestService(store)
	lab := seedLabourer(t, store, "Ramesh", 500)

	seedAttendance(t, store, lab.ID, "site-a", "2024-05-02", attendance.StatusFull)
	seedAttendance(t, store, lab.ID, "site-a", "2024-05-03", attendance.StatusHalf)
	seedSiteDay(t, store, "site-a", "2024-05-02", true)
	seedSiteDay(t, store, "site-a", "2024-05-03", true)
	seedOvertime(t, store, lab.ID, "site-a", "2024-05-02", 200)
	seedAdvance(t, store, lab.ID, "2024-05-04", 100)

	summary := reportOne(t, svc, payroll.PayrollReportRequest{
		StartDate: "2024-05-01", EndDate: "2024-05-31",
	})

	assert.Equal(t, lab.ID, summary.LabourerID)
	assert.Equal(t, 1, summary.FullDays)
	assert.Equal(t, 1, summary.HalfDays)
	assertAmount(t, 500, summary.Rate, "rate")
	assertAmount(t, 6000, summary.Wage, "wage")
	assertAmount(t, 200, summary.OvertimeAmount, "overtime")
	assertAmount(t, 0, summary.FoodAllowanceAmount, "food allowance")
	assertAmount(t, 100, summary.AdvanceAmount, "advances")
	assertAmount(t, 6100, summary.CurrentNetPayable, "net") // 6000 + 200 - 100
	assertAmount(t, 0, summary.PreviousBalance, "previous balance")
	assertAmount(t, 6100, summary.TotalPayable, "total payable")
}

func TestGetReport_FoodNotProvidedVariant(t *testing.T) {
	store := memory.NewStore()
	svc := newTestService(store)
	lab := seedLabourer(t, store, "Ramesh", 500)

	seedAttendance(t, store, lab.ID, "site-a", "2024-05-02", attendance.StatusFull)
	seedAttendance(t, store, lab.ID, "site-a", "2024-05-03", attendance.StatusHalf)
	seedSiteDay(t, store, "site-a", "2024-05-02", false)
	seedSiteDay(t, store, "site-a", "2024-05-03", false)
	seedOvertime(t, store, lab.ID, "site-a", "2024-05-02", 200)
	seedAdvance(t, store, lab.ID, "2024-05-04", 100)

	summary := reportOne(t, svc, payroll.PayrollReportRequest{
		StartDate: "2024-05-01", EndDate: "2024-05-31",
	})

	assertAmount(t, 140, summary.FoodAllowanceAmount, "food allowance")
	assertAmount(t, 6240, summary.CurrentNetPayable, "net") // 6100 + 2*70
}

func TestGetReport_CarryForward(t *testing.T) {
	store := memory.NewStore()
	svc := newTestService(store)
	lab := seedLabourer(t, store, "Ramesh", 500)

	// April history: one full day with food provided, advance of 500.
	seedAttendance(t, store, lab.ID, "site-a", "2024-04-15", attendance.StatusFull)
	seedSiteDay(t, store, "site-a", "2024-04-15", true)
	seedAdvance(t, store, lab.ID, "2024-04-20", 500)

	// May activity: one full day with food provided.
	seedAttendance(t, store, lab.ID, "site-a", "2024-05-02", attendance.StatusFull)
	seedSiteDay(t, store, "site-a", "2024-05-02", true)

	summary := reportOne(t, svc, payroll.PayrollReportRequest{
		StartDate: "2024-05-01", EndDate: "2024-05-31",
	})

	assertAmount(t, 4000, summary.CurrentNetPayable, "net")       // 1*8*500
	assertAmount(t, 3500, summary.PreviousBalance, "previous")    // 4000 - 500
	assertAmount(t, 7500, summary.TotalPayable, "total payable")  // previous + net

	// Moving the cut line moves activity between the buckets but never
	// changes the total.
	summary = reportOne(t, svc, payroll.PayrollReportRequest{
		StartDate: "2024-04-01", EndDate: "2024-05-31",
	})
	assertAmount(t, 7500, summary.CurrentNetPayable, "net")
	assertAmount(t, 0, summary.PreviousBalance, "previous")
	assertAmount(t, 7500, summary.TotalPayable, "total payable")
}

func TestGetReport_AdvancesIgnoreSiteFilter(t *testing.T) {
	store := memory.NewStore()
	svc := newTestService(store)
	lab := seedLabourer(t, store, "Ramesh", 500)

	seedAttendance(t, store, lab.ID, "site-a", "2024-05-02", attendance.StatusFull)
	seedSiteDay(t, store, "site-a", "2024-05-02", true)
	seedAttendance(t, store, lab.ID, "site-b", "2024-05-03", attendance.StatusFull)
	seedSiteDay(t, store, "site-b", "2024-05-03", true)
	seedOvertime(t, store, lab.ID, "site-b", "2024-05-03", 200)
	seedAdvance(t, store, lab.ID, "2024-05-04", 100)

	unfiltered := reportOne(t, svc, payroll.PayrollReportRequest{
		StartDate: "2024-05-01", EndDate: "2024-05-31",
	})
	assertAmount(t, 8000, unfiltered.Wage, "wage")
	assertAmount(t, 200, unfiltered.OvertimeAmount, "overtime")
	assertAmount(t, 100, unfiltered.AdvanceAmount, "advances")

	siteA := "site-a"
	filtered := reportOne(t, svc, payroll.PayrollReportRequest{
		StartDate: "2024-05-01", EndDate: "2024-05-31", SiteID: &siteA,
	})

	// The site filter narrows wage and overtime but never advances:
	// advances are debts against the labourer, not against a site.
	assertAmount(t, 4000, filtered.Wage, "wage")
	assertAmount(t, 0, filtered.OvertimeAmount, "overtime")
	assertAmount(t, 100, filtered.AdvanceAmount, "advances")
}

func TestGetReport_NoActivityYieldsZeroSummary(t *testing.T) {
	store := memory.NewStore()
	svc := newTestService(store)
	lab := seedLabourer(t, store, "Idle", 500)

	summary := reportOne(t, svc, payroll.PayrollReportRequest{
		StartDate: "2024-05-01", EndDate: "2024-05-31",
	})

	assert.Equal(t, lab.ID, summary.LabourerID)
	assert.Equal(t, 0, summary.FullDays)
	assert.Equal(t, 0, summary.HalfDays)
	assert.Equal(t, 0, summary.AbsentDays)
	assertAmount(t, 0, summary.Wage, "wage")
	assertAmount(t, 0, summary.CurrentNetPayable, "net")
	assertAmount(t, 0, summary.TotalPayable, "total payable")
}

func TestGetReport_NilRateComputesAsZero(t *testing.T) {
	store := memory.NewStore()
	svc := newTestService(store)

	lab, err := store.Labourers().Create(context.Background(), labourer.Labourer{
		Name: "Unrated", IsActive: true,
	})
	require.NoError(t, err)

	seedAttendance(t, store, lab.ID, "site-a", "2024-05-02", attendance.StatusFull)
	seedSiteDay(t, store, "site-a", "2024-05-02", true)
	seedAdvance(t, store, lab.ID, "2024-05-03", 100)

	summary := reportOne(t, svc, payroll.PayrollReportRequest{
		StartDate: "2024-05-01", EndDate: "2024-05-31",
	})

	assert.Equal(t, 1, summary.FullDays)
	assertAmount(t, 0, summary.Wage, "wage")
	assertAmount(t, -100, summary.CurrentNetPayable, "net")
}

func TestGetReport_SingleLabourerNotFound(t *testing.T) {
	svc := newTestService(memory.NewStore())

	missing := "00000000-0000-4000-8000-000000000000"
	_, err := svc.GetReport(context.Background(), payroll.PayrollReportRequest{
		StartDate: "2024-05-01", EndDate: "2024-05-31", LabourerID: &missing,
	})
	assert.ErrorIs(t, err, labourer.ErrLabourerNotFound)
}

func TestGetMonthlyReport(t *testing.T) {
	store := memory.NewStore()
	svc := newTestService(store)
	lab := seedLabourer(t, store, "Ramesh", 500)

	seedAttendance(t, store, lab.ID, "site-a", "2024-05-31", attendance.StatusFull)
	seedSiteDay(t, store, "site-a", "2024-05-31", true)
	// June activity must stay out of the May report.
	seedAttendance(t, store, lab.ID, "site-a", "2024-06-01", attendance.StatusFull)
	seedSiteDay(t, store, "site-a", "2024-06-01", true)

	resp, err := svc.GetMonthlyReport(context.Background(), payroll.MonthlyReportRequest{Month: "2024-05"})
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01", resp.StartDate)
	assert.Equal(t, "2024-05-31", resp.EndDate)
	require.Len(t, resp.Summaries, 1)
	assertAmount(t, 4000, resp.Summaries[0].Wage, "wage")
}
