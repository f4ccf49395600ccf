package http

import (
	"net/http"

	"github.com/sitewage/sitewage-backend-go/internal/domain/payroll"
	"github.com/sitewage/sitewage-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	GetReport(w http.ResponseWriter, r *http.Request)
	GetMonthlyReport(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{
		payrollService: payrollService,
	}
}

// GetReport implements PayrollHandler.
func (h *payrollHandlerImpl) GetReport(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := payroll.PayrollReportRequest{
		StartDate: q.Get("start_date"),
		EndDate:   q.Get("end_date"),
	}
	if siteID := q.Get("site_id"); siteID != "" {
		req.SiteID = &siteID
	}
	if labourerID := q.Get("labourer_id"); labourerID != "" {
		req.LabourerID = &labourerID
	}

	resp, err := h.payrollService.GetReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// GetMonthlyReport implements PayrollHandler.
func (h *payrollHandlerImpl) GetMonthlyReport(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := payroll.MonthlyReportRequest{
		Month: q.Get("month"),
	}
	if siteID := q.Get("site_id"); siteID != "" {
		req.SiteID = &siteID
	}

	resp, err := h.payrollService.GetMonthlyReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
