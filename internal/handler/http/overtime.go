package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/sitewage/sitewage-backend-go/internal/domain/overtime"
	"github.com/sitewage/sitewage-backend-go/internal/handler/http/response"
)

type OvertimeHandler interface {
	Record(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type overtimeHandlerImpl struct {
	overtimeService overtime.OvertimeService
}

func NewOvertimeHandler(overtimeService overtime.OvertimeService) OvertimeHandler {
	return &overtimeHandlerImpl{
		overtimeService: overtimeService,
	}
}

// Record implements OvertimeHandler.
func (h *overtimeHandlerImpl) Record(w http.ResponseWriter, r *http.Request) {
	var req overtime.RecordOvertimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode record overtime request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.overtimeService.RecordOvertime(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Overtime recorded", resp)
}

// List implements OvertimeHandler.
func (h *overtimeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := overtime.OvertimeFilter{
		StartDate: q.Get("start_date"),
		EndDate:   q.Get("end_date"),
	}
	if labourerID := q.Get("labourer_id"); labourerID != "" {
		filter.LabourerID = &labourerID
	}
	if siteID := q.Get("site_id"); siteID != "" {
		filter.SiteID = &siteID
	}

	resp, err := h.overtimeService.ListOvertime(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
