package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/sitewage/sitewage-backend-go/internal/domain/advance"
	"github.com/sitewage/sitewage-backend-go/internal/handler/http/response"
)

type AdvanceHandler interface {
	Record(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type advanceHandlerImpl struct {
	advanceService advance.AdvanceService
}

func NewAdvanceHandler(advanceService advance.AdvanceService) AdvanceHandler {
	return &advanceHandlerImpl{
		advanceService: advanceService,
	}
}

// Record implements AdvanceHandler.
func (h *advanceHandlerImpl) Record(w http.ResponseWriter, r *http.Request) {
	var req advance.RecordAdvanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode record advance request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.advanceService.RecordAdvance(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Advance recorded", resp)
}

// List implements AdvanceHandler.
func (h *advanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := advance.AdvanceFilter{
		StartDate: q.Get("start_date"),
		EndDate:   q.Get("end_date"),
	}
	if labourerID := q.Get("labourer_id"); labourerID != "" {
		filter.LabourerID = &labourerID
	}

	resp, err := h.advanceService.ListAdvances(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
