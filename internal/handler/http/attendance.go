package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/sitewage/sitewage-backend-go/internal/domain/attendance"
	"github.com/sitewage/sitewage-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	GetLockStatus(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// Submit implements AttendanceHandler.
func (h *attendanceHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	var req attendance.SubmitAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode submit attendance request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.attendanceService.SubmitAttendance(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance submitted and day locked", resp)
}

// GetLockStatus implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetLockStatus(w http.ResponseWriter, r *http.Request) {
	siteID := r.URL.Query().Get("site_id")
	date := r.URL.Query().Get("date")

	resp, err := h.attendanceService.GetLockStatus(r.Context(), siteID, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// List implements AttendanceHandler.
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := attendance.AttendanceFilter{
		Date: r.URL.Query().Get("date"),
	}
	if siteID := r.URL.Query().Get("site_id"); siteID != "" {
		filter.SiteID = &siteID
	}

	resp, err := h.attendanceService.GetAttendance(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
