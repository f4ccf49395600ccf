package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sitewage/sitewage-backend-go/internal/domain/labourer"
	"github.com/sitewage/sitewage-backend-go/internal/domain/master"
	"github.com/sitewage/sitewage-backend-go/internal/domain/site"
	"github.com/sitewage/sitewage-backend-go/internal/handler/http/response"
)

type MasterHandler interface {
	CreateLabourer(w http.ResponseWriter, r *http.Request)
	GetLabourer(w http.ResponseWriter, r *http.Request)
	ListLabourers(w http.ResponseWriter, r *http.Request)
	UpdateLabourer(w http.ResponseWriter, r *http.Request)
	CreateSite(w http.ResponseWriter, r *http.Request)
	GetSite(w http.ResponseWriter, r *http.Request)
	ListSites(w http.ResponseWriter, r *http.Request)
}

type masterHandlerImpl struct {
	masterService master.MasterService
}

func NewMasterHandler(masterService master.MasterService) MasterHandler {
	return &masterHandlerImpl{
		masterService: masterService,
	}
}

// CreateLabourer implements MasterHandler.
func (h *masterHandlerImpl) CreateLabourer(w http.ResponseWriter, r *http.Request) {
	var req labourer.CreateLabourerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode create labourer request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.masterService.CreateLabourer(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Labourer created", resp)
}

// GetLabourer implements MasterHandler.
func (h *masterHandlerImpl) GetLabourer(w http.ResponseWriter, r *http.Request) {
	resp, err := h.masterService.GetLabourer(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// ListLabourers implements MasterHandler.
func (h *masterHandlerImpl) ListLabourers(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active_only") == "true"

	resp, err := h.masterService.ListLabourers(r.Context(), activeOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// UpdateLabourer implements MasterHandler.
func (h *masterHandlerImpl) UpdateLabourer(w http.ResponseWriter, r *http.Request) {
	var req labourer.UpdateLabourerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode update labourer request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	resp, err := h.masterService.UpdateLabourer(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Labourer updated", resp)
}

// CreateSite implements MasterHandler.
func (h *masterHandlerImpl) CreateSite(w http.ResponseWriter, r *http.Request) {
	var req site.CreateSiteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode create site request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.masterService.CreateSite(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Site created", resp)
}

// GetSite implements MasterHandler.
func (h *masterHandlerImpl) GetSite(w http.ResponseWriter, r *http.Request) {
	resp, err := h.masterService.GetSite(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// ListSites implements MasterHandler.
func (h *masterHandlerImpl) ListSites(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active_only") == "true"

	resp, err := h.masterService.ListSites(r.Context(), activeOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
