package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/paielab/paie-gateway/internal/domain/saisie"
	"github.com/paielab/paie-gateway/internal/handler/http/middleware"
	"github.com/paielab/paie-gateway/internal/handler/http/response"
)

type SaisieHandler interface {
	Catalogue(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListForEmployee(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type saisieHandlerImpl struct {
	saisieService saisie.SaisieService
}

func NewSaisieHandler(saisieService saisie.SaisieService) SaisieHandler {
	return &saisieHandlerImpl{
		saisieService: saisieService,
	}
}

// Catalogue implements SaisieHandler.
func (h *saisieHandlerImpl) Catalogue(w http.ResponseWriter, r *http.Request) {
	items, err := h.saisieService.Catalogue(r.Context(), middleware.BearerToken(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, items)
}

// List implements SaisieHandler.
func (h *saisieHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	year, month, ok := monthParams(w, r)
	if !ok {
		return
	}

	inputs, err := h.saisieService.List(r.Context(), middleware.BearerToken(r), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, inputs)
}

// ListForEmployee implements SaisieHandler.
func (h *saisieHandlerImpl) ListForEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	year, month, ok := monthParams(w, r)
	if !ok {
		return
	}

	inputs, err := h.saisieService.ListForEmployee(r.Context(), middleware.BearerToken(r), employeeID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, inputs)
}

// Create implements SaisieHandler.
func (h *saisieHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req saisie.CreateMonthlyInputsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body", nil)
		return
	}

	if err := h.saisieService.Create(r.Context(), middleware.BearerToken(r), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Monthly inputs created successfully", nil)
}

// Delete implements SaisieHandler.
func (h *saisieHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	inputID := chi.URLParam(r, "inputID")

	if err := h.saisieService.Delete(r.Context(), middleware.BearerToken(r), inputID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.NoContent(w)
}

// monthParams parses the year/month query pair shared by the listing
// endpoints.
func monthParams(w http.ResponseWriter, r *http.Request) (int, int, bool) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		response.BadRequest(w, "year must be a number", nil)
		return 0, 0, false
	}
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		response.BadRequest(w, "month must be a number", nil)
		return 0, 0, false
	}
	return year, month, true
}
