package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/paielab/paie-gateway/internal/domain/calendar"
	"github.com/paielab/paie-gateway/internal/handler/http/middleware"
	"github.com/paielab/paie-gateway/internal/handler/http/response"
)

type CalendarHandler interface {
	// GetMonth returns the reconciled month: full skeleton with server
	// overrides merged in.
	GetMonth(w http.ResponseWriter, r *http.Request)

	// Transform operations: the edited month travels with the request
	// and comes back transformed, nothing is persisted.
	UpdateDay(w http.ResponseWriter, r *http.Request)
	BulkUpdate(w http.ResponseWriter, r *http.Request)
	ApplyTemplate(w http.ResponseWriter, r *http.Request)

	// SaveMonth persists both sequences and triggers payroll event
	// recomputation.
	SaveMonth(w http.ResponseWriter, r *http.Request)
}

type calendarHandlerImpl struct {
	calendarService calendar.CalendarService
}

func NewCalendarHandler(calendarService calendar.CalendarService) CalendarHandler {
	return &calendarHandlerImpl{
		calendarService: calendarService,
	}
}

// GetMonth implements CalendarHandler.
func (h *calendarHandlerImpl) GetMonth(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		response.BadRequest(w, "year must be a number", nil)
		return
	}
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		response.BadRequest(w, "month must be a number", nil)
		return
	}

	result, err := h.calendarService.GetMonth(r.Context(), middleware.BearerToken(r), employeeID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateDay implements CalendarHandler.
func (h *calendarHandlerImpl) UpdateDay(w http.ResponseWriter, r *http.Request) {
	var req calendar.UpdateDayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body", nil)
		return
	}

	result, err := h.calendarService.UpdateDay(req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// BulkUpdate implements CalendarHandler.
func (h *calendarHandlerImpl) BulkUpdate(w http.ResponseWriter, r *http.Request) {
	var req calendar.BulkUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body", nil)
		return
	}

	result, err := h.calendarService.BulkUpdate(req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ApplyTemplate implements CalendarHandler.
func (h *calendarHandlerImpl) ApplyTemplate(w http.ResponseWriter, r *http.Request) {
	var req calendar.ApplyTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body", nil)
		return
	}

	result, err := h.calendarService.ApplyTemplate(req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// SaveMonth implements CalendarHandler.
func (h *calendarHandlerImpl) SaveMonth(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	var req calendar.SaveMonthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body", nil)
		return
	}
	req.EmployeeID = employeeID

	if err := h.calendarService.SaveMonth(r.Context(), middleware.BearerToken(r), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Calendar saved and payroll events computed", nil)
}
