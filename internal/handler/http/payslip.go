package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/paielab/paie-gateway/internal/domain/payslip"
	"github.com/paielab/paie-gateway/internal/handler/http/middleware"
	"github.com/paielab/paie-gateway/internal/handler/http/response"
)

type PayslipHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
	ListForEmployee(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type payslipHandlerImpl struct {
	payslipService payslip.PayslipService
}

func NewPayslipHandler(payslipService payslip.PayslipService) PayslipHandler {
	return &payslipHandlerImpl{
		payslipService: payslipService,
	}
}

// Generate implements PayslipHandler.
func (h *payslipHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	var req payslip.GeneratePayslipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body", nil)
		return
	}

	if err := h.payslipService.Generate(r.Context(), middleware.BearerToken(r), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payslip generated successfully", nil)
}

// ListForEmployee implements PayslipHandler.
func (h *payslipHandlerImpl) ListForEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	payslips, err := h.payslipService.ListForEmployee(r.Context(), middleware.BearerToken(r), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, payslips)
}

// Delete implements PayslipHandler.
func (h *payslipHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	payslipID := chi.URLParam(r, "payslipID")

	if err := h.payslipService.Delete(r.Context(), middleware.BearerToken(r), payslipID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.NoContent(w)
}
