package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/paielab/paie-gateway/internal/config"
	appHTTP "github.com/paielab/paie-gateway/internal/handler/http"
	"github.com/paielab/paie-gateway/internal/pkg/paieapi"
	authService "github.com/paielab/paie-gateway/internal/service/auth"
	calendarService "github.com/paielab/paie-gateway/internal/service/calendar"
	dashboardService "github.com/paielab/paie-gateway/internal/service/dashboard"
	employeeService "github.com/paielab/paie-gateway/internal/service/employee"
	payslipService "github.com/paielab/paie-gateway/internal/service/payslip"
	saisieService "github.com/paielab/paie-gateway/internal/service/saisie"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	apiClient := paieapi.NewClient(cfg.PayrollAPI, logger)

	authSvc := authService.NewAuthService(apiClient)
	employeeSvc := employeeService.NewEmployeeService(apiClient)
	calendarSvc := calendarService.NewCalendarService(apiClient)
	saisieSvc := saisieService.NewSaisieService(apiClient)
	payslipSvc := payslipService.NewPayslipService(apiClient)
	dashboardSvc := dashboardService.NewDashboardService(apiClient)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	calendarHandler := appHTTP.NewCalendarHandler(calendarSvc)
	saisieHandler := appHTTP.NewSaisieHandler(saisieSvc)
	payslipHandler := appHTTP.NewPayslipHandler(payslipSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)

	router := appHTTP.NewRouter(cfg, authHandler, employeeHandler, calendarHandler, saisieHandler, payslipHandler, dashboardHandler)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	logger.Info("starting paie-gateway", slog.String("addr", addr), slog.String("payroll_api", cfg.PayrollAPI.BaseURL))
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Error starting server:", err)
	}
}
