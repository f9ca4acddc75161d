package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/paielab/paie-gateway/internal/config"
	"github.com/paielab/paie-gateway/internal/domain/auth"
	"github.com/paielab/paie-gateway/internal/domain/calendar"
	"github.com/paielab/paie-gateway/internal/domain/dashboard"
	"github.com/paielab/paie-gateway/internal/domain/employee"
	"github.com/paielab/paie-gateway/internal/domain/payslip"
	"github.com/paielab/paie-gateway/internal/domain/saisie"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

// Stubs for the services the router needs but a given test does not
// exercise.

type stubAuthService struct{}

func (stubAuthService) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	return auth.TokenResponse{AccessToken: "stub-token", TokenType: "bearer"}, nil
}

func (stubAuthService) Me(ctx context.Context, token string) (auth.UserResponse, error) {
	return auth.UserResponse{}, nil
}

type stubEmployeeService struct{}

func (stubEmployeeService) List(ctx context.Context, token string) ([]employee.EmployeeResponse, error) {
	return nil, nil
}

func (stubEmployeeService) Get(ctx context.Context, token, employeeID string) (employee.EmployeeResponse, error) {
	return employee.EmployeeResponse{}, nil
}

func (stubEmployeeService) Create(ctx context.Context, token string, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	return employee.EmployeeResponse{}, nil
}

func (stubEmployeeService) ContractURL(ctx context.Context, token, employeeID string) (employee.ContractURLResponse, error) {
	return employee.ContractURLResponse{}, nil
}

type stubSaisieService struct{}

func (stubSaisieService) Catalogue(ctx context.Context, token string) ([]saisie.PrimeCatalogueItem, error) {
	return nil, nil
}

func (stubSaisieService) List(ctx context.Context, token string, year, month int) ([]saisie.MonthlyInputResponse, error) {
	return nil, nil
}

func (stubSaisieService) ListForEmployee(ctx context.Context, token, employeeID string, year, month int) ([]saisie.MonthlyInputResponse, error) {
	return nil, nil
}

func (stubSaisieService) Create(ctx context.Context, token string, req saisie.CreateMonthlyInputsRequest) error {
	return nil
}

func (stubSaisieService) Delete(ctx context.Context, token, inputID string) error {
	return nil
}

type stubDashboardService struct{}

func (stubDashboardService) ContributionRates(ctx context.Context, token string) (dashboard.RatesResponse, error) {
	return dashboard.RatesResponse{Rates: []dashboard.ContributionRate{
		{ID: "maladie", Label: "Assurance maladie", Patronal: 7.0, Status: "green"},
	}}, nil
}

type stubPayslipService struct{}

func (stubPayslipService) Generate(ctx context.Context, token string, req payslip.GeneratePayslipRequest) error {
	return nil
}

func (stubPayslipService) ListForEmployee(ctx context.Context, token, employeeID string) ([]payslip.PayslipInfo, error) {
	return nil, nil
}

func (stubPayslipService) Delete(ctx context.Context, token, payslipID string) error {
	return nil
}

// stubCalendarService records what it was called with and answers from
// the configured function fields.
type stubCalendarService struct {
	getMonthFn  func(ctx context.Context, token, employeeID string, year, month int) (calendar.MonthResponse, error)
	updateDayFn func(req calendar.UpdateDayRequest) (calendar.MonthResponse, error)
	saveMonthFn func(ctx context.Context, token string, req calendar.SaveMonthRequest) error
}

func (s *stubCalendarService) GetMonth(ctx context.Context, token, employeeID string, year, month int) (calendar.MonthResponse, error) {
	if s.getMonthFn != nil {
		return s.getMonthFn(ctx, token, employeeID, year, month)
	}
	return calendar.MonthResponse{}, nil
}

func (s *stubCalendarService) UpdateDay(req calendar.UpdateDayRequest) (calendar.MonthResponse, error) {
	if s.updateDayFn != nil {
		return s.updateDayFn(req)
	}
	return calendar.MonthResponse{}, nil
}

func (s *stubCalendarService) BulkUpdate(req calendar.BulkUpdateRequest) (calendar.MonthResponse, error) {
	return calendar.MonthResponse{}, nil
}

func (s *stubCalendarService) ApplyTemplate(req calendar.ApplyTemplateRequest) (calendar.MonthResponse, error) {
	return calendar.MonthResponse{}, nil
}

func (s *stubCalendarService) SaveMonth(ctx context.Context, token string, req calendar.SaveMonthRequest) error {
	if s.saveMonthFn != nil {
		return s.saveMonthFn(ctx, token, req)
	}
	return nil
}

func newTestRouter(calendarService calendar.CalendarService) http.Handler {
	cfg := &config.Config{
		JWT: config.JWTConfig{Secret: testSecret},
		App: config.AppConfig{Env: "test", CORSOrigin: "http://localhost:3000"},
	}
	return NewRouter(
		cfg,
		NewAuthHandler(stubAuthService{}),
		NewEmployeeHandler(stubEmployeeService{}),
		NewCalendarHandler(calendarService),
		NewSaisieHandler(stubSaisieService{}),
		NewPayslipHandler(stubPayslipService{}),
		NewDashboardHandler(stubDashboardService{}),
	)
}

func mintToken(t *testing.T, role string) string {
	t.Helper()
	tokenAuth := jwtauth.New("HS256", []byte(testSecret), nil)
	_, tokenString, err := tokenAuth.Encode(map[string]interface{}{
		"sub":  "user-1",
		"role": role,
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	require.NoError(t, err)
	return tokenString
}

func doRequest(router http.Handler, method, target, token string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestRouter_GetMonth(t *testing.T) {
	var gotToken, gotEmployee string
	svc := &stubCalendarService{
		getMonthFn: func(ctx context.Context, token, employeeID string, year, month int) (calendar.MonthResponse, error) {
			gotToken = token
			gotEmployee = employeeID
			return calendar.MonthResponse{EmployeeID: employeeID, Year: year, Month: month}, nil
		},
	}
	router := newTestRouter(svc)
	token := mintToken(t, auth.RoleSalarie)

	rr := doRequest(router, http.MethodGet, "/api/v1/employees/emp-1/calendar?year=2024&month=6", token, nil)

	require.Equal(t, http.StatusOK, rr.Code)
	// The raw bearer token is forwarded as-is to the service layer.
	assert.Equal(t, token, gotToken)
	assert.Equal(t, "emp-1", gotEmployee)

	var body struct {
		Success bool                   `json:"success"`
		Data    calendar.MonthResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "emp-1", body.Data.EmployeeID)
	assert.Equal(t, 6, body.Data.Month)
}

func TestRouter_GetMonth_BadQuery(t *testing.T) {
	router := newTestRouter(&stubCalendarService{})
	token := mintToken(t, auth.RoleRH)

	rr := doRequest(router, http.MethodGet, "/api/v1/employees/emp-1/calendar?year=abc&month=6", token, nil)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRouter_GetMonth_RequiresAuth(t *testing.T) {
	router := newTestRouter(&stubCalendarService{})

	rr := doRequest(router, http.MethodGet, "/api/v1/employees/emp-1/calendar?year=2024&month=6", "", nil)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestRouter_UpdateDay_ForbiddenForSalarie(t *testing.T) {
	router := newTestRouter(&stubCalendarService{})
	token := mintToken(t, auth.RoleSalarie)

	rr := doRequest(router, http.MethodPost, "/api/v1/calendar/update-day", token, []byte(`{}`))

	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestRouter_UpdateDay_ValidationErrors(t *testing.T) {
	svc := &stubCalendarService{
		updateDayFn: func(req calendar.UpdateDayRequest) (calendar.MonthResponse, error) {
			return calendar.MonthResponse{}, req.Validate()
		},
	}
	router := newTestRouter(svc)
	token := mintToken(t, auth.RoleRH)

	// Missing employee_id and day zero: the validation map comes back in
	// the error envelope.
	rr := doRequest(router, http.MethodPost, "/api/v1/calendar/update-day", token, []byte(`{"year": 2024, "month": 6}`))

	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)

	var body struct {
		Success bool `json:"success"`
		Error   struct {
			Code    string            `json:"code"`
			Details map[string]string `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
	assert.Contains(t, body.Error.Details, "employee_id")
	assert.Contains(t, body.Error.Details, "day")
}

func TestRouter_SaveMonth_EmployeeIDComesFromURL(t *testing.T) {
	var gotReq calendar.SaveMonthRequest
	svc := &stubCalendarService{
		saveMonthFn: func(ctx context.Context, token string, req calendar.SaveMonthRequest) error {
			gotReq = req
			return nil
		},
	}
	router := newTestRouter(svc)
	token := mintToken(t, auth.RoleRH)

	body := []byte(`{"employee_id": "spoofed", "year": 2024, "month": 6, "calendrier_prevu": [], "calendrier_reel": []}`)
	rr := doRequest(router, http.MethodPost, "/api/v1/employees/emp-1/calendar", token, body)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "emp-1", gotReq.EmployeeID)
	assert.Equal(t, 2024, gotReq.Year)
}

func TestRouter_SaveMonth_DistinguishesSaveAndRecomputeFailures(t *testing.T) {
	token := mintToken(t, auth.RoleRH)
	body := []byte(`{"year": 2024, "month": 6}`)

	tests := []struct {
		name        string
		err         error
		wantMessage string
	}{
		{"write failure", calendar.ErrSaveCalendar, "not saved"},
		{"recompute failure", calendar.ErrRecompute, "payroll event computation failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubCalendarService{
				saveMonthFn: func(ctx context.Context, token string, req calendar.SaveMonthRequest) error {
					return tt.err
				},
			}
			router := newTestRouter(svc)

			rr := doRequest(router, http.MethodPost, "/api/v1/employees/emp-1/calendar", token, body)

			require.Equal(t, http.StatusBadGateway, rr.Code)

			var resp struct {
				Error struct {
					Message string `json:"message"`
				} `json:"error"`
			}
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Contains(t, resp.Error.Message, tt.wantMessage)
		})
	}
}

func TestRouter_ContributionRates(t *testing.T) {
	router := newTestRouter(&stubCalendarService{})

	rr := doRequest(router, http.MethodGet, "/api/v1/dashboard/contribution-rates", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = doRequest(router, http.MethodGet, "/api/v1/dashboard/contribution-rates", mintToken(t, auth.RoleSalarie), nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Data dashboard.RatesResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.Data.Rates, 1)
	assert.Equal(t, "Assurance maladie", resp.Data.Rates[0].Label)
}

func TestRouter_Login_IsPublic(t *testing.T) {
	router := newTestRouter(&stubCalendarService{})

	body := []byte(`{"email": "marie@exemple.fr", "password": "s3cret"}`)
	rr := doRequest(router, http.MethodPost, "/api/v1/auth/login", "", body)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Data auth.TokenResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "stub-token", resp.Data.AccessToken)
}
