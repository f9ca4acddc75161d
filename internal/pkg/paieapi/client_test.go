package paieapi

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/paielab/paie-gateway/internal/config"
	"github.com/paielab/paie-gateway/internal/domain/auth"
	"github.com/paielab/paie-gateway/internal/domain/calendar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewClient(config.PayrollAPIConfig{BaseURL: server.URL, Timeout: 5 * time.Second}, logger)
}

func TestSession_PlannedCalendar(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/employees/emp-1/planned-calendar", r.URL.Path)
		assert.Equal(t, "2024", r.URL.Query().Get("year"))
		assert.Equal(t, "6", r.URL.Query().Get("month"))
		assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"calendrier_prevu": [
			{"jour": 10, "type": "conge", "heures_prevues": null},
			{"jour": 12, "type": "travail", "heures_prevues": 7}
		]}`)
	})

	days, err := client.WithToken("token-123").PlannedCalendar(context.Background(), "emp-1", 2024, 6)

	require.NoError(t, err)
	require.Len(t, days, 2)
	assert.Equal(t, calendar.DayTypeLeave, days[0].Type)
	assert.Nil(t, days[0].PlannedHours)
	assert.Equal(t, 7.0, *days[1].PlannedHours)
}

func TestSession_PlannedCalendar_RejectsUnknownType(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"calendrier_prevu": [{"jour": 1, "type": "rtt"}]}`)
	})

	_, err := client.WithToken("t").PlannedCalendar(context.Background(), "emp-1", 2024, 6)

	assert.ErrorIs(t, err, calendar.ErrInvalidDayType)
}

func TestSession_ActualHours_TypelessEntriesDefaultToWork(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/employees/emp-1/actual-hours", r.URL.Path)
		io.WriteString(w, `{"calendrier_reel": [{"jour": 4, "heures_faites": 6.5}]}`)
	})

	days, err := client.WithToken("t").ActualHours(context.Background(), "emp-1", 2024, 6)

	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.Equal(t, calendar.DayTypeWork, days[0].Type)
	assert.Equal(t, 6.5, *days[0].ActualHours)
}

func TestSession_SaveActualHours_Body(t *testing.T) {
	t.Parallel()

	var got saveActualHoursRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	})

	hours := 7.5
	err := client.WithToken("t").SaveActualHours(context.Background(), "emp-1", 2024, 6, []calendar.ActualDay{
		{Day: 3, Type: calendar.DayTypeWork, ActualHours: &hours},
	})

	require.NoError(t, err)
	assert.Equal(t, 2024, got.Year)
	assert.Equal(t, 6, got.Month)
	require.Len(t, got.Actual, 1)
	assert.Equal(t, 3, got.Actual[0].Day)
	assert.Equal(t, 7.5, *got.Actual[0].ActualHours)
}

func TestSession_CalculatePayrollEvents(t *testing.T) {
	t.Parallel()

	var got calculatePayrollEventsRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/employees/emp-1/calculate-payroll-events", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		io.WriteString(w, `{"events_created": 12}`)
	})

	err := client.WithToken("t").CalculatePayrollEvents(context.Background(), "emp-1", 2024, 6)

	require.NoError(t, err)
	assert.Equal(t, 2024, got.Year)
	assert.Equal(t, 6, got.Month)
}

func TestSession_ContributionRates(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/dashboard/contribution-rates", r.URL.Path)
		io.WriteString(w, `{
			"rates": [
				{"id": "maladie", "libelle": "Assurance maladie", "salarial": null, "patronal": 7.0, "status": "green"},
				{"id": "retraite", "libelle": "Retraite", "salarial": {"t1": 6.9}, "patronal": {"t1": 8.55}, "status": "orange"}
			],
			"last_check": "2026-08-29T06:00:00Z"
		}`)
	})

	resp, err := client.WithToken("t").ContributionRates(context.Background())

	require.NoError(t, err)
	require.Len(t, resp.Rates, 2)
	assert.Equal(t, "Assurance maladie", resp.Rates[0].Label)
	assert.Equal(t, "green", resp.Rates[0].Status)
	// Mixed-shape rate values pass through untouched.
	assert.Nil(t, resp.Rates[0].Salarial)
	assert.Equal(t, map[string]any{"t1": 6.9}, resp.Rates[1].Salarial)
	require.NotNil(t, resp.LastCheck)
	assert.Equal(t, "2026-08-29T06:00:00Z", *resp.LastCheck)
}

func TestSession_APIError_ExtractsFastAPIDetail(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		io.WriteString(w, `{"detail": "month must be between 1 and 12"}`)
	})

	_, err := client.WithToken("t").PlannedCalendar(context.Background(), "emp-1", 2024, 42)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	assert.Equal(t, "month must be between 1 and 12", apiErr.Message)
	assert.Contains(t, apiErr.Error(), "[422]")
}

func TestSession_APIError_NonJSONBodyFallsBackToStatus(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		io.WriteString(w, "<html>upstream down</html>")
	})

	_, err := client.WithToken("t").ActualHours(context.Background(), "emp-1", 2024, 6)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Contains(t, apiErr.Message, "502")
}

func TestSession_Login(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		assert.Empty(t, r.Header.Get("Authorization"))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "marie@exemple.fr", r.PostForm.Get("username"))
		assert.Equal(t, "s3cret", r.PostForm.Get("password"))

		io.WriteString(w, `{"access_token": "abc", "token_type": "bearer"}`)
	})

	token, err := client.Anonymous().Login(context.Background(), "marie@exemple.fr", "s3cret")

	require.NoError(t, err)
	assert.Equal(t, "abc", token.AccessToken)
	assert.Equal(t, "bearer", token.TokenType)
}

func TestSession_Login_BadCredentials(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		io.WriteString(w, `{"detail": "Incorrect email or password"}`)
	})

	_, err := client.Anonymous().Login(context.Background(), "marie@exemple.fr", "wrong")

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestSession_Me_ExpiredToken(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		io.WriteString(w, `{"detail": "Could not validate credentials"}`)
	})

	_, err := client.WithToken("stale").Me(context.Background())

	assert.ErrorIs(t, err, auth.ErrSessionExpired)
}

func TestNewClient_TrimsTrailingSlash(t *testing.T) {
	t.Parallel()

	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		io.WriteString(w, `{}`)
	}))
	t.Cleanup(server.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := NewClient(config.PayrollAPIConfig{BaseURL: server.URL + "/", Timeout: time.Second}, logger)

	_, err := client.WithToken("t").Me(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "/api/auth/me", gotPath)
}
