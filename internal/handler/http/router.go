package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/paielab/paie-gateway/internal/config"
	"github.com/paielab/paie-gateway/internal/handler/http/middleware"
)

func NewRouter(
	cfg *config.Config,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	calendarHandler CalendarHandler,
	saisieHandler SaisieHandler,
	payslipHandler PayslipHandler,
	dashboardHandler DashboardHandler,
) *chi.Mux {
	r := chi.NewRouter()

	tokenAuth := jwtauth.New("HS256", []byte(cfg.JWT.Secret), nil)

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "paie-gateway"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.CORSOrigin},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Post("/auth/login", authHandler.Login)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(tokenAuth))
			r.Use(middleware.AuthRequired(tokenAuth))

			r.Get("/auth/me", authHandler.Me)

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.List)

				// RH only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRH)
					r.Post("/", employeeHandler.Create)
				})

				r.Route("/{employeeID}", func(r chi.Router) {
					r.Get("/", employeeHandler.Get)
					r.Get("/contract", employeeHandler.ContractURL)
					r.Get("/calendar", calendarHandler.GetMonth)
					r.Get("/payslips", payslipHandler.ListForEmployee)
					r.Get("/monthly-inputs", saisieHandler.ListForEmployee)

					// RH only
					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireRH)
						r.Post("/calendar", calendarHandler.SaveMonth)
					})
				})
			})

			// Local transforms on a submitted month, RH only like the
			// editors that call them.
			r.Route("/calendar", func(r chi.Router) {
				r.Use(middleware.RequireRH)
				r.Post("/update-day", calendarHandler.UpdateDay)
				r.Post("/bulk-update", calendarHandler.BulkUpdate)
				r.Post("/apply-template", calendarHandler.ApplyTemplate)
			})

			r.Get("/primes-catalogue", saisieHandler.Catalogue)

			r.Get("/dashboard/contribution-rates", dashboardHandler.ContributionRates)

			r.Route("/monthly-inputs", func(r chi.Router) {
				r.Use(middleware.RequireRH)
				r.Get("/", saisieHandler.List)
				r.Post("/", saisieHandler.Create)
				r.Delete("/{inputID}", saisieHandler.Delete)
			})

			r.Route("/payslips", func(r chi.Router) {
				r.Use(middleware.RequireRH)
				r.Delete("/{payslipID}", payslipHandler.Delete)
			})

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRH)
				r.Post("/actions/generate-payslip", payslipHandler.Generate)
			})
		})
	})
	return r
}
