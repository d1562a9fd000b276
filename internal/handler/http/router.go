package http

import (
	"log/slog"
	"os"

	"github.com/Harshalp4/scantrack-pro/internal/handler/http/middleware"
	"github.com/Harshalp4/scantrack-pro/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type Handlers struct {
	Auth       AuthHandler
	Attendance AttendanceHandler
	Report     ReportHandler
	Employee   EmployeeHandler
	Location   LocationHandler
	Expense    ExpenseHandler
	Role       RoleHandler
	Settings   SettingsHandler
	Backup     BackupHandler
}

func NewRouter(jwtService jwt.Service, corsOrigins []string, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "scantrack-pro"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/", h.Attendance.Record)
				r.Post("/bulk", h.Attendance.RecordBulk)
				r.Get("/", h.Attendance.List)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/rollup", h.Report.Rollup)
				r.Get("/grid", h.Report.MonthlyGrid)
				r.Get("/me", h.Report.MyStats)

				// Financial figures are for managers and above; the scoper
				// narrows a manager's view to their own location.
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/locations/{id}", h.Report.LocationSummary)
					r.Get("/fleet", h.Report.FleetSummary)
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.List)
				r.Get("/{id}", h.Employee.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/", h.Employee.Create)
					r.Put("/{id}", h.Employee.Update)
					r.Post("/{id}/deactivate", h.Employee.Deactivate)
					r.Post("/{id}/reactivate", h.Employee.Reactivate)
				})
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireSuperAdmin)
					r.Delete("/{id}", h.Employee.Delete)
				})
			})

			r.Route("/locations", func(r chi.Router) {
				r.Get("/", h.Location.List)
				r.Get("/{id}", h.Location.Get)

				// Site administration is super admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireSuperAdmin)
					r.Post("/", h.Location.Create)
					r.Put("/{id}", h.Location.Update)
					r.Post("/{id}/deactivate", h.Location.Deactivate)
					r.Post("/{id}/reactivate", h.Location.Reactivate)
					r.Delete("/{id}", h.Location.Delete)
				})
			})

			r.Route("/expenses", func(r chi.Router) {
				r.Use(middleware.RequireManager)
				r.Post("/", h.Expense.Create)
				r.Get("/", h.Expense.List)
				r.Get("/{id}", h.Expense.Get)
				r.Put("/{id}", h.Expense.Update)
				r.Delete("/{id}", h.Expense.Delete)
			})

			r.Route("/roles", func(r chi.Router) {
				r.Get("/", h.Role.List)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireSuperAdmin)
					r.Post("/", h.Role.Create)
					r.Delete("/{name}", h.Role.Delete)
				})
			})

			r.Route("/settings", func(r chi.Router) {
				r.Use(middleware.RequireSuperAdmin)
				r.Get("/scan-rate", h.Settings.GetScanRate)
				r.Put("/scan-rate", h.Settings.SetScanRate)
			})

			r.Route("/backups", func(r chi.Router) {
				r.Use(middleware.RequireSuperAdmin)
				r.Post("/", h.Backup.Snapshot)
			})
		})
	})
	return r
}
