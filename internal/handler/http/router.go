package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/sitewage/sitewage-backend-go/internal/handler/http/middleware"
	"github.com/sitewage/sitewage-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	attendanceHandler AttendanceHandler,
	payrollHandler PayrollHandler,
	overtimeHandler OvertimeHandler,
	advanceHandler AdvanceHandler,
	masterHandler MasterHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "sitewage"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/", attendanceHandler.Submit)
				r.Get("/", attendanceHandler.List)
				r.Get("/lock-status", attendanceHandler.GetLockStatus)
			})

			r.Route("/overtimes", func(r chi.Router) {
				r.Post("/", overtimeHandler.Record)
				r.Get("/", overtimeHandler.List)
			})

			r.Route("/advances", func(r chi.Router) {
				r.Post("/", advanceHandler.Record)
				r.Get("/", advanceHandler.List)
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/report", payrollHandler.GetReport)
				r.Get("/monthly", payrollHandler.GetMonthlyReport)
			})

			r.Route("/labourers", func(r chi.Router) {
				r.Post("/", masterHandler.CreateLabourer)
				r.Get("/", masterHandler.ListLabourers)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", masterHandler.GetLabourer)
					r.Put("/", masterHandler.UpdateLabourer)
				})
			})

			r.Route("/sites", func(r chi.Router) {
				r.Post("/", masterHandler.CreateSite)
				r.Get("/", masterHandler.ListSites)
				r.Get("/{id}", masterHandler.GetSite)
			})
		})
	})
	return r
}
