package http

import (
	"log/slog"
	"os"

	"github.com/cmlabs-hris/presence-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/presence-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type Handlers struct {
	Attendance   AttendanceHandler
	Conflict     ConflictHandler
	Leave        LeaveHandler
	SickLeave    SickLeaveHandler
	BusinessTrip BusinessTripHandler
	Settings     SettingsHandler
}

type RouterOptions struct {
	Env            string
	LogLevel       slog.Level
	AllowedOrigins []string
}

func NewRouter(JWTService jwt.Service, opts RouterOptions, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(opts.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       opts.LogLevel,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "presence-cmlabs"),
		slog.String("version", "v1.0.0"),
		slog.String("env", opts.Env),
	)

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  opts.LogLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired)

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/", h.Attendance.List)
				r.Get("/status", h.Attendance.Status)
				r.Post("/check-in", h.Attendance.CheckIn)
				r.Post("/check-out", h.Attendance.CheckOut)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/manual", h.Attendance.CreateManual)
					r.Delete("/{id}", h.Attendance.Delete)
				})
			})

			r.Get("/conflicts", h.Conflict.GetIndex)

			r.Route("/validations", func(r chi.Router) {
				r.Post("/vacation", h.Conflict.ValidateVacation)
				r.Post("/permission", h.Conflict.ValidatePermission)
				r.Post("/sick-leave", h.Conflict.ValidateSickLeave)
				r.Post("/attendance", h.Conflict.ValidateAttendance)
			})

			r.Route("/leave-requests", func(r chi.Router) {
				r.Get("/", h.Leave.List)
				r.Post("/", h.Leave.Create)
				r.Get("/{id}", h.Leave.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/{id}/approve", h.Leave.Approve)
					r.Post("/{id}/reject", h.Leave.Reject)
					r.Delete("/{id}", h.Leave.Delete)
				})
			})

			r.Route("/sick-leaves", func(r chi.Router) {
				r.Get("/", h.SickLeave.List)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.SickLeave.Create)
					r.Delete("/{id}", h.SickLeave.Delete)
				})
			})

			r.Route("/business-trips", func(r chi.Router) {
				r.Get("/", h.BusinessTrip.List)
				r.Post("/", h.BusinessTrip.Create)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/{id}/approve", h.BusinessTrip.Approve)
					r.Post("/{id}/reject", h.BusinessTrip.Reject)
					r.Delete("/{id}", h.BusinessTrip.Delete)
				})
			})

			r.Route("/settings", func(r chi.Router) {
				r.Get("/work-schedule", h.Settings.GetWorkSchedule)
				r.Get("/geofence", h.Settings.GetGeofence)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Put("/work-schedule", h.Settings.UpdateWorkSchedule)
					r.Put("/geofence", h.Settings.UpdateGeofence)
				})
			})
		})
	})
	return r
}
