package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/presence-backend-go/internal/config"
	"github.com/cmlabs-hris/presence-backend-go/internal/domain/geofence"
	"github.com/cmlabs-hris/presence-backend-go/internal/domain/schedule"
	appHTTP "github.com/cmlabs-hris/presence-backend-go/internal/handler/http"
	"github.com/cmlabs-hris/presence-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/presence-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/presence-backend-go/internal/repository/postgresql"
	attendanceService "github.com/cmlabs-hris/presence-backend-go/internal/service/attendance"
	conflictService "github.com/cmlabs-hris/presence-backend-go/internal/service/conflict"
	geofenceService "github.com/cmlabs-hris/presence-backend-go/internal/service/geofence"
	leaveService "github.com/cmlabs-hris/presence-backend-go/internal/service/leave"
	scheduleService "github.com/cmlabs-hris/presence-backend-go/internal/service/schedule"
	sickLeaveService "github.com/cmlabs-hris/presence-backend-go/internal/service/sickleave"
	tripService "github.com/cmlabs-hris/presence-backend-go/internal/service/trip"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolConfig{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	txManager := postgresql.NewTxManager(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	workScheduleRepo := postgresql.NewWorkScheduleRepository(db)
	geofenceRepo := postgresql.NewGeofenceConfigRepository(db)
	tripRepo := postgresql.NewBusinessTripRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	sickLeaveRepo := postgresql.NewSickLeaveRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)

	if cfg.App.CompanyDefaultsPath != "" {
		defaults, err := config.LoadCompanyDefaults(cfg.App.CompanyDefaultsPath)
		if err != nil {
			log.Fatal("Error loading company defaults: ", err)
		}
		if err := seedCompanyDefaults(ctx, defaults, workScheduleRepo, geofenceRepo); err != nil {
			log.Fatal("Error seeding company defaults: ", err)
		}
	}

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	snapshots := conflictService.NewSnapshotLoader(employeeRepo, tripRepo, leaveRequestRepo, sickLeaveRepo, attendanceRepo)

	conflictSvc := conflictService.NewConflictService(snapshots)
	attendanceSvc := attendanceService.NewAttendanceService(
		txManager,
		attendanceRepo,
		workScheduleRepo,
		geofenceRepo,
		snapshots,
		cfg.Location(),
	)
	leaveSvc := leaveService.NewLeaveService(txManager, leaveRequestRepo, snapshots)
	sickLeaveSvc := sickLeaveService.NewSickLeaveService(txManager, sickLeaveRepo, snapshots)
	tripSvc := tripService.NewTripService(tripRepo, employeeRepo)
	scheduleSvc := scheduleService.NewScheduleService(workScheduleRepo)
	geofenceSvc := geofenceService.NewGeofenceService(geofenceRepo)

	router := appHTTP.NewRouter(JWTService, appHTTP.RouterOptions{
		Env:            cfg.App.Env,
		LogLevel:       cfg.SlogLevel(),
		AllowedOrigins: cfg.App.AllowedOrigins,
	}, appHTTP.Handlers{
		Attendance:   appHTTP.NewAttendanceHandler(attendanceSvc),
		Conflict:     appHTTP.NewConflictHandler(conflictSvc),
		Leave:        appHTTP.NewLeaveHandler(leaveSvc),
		SickLeave:    appHTTP.NewSickLeaveHandler(sickLeaveSvc),
		BusinessTrip: appHTTP.NewBusinessTripHandler(tripSvc),
		Settings:     appHTTP.NewSettingsHandler(scheduleSvc, geofenceSvc),
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("Server running", "addr", server.Addr, "env", cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}
}

// seedCompanyDefaults stores the configured schedule and geofence when the
// database has none yet. Existing settings are never overwritten.
func seedCompanyDefaults(ctx context.Context, defaults *config.CompanyDefaults, workScheduleRepo schedule.WorkScheduleRepository, geofenceRepo geofence.ConfigRepository) error {
	if req := defaults.ScheduleRequest(); req != nil {
		_, err := workScheduleRepo.Get(ctx)
		switch {
		case errors.Is(err, schedule.ErrWorkScheduleNotFound):
			if _, err := workScheduleRepo.Upsert(ctx, req.ToEntity()); err != nil {
				return fmt.Errorf("seed work schedule: %w", err)
			}
			slog.Info("Seeded default work schedule")
		case err != nil:
			return fmt.Errorf("read work schedule: %w", err)
		}
	}

	if req := defaults.GeofenceRequest(); req != nil {
		_, err := geofenceRepo.Get(ctx)
		switch {
		case errors.Is(err, geofence.ErrGeofenceNotFound):
			if _, err := geofenceRepo.Upsert(ctx, req.ToEntity()); err != nil {
				return fmt.Errorf("seed geofence: %w", err)
			}
			slog.Info("Seeded default geofence")
		case err != nil:
			return fmt.Errorf("read geofence: %w", err)
		}
	}
	return nil
}
