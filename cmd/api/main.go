package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/fms-backend-go/internal/config"
	appHTTP "github.com/cmlabs-hris/fms-backend-go/internal/handler/http"
	"github.com/cmlabs-hris/fms-backend-go/internal/pkg/cache"
	"github.com/cmlabs-hris/fms-backend-go/internal/pkg/cron"
	"github.com/cmlabs-hris/fms-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/fms-backend-go/internal/repository/postgresql"
	attendanceService "github.com/cmlabs-hris/fms-backend-go/internal/service/attendance"
	payrollService "github.com/cmlabs-hris/fms-backend-go/internal/service/payroll"
)

const version = "v1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	logLevel := parseLogLevel(cfg.App.LogLevel)
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})))

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	siteRepo := postgresql.NewSiteRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	structureRepo := postgresql.NewSalaryStructureRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	// Redis is optional; without it every attendance period is aggregated on request.
	var periodCache attendanceService.PeriodCache
	if cfg.RedisEnabled() {
		rdb, err := cache.NewRedisClient(context.Background(), cfg.RedisAddr(), cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			slog.Warn("Redis unavailable, attendance cache disabled", "addr", cfg.RedisAddr(), "error", err)
		} else {
			defer rdb.Close()
			periodCache = cache.New(rdb, "fms")
		}
	}

	payrollSvc := payrollService.NewPayrollService(
		structureRepo,
		payrollRepo,
		employeeRepo,
		attendanceRepo,
		leaveRepo,
		payrollService.Options{
			StandardWorkingDays: cfg.Payroll.StandardWorkingDays,
			Workers:             cfg.Payroll.ProcessingWorkers,
			CompanyName:         cfg.App.CompanyName,
		},
	)
	attendanceSvc := attendanceService.NewAttendanceService(
		attendanceRepo,
		siteRepo,
		employeeRepo,
		periodCache,
		attendanceService.Options{
			Source:              cfg.Attendance.Source,
			CacheTTL:            cfg.Attendance.CacheTTL,
			MaxRangeDays:        cfg.Attendance.MaxRangeDays,
			StandardWorkingDays: cfg.Payroll.StandardWorkingDays,
		},
	)

	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)

	router := appHTTP.NewRouter(appHTTP.RouterOptions{
		AllowedOrigins: cfg.App.AllowedOrigins,
		Env:            cfg.App.Env,
		Version:        version,
		LogLevel:       logLevel,
	}, payrollHandler, attendanceHandler)

	var scheduler *cron.Scheduler
	if cfg.Cron.Enabled {
		scheduler = cron.NewScheduler()
		cron.NewPayrollJobs(payrollSvc, cfg.Cron.PayrollAutoProcessDay).RegisterJobs(scheduler)
		scheduler.Start()
	}

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("Server running", "addr", server.Addr, "env", cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	slog.Info("Shutting down server...")
	if scheduler != nil {
		scheduler.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
	}
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
