package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/opsdesk/backend/internal/config"
	"github.com/opsdesk/backend/internal/handler"
	"github.com/opsdesk/backend/internal/logger"
	"github.com/opsdesk/backend/internal/repository"
	"github.com/opsdesk/backend/internal/scheduler"
	"github.com/opsdesk/backend/internal/service"
)

// @title Opsdesk Date Range API
// @version 1.0
// @description Calendar grids, preset ranges and hosted date-range pickers for dashboard filters.

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg := config.Load()

	// Setup structured logger
	logger.Setup(cfg.Env, os.Stdout)

	service.SetJWTSecret(cfg.JWTSecret)

	loc, err := cfg.Location()
	if err != nil {
		log.Fatalf("Failed to load time zone: %v", err)
	}

	db, err := sqlx.Connect("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() { _ = db.Close() }()

	if _, err := db.Exec(repository.Schema); err != nil {
		log.Fatalf("Failed to apply schema: %v", err)
	}

	// Initialize repositories
	filterRepo := repository.NewFilterRepository(db)

	// Initialize services
	calendarService, err := service.NewCalendarService(time.Now, loc, cfg.GridCacheSize)
	if err != nil {
		log.Fatalf("Failed to create calendar service: %v", err)
	}
	filterService := service.NewFilterService(filterRepo, loc)
	pickerService := service.NewPickerService(filterService, service.PickerConfig{
		Location:    loc,
		Now:         time.Now,
		Placeholder: cfg.PickerPlaceholder,
		IdleTTL:     cfg.PickerIdleTTL,
		Grid:        calendarService.Grid,
	})

	// Initialize handlers
	r := handler.NewRouter(handler.Handlers{
		Calendar: handler.NewCalendarHandler(calendarService),
		Picker:   handler.NewPickerHandler(pickerService),
		Filter:   handler.NewFilterHandler(filterService),
	}, handler.RouterOptions{
		AllowedOrigins: cfg.AllowedOrigins,
		AccessLog:      true,
	})

	// Initialize and start scheduler for idle session sweeps
	var sweepScheduler *scheduler.Scheduler
	if cfg.SweepEnabled {
		sweepScheduler = scheduler.New(scheduler.Config{
			Schedule: cfg.SweepSchedule,
			Timeout:  cfg.SweepTimeout,
			Enabled:  cfg.SweepEnabled,
		}, pickerService, logger.Logger())
		if err := sweepScheduler.Start(); err != nil {
			logger.Error("Failed to start sweep scheduler", slog.String("error", err.Error()))
			sweepScheduler = nil
		}
	}

	// Create server
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Handle graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down server...")

		// Stop scheduler first
		if sweepScheduler != nil {
			ctx := sweepScheduler.Stop()
			<-ctx.Done()
			logger.Info("Scheduler stopped")
		}

		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("Server shutdown error", slog.String("error", err.Error()))
		}
	}()

	logger.Info("Server starting",
		slog.String("port", cfg.Port),
		slog.String("timezone", loc.String()),
	)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Printf("Server failed: %v", err)
	}
}
