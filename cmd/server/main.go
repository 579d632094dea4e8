package main

import (
	"fmt"
	"log"
	"net/http"

	"qc-backend/internal/config"
	"qc-backend/internal/handlers"
	"qc-backend/internal/health"
	h "qc-backend/internal/http"
	"qc-backend/internal/middleware"
	"qc-backend/internal/monitoring"
	"qc-backend/internal/repositories"
	"qc-backend/internal/seed"
	"qc-backend/internal/services"
	"qc-backend/internal/specs"
	"qc-backend/internal/timeutil"
)

func main() {
	cfg := config.Load()

	// Specification tables: immutable for the process lifetime
	table, err := specs.Load(cfg.Specs.Path)
	if err != nil {
		log.Fatalf("failed to load specification tables: %v", err)
	}
	log.Printf("[Server] loaded specification tables for %d item codes", len(table.ItemCodes()))

	// In-memory stores seeded from the static data set
	queueRepo := repositories.NewQueueRepository(seed.QueueItems(timeutil.Now()))
	userRepo := repositories.NewUserRepository(seed.Users())
	inspectionRepo := repositories.NewInspectionRepository()
	holdRepo := repositories.NewHoldRepository()
	settingRepo := repositories.NewSystemSettingRepository(seed.Settings())
	requestLogRepo := repositories.NewRequestLogRepository(cfg.App.RequestLogSize)

	queueService := services.NewQueueService(queueRepo, cfg.Queue.DueSoonWindow, cfg.Queue.LateGrace)

	// Monitoring server doubles as the queue event publisher
	var events services.EventPublisher = services.NopPublisher{}
	var monitor *monitoring.Server
	if cfg.Monitoring.Enabled {
		monitor = monitoring.NewServer(cfg.Monitoring.Port, queueRepo, queueService, holdRepo, inspectionRepo, requestLogRepo)
		events = monitor
	}

	inspectionService := services.NewInspectionService(queueRepo, userRepo, inspectionRepo, table, events)
	holdService := services.NewHoldService(holdRepo, inspectionService, events)
	reportService := services.NewReportService(inspectionRepo, holdRepo, queueService, queueRepo)
	settingService := services.NewSystemSettingService(settingRepo)
	languageService := services.NewLanguageService(seed.Translations(), cfg.App.DefaultLanguage)

	healthChecker := health.NewHealthChecker(table, queueRepo)

	router := h.NewRouter(
		handlers.NewQueueHandler(queueService, inspectionService),
		handlers.NewInspectionHandler(inspectionService),
		handlers.NewHoldHandler(holdService),
		handlers.NewReportHandler(reportService),
		handlers.NewSystemSettingHandler(settingService),
		handlers.NewLanguageHandler(languageService),
		handlers.NewUserHandler(userRepo),
		handlers.NewHealthHandler(healthChecker),
		middleware.NewAPILoggingMiddleware(requestLogRepo),
	)

	corsHandler := middleware.NewCORS(cfg)(router)

	if monitor != nil {
		go monitor.Start()
	}

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("[Server] QC backend listening on %s", addr)
	if err := http.ListenAndServe(addr, corsHandler); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
