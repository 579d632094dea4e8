package http

import (
	"net/http"

	"qc-backend/internal/handlers"
	"qc-backend/internal/middleware"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(
	queueHandler *handlers.QueueHandler,
	inspectionHandler *handlers.InspectionHandler,
	holdHandler *handlers.HoldHandler,
	reportHandler *handlers.ReportHandler,
	systemSettingHandler *handlers.SystemSettingHandler,
	languageHandler *handlers.LanguageHandler,
	userHandler *handlers.UserHandler,
	healthHandler *handlers.HealthHandler,
	apiLogging *middleware.APILoggingMiddleware,
) *mux.Router {
	r := mux.NewRouter()

	r.Use(middleware.PanicRecovery)
	r.Use(middleware.MetricsMiddleware)
	r.Use(apiLogging.Handler)

	// Health and metrics
	r.HandleFunc("/health", healthHandler.Health).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// Inspection queue
	queueAPI := r.PathPrefix("/api/queue").Subrouter()
	queueAPI.HandleFunc("", queueHandler.ListQueue).Methods("GET")
	queueAPI.HandleFunc("/{id}", queueHandler.GetItem).Methods("GET")
	queueAPI.HandleFunc("/{id}/start", queueHandler.StartInspection).Methods("POST")

	// Inspection sessions
	inspectionsAPI := r.PathPrefix("/api/inspections").Subrouter()
	inspectionsAPI.HandleFunc("/{id}", inspectionHandler.GetSession).Methods("GET")
	inspectionsAPI.HandleFunc("/{id}/measurements", inspectionHandler.RecordMeasurement).Methods("POST")
	inspectionsAPI.HandleFunc("/{id}/scan", inspectionHandler.UpdateScanData).Methods("PUT")
	inspectionsAPI.HandleFunc("/{id}/attachments", inspectionHandler.AddAttachment).Methods("POST")
	inspectionsAPI.HandleFunc("/{id}/submit", inspectionHandler.Submit).Methods("POST")
	inspectionsAPI.HandleFunc("/{id}/cancel", inspectionHandler.Cancel).Methods("POST")

	// NC holds
	holdsAPI := r.PathPrefix("/api/holds").Subrouter()
	holdsAPI.HandleFunc("", holdHandler.CreateHold).Methods("POST")
	holdsAPI.HandleFunc("", holdHandler.ListHolds).Methods("GET")
	holdsAPI.HandleFunc("/{id}", holdHandler.GetHold).Methods("GET")
	holdsAPI.HandleFunc("/{id}/release", holdHandler.ReleaseHold).Methods("POST")

	// KPI reports
	reportsAPI := r.PathPrefix("/api/reports").Subrouter()
	reportsAPI.HandleFunc("/kpi", reportHandler.GetKPI).Methods("GET")
	reportsAPI.HandleFunc("/kpi/pdf", reportHandler.DownloadKPIPDF).Methods("GET")
	reportsAPI.HandleFunc("/inspections/csv", reportHandler.DownloadInspectionsCSV).Methods("GET")
	reportsAPI.HandleFunc("/bundle", reportHandler.DownloadBundle).Methods("GET")

	// System settings
	settingsAPI := r.PathPrefix("/api/settings").Subrouter()
	settingsAPI.HandleFunc("", systemSettingHandler.ListSettings).Methods("GET")
	settingsAPI.HandleFunc("/{key}", systemSettingHandler.GetSetting).Methods("GET")
	settingsAPI.HandleFunc("/{key}", systemSettingHandler.UpdateSetting).Methods("PUT")

	// Localization
	translationsAPI := r.PathPrefix("/api/translations").Subrouter()
	translationsAPI.HandleFunc("", languageHandler.ListLanguages).Methods("GET")
	translationsAPI.HandleFunc("/{lang}", languageHandler.GetTable).Methods("GET")
	translationsAPI.HandleFunc("/{lang}/{key}", languageHandler.Translate).Methods("GET")

	// Users
	usersAPI := r.PathPrefix("/api/users").Subrouter()
	usersAPI.HandleFunc("", userHandler.ListUsers).Methods("GET")
	usersAPI.HandleFunc("/{id}", userHandler.GetUser).Methods("GET")

	// Serve static files
	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))

	return r
}
