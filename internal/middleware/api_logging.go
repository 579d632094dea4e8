package middleware

import (
	"net/http"
	"strings"
	"time"

	"qc-backend/internal/models"
	"qc-backend/internal/repositories"
	"qc-backend/internal/timeutil"
)

// APILoggingMiddleware records API requests into the in-memory log buffer.
// Writes go through a channel so a slow consumer never blocks a request.
type APILoggingMiddleware struct {
	repo    *repositories.RequestLogRepository
	logChan chan *models.APIRequestLog
}

// responseWriter wraps http.ResponseWriter to capture status code and size
type responseWriter struct {
	http.ResponseWriter
	statusCode   int
	bytesWritten int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	n, err := rw.ResponseWriter.Write(b)
	rw.bytesWritten += n
	return n, err
}

func NewAPILoggingMiddleware(repo *repositories.RequestLogRepository) *APILoggingMiddleware {
	m := &APILoggingMiddleware{
		repo:    repo,
		logChan: make(chan *models.APIRequestLog, 1000), // Buffer for async logging
	}

	// Start async log writer
	go m.asyncLogWriter()

	return m
}

func (m *APILoggingMiddleware) asyncLogWriter() {
	for entry := range m.logChan {
		m.repo.Insert(entry)
	}
}

// Handler returns the middleware handler
func (m *APILoggingMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Skip logging for static files and health checks
		if shouldSkipLogging(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		start := timeutil.Now()

		requestSize := 0
		if r.ContentLength > 0 {
			requestSize = int(r.ContentLength)
		}

		rw := &responseWriter{ResponseWriter: w, statusCode: 200}
		next.ServeHTTP(rw, r)

		entry := &models.APIRequestLog{
			Timestamp:    start,
			Method:       r.Method,
			Path:         r.URL.Path,
			StatusCode:   rw.statusCode,
			DurationMs:   time.Since(start).Milliseconds(),
			RequestSize:  requestSize,
			ResponseSize: rw.bytesWritten,
		}

		select {
		case m.logChan <- entry:
		default:
			// Buffer full; drop rather than block the request
		}
	})
}

func shouldSkipLogging(path string) bool {
	return path == "/health" ||
		path == "/metrics" ||
		strings.HasPrefix(path, "/static/")
}
