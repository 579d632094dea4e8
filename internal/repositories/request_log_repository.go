package repositories

import (
	"sync"

	"qc-backend/internal/models"
)

// RequestLogRepository is a fixed-size ring buffer of recent API request
// logs, fed asynchronously by the logging middleware.
type RequestLogRepository struct {
	mu   sync.RWMutex
	logs []*models.APIRequestLog
	next int
	full bool
}

func NewRequestLogRepository(capacity int) *RequestLogRepository {
	if capacity <= 0 {
		capacity = 1000
	}
	return &RequestLogRepository{logs: make([]*models.APIRequestLog, capacity)}
}

func (r *RequestLogRepository) Insert(entry *models.APIRequestLog) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.logs[r.next] = entry
	r.next = (r.next + 1) % len(r.logs)
	if r.next == 0 {
		r.full = true
	}
}

// Recent returns up to n log entries, newest first.
func (r *RequestLogRepository) Recent(n int) []*models.APIRequestLog {
	r.mu.RLock()
	defer r.mu.RUnlock()

	size := r.next
	if r.full {
		size = len(r.logs)
	}
	if n <= 0 || n > size {
		n = size
	}

	out := make([]*models.APIRequestLog, 0, n)
	for i := 1; i <= n; i++ {
		idx := (r.next - i + len(r.logs)) % len(r.logs)
		out = append(out, r.logs[idx])
	}
	return out
}

// Count returns the number of buffered entries.
func (r *RequestLogRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.full {
		return len(r.logs)
	}
	return r.next
}
