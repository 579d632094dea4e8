package repositories

import (
	"sync"

	"qc-backend/internal/models"
)

// InspectionRepository stores the immutable records of submitted
// inspections, in submission order.
type InspectionRepository struct {
	mu      sync.RWMutex
	records []*models.InspectionRecord
}

func NewInspectionRepository() *InspectionRepository {
	return &InspectionRepository{}
}

func (r *InspectionRepository) Create(record *models.InspectionRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, record)
}

func (r *InspectionRepository) List() []*models.InspectionRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.InspectionRecord, len(r.records))
	copy(out, r.records)
	return out
}

func (r *InspectionRepository) Get(id string) (*models.InspectionRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rec := range r.records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return nil, models.ErrNotFound
}
