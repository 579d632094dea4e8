package repositories

import (
	"sync"
	"time"

	"qc-backend/internal/models"
)

type HoldRepository struct {
	mu    sync.RWMutex
	holds []*models.Hold
}

func NewHoldRepository() *HoldRepository {
	return &HoldRepository{}
}

func (r *HoldRepository) Create(hold *models.Hold) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.holds = append(r.holds, hold)
}

func (r *HoldRepository) List() []*models.Hold {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Hold, len(r.holds))
	copy(out, r.holds)
	return out
}

func (r *HoldRepository) Get(id string) (*models.Hold, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, h := range r.holds {
		if h.ID == id {
			return h, nil
		}
	}
	return nil, models.ErrHoldNotFound
}

// Release marks an active hold released. Releasing an already released
// hold is a no-op.
func (r *HoldRepository) Release(id string, userID string, at time.Time) (*models.Hold, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, h := range r.holds {
		if h.ID != id {
			continue
		}
		if h.Status == "active" {
			h.Status = "released"
			h.ReleasedAt = &at
			h.ReleasedBy = &userID
		}
		return h, nil
	}
	return nil, models.ErrHoldNotFound
}

// CountByStatus returns active and released hold counts.
func (r *HoldRepository) CountByStatus() (active, released int) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, h := range r.holds {
		if h.Status == "active" {
			active++
		} else {
			released++
		}
	}
	return active, released
}
