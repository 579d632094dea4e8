package services

import (
	"sort"
	"strings"
	"time"

	"qc-backend/internal/models"
	"qc-backend/internal/repositories"
	"qc-backend/internal/timeutil"
)

// QueueFilter narrows the queue listing. Zero values and "all" pass
// everything through.
type QueueFilter struct {
	Search   string
	Priority string
	Line     string
	// Sort turns on explicit ordering by due time, then item code, then
	// line. Default is insertion order.
	Sort bool
}

// QueueService serves the inspection queue views. Temporal status is
// derived per request from dueAt and the configured windows; it is never
// stored on the item.
type QueueService struct {
	repo      *repositories.QueueRepository
	dueSoon   time.Duration
	lateGrace time.Duration
}

func NewQueueService(repo *repositories.QueueRepository, dueSoon, lateGrace time.Duration) *QueueService {
	return &QueueService{repo: repo, dueSoon: dueSoon, lateGrace: lateGrace}
}

// List returns the queue with statuses derived at call time, filtered and
// optionally sorted.
func (s *QueueService) List(filter QueueFilter) []*models.QueueItem {
	now := timeutil.Now()
	search := strings.ToLower(strings.TrimSpace(filter.Search))

	items := make([]*models.QueueItem, 0)
	for _, item := range s.repo.List() {
		item.Status = item.StatusAt(now, s.dueSoon, s.lateGrace)

		if search != "" &&
			!strings.Contains(strings.ToLower(item.ItemCode), search) &&
			!strings.Contains(strings.ToLower(item.ItemName), search) {
			continue
		}
		if filter.Priority != "" && filter.Priority != "all" && string(item.Priority) != filter.Priority {
			continue
		}
		if filter.Line != "" && filter.Line != "all" && item.Line != filter.Line {
			continue
		}
		items = append(items, item)
	}

	if filter.Sort {
		sort.SliceStable(items, func(i, j int) bool {
			if !items[i].DueAt.Equal(items[j].DueAt) {
				return items[i].DueAt.Before(items[j].DueAt)
			}
			if items[i].ItemCode != items[j].ItemCode {
				return items[i].ItemCode < items[j].ItemCode
			}
			return items[i].Line < items[j].Line
		})
	}

	return items
}

// Get returns one queue item with its derived status.
func (s *QueueService) Get(id string) (*models.QueueItem, error) {
	item, err := s.repo.Get(id)
	if err != nil {
		return nil, err
	}
	item.Status = item.StatusAt(timeutil.Now(), s.dueSoon, s.lateGrace)
	return item, nil
}

// MissedCount counts items currently late.
func (s *QueueService) MissedCount() int {
	now := timeutil.Now()
	n := 0
	for _, item := range s.repo.List() {
		if item.StatusAt(now, s.dueSoon, s.lateGrace) == models.StatusLate {
			n++
		}
	}
	return n
}
