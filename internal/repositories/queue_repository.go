package repositories

import (
	"sync"
	"time"

	"qc-backend/internal/models"
)

// QueueRepository owns the process-wide queue item collection. All lock and
// unlock operations are serialized under one mutex so that two concurrent
// claims on the same item resolve to exactly one winner.
//
// Reads return snapshot copies; callers never see the live structs.
type QueueRepository struct {
	mu    sync.Mutex
	items map[string]*models.QueueItem
	order []string
}

func NewQueueRepository(items []*models.QueueItem) *QueueRepository {
	r := &QueueRepository{
		items: make(map[string]*models.QueueItem, len(items)),
		order: make([]string, 0, len(items)),
	}
	for _, item := range items {
		copied := *item
		r.items[item.ID] = &copied
		r.order = append(r.order, item.ID)
	}
	return r
}

// List returns all queue items in insertion order.
func (r *QueueRepository) List() []*models.QueueItem {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*models.QueueItem, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, snapshot(r.items[id]))
	}
	return out
}

func (r *QueueRepository) Get(id string) (*models.QueueItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return snapshot(item), nil
}

// Lock claims an item for a user. The claim is a compare-and-set on the
// lock record: a foreign holder fails with ErrAlreadyLocked, re-locking by
// the same user is a no-op.
func (r *QueueRepository) Lock(id string, user *models.User, at time.Time) (*models.QueueItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok {
		return nil, models.ErrNotFound
	}

	if item.LockedBy != nil {
		if item.LockedBy.UserID != user.ID {
			return nil, models.ErrAlreadyLocked
		}
		return snapshot(item), nil
	}

	item.LockedBy = &models.LockInfo{
		UserID:   user.ID,
		UserName: user.Name,
		Avatar:   user.Avatar,
		LockedAt: at,
	}
	return snapshot(item), nil
}

// Unlock releases an item's lock record. Fails with ErrNotLocked when the
// item holds no lock.
func (r *QueueRepository) Unlock(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok {
		return models.ErrNotFound
	}
	if item.LockedBy == nil {
		return models.ErrNotLocked
	}
	item.LockedBy = nil
	return nil
}

// ActiveLocks counts items currently locked.
func (r *QueueRepository) ActiveLocks() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for _, item := range r.items {
		if item.LockedBy != nil {
			n++
		}
	}
	return n
}

func snapshot(item *models.QueueItem) *models.QueueItem {
	copied := *item
	if item.LockedBy != nil {
		lock := *item.LockedBy
		copied.LockedBy = &lock
	}
	return &copied
}
