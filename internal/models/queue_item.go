package models

import "time"

type Priority string

const (
	PriorityComplaint    Priority = "complaint"
	PriorityFirstArticle Priority = "first-article"
	PriorityChangeover   Priority = "changeover"
	PriorityRoutine      Priority = "routine"
)

type QueueStatus string

const (
	StatusEarly  QueueStatus = "early"
	StatusDue    QueueStatus = "due"
	StatusLate   QueueStatus = "late"
	StatusLocked QueueStatus = "locked"
)

// LockInfo records who holds the exclusive claim on a queue item.
// Present iff the item status is locked.
type LockInfo struct {
	UserID   string    `json:"user_id"`
	UserName string    `json:"user_name"`
	Avatar   string    `json:"avatar,omitempty"`
	LockedAt time.Time `json:"locked_at"`
}

type QueueItem struct {
	ID        string    `json:"id"`
	DueAt     time.Time `json:"due_at"`
	ItemCode  string    `json:"item_code"`
	ItemName  string    `json:"item_name"`
	Line      string    `json:"line"`
	Machine   string    `json:"machine"`
	Mold      string    `json:"mold"`
	WorkOrder string    `json:"work_order"`
	Priority  Priority  `json:"priority"`
	Status    QueueStatus `json:"status"`
	LockedBy  *LockInfo `json:"locked_by,omitempty"`
}

// StatusAt derives the item's status for a given clock reading. A held lock
// overrides the temporal view. Otherwise:
//   - more than dueSoon before dueAt   -> early
//   - more than lateGrace past dueAt   -> late
//   - anything in between              -> due
func (q *QueueItem) StatusAt(now time.Time, dueSoon, lateGrace time.Duration) QueueStatus {
	if q.LockedBy != nil {
		return StatusLocked
	}
	if now.Before(q.DueAt.Add(-dueSoon)) {
		return StatusEarly
	}
	if now.After(q.DueAt.Add(lateGrace)) {
		return StatusLate
	}
	return StatusDue
}

// StartInspectionRequest identifies the user claiming a queue item.
type StartInspectionRequest struct {
	UserID string `json:"user_id"`
}
