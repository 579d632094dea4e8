package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStatusAt(t *testing.T) {
	now := time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC)
	dueSoon := 10 * time.Minute
	lateGrace := time.Duration(0)

	tests := []struct {
		name  string
		dueAt time.Time
		want  QueueStatus
	}{
		{"well before the window", now.Add(30 * time.Minute), StatusEarly},
		{"just outside the window", now.Add(10*time.Minute + time.Second), StatusEarly},
		{"at the window edge", now.Add(10 * time.Minute), StatusDue},
		{"inside the window", now.Add(5 * time.Minute), StatusDue},
		{"exactly due", now, StatusDue},
		{"past due", now.Add(-time.Second), StatusLate},
		{"long past due", now.Add(-time.Hour), StatusLate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := &QueueItem{ID: "q1", DueAt: tt.dueAt}
			assert.Equal(t, tt.want, item.StatusAt(now, dueSoon, lateGrace))
		})
	}
}

func TestStatusAtLockOverridesTime(t *testing.T) {
	now := time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC)
	item := &QueueItem{
		ID:       "q1",
		DueAt:    now.Add(-time.Hour),
		LockedBy: &LockInfo{UserID: "user-1", UserName: "Aisyah", LockedAt: now},
	}
	assert.Equal(t, StatusLocked, item.StatusAt(now, 10*time.Minute, 0))
}

func TestStatusAtLateGrace(t *testing.T) {
	now := time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC)
	item := &QueueItem{ID: "q1", DueAt: now.Add(-time.Minute)}

	assert.Equal(t, StatusLate, item.StatusAt(now, 10*time.Minute, 0))
	assert.Equal(t, StatusDue, item.StatusAt(now, 10*time.Minute, 2*time.Minute))
}
