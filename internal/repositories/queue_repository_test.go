package repositories

import (
	"sync"
	"testing"
	"time"

	"qc-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testQueueRepo() *QueueRepository {
	now := time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC)
	return NewQueueRepository([]*models.QueueItem{
		{ID: "q1", DueAt: now, ItemCode: "PET-COOK-1L", Line: "L1"},
		{ID: "q2", DueAt: now.Add(15 * time.Minute), ItemCode: "HDPE-COOK-5L", Line: "L2"},
	})
}

func TestLockExclusivity(t *testing.T) {
	repo := testQueueRepo()
	aisyah := &models.User{ID: "user-1", Name: "Aisyah"}
	lim := &models.User{ID: "user-2", Name: "Lim"}
	at := time.Now()

	item, err := repo.Lock("q1", aisyah, at)
	require.NoError(t, err)
	require.NotNil(t, item.LockedBy)
	assert.Equal(t, "user-1", item.LockedBy.UserID)

	_, err = repo.Lock("q1", lim, at)
	assert.ErrorIs(t, err, models.ErrAlreadyLocked)

	// Re-locking by the holder is a no-op, not an error.
	item, err = repo.Lock("q1", aisyah, at.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, at, item.LockedBy.LockedAt)
}

func TestUnlock(t *testing.T) {
	repo := testQueueRepo()
	user := &models.User{ID: "user-1", Name: "Aisyah"}

	assert.ErrorIs(t, repo.Unlock("q1"), models.ErrNotLocked)

	_, err := repo.Lock("q1", user, time.Now())
	require.NoError(t, err)
	require.NoError(t, repo.Unlock("q1"))

	item, err := repo.Get("q1")
	require.NoError(t, err)
	assert.Nil(t, item.LockedBy)
}

func TestLockUnknownItem(t *testing.T) {
	repo := testQueueRepo()
	user := &models.User{ID: "user-1"}

	_, err := repo.Lock("missing", user, time.Now())
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.ErrorIs(t, repo.Unlock("missing"), models.ErrNotFound)
	_, err = repo.Get("missing")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestConcurrentLockSingleWinner(t *testing.T) {
	repo := testQueueRepo()
	at := time.Now()

	const contenders = 16
	var wg sync.WaitGroup
	wins := make(chan string, contenders)

	for i := 0; i < contenders; i++ {
		user := &models.User{ID: "user-" + string(rune('a'+i)), Name: "Contender"}
		wg.Add(1)
		go func(u *models.User) {
			defer wg.Done()
			if _, err := repo.Lock("q1", u, at); err == nil {
				wins <- u.ID
			}
		}(user)
	}
	wg.Wait()
	close(wins)

	var winners []string
	for id := range wins {
		winners = append(winners, id)
	}
	require.Len(t, winners, 1)

	item, err := repo.Get("q1")
	require.NoError(t, err)
	require.NotNil(t, item.LockedBy)
	assert.Equal(t, winners[0], item.LockedBy.UserID)
	assert.Equal(t, 1, repo.ActiveLocks())
}

func TestListReturnsSnapshots(t *testing.T) {
	repo := testQueueRepo()

	items := repo.List()
	require.Len(t, items, 2)
	assert.Equal(t, "q1", items[0].ID)
	assert.Equal(t, "q2", items[1].ID)

	// Mutating a returned item must not leak into the store.
	items[0].ItemCode = "TAMPERED"
	items[0].LockedBy = &models.LockInfo{UserID: "ghost"}

	fresh, err := repo.Get("q1")
	require.NoError(t, err)
	assert.Equal(t, "PET-COOK-1L", fresh.ItemCode)
	assert.Nil(t, fresh.LockedBy)
}
