package repositories

import (
	"strconv"
	"testing"

	"qc-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestLogRingBuffer(t *testing.T) {
	repo := NewRequestLogRepository(3)
	assert.Equal(t, 0, repo.Count())
	assert.Empty(t, repo.Recent(10))

	for i := 1; i <= 2; i++ {
		repo.Insert(&models.APIRequestLog{Path: "/api/queue", Method: "GET", StatusCode: 200 + i})
	}
	assert.Equal(t, 2, repo.Count())

	recent := repo.Recent(10)
	require.Len(t, recent, 2)
	// Newest first.
	assert.Equal(t, 202, recent[0].StatusCode)
	assert.Equal(t, 201, recent[1].StatusCode)
}

func TestRequestLogOverwritesOldest(t *testing.T) {
	repo := NewRequestLogRepository(3)
	for i := 1; i <= 5; i++ {
		repo.Insert(&models.APIRequestLog{Path: "/api/queue/" + strconv.Itoa(i), Method: "GET"})
	}

	assert.Equal(t, 3, repo.Count())
	recent := repo.Recent(10)
	require.Len(t, recent, 3)
	assert.Equal(t, "/api/queue/5", recent[0].Path)
	assert.Equal(t, "/api/queue/3", recent[2].Path)

	limited := repo.Recent(1)
	require.Len(t, limited, 1)
	assert.Equal(t, "/api/queue/5", limited[0].Path)
}
