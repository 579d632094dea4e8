package services

import (
	"testing"

	"qc-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// oosSession drives a session to hold_triggered and returns it.
func oosSession(t *testing.T, h *serviceHarness) *models.InspectionSession {
	t.Helper()
	session, err := h.inspections.Start("q1", "user-1")
	require.NoError(t, err)
	h.recordAll(t, session.ID, map[string]string{"wall-thickness": "0.30"})
	_, err = h.inspections.Submit(session.ID)
	require.NoError(t, err)
	return session
}

func TestCreateHoldReleasesLock(t *testing.T) {
	h := newHarness(t)
	session := oosSession(t, h)

	hold, err := h.holds.Create(&models.CreateHoldRequest{
		SessionID: session.ID,
		Reason:    "Wall thickness below LSL",
		UserID:    "user-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "active", hold.Status)
	assert.Equal(t, session.RecordID, hold.InspectionID)
	assert.Equal(t, "Wall thickness below LSL", hold.Reason)
	assert.Equal(t, "0.30", hold.Measurements["wall-thickness"])

	item, err := h.queueRepo.Get("q1")
	require.NoError(t, err)
	assert.Nil(t, item.LockedBy)

	// The session is settled; a second hold for it is rejected.
	_, err = h.holds.Create(&models.CreateHoldRequest{SessionID: session.ID, UserID: "user-1"})
	assert.ErrorIs(t, err, models.ErrSessionClosed)
}

func TestCreateHoldRequiresOOSSession(t *testing.T) {
	h := newHarness(t)

	_, err := h.holds.Create(&models.CreateHoldRequest{SessionID: "nope", UserID: "user-1"})
	assert.ErrorIs(t, err, models.ErrSessionNotFound)

	session, err := h.inspections.Start("q1", "user-1")
	require.NoError(t, err)

	// An open session has no deferred lock to settle.
	_, err = h.holds.Create(&models.CreateHoldRequest{SessionID: session.ID, UserID: "user-1"})
	assert.ErrorIs(t, err, models.ErrSessionClosed)
}

func TestReleaseHold(t *testing.T) {
	h := newHarness(t)
	session := oosSession(t, h)

	hold, err := h.holds.Create(&models.CreateHoldRequest{
		SessionID: session.ID, Reason: "OOS", UserID: "user-1",
	})
	require.NoError(t, err)

	released, err := h.holds.Release(hold.ID, "user-2")
	require.NoError(t, err)
	assert.Equal(t, "released", released.Status)
	require.NotNil(t, released.ReleasedBy)
	assert.Equal(t, "user-2", *released.ReleasedBy)
	assert.NotNil(t, released.ReleasedAt)

	_, err = h.holds.Release("missing", "user-2")
	assert.ErrorIs(t, err, models.ErrHoldNotFound)
}
