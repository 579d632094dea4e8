package services

import (
	"testing"
	"time"

	"qc-backend/internal/models"
	"qc-backend/internal/repositories"
	"qc-backend/internal/specs"
	"qc-backend/internal/timeutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type serviceHarness struct {
	queueRepo      *repositories.QueueRepository
	userRepo       *repositories.UserRepository
	inspectionRepo *repositories.InspectionRepository
	holdRepo       *repositories.HoldRepository
	inspections    *InspectionService
	holds          *HoldService
}

func newHarness(t *testing.T) *serviceHarness {
	t.Helper()
	now := timeutil.Now()

	h := &serviceHarness{
		queueRepo: repositories.NewQueueRepository([]*models.QueueItem{
			{
				ID: "q1", DueAt: now, ItemCode: "PET-COOK-1L",
				ItemName: "1L PET Cooking Oil Bottle", Line: "L1",
				Machine: "ENGEL-220T", Mold: "MOLD-12", WorkOrder: "WO-2025-081",
				Priority: models.PriorityComplaint,
			},
			{
				ID: "q2", DueAt: now.Add(15 * time.Minute), ItemCode: "HDPE-COOK-5L",
				ItemName: "5L HDPE Cooking Oil Bottle", Line: "L2",
				Machine: "NISSEI-180T", Mold: "MOLD-7", WorkOrder: "WO-2025-094",
				Priority: models.PriorityRoutine,
			},
		}),
		userRepo: repositories.NewUserRepository([]*models.User{
			{ID: "user-1", Name: "Aisyah", Role: "inspector"},
			{ID: "user-2", Name: "Lim", Role: "qc-lead"},
		}),
		inspectionRepo: repositories.NewInspectionRepository(),
		holdRepo:       repositories.NewHoldRepository(),
	}
	h.inspections = NewInspectionService(h.queueRepo, h.userRepo, h.inspectionRepo, specs.Defaults(), NopPublisher{})
	h.holds = NewHoldService(h.holdRepo, h.inspections, NopPublisher{})
	return h
}

// record fills every PET-COOK-1L field with in-spec values, then applies
// the overrides.
func (h *serviceHarness) recordAll(t *testing.T, sessionID string, overrides map[string]string) {
	t.Helper()
	values := map[string]string{
		"neck-od":        "29.00",
		"weight":         "19.0",
		"wall-thickness": "0.45",
		"visual-defects": "OK",
	}
	for k, v := range overrides {
		values[k] = v
	}
	for fieldID, value := range values {
		_, err := h.inspections.RecordMeasurement(sessionID, fieldID, value)
		require.NoError(t, err)
	}
}

func TestStartLocksItem(t *testing.T) {
	h := newHarness(t)

	session, err := h.inspections.Start("q1", "user-1")
	require.NoError(t, err)
	assert.Equal(t, models.SessionOpen, session.State)
	assert.Equal(t, "PET-COOK-1L", session.ItemCode)
	assert.Equal(t, "WO-2025-081", session.WorkOrder)

	// Every spec field starts pending.
	require.Len(t, session.Results, 4)
	for fieldID, result := range session.Results {
		assert.Equal(t, models.ResultPending, result, fieldID)
	}

	item, err := h.queueRepo.Get("q1")
	require.NoError(t, err)
	require.NotNil(t, item.LockedBy)
	assert.Equal(t, "user-1", item.LockedBy.UserID)
	assert.Equal(t, "Aisyah", item.LockedBy.UserName)
}

func TestStartLockConflict(t *testing.T) {
	h := newHarness(t)

	_, err := h.inspections.Start("q1", "user-1")
	require.NoError(t, err)

	_, err = h.inspections.Start("q1", "user-2")
	assert.ErrorIs(t, err, models.ErrLockConflict)
}

func TestStartUnknownUserOrItem(t *testing.T) {
	h := newHarness(t)

	_, err := h.inspections.Start("q1", "nobody")
	assert.ErrorIs(t, err, repositories.ErrUserNotFound)

	_, err = h.inspections.Start("missing", "user-1")
	assert.ErrorIs(t, err, models.ErrNotFound)

	// Neither failed start may leave a lock behind.
	item, err := h.queueRepo.Get("q1")
	require.NoError(t, err)
	assert.Nil(t, item.LockedBy)
}

func TestRecordMeasurementEvaluatesImmediately(t *testing.T) {
	h := newHarness(t)
	session, err := h.inspections.Start("q1", "user-1")
	require.NoError(t, err)

	result, err := h.inspections.RecordMeasurement(session.ID, "neck-od", "29.05")
	require.NoError(t, err)
	assert.Equal(t, models.ResultPass, result)

	// Correcting a value re-evaluates it.
	result, err = h.inspections.RecordMeasurement(session.ID, "neck-od", "28.50")
	require.NoError(t, err)
	assert.Equal(t, models.ResultFail, result)

	_, err = h.inspections.RecordMeasurement(session.ID, "no-such-field", "1.0")
	assert.ErrorIs(t, err, models.ErrUnknownField)

	_, err = h.inspections.RecordMeasurement("no-such-session", "neck-od", "29.00")
	assert.ErrorIs(t, err, models.ErrSessionNotFound)
}

func TestSubmitBlocksOnPendingFields(t *testing.T) {
	h := newHarness(t)
	session, err := h.inspections.Start("q1", "user-1")
	require.NoError(t, err)

	_, err = h.inspections.Submit(session.ID)
	assert.ErrorIs(t, err, models.ErrIncompleteInspection)

	// Three of four fields filled still blocks.
	for fieldID, value := range map[string]string{
		"neck-od": "29.00", "weight": "19.0", "wall-thickness": "0.45",
	} {
		_, err := h.inspections.RecordMeasurement(session.ID, fieldID, value)
		require.NoError(t, err)
	}
	_, err = h.inspections.Submit(session.ID)
	assert.ErrorIs(t, err, models.ErrIncompleteInspection)

	// The item stays locked throughout.
	item, err := h.queueRepo.Get("q1")
	require.NoError(t, err)
	assert.NotNil(t, item.LockedBy)
}

func TestSubmitCleanPassCompletesAndUnlocks(t *testing.T) {
	h := newHarness(t)
	session, err := h.inspections.Start("q1", "user-1")
	require.NoError(t, err)

	h.recordAll(t, session.ID, nil)

	resp, err := h.inspections.Submit(session.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeCompleted, resp.Outcome)
	assert.NotEmpty(t, resp.RecordID)
	assert.Equal(t, models.SessionCompleted, session.State)

	item, err := h.queueRepo.Get("q1")
	require.NoError(t, err)
	assert.Nil(t, item.LockedBy)

	record, err := h.inspectionRepo.Get(resp.RecordID)
	require.NoError(t, err)
	assert.Equal(t, "submitted", record.Status)
	assert.Equal(t, "user-1", record.SubmittedBy)
	assert.Equal(t, "L1", record.Line)

	// A settled session accepts no further writes.
	_, err = h.inspections.RecordMeasurement(session.ID, "weight", "19.1")
	assert.ErrorIs(t, err, models.ErrSessionClosed)
	_, err = h.inspections.Submit(session.ID)
	assert.ErrorIs(t, err, models.ErrSessionClosed)
}

func TestSubmitOutOfSpecTriggersHoldAndKeepsLock(t *testing.T) {
	h := newHarness(t)
	session, err := h.inspections.Start("q1", "user-1")
	require.NoError(t, err)

	h.recordAll(t, session.ID, map[string]string{"neck-od": "30.0"})

	resp, err := h.inspections.Submit(session.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeHoldTriggered, resp.Outcome)
	assert.Equal(t, models.SessionHoldTriggered, session.State)

	// Lock is deferred until the hold record exists.
	item, err := h.queueRepo.Get("q1")
	require.NoError(t, err)
	require.NotNil(t, item.LockedBy)
	assert.Equal(t, "user-1", item.LockedBy.UserID)

	record, err := h.inspectionRepo.Get(resp.RecordID)
	require.NoError(t, err)
	assert.Equal(t, "oos", record.Status)
	assert.Equal(t, "30.0", record.Measurements["neck-od"])
}

func TestCancelUnlocksRegardlessOfProgress(t *testing.T) {
	h := newHarness(t)
	session, err := h.inspections.Start("q1", "user-1")
	require.NoError(t, err)

	_, err = h.inspections.RecordMeasurement(session.ID, "neck-od", "28.50")
	require.NoError(t, err)

	require.NoError(t, h.inspections.Cancel(session.ID))
	assert.Equal(t, models.SessionCancelled, session.State)

	item, err := h.queueRepo.Get("q1")
	require.NoError(t, err)
	assert.Nil(t, item.LockedBy)

	// No record is written for a cancelled session.
	assert.Empty(t, h.inspectionRepo.List())

	assert.ErrorIs(t, h.inspections.Cancel(session.ID), models.ErrSessionClosed)
}

func TestUpdateScanDataAndAttachments(t *testing.T) {
	h := newHarness(t)
	session, err := h.inspections.Start("q1", "user-1")
	require.NoError(t, err)

	err = h.inspections.UpdateScanData(session.ID, &models.UpdateScanDataRequest{
		BatchLot: "LOT-X-99", CartonID: "CTN-42",
	})
	require.NoError(t, err)
	assert.Equal(t, "LOT-X-99", session.BatchLot)
	assert.Equal(t, "CTN-42", session.CartonID)
	// Fields not in the request keep their start values.
	assert.Equal(t, "MOLD-12", session.Mold)

	require.NoError(t, h.inspections.AddAttachment(session.ID, "photo-1.jpg"))
	require.NoError(t, h.inspections.AddAttachment(session.ID, "photo-2.jpg"))
	assert.Equal(t, []string{"photo-1.jpg", "photo-2.jpg"}, session.Attachments)
}

func TestFinalizeHoldOnlyFromHoldTriggered(t *testing.T) {
	h := newHarness(t)
	session, err := h.inspections.Start("q1", "user-1")
	require.NoError(t, err)

	_, err = h.inspections.FinalizeHold(session.ID)
	assert.ErrorIs(t, err, models.ErrSessionClosed)

	h.recordAll(t, session.ID, map[string]string{"weight": "25.0"})
	_, err = h.inspections.Submit(session.ID)
	require.NoError(t, err)

	got, err := h.inspections.FinalizeHold(session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.ID, got.ID)

	item, err := h.queueRepo.Get("q1")
	require.NoError(t, err)
	assert.Nil(t, item.LockedBy)
}
