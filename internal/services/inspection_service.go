package services

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"qc-backend/internal/metrics"
	"qc-backend/internal/models"
	"qc-backend/internal/repositories"
	"qc-backend/internal/specs"
	"qc-backend/internal/timeutil"

	"github.com/google/uuid"
)

// InspectionService runs inspection sessions: it claims the queue item
// lock at start, tracks measurements and their evaluation, and settles the
// lock again on submit, cancel, or hold creation.
type InspectionService struct {
	queueRepo      *repositories.QueueRepository
	userRepo       *repositories.UserRepository
	inspectionRepo *repositories.InspectionRepository
	table          *specs.Table
	events         EventPublisher

	mu       sync.Mutex
	sessions map[string]*models.InspectionSession
}

func NewInspectionService(
	queueRepo *repositories.QueueRepository,
	userRepo *repositories.UserRepository,
	inspectionRepo *repositories.InspectionRepository,
	table *specs.Table,
	events EventPublisher,
) *InspectionService {
	return &InspectionService{
		queueRepo:      queueRepo,
		userRepo:       userRepo,
		inspectionRepo: inspectionRepo,
		table:          table,
		events:         events,
		sessions:       make(map[string]*models.InspectionSession),
	}
}

// Start locks the queue item for the user and opens a session bound to it.
// A foreign lock surfaces as ErrLockConflict. Every field of the item's
// specification table starts out pending.
func (s *InspectionService) Start(itemID, userID string) (*models.InspectionSession, error) {
	user, err := s.userRepo.Get(userID)
	if err != nil {
		return nil, err
	}

	item, err := s.queueRepo.Get(itemID)
	if err != nil {
		return nil, err
	}

	fields, err := s.table.Fields(item.ItemCode)
	if err != nil {
		return nil, err
	}

	now := timeutil.Now()
	if _, err := s.queueRepo.Lock(itemID, user, now); err != nil {
		if errors.Is(err, models.ErrAlreadyLocked) {
			metrics.LockConflicts.Inc()
			return nil, models.ErrLockConflict
		}
		return nil, err
	}
	metrics.ActiveLocks.Set(float64(s.queueRepo.ActiveLocks()))

	results := make(map[string]models.EvaluationResult, len(fields))
	for _, f := range fields {
		results[f.ID] = models.ResultPending
	}

	session := &models.InspectionSession{
		ID:           uuid.NewString(),
		QueueItemID:  item.ID,
		ItemCode:     item.ItemCode,
		BatchLot:     fmt.Sprintf("LOT-%s", now.Format("2006-01-02")),
		Mold:         item.Mold,
		Machine:      item.Machine,
		WorkOrder:    item.WorkOrder,
		UserID:       user.ID,
		Measurements: make(map[string]string),
		Results:      results,
		State:        models.SessionOpen,
		StartedAt:    now,
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	log.Printf("[Inspection] %s locked %s for inspection (session %s)", user.Name, item.ID, session.ID)
	s.events.Publish(QueueEvent{
		Type: "locked", QueueItemID: item.ID, SessionID: session.ID,
		UserID: user.ID, Timestamp: now,
	})

	return session, nil
}

// Get returns a session by id.
func (s *InspectionService) Get(sessionID string) (*models.InspectionSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, models.ErrSessionNotFound
	}
	return session, nil
}

// RecordMeasurement upserts the raw value for a field and re-evaluates it
// immediately. Unknown field ids fail with ErrUnknownField.
func (s *InspectionService) RecordMeasurement(sessionID, fieldID, rawValue string) (models.EvaluationResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return "", models.ErrSessionNotFound
	}
	if session.State != models.SessionOpen {
		return "", models.ErrSessionClosed
	}

	field, err := s.table.Field(session.ItemCode, fieldID)
	if err != nil {
		return "", err
	}

	session.Measurements[fieldID] = rawValue
	result := specs.Evaluate(field, rawValue)
	session.Results[fieldID] = result
	return result, nil
}

// UpdateScanData overwrites the session's scan context with what the
// operator scanned or typed. Attachment refs are stored opaquely.
func (s *InspectionService) UpdateScanData(sessionID string, req *models.UpdateScanDataRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return models.ErrSessionNotFound
	}
	if session.State != models.SessionOpen {
		return models.ErrSessionClosed
	}

	if req.BatchLot != "" {
		session.BatchLot = req.BatchLot
	}
	if req.Mold != "" {
		session.Mold = req.Mold
	}
	if req.Machine != "" {
		session.Machine = req.Machine
	}
	if req.WorkOrder != "" {
		session.WorkOrder = req.WorkOrder
	}
	if req.CartonID != "" {
		session.CartonID = req.CartonID
	}
	return nil
}

func (s *InspectionService) AddAttachment(sessionID, ref string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return models.ErrSessionNotFound
	}
	if session.State != models.SessionOpen {
		return models.ErrSessionClosed
	}
	session.Attachments = append(session.Attachments, ref)
	return nil
}

// Submit settles an open session. Every field of the specification table
// must carry pass or fail; a pending field blocks with
// ErrIncompleteInspection. Any failing field triggers a hold: the session
// moves to hold_triggered and the queue item STAYS locked until the hold
// is actually created. A clean pass completes the session and unlocks.
func (s *InspectionService) Submit(sessionID string) (*models.SubmitResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, models.ErrSessionNotFound
	}
	if session.State != models.SessionOpen {
		return nil, models.ErrSessionClosed
	}

	fields, err := s.table.Fields(session.ItemCode)
	if err != nil {
		return nil, err
	}

	for _, f := range fields {
		if session.Results[f.ID] == models.ResultPending {
			return nil, models.ErrIncompleteInspection
		}
	}

	item, err := s.queueRepo.Get(session.QueueItemID)
	if err != nil {
		return nil, err
	}

	now := timeutil.Now()
	record := &models.InspectionRecord{
		ID:           uuid.NewString(),
		QueueItemID:  session.QueueItemID,
		ItemCode:     session.ItemCode,
		Line:         item.Line,
		BatchLot:     session.BatchLot,
		WorkOrder:    session.WorkOrder,
		Measurements: copyMeasurements(session.Measurements),
		SubmittedAt:  now,
		SubmittedBy:  session.UserID,
	}

	session.RecordID = record.ID

	if specs.HasAnyFailure(session.Results) {
		session.State = models.SessionHoldTriggered
		record.Status = "oos"
		s.inspectionRepo.Create(record)

		metrics.InspectionsSubmitted.WithLabelValues("hold_triggered").Inc()
		log.Printf("[Inspection] session %s OOS on %s, item stays locked pending hold", session.ID, session.QueueItemID)
		s.events.Publish(QueueEvent{
			Type: "oos", QueueItemID: session.QueueItemID, SessionID: session.ID,
			UserID: session.UserID, Timestamp: now,
		})
		return &models.SubmitResponse{Outcome: models.OutcomeHoldTriggered, RecordID: record.ID}, nil
	}

	session.State = models.SessionCompleted
	record.Status = "submitted"
	s.inspectionRepo.Create(record)

	if err := s.queueRepo.Unlock(session.QueueItemID); err != nil {
		return nil, err
	}
	metrics.ActiveLocks.Set(float64(s.queueRepo.ActiveLocks()))
	metrics.InspectionsSubmitted.WithLabelValues("completed").Inc()

	log.Printf("[Inspection] session %s completed, %s unlocked", session.ID, session.QueueItemID)
	s.events.Publish(QueueEvent{
		Type: "completed", QueueItemID: session.QueueItemID, SessionID: session.ID,
		UserID: session.UserID, Timestamp: now,
	})
	return &models.SubmitResponse{Outcome: models.OutcomeCompleted, RecordID: record.ID}, nil
}

// Cancel discards an open session and unconditionally releases its lock,
// regardless of partial measurement state.
func (s *InspectionService) Cancel(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return models.ErrSessionNotFound
	}
	if session.State != models.SessionOpen {
		return models.ErrSessionClosed
	}

	session.State = models.SessionCancelled
	if err := s.queueRepo.Unlock(session.QueueItemID); err != nil && !errors.Is(err, models.ErrNotLocked) {
		return err
	}
	metrics.ActiveLocks.Set(float64(s.queueRepo.ActiveLocks()))

	log.Printf("[Inspection] session %s cancelled, %s unlocked", session.ID, session.QueueItemID)
	s.events.Publish(QueueEvent{
		Type: "cancelled", QueueItemID: session.QueueItemID, SessionID: session.ID,
		UserID: session.UserID, Timestamp: timeutil.Now(),
	})
	return nil
}

// FinalizeHold releases the deferred lock of a hold_triggered session.
// Called by the hold service once the hold record exists; until then the
// operator cannot walk away from an out-of-spec result.
func (s *InspectionService) FinalizeHold(sessionID string) (*models.InspectionSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, models.ErrSessionNotFound
	}
	if session.State != models.SessionHoldTriggered {
		return nil, models.ErrSessionClosed
	}

	if err := s.queueRepo.Unlock(session.QueueItemID); err != nil && !errors.Is(err, models.ErrNotLocked) {
		return nil, err
	}
	metrics.ActiveLocks.Set(float64(s.queueRepo.ActiveLocks()))
	return session, nil
}

func copyMeasurements(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
