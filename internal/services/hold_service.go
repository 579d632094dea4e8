package services

import (
	"log"

	"qc-backend/internal/metrics"
	"qc-backend/internal/models"
	"qc-backend/internal/repositories"
	"qc-backend/internal/timeutil"

	"github.com/google/uuid"
)

// HoldService owns the non-conformance hold records. Creating a hold is
// what releases the lock an out-of-spec session still carries.
type HoldService struct {
	repo        *repositories.HoldRepository
	inspections *InspectionService
	events      EventPublisher
}

func NewHoldService(repo *repositories.HoldRepository, inspections *InspectionService, events EventPublisher) *HoldService {
	return &HoldService{repo: repo, inspections: inspections, events: events}
}

// Create raises a hold for an OOS session and releases its deferred lock.
func (s *HoldService) Create(req *models.CreateHoldRequest) (*models.Hold, error) {
	session, err := s.inspections.FinalizeHold(req.SessionID)
	if err != nil {
		return nil, err
	}

	now := timeutil.Now()
	hold := &models.Hold{
		ID:           uuid.NewString(),
		InspectionID: session.RecordID,
		Reason:       req.Reason,
		Measurements: copyMeasurements(session.Measurements),
		Status:       "active",
		CreatedAt:    now,
		CreatedBy:    req.UserID,
	}
	s.repo.Create(hold)
	metrics.HoldsCreated.Inc()

	log.Printf("[Hold] created %s for inspection %s (%s)", hold.ID, hold.InspectionID, req.Reason)
	s.events.Publish(QueueEvent{
		Type: "hold_created", QueueItemID: session.QueueItemID, SessionID: session.ID,
		UserID: req.UserID, Detail: req.Reason, Timestamp: now,
	})
	return hold, nil
}

func (s *HoldService) List() []*models.Hold {
	return s.repo.List()
}

func (s *HoldService) Get(id string) (*models.Hold, error) {
	return s.repo.Get(id)
}

func (s *HoldService) Release(id, userID string) (*models.Hold, error) {
	hold, err := s.repo.Release(id, userID, timeutil.Now())
	if err != nil {
		return nil, err
	}

	log.Printf("[Hold] released %s by %s", id, userID)
	s.events.Publish(QueueEvent{
		Type: "hold_released", UserID: userID, Detail: id, Timestamp: timeutil.Now(),
	})
	return hold, nil
}
