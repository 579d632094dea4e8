package models

import "time"

// SessionState is the closed set of inspection session states. A session
// starts Open and ends in exactly one of the terminal states.
type SessionState string

const (
	SessionOpen          SessionState = "open"
	SessionCompleted     SessionState = "completed"
	SessionHoldTriggered SessionState = "hold_triggered"
	SessionCancelled     SessionState = "cancelled"
)

// Outcome of submitting an inspection session.
type Outcome string

const (
	OutcomeCompleted     Outcome = "completed"
	OutcomeHoldTriggered Outcome = "hold_triggered"
)

// InspectionSession binds a locked queue item, scan context and the
// in-progress measurement set. The session owns the lock it acquired at
// start and releases it on completion, cancellation, or hold creation.
type InspectionSession struct {
	ID          string                      `json:"id"`
	QueueItemID string                      `json:"queue_item_id"`
	ItemCode    string                      `json:"item_code"`
	BatchLot    string                      `json:"batch_lot"`
	Mold        string                      `json:"mold"`
	Machine     string                      `json:"machine"`
	WorkOrder   string                      `json:"work_order"`
	CartonID    string                      `json:"carton_id"`
	UserID      string                      `json:"user_id"`
	Measurements map[string]string          `json:"measurements"`
	Results     map[string]EvaluationResult `json:"results"`
	Attachments []string                    `json:"attachments,omitempty"`
	State       SessionState                `json:"state"`
	StartedAt   time.Time                   `json:"started_at"`
	// RecordID points at the inspection record written on submit.
	RecordID string `json:"record_id,omitempty"`
}

// InspectionRecord is the immutable record written when a session is
// submitted. Status is 'submitted' for a clean pass, 'oos' when any
// measurement failed its spec limits.
type InspectionRecord struct {
	ID           string            `json:"id"`
	QueueItemID  string            `json:"queue_item_id"`
	ItemCode     string            `json:"item_code"`
	Line         string            `json:"line"`
	BatchLot     string            `json:"batch_lot"`
	WorkOrder    string            `json:"work_order"`
	Measurements map[string]string `json:"measurements"`
	Status       string            `json:"status"` // 'submitted' or 'oos'
	SubmittedAt  time.Time         `json:"submitted_at"`
	SubmittedBy  string            `json:"submitted_by"`
}

type RecordMeasurementRequest struct {
	FieldID string `json:"field_id"`
	Value   string `json:"value"`
}

type UpdateScanDataRequest struct {
	BatchLot  string `json:"batch_lot"`
	Mold      string `json:"mold"`
	Machine   string `json:"machine"`
	WorkOrder string `json:"work_order"`
	CartonID  string `json:"carton_id"`
}

type AddAttachmentRequest struct {
	Ref string `json:"ref"`
}

type SubmitResponse struct {
	Outcome Outcome `json:"outcome"`
	// RecordID is set for completed submissions.
	RecordID string `json:"record_id,omitempty"`
}
