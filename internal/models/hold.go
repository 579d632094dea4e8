package models

import "time"

// Hold is the quality record created when an inspection yields an
// out-of-spec result. Creating the hold is what finally releases the
// queue item lock held by the OOS session.
type Hold struct {
	ID           string            `json:"id"`
	InspectionID string            `json:"inspection_id"`
	Reason       string            `json:"reason"`
	Measurements map[string]string `json:"measurements"`
	Status       string            `json:"status"` // 'active' or 'released'
	CreatedAt    time.Time         `json:"created_at"`
	CreatedBy    string            `json:"created_by"`
	ReleasedAt   *time.Time        `json:"released_at,omitempty"`
	ReleasedBy   *string           `json:"released_by,omitempty"`
}

type CreateHoldRequest struct {
	SessionID string `json:"session_id"`
	Reason    string `json:"reason"`
	UserID    string `json:"user_id"`
}

type ReleaseHoldRequest struct {
	UserID string `json:"user_id"`
}
