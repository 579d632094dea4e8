package models

import "errors"

// Recoverable error kinds surfaced by the queue and inspection services.
// Handlers map these to 4xx responses; none are fatal.
var (
	ErrNotFound             = errors.New("queue item not found")
	ErrAlreadyLocked        = errors.New("queue item already locked by another user")
	ErrLockConflict         = errors.New("queue item is being inspected by another user")
	ErrNotLocked            = errors.New("queue item is not locked")
	ErrUnknownField         = errors.New("unknown measurement field")
	ErrIncompleteInspection = errors.New("inspection has pending measurements")
	ErrSessionNotFound      = errors.New("inspection session not found")
	ErrSessionClosed        = errors.New("inspection session is closed")
	ErrHoldNotFound         = errors.New("hold not found")
	ErrUnknownItemCode      = errors.New("no specification table for item code")
)
