package handlers

import (
	"errors"
	"net/http"

	"qc-backend/internal/models"
	"qc-backend/internal/repositories"
)

// statusForError maps the service error kinds to HTTP status codes.
// Everything the core raises is caller-recoverable; nothing maps to 500
// except genuinely unknown errors.
func statusForError(err error) int {
	switch {
	case errors.Is(err, models.ErrNotFound),
		errors.Is(err, models.ErrSessionNotFound),
		errors.Is(err, models.ErrHoldNotFound),
		errors.Is(err, models.ErrUnknownItemCode),
		errors.Is(err, repositories.ErrUserNotFound),
		errors.Is(err, repositories.ErrSettingNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrLockConflict),
		errors.Is(err, models.ErrAlreadyLocked),
		errors.Is(err, models.ErrNotLocked),
		errors.Is(err, models.ErrIncompleteInspection),
		errors.Is(err, models.ErrSessionClosed):
		return http.StatusConflict
	case errors.Is(err, models.ErrUnknownField):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
