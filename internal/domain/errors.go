package domain

import "errors"

var (
	ErrNotFound       = errors.New("resource not found")
	ErrConflict       = errors.New("resource conflict")
	ErrDuplicateEntry = errors.New("diary entry already exists for this date")
	ErrInvalidInput   = errors.New("invalid input")

	// ErrMissingProfile is the engine's only caller-visible precondition
	// violation: analysis was requested for a user without a usable profile.
	ErrMissingProfile = errors.New("user profile missing or incomplete")
)
