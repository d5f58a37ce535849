package model

import "errors"

var (
	// ErrDuplicateID is returned when a token or alert id already exists.
	ErrDuplicateID = errors.New("duplicate id")
	// ErrNotFound is returned for lookups and updates of unknown ids.
	ErrNotFound = errors.New("not found")
	// ErrGenerationFailed wraps any failure of the deceptive text generator.
	ErrGenerationFailed = errors.New("generation failed")
	// ErrStorageUnavailable wraps persistence failures; the stores are left unchanged.
	ErrStorageUnavailable = errors.New("storage unavailable")
	// ErrInvalidToken is returned when a token creation request is malformed.
	ErrInvalidToken = errors.New("invalid token")
	// ErrInvalidStatus is returned for unknown token or alert status values.
	ErrInvalidStatus = errors.New("invalid status")
)
