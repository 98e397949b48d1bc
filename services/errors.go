package services

import "errors"

// Errors shared across services and the HTTP mapping. Engine-level
// validation and conflict errors pass through from the engine package.
var (
	ErrDocumentRequired  = errors.New("tournament document body is required")
	ErrDocumentMalformed = errors.New("tournament document is malformed")

	ErrInvalidPassword = errors.New("invalid admin password")
	ErrInvalidToken    = errors.New("invalid or expired session token")

	ErrPredictionInvalid = errors.New("prediction must name a winner")

	ErrSnapshotsDisabled = errors.New("snapshot uploads are not configured")
)
