package services

import "errors"

var (
	// ErrValidation covers user input that must be corrected before retry.
	ErrValidation = errors.New("validation failed")
	// ErrDraftActive is returned when a drawing is started while another
	// draft is still in progress or pending confirmation.
	ErrDraftActive = errors.New("another draft is already active")
	// ErrInvalidState is returned for workflow calls outside their valid
	// state, e.g. confirming before a drawing was completed.
	ErrInvalidState = errors.New("operation not valid in current state")
)
