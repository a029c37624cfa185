package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Session errors
	ErrSessionNotFound = errors.New("session not found")

	// Cafe errors
	ErrCafeNotFound = errors.New("cafe not found")

	// Flow errors
	ErrNoActiveFlow     = errors.New("no active flow")
	ErrFlowAlreadyOpen  = errors.New("flow already open")
	ErrInvalidFlowState = errors.New("invalid flow state")

	// Booking errors
	ErrBookingNotFound  = errors.New("booking not found")
	ErrArtifactMissing  = errors.New("booking has no artifact")
	ErrIncompleteIntent = errors.New("booking intent is incomplete")

	// Redemption errors
	ErrRedemptionNotFound = errors.New("redemption not found")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")
)
