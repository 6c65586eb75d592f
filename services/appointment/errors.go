package appointment

import "errors"

var (
	// ErrSlotTaken means the requested interval conflicts with an existing booking.
	ErrSlotTaken = errors.New("requested slot is already taken")
	// ErrNotFound means no booking exists with the given id.
	ErrNotFound = errors.New("booking not found")
	// ErrInvalidInterval means the interval is malformed (end not after start,
	// or start and end on different days).
	ErrInvalidInterval = errors.New("invalid appointment interval")
	// ErrInvalidState means the booking's lifecycle state does not allow the operation.
	ErrInvalidState = errors.New("booking state does not allow this operation")
)
