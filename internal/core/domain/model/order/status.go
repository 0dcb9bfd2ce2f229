package order

import (
	"fmt"
	"time"

	"deliverus/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It is a pure function
// of the lifecycle timestamps, not a stored column.
//
// State transitions:
//
//	pending ──> in process ──> sent ──> delivered
//
// The chain is linear: no skipping, no reversal. Each transition is performed
// by setting exactly one timestamp (confirm, send, deliver).
type Status string

const (
	// StatusPending is the initial state: the order has been placed by the
	// customer but the restaurant has not confirmed it yet.
	StatusPending Status = "pending"

	// StatusInProcess means the restaurant confirmed the order and is
	// preparing it.
	StatusInProcess Status = "in process"

	// StatusSent means the order left the restaurant and is on its way.
	StatusSent Status = "sent"

	// StatusDelivered is the final state.
	StatusDelivered Status = "delivered"
)

// ParseStatus converts a raw string (e.g. a query parameter) to a Status.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate checks that the Status is one of the four lifecycle states.
func (s Status) Validate() error {
	switch s {
	case StatusPending, StatusInProcess, StatusSent, StatusDelivered:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid status", string(s)))
	}
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// StatusOf derives the lifecycle state from the three timestamps.
// deliveredAt wins over sentAt, which wins over startedAt.
func StatusOf(startedAt, sentAt, deliveredAt *time.Time) Status {
	switch {
	case deliveredAt != nil:
		return StatusDelivered
	case sentAt != nil:
		return StatusSent
	case startedAt != nil:
		return StatusInProcess
	default:
		return StatusPending
	}
}
