package order

import (
	"fmt"

	"restaurant/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions so orders follow the
// fulfillment workflow.
//
// State transitions:
//
//	Placed ──> Delivered
//	   ^           │
//	   └───────────┘
//	(reopen, Manager only)
//
// The source of this model tracked delivery as a boolean; Status widens it to
// an explicit enum with a transition table, leaving room for future states.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Placed is the initial status when an order is created from a cart.
	// No delivery crew is assigned yet.
	Placed

	// Delivered indicates the assigned delivery crew has completed the order.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Placed:    "Placed",
		Delivered: "Delivered",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Placed:    "Placed",
		Delivered: "Delivered",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are Placed and Delivered; Unknown and anything else fail.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer; safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString parses a status name as stored in the database or sent in
// a payload. Only valid statuses parse; "Unknown" does not.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - Placed -> Delivered
//   - Delivered -> Delivered (marking a delivered order delivered again is a no-op)
//
// Returns (0, error) if the current status is not valid for delivery.
func (s Status) Deliver() (Status, error) {
	if s != Placed && s != Delivered {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to deliver", s.String()),
		)
	}
	return Delivered, nil
}

// Reopen transitions the status back to Placed. The access policy restricts
// this transition to Managers; the state machine only defines its validity.
//
// Valid transitions:
//   - Delivered -> Placed
//   - Placed -> Placed (no-op)
func (s Status) Reopen() (Status, error) {
	if s != Placed && s != Delivered {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to reopen", s.String()),
		)
	}
	return Placed, nil
}

// TransitionTo validates and performs a transition to the target status.
// Used by update paths that receive the desired status from a payload.
func (s Status) TransitionTo(target Status) (Status, error) {
	switch target {
	case Delivered:
		return s.Deliver()
	case Placed:
		return s.Reopen()
	default:
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%d is not a valid target status", target),
		)
	}
}
