// Package domain holds the error taxonomy shared by the procurement bounded
// context. Use errors.Is() to check sentinels; TransitionError carries the
// current and attempted status for callers that need to refresh their view.
package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the procurement domain.
var (
	// ErrOrderNotFound indicates the referenced order does not exist.
	ErrOrderNotFound = errors.New("order not found")

	// ErrValidation indicates malformed or out-of-range input. Recoverable
	// by the caller; nothing was mutated.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidTransition indicates the requested operation is not legal
	// from the order's or payment's current status.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrPermissionDenied indicates the actor is not authorized for the
	// requested operation on this order.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrConflict indicates an idempotent retry whose parameters diverge
	// from the outcome already recorded.
	ErrConflict = errors.New("conflicting retry of applied transition")

	// ErrVersionConflict indicates an optimistic concurrency check failed.
	// Gateways retry internally; this sentinel never reaches API callers.
	ErrVersionConflict = errors.New("order version conflict")
)

// TransitionError is returned when a state-machine guard rejects an event.
// It unwraps to ErrInvalidTransition so errors.Is() matching still works.
type TransitionError struct {
	Entity string // "order" or "payment"
	From   string
	To     string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s cannot move from %q to %q", e.Entity, e.From, e.To)
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// NewOrderTransitionError builds a TransitionError for the fulfillment dimension.
func NewOrderTransitionError(from, to string) error {
	return &TransitionError{Entity: "order", From: from, To: to}
}

// NewPaymentTransitionError builds a TransitionError for the payment dimension.
func NewPaymentTransitionError(from, to string) error {
	return &TransitionError{Entity: "payment", From: from, To: to}
}
