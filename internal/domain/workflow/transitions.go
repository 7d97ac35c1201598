// Package workflow is the quote lifecycle: which status changes are legal
// and the gate that guards entry into Delivered.
package workflow

import (
	"errors"
	"fmt"

	"github.com/pluscontrol/plus-control-api/internal/domain/enum"
)

var (
	// ErrInvalidTransition is returned for a status change the lifecycle does not allow.
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrTerminalStatus is returned when the quote is already Delivered or Rejected.
	ErrTerminalStatus = errors.New("quote is in a terminal status")
	// ErrDeliveryRequiresGate is returned when Delivered is requested outside the delivery gate.
	ErrDeliveryRequiresGate = errors.New("delivery must go through the delivery gate")
)

// forward lists the single legal successor of each status on the happy path.
var forward = map[enum.QuoteStatus]enum.QuoteStatus{
	enum.QuoteStatusDraft:        enum.QuoteStatusSent,
	enum.QuoteStatusSent:         enum.QuoteStatusAccepted,
	enum.QuoteStatusAccepted:     enum.QuoteStatusInProduction,
	enum.QuoteStatusInProduction: enum.QuoteStatusReady,
}

// ValidateTransition checks a simple, caller-initiated status write.
// Entering Delivered is refused here; use Gate.
func ValidateTransition(from, to enum.QuoteStatus) error {
	if !to.IsValid() {
		return fmt.Errorf("%w: unknown target %s", ErrInvalidTransition, to)
	}
	if from.IsTerminal() {
		return fmt.Errorf("%w: %s", ErrTerminalStatus, from)
	}
	if to == enum.QuoteStatusDelivered {
		return ErrDeliveryRequiresGate
	}
	if to == enum.QuoteStatusRejected {
		return nil
	}
	if next, ok := forward[from]; ok && next == to {
		return nil
	}
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
}

// ValidateBoardMove checks a drag between production board columns.
// Cards move freely among the pipeline columns, in either direction.
func ValidateBoardMove(from, to enum.QuoteStatus) error {
	if from.IsTerminal() {
		return fmt.Errorf("%w: %s", ErrTerminalStatus, from)
	}
	if to == enum.QuoteStatusDelivered {
		return ErrDeliveryRequiresGate
	}
	if !from.InPipeline() || !to.InPipeline() {
		return fmt.Errorf("%w: %s -> %s is not a board move", ErrInvalidTransition, from, to)
	}
	if from == to {
		return fmt.Errorf("%w: already %s", ErrInvalidTransition, to)
	}
	return nil
}

// CanDeliverFrom reports whether the delivery gate may be attempted from s.
func CanDeliverFrom(s enum.QuoteStatus) bool {
	return s.InPipeline()
}

// NextStatuses lists the simple transitions available from s.
func NextStatuses(s enum.QuoteStatus) []enum.QuoteStatus {
	if s.IsTerminal() {
		return nil
	}
	var out []enum.QuoteStatus
	if next, ok := forward[s]; ok {
		out = append(out, next)
	}
	return append(out, enum.QuoteStatusRejected)
}
