package workflow

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pluscontrol/plus-control-api/internal/domain/enum"
)

// Gate violations. A GateError matches each of its reasons with errors.Is.
var (
	ErrOutstandingBalance   = errors.New("outstanding balance exceeds tolerance")
	ErrPhysicalCheckMissing = errors.New("physical quality check not confirmed")
	ErrEvidenceMissing      = errors.New("photo evidence is required")
	ErrOverrideRequired     = errors.New("quote is not Ready; override confirmation required")
	ErrNotDeliverable       = errors.New("quote is not in the production pipeline")
)

// GateInput is everything the delivery gate looks at.
type GateInput struct {
	Status             enum.QuoteStatus
	OutstandingBalance int64
	PhysicalCheck      bool
	PhotoEvidence      bool
	OverrideConfirmed  bool
}

// GateError lists every unmet delivery condition.
type GateError struct {
	Reasons []error
	Balance int64
}

func (e *GateError) Error() string {
	msgs := make([]string, len(e.Reasons))
	for i, r := range e.Reasons {
		msgs[i] = r.Error()
	}
	return "delivery refused: " + strings.Join(msgs, "; ")
}

func (e *GateError) Is(target error) bool {
	for _, r := range e.Reasons {
		if r == target {
			return true
		}
	}
	return false
}

// Gate guards the transition into Delivered.
type Gate struct {
	tolerance int64
}

// NewGate builds a gate that accepts balances up to tolerance.
func NewGate(tolerance int64) *Gate {
	if tolerance < 0 {
		tolerance = 0
	}
	return &Gate{tolerance: tolerance}
}

func (g *Gate) Tolerance() int64 {
	return g.tolerance
}

// Check returns nil when delivery may proceed, or a *GateError.
//
// A balance above tolerance is final and reported alone: no checklist or
// override can lift it. Otherwise every missing operational condition is
// reported together.
func (g *Gate) Check(in GateInput) error {
	if in.Status.IsTerminal() {
		return fmt.Errorf("%w: %s", ErrTerminalStatus, in.Status)
	}
	if !CanDeliverFrom(in.Status) {
		return &GateError{Reasons: []error{ErrNotDeliverable}, Balance: in.OutstandingBalance}
	}
	if in.OutstandingBalance > g.tolerance {
		return &GateError{Reasons: []error{ErrOutstandingBalance}, Balance: in.OutstandingBalance}
	}

	var reasons []error
	if !in.PhysicalCheck {
		reasons = append(reasons, ErrPhysicalCheckMissing)
	}
	if !in.PhotoEvidence {
		reasons = append(reasons, ErrEvidenceMissing)
	}
	if in.Status != enum.QuoteStatusReady && !in.OverrideConfirmed {
		reasons = append(reasons, ErrOverrideRequired)
	}
	if len(reasons) > 0 {
		return &GateError{Reasons: reasons, Balance: in.OutstandingBalance}
	}
	return nil
}

// ReasonCode is a stable identifier for a gate violation, used as the field
// name in API errors and as a metric label.
func ReasonCode(reason error) string {
	switch {
	case errors.Is(reason, ErrOutstandingBalance):
		return "outstanding_balance"
	case errors.Is(reason, ErrPhysicalCheckMissing):
		return "physical_check"
	case errors.Is(reason, ErrEvidenceMissing):
		return "evidence"
	case errors.Is(reason, ErrOverrideRequired):
		return "override_confirmed"
	case errors.Is(reason, ErrNotDeliverable):
		return "status"
	default:
		return "unknown"
	}
}
