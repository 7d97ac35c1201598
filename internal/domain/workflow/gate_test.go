package workflow

import (
	"errors"
	"testing"

	"github.com/pluscontrol/plus-control-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readyInput() GateInput {
	return GateInput{
		Status:        enum.QuoteStatusReady,
		PhysicalCheck: true,
		PhotoEvidence: true,
	}
}

func TestGate_AllowsSettledReadyQuote(t *testing.T) {
	gate := NewGate(100)

	assert.NoError(t, gate.Check(readyInput()))

	withinTolerance := readyInput()
	withinTolerance.OutstandingBalance = 100
	assert.NoError(t, gate.Check(withinTolerance))
}

func TestGate_BalanceBlocksRegardlessOfChecklist(t *testing.T) {
	gate := NewGate(100)

	in := readyInput()
	in.OutstandingBalance = 101
	in.OverrideConfirmed = true

	err := gate.Check(in)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOutstandingBalance)

	var gateErr *GateError
	require.True(t, errors.As(err, &gateErr))
	assert.Len(t, gateErr.Reasons, 1)
	assert.Equal(t, int64(101), gateErr.Balance)
}

func TestGate_OperationalConditionsAreBothRequired(t *testing.T) {
	gate := NewGate(100)

	noPhoto := readyInput()
	noPhoto.PhotoEvidence = false
	assert.ErrorIs(t, gate.Check(noPhoto), ErrEvidenceMissing)

	noCheck := readyInput()
	noCheck.PhysicalCheck = false
	err := gate.Check(noCheck)
	assert.ErrorIs(t, err, ErrPhysicalCheckMissing)
	assert.False(t, errors.Is(err, ErrEvidenceMissing))

	neither := readyInput()
	neither.PhysicalCheck, neither.PhotoEvidence = false, false
	var gateErr *GateError
	require.True(t, errors.As(gate.Check(neither), &gateErr))
	assert.Len(t, gateErr.Reasons, 2)
}

func TestGate_OverrideWhenSkippingReady(t *testing.T) {
	gate := NewGate(100)

	in := readyInput()
	in.Status = enum.QuoteStatusInProduction
	assert.ErrorIs(t, gate.Check(in), ErrOverrideRequired)

	in.OverrideConfirmed = true
	assert.NoError(t, gate.Check(in))
}

func TestGate_StatusPreconditions(t *testing.T) {
	gate := NewGate(100)

	draft := readyInput()
	draft.Status = enum.QuoteStatusDraft
	assert.ErrorIs(t, gate.Check(draft), ErrNotDeliverable)

	delivered := readyInput()
	delivered.Status = enum.QuoteStatusDelivered
	assert.ErrorIs(t, gate.Check(delivered), ErrTerminalStatus)
}

func TestReasonCode(t *testing.T) {
	assert.Equal(t, "outstanding_balance", ReasonCode(ErrOutstandingBalance))
	assert.Equal(t, "evidence", ReasonCode(ErrEvidenceMissing))
	assert.Equal(t, "override_confirmed", ReasonCode(ErrOverrideRequired))
	assert.Equal(t, "unknown", ReasonCode(errors.New("other")))
}
