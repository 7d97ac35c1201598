package service

import (
	"errors"
	"fmt"

	domainRepo "github.com/pluscontrol/plus-control-api/internal/domain/repository"
	"github.com/pluscontrol/plus-control-api/internal/domain/workflow"
	"github.com/pluscontrol/plus-control-api/pkg/apperror"
)

// statusError converts lifecycle errors into API errors. Unknown errors pass through.
func statusError(err error) error {
	var gateErr *workflow.GateError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &gateErr):
		return gateAppError(gateErr)
	case errors.Is(err, domainRepo.ErrStatusChanged):
		return apperror.NewConflictError("Quote status changed, reload and try again")
	case errors.Is(err, workflow.ErrTerminalStatus),
		errors.Is(err, workflow.ErrInvalidTransition),
		errors.Is(err, workflow.ErrDeliveryRequiresGate):
		return apperror.NewUnprocessableError(err.Error())
	default:
		return err
	}
}

func gateAppError(gateErr *workflow.GateError) *apperror.AppError {
	fields := make([]apperror.FieldError, 0, len(gateErr.Reasons))
	for _, reason := range gateErr.Reasons {
		msg := reason.Error()
		if errors.Is(reason, workflow.ErrOutstandingBalance) {
			msg = fmt.Sprintf("%s: pending %d CLP", msg, gateErr.Balance)
		}
		fields = append(fields, apperror.FieldError{Field: workflow.ReasonCode(reason), Message: msg})
	}
	return apperror.NewUnprocessableError("Delivery refused", fields...)
}

func quoteNotFound() error {
	return apperror.NewNotFoundError("Quote")
}
