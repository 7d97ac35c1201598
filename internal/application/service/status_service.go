package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/pluscontrol/plus-control-api/internal/domain/enum"
	"github.com/pluscontrol/plus-control-api/internal/domain/repository"
	"github.com/pluscontrol/plus-control-api/internal/domain/workflow"
	"github.com/pluscontrol/plus-control-api/internal/infrastructure/observability"
	"github.com/rs/zerolog"
)

// StatusService applies simple lifecycle transitions. Delivery is handled by DeliveryService.
type StatusService struct {
	quoteRepo repository.QuoteRepository
	metrics   *observability.DomainMetrics
	log       zerolog.Logger
}

// NewStatusService creates a new status service
func NewStatusService(quoteRepo repository.QuoteRepository, metrics *observability.DomainMetrics, log zerolog.Logger) *StatusService {
	return &StatusService{
		quoteRepo: quoteRepo,
		metrics:   metrics,
		log:       log.With().Str("component", "status").Logger(),
	}
}

// StatusChange is the outcome of a committed transition.
type StatusChange struct {
	QuoteID uuid.UUID        `json:"quote_id"`
	From    enum.QuoteStatus `json:"from"`
	To      enum.QuoteStatus `json:"to"`
}

// Transition moves a quote one step along the lifecycle.
func (s *StatusService) Transition(ctx context.Context, id uuid.UUID, to enum.QuoteStatus) (*StatusChange, error) {
	return s.change(ctx, id, to, workflow.ValidateTransition)
}

// Reject closes a quote from any non-terminal status.
func (s *StatusService) Reject(ctx context.Context, id uuid.UUID) (*StatusChange, error) {
	return s.change(ctx, id, enum.QuoteStatusRejected, workflow.ValidateTransition)
}

// MoveOnBoard drags a card between production board columns.
func (s *StatusService) MoveOnBoard(ctx context.Context, id uuid.UUID, to enum.QuoteStatus) (*StatusChange, error) {
	return s.change(ctx, id, to, workflow.ValidateBoardMove)
}

func (s *StatusService) change(
	ctx context.Context,
	id uuid.UUID,
	to enum.QuoteStatus,
	validate func(from, to enum.QuoteStatus) error,
) (*StatusChange, error) {
	quote, err := s.quoteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, quoteNotFound()
	}

	from := quote.Status
	if err := validate(from, to); err != nil {
		return nil, statusError(err)
	}

	ok, err := s.quoteRepo.UpdateStatusIfCurrent(ctx, id, from, to)
	if err != nil {
		return nil, err
	}
	if !ok {
		s.log.Info().Str("quote_id", id.String()).Stringer("expected", from).Msg("status write lost a race")
		return nil, statusError(repository.ErrStatusChanged)
	}

	s.metrics.Transition(from.String(), to.String())
	return &StatusChange{QuoteID: id, From: from, To: to}, nil
}
