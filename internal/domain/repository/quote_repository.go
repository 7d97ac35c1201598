package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/pluscontrol/plus-control-api/internal/domain/entity"
	"github.com/pluscontrol/plus-control-api/internal/domain/enum"
	"github.com/pluscontrol/plus-control-api/pkg/pagination"
)

//go:generate mockgen -source=quote_repository.go -destination=mocks/mock_quote_repository.go -package=mock_repository

// ErrStatusChanged is returned when a conditional write finds the quote in
// a different status than the caller observed.
var ErrStatusChanged = errors.New("quote status changed concurrently")

// QuoteRepository defines the interface for quote data operations.
// Reads return nil, nil when the quote does not exist.
type QuoteRepository interface {
	Create(ctx context.Context, quote *entity.Quote) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Quote, error)
	List(ctx context.Context, params *QuoteFilterParams) ([]entity.Quote, int64, error)
	// ListByStatuses returns quotes with items, oldest first.
	ListByStatuses(ctx context.Context, statuses []enum.QuoteStatus) ([]entity.Quote, error)
	// ListForBoard returns quotes in any open status plus Delivered quotes
	// finished at or after deliveredSince, with items, oldest first.
	ListForBoard(ctx context.Context, open []enum.QuoteStatus, deliveredSince time.Time) ([]entity.Quote, error)
	// UpdateIfStatus rewrites the quote and its items when its stored status
	// still equals expected, otherwise returns ErrStatusChanged.
	UpdateIfStatus(ctx context.Context, quote *entity.Quote, expected enum.QuoteStatus) error
	// UpdateStatusIfCurrent performs UPDATE ... WHERE id = ? AND status = expected.
	UpdateStatusIfCurrent(ctx context.Context, id uuid.UUID, expected, next enum.QuoteStatus) (bool, error)
	// AddDeposit increments the deposit unless the quote was rejected.
	AddDeposit(ctx context.Context, id uuid.UUID, amount int64) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
	NextFolioNumber(ctx context.Context) (int, error)
}

// QuoteFilterParams contains filtering parameters for quote queries
type QuoteFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.QuoteStatus
	ClientID   *uuid.UUID
	SortBy     string
	SortOrder  string
}
