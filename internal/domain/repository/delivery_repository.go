package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pluscontrol/plus-control-api/internal/domain/entity"
	"github.com/pluscontrol/plus-control-api/internal/domain/enum"
)

//go:generate mockgen -source=delivery_repository.go -destination=mocks/mock_delivery_repository.go -package=mock_repository

// DeliveryCommit is the unit written by CompleteDelivery.
type DeliveryCommit struct {
	QuoteID        uuid.UUID
	ExpectedStatus enum.QuoteStatus
	DeliveredAt    time.Time
	Audit          *entity.DeliveryAuditRecord
}

// DeliveryRepository owns the delivered status and its audit trail.
type DeliveryRepository interface {
	// CompleteDelivery marks the quote Delivered and appends the audit record
	// in one transaction. ErrStatusChanged when the status moved on.
	CompleteDelivery(ctx context.Context, commit *DeliveryCommit) (uuid.UUID, error)
	ListByQuote(ctx context.Context, quoteID uuid.UUID) ([]entity.DeliveryAuditRecord, error)
	// ReferencedEvidence reports which of the given object paths an audit record points to.
	ReferencedEvidence(ctx context.Context, paths []string) (map[string]bool, error)
}
