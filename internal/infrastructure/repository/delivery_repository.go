package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/pluscontrol/plus-control-api/internal/domain/entity"
	"github.com/pluscontrol/plus-control-api/internal/domain/enum"
	domainRepo "github.com/pluscontrol/plus-control-api/internal/domain/repository"
	"gorm.io/gorm"
)

type deliveryRepository struct {
	db *gorm.DB
}

// NewDeliveryRepository creates the repository behind the delivery gate commit
func NewDeliveryRepository(db *gorm.DB) domainRepo.DeliveryRepository {
	return &deliveryRepository{db: db}
}

func (r *deliveryRepository) CompleteDelivery(ctx context.Context, commit *domainRepo.DeliveryCommit) (uuid.UUID, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entity.Quote{}).
			Where("id = ? AND status = ?", commit.QuoteID, commit.ExpectedStatus).
			Updates(map[string]interface{}{
				"status":       enum.QuoteStatusDelivered,
				"delivered_at": commit.DeliveredAt,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domainRepo.ErrStatusChanged
		}

		commit.Audit.QuoteID = commit.QuoteID
		return tx.Create(commit.Audit).Error
	})
	if err != nil {
		return uuid.Nil, err
	}
	return commit.Audit.ID, nil
}

func (r *deliveryRepository) ListByQuote(ctx context.Context, quoteID uuid.UUID) ([]entity.DeliveryAuditRecord, error) {
	var records []entity.DeliveryAuditRecord
	err := r.db.WithContext(ctx).
		Where("quote_id = ?", quoteID).
		Order("performed_at ASC").
		Find(&records).Error
	return records, err
}

func (r *deliveryRepository) ReferencedEvidence(ctx context.Context, paths []string) (map[string]bool, error) {
	found := make(map[string]bool, len(paths))
	if len(paths) == 0 {
		return found, nil
	}
	var referenced []string
	err := r.db.WithContext(ctx).Model(&entity.DeliveryAuditRecord{}).
		Where("evidence_path IN ?", paths).
		Pluck("evidence_path", &referenced).Error
	if err != nil {
		return nil, err
	}
	for _, p := range referenced {
		found[p] = true
	}
	return found, nil
}
