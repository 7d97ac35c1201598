package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/pluscontrol/plus-control-api/internal/domain/entity"
	"github.com/pluscontrol/plus-control-api/internal/domain/enum"
	domainRepo "github.com/pluscontrol/plus-control-api/internal/domain/repository"
	"gorm.io/gorm"
)

var quoteSortColumns = map[string]bool{
	"created_at": true,
	"updated_at": true,
	"folio":      true,
	"due_date":   true,
}

type quoteRepository struct {
	db *gorm.DB
}

// NewQuoteRepository creates a new quote repository
func NewQuoteRepository(db *gorm.DB) domainRepo.QuoteRepository {
	return &quoteRepository{db: db}
}

func itemsByPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

func (r *quoteRepository) Create(ctx context.Context, quote *entity.Quote) error {
	return r.db.WithContext(ctx).Create(quote).Error
}

func (r *quoteRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Quote, error) {
	var quote entity.Quote
	err := r.db.WithContext(ctx).
		Preload("Items", itemsByPosition).
		First(&quote, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &quote, err
}

func (r *quoteRepository) List(ctx context.Context, params *domainRepo.QuoteFilterParams) ([]entity.Quote, int64, error) {
	var quotes []entity.Quote
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Quote{}).
		Scopes(SearchScope(params.Search, "folio", "client_name", "client_rut"))

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}
	if params.ClientID != nil {
		query = query.Where("client_id = ?", *params.ClientID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Scopes(PaginateScope(params.Pagination)).
		Preload("Items", itemsByPosition).
		Order(orderClause(params.SortBy, params.SortOrder, quoteSortColumns, "created_at")).
		Find(&quotes).Error

	return quotes, total, err
}

func (r *quoteRepository) ListByStatuses(ctx context.Context, statuses []enum.QuoteStatus) ([]entity.Quote, error) {
	var quotes []entity.Quote
	if len(statuses) == 0 {
		return quotes, nil
	}
	err := r.db.WithContext(ctx).
		Where("status IN ?", statuses).
		Preload("Items", itemsByPosition).
		Order("created_at ASC").
		Find(&quotes).Error
	return quotes, err
}

func (r *quoteRepository) ListForBoard(ctx context.Context, open []enum.QuoteStatus, deliveredSince time.Time) ([]entity.Quote, error) {
	var quotes []entity.Quote
	recent := r.db.Where("status = ? AND COALESCE(delivered_at, updated_at, created_at) >= ?",
		enum.QuoteStatusDelivered, deliveredSince.UTC())

	query := r.db.WithContext(ctx)
	if len(open) > 0 {
		query = query.Where("status IN ?", open).Or(recent)
	} else {
		query = query.Where(recent)
	}
	err := query.
		Preload("Items", itemsByPosition).
		Order("created_at ASC").
		Find(&quotes).Error
	return quotes, err
}

func (r *quoteRepository) UpdateIfStatus(ctx context.Context, quote *entity.Quote, expected enum.QuoteStatus) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entity.Quote{}).
			Where("id = ? AND status = ?", quote.ID, expected).
			Updates(map[string]interface{}{
				"client_id":         quote.ClientID,
				"client_name":       quote.ClientName,
				"client_rut":        quote.ClientRUT,
				"client_contact":    quote.ClientContact,
				"discount_percent":  quote.DiscountPercent,
				"apply_tax":         quote.ApplyTax,
				"deposit_paid":      quote.DepositPaid,
				"validity":          quote.Validity,
				"payment_condition": quote.PaymentCondition,
				"notes":             quote.Notes,
				"due_date":          quote.DueDate,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domainRepo.ErrStatusChanged
		}

		if err := tx.Where("quote_id = ?", quote.ID).Delete(&entity.QuoteItem{}).Error; err != nil {
			return err
		}
		if len(quote.Items) == 0 {
			return nil
		}
		for i := range quote.Items {
			quote.Items[i].ID = uuid.Nil
			quote.Items[i].QuoteID = quote.ID
			quote.Items[i].Position = i
		}
		return tx.Create(&quote.Items).Error
	})
}

func (r *quoteRepository) UpdateStatusIfCurrent(ctx context.Context, id uuid.UUID, expected, next enum.QuoteStatus) (bool, error) {
	res := r.db.WithContext(ctx).Model(&entity.Quote{}).
		Where("id = ? AND status = ?", id, expected).
		Update("status", next)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *quoteRepository) AddDeposit(ctx context.Context, id uuid.UUID, amount int64) (bool, error) {
	res := r.db.WithContext(ctx).Model(&entity.Quote{}).
		Where("id = ? AND status <> ?", id, enum.QuoteStatusRejected).
		Update("deposit_paid", gorm.Expr("deposit_paid + ?", amount))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *quoteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Quote{}, "id = ?", id).Error
}

// NextFolioNumber counts soft-deleted quotes too so folios are never reused.
func (r *quoteRepository) NextFolioNumber(ctx context.Context) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).Unscoped().Model(&entity.Quote{}).Count(&count).Error
	return int(count) + 1, err
}
