package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pluscontrol/plus-control-api/internal/domain/entity"
	"github.com/pluscontrol/plus-control-api/internal/domain/enum"
	domainRepo "github.com/pluscontrol/plus-control-api/internal/domain/repository"
	"github.com/pluscontrol/plus-control-api/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedQuote(t *testing.T, repo domainRepo.QuoteRepository, folio string, status enum.QuoteStatus) *entity.Quote {
	t.Helper()
	q := &entity.Quote{
		Folio:      folio,
		ClientName: "Imprenta Sur",
		ApplyTax:   true,
		Status:     status,
		Items: []entity.QuoteItem{
			{Position: 0, ProductName: "Pendón", Quantity: 2, UnitPrice: 15000, UnitCost: 6000, Width: 100, Height: 200},
			{Position: 1, ProductName: "Adhesivo", Quantity: 10, UnitPrice: 1200, UnitCost: 400},
		},
	}
	require.NoError(t, repo.Create(context.Background(), q))
	return q
}

func TestQuoteRepository_CreateAndGet(t *testing.T) {
	repo := NewQuoteRepository(newTestDB(t))
	created := seedQuote(t, repo, "COT-000001", enum.QuoteStatusDraft)

	got, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "COT-000001", got.Folio)
	require.Len(t, got.Items, 2)
	assert.Equal(t, "Pendón", got.Items[0].ProductName)
	assert.True(t, got.ApplyTax)

	missing, err := repo.GetByID(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestQuoteRepository_UpdateStatusIfCurrent(t *testing.T) {
	repo := NewQuoteRepository(newTestDB(t))
	q := seedQuote(t, repo, "COT-000001", enum.QuoteStatusDraft)
	ctx := context.Background()

	ok, err := repo.UpdateStatusIfCurrent(ctx, q.ID, enum.QuoteStatusDraft, enum.QuoteStatusSent)
	require.NoError(t, err)
	assert.True(t, ok)

	// A second writer that still believes the quote is a draft loses.
	ok, err = repo.UpdateStatusIfCurrent(ctx, q.ID, enum.QuoteStatusDraft, enum.QuoteStatusRejected)
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := repo.GetByID(ctx, q.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.QuoteStatusSent, got.Status)
}

func TestQuoteRepository_UpdateIfStatusReplacesItems(t *testing.T) {
	repo := NewQuoteRepository(newTestDB(t))
	q := seedQuote(t, repo, "COT-000001", enum.QuoteStatusSent)
	ctx := context.Background()

	q.DiscountPercent = 5
	q.ApplyTax = false
	q.Items = []entity.QuoteItem{{ProductName: "Letrero", Quantity: 1, UnitPrice: 90000}}
	require.NoError(t, repo.UpdateIfStatus(ctx, q, enum.QuoteStatusSent))

	got, err := repo.GetByID(ctx, q.ID)
	require.NoError(t, err)
	assert.Equal(t, 5.0, got.DiscountPercent)
	assert.False(t, got.ApplyTax)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "Letrero", got.Items[0].ProductName)

	err = repo.UpdateIfStatus(ctx, q, enum.QuoteStatusDraft)
	assert.ErrorIs(t, err, domainRepo.ErrStatusChanged)
}

func TestQuoteRepository_AddDeposit(t *testing.T) {
	repo := NewQuoteRepository(newTestDB(t))
	ctx := context.Background()
	open := seedQuote(t, repo, "COT-000001", enum.QuoteStatusAccepted)
	rejected := seedQuote(t, repo, "COT-000002", enum.QuoteStatusRejected)

	ok, err := repo.AddDeposit(ctx, open.ID, 5000)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = repo.AddDeposit(ctx, open.ID, 2500)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := repo.GetByID(ctx, open.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(7500), got.DepositPaid)

	ok, err = repo.AddDeposit(ctx, rejected.ID, 1000)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestQuoteRepository_ListAndFolio(t *testing.T) {
	repo := NewQuoteRepository(newTestDB(t))
	ctx := context.Background()
	for i := 1; i <= 3; i++ {
		seedQuote(t, repo, fmt.Sprintf("COT-%06d", i), enum.QuoteStatusDraft)
	}
	accepted := seedQuote(t, repo, "COT-000004", enum.QuoteStatusAccepted)
	require.NoError(t, repo.Delete(ctx, accepted.ID))

	status := enum.QuoteStatusDraft
	quotes, total, err := repo.List(ctx, &domainRepo.QuoteFilterParams{
		Pagination: &pagination.PaginationParams{Page: 1, PerPage: 2},
		Status:     &status,
		SortBy:     "folio",
		SortOrder:  "asc",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, quotes, 2)
	assert.Equal(t, "COT-000001", quotes[0].Folio)
	assert.Len(t, quotes[0].Items, 2)

	found, total, err := repo.List(ctx, &domainRepo.QuoteFilterParams{
		Pagination: pagination.DefaultPagination(),
		Search:     "000003",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "COT-000003", found[0].Folio)

	next, err := repo.NextFolioNumber(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, next)
}

func TestQuoteRepository_ListByStatuses(t *testing.T) {
	repo := NewQuoteRepository(newTestDB(t))
	ctx := context.Background()
	seedQuote(t, repo, "COT-000001", enum.QuoteStatusSent)
	seedQuote(t, repo, "COT-000002", enum.QuoteStatusInProduction)
	seedQuote(t, repo, "COT-000003", enum.QuoteStatusDelivered)

	quotes, err := repo.ListByStatuses(ctx, []enum.QuoteStatus{enum.QuoteStatusInProduction, enum.QuoteStatusDelivered})
	require.NoError(t, err)
	require.Len(t, quotes, 2)
	assert.Equal(t, "COT-000002", quotes[0].Folio)
	assert.Len(t, quotes[1].Items, 2)
}

func TestQuoteRepository_ListForBoard(t *testing.T) {
	db := newTestDB(t)
	repo := NewQuoteRepository(db)
	ctx := context.Background()
	now := time.Now().UTC()

	seedQuote(t, repo, "COT-000001", enum.QuoteStatusSent)
	seedQuote(t, repo, "COT-000002", enum.QuoteStatusInProduction)
	recent := seedQuote(t, repo, "COT-000003", enum.QuoteStatusDelivered)
	stale := seedQuote(t, repo, "COT-000004", enum.QuoteStatusDelivered)
	seedQuote(t, repo, "COT-000005", enum.QuoteStatusDelivered) // no delivered_at, fresh updated_at

	require.NoError(t, db.Model(&entity.Quote{}).Where("id = ?", recent.ID).
		Update("delivered_at", now.AddDate(0, 0, -5)).Error)
	require.NoError(t, db.Model(&entity.Quote{}).Where("id = ?", stale.ID).
		Update("delivered_at", now.AddDate(0, 0, -45)).Error)

	quotes, err := repo.ListForBoard(ctx, []enum.QuoteStatus{enum.QuoteStatusAccepted, enum.QuoteStatusInProduction},
		now.AddDate(0, 0, -30))
	require.NoError(t, err)

	folios := make([]string, len(quotes))
	for i, q := range quotes {
		folios[i] = q.Folio
	}
	assert.Equal(t, []string{"COT-000002", "COT-000003", "COT-000005"}, folios)
	assert.Len(t, quotes[0].Items, 2)
}
