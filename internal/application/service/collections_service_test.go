package service

import (
	"context"
	"testing"

	"github.com/pluscontrol/plus-control-api/internal/domain/entity"
	"github.com/pluscontrol/plus-control-api/internal/domain/enum"
	mock_repository "github.com/pluscontrol/plus-control-api/internal/domain/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestListDebtors(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_repository.NewMockQuoteRepository(ctrl)
	svc := NewCollectionsService(repo, testCalc())

	owes := newQuote(enum.QuoteStatusDelivered, 20000, 5000)
	paid := newQuote(enum.QuoteStatusReady, 20000, 20000)
	overpaid := newQuote(enum.QuoteStatusAccepted, 20000, 30000)
	owesToo := newQuote(enum.QuoteStatusInProduction, 10000, 0)
	owesToo.ApplyTax = true

	repo.EXPECT().ListByStatuses(gomock.Any(), debtStatuses).
		Return([]entity.Quote{*owes, *paid, *overpaid, *owesToo}, nil)

	report, err := svc.ListDebtors(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, report.Count)
	assert.Equal(t, owes.ID, report.Debtors[0].QuoteID)
	assert.Equal(t, int64(15000), report.Debtors[0].OutstandingBalance)
	assert.Equal(t, int64(11900), report.Debtors[1].OutstandingBalance)
	assert.Equal(t, int64(26900), report.TotalOwed)
}

func TestListDebtors_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_repository.NewMockQuoteRepository(ctrl)
	svc := NewCollectionsService(repo, testCalc())

	repo.EXPECT().ListByStatuses(gomock.Any(), gomock.Any()).Return(nil, nil)

	report, err := svc.ListDebtors(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, report.Debtors)
	assert.Zero(t, report.TotalOwed)
}
