package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pluscontrol/plus-control-api/internal/domain/entity"
	"github.com/pluscontrol/plus-control-api/internal/domain/enum"
	"github.com/pluscontrol/plus-control-api/internal/domain/finance"
	"github.com/pluscontrol/plus-control-api/pkg/apperror"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)

func testCalc() *finance.Calculator {
	return finance.NewCalculator(finance.DefaultPolicy())
}

// newQuote builds a quote with a single line worth price and the given deposit.
func newQuote(status enum.QuoteStatus, price, deposit int64) *entity.Quote {
	id := uuid.New()
	return &entity.Quote{
		ID:          id,
		Folio:       "COT-000001",
		ClientName:  "Imprenta Sur",
		Status:      status,
		DepositPaid: deposit,
		CreatedAt:   fixedNow.Add(-72 * time.Hour),
		Items: []entity.QuoteItem{
			{QuoteID: id, ProductName: "Pendón", Quantity: 1, UnitPrice: price, UnitCost: price / 2, Width: 100, Height: 200},
		},
	}
}

func requireAppError(t *testing.T, err error, code int) *apperror.AppError {
	t.Helper()
	require.Error(t, err)
	require.True(t, apperror.IsAppError(err), "expected AppError, got %T: %v", err, err)
	appErr := apperror.GetAppError(err)
	require.Equal(t, code, appErr.Code, appErr.Message)
	return appErr
}

func fieldNames(appErr *apperror.AppError) []string {
	out := make([]string, len(appErr.Errors))
	for i, f := range appErr.Errors {
		out[i] = f.Field
	}
	return out
}

