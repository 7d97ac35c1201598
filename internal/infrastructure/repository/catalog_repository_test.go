package repository

import (
	"context"
	"testing"

	"github.com/pluscontrol/plus-control-api/internal/domain/entity"
	"github.com/pluscontrol/plus-control-api/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscountRuleRepository_ListOrderedByMinArea(t *testing.T) {
	repo := NewDiscountRuleRepository(newTestDB(t))
	ctx := context.Background()
	for _, r := range []entity.DiscountRule{
		{Name: "Mayorista", MinArea: 50, MaxArea: 0, DiscountPercent: 12},
		{Name: "Base", MinArea: 0, MaxArea: 10, DiscountPercent: 0},
		{Name: "Volumen", MinArea: 10, MaxArea: 50, DiscountPercent: 5},
	} {
		rule := r
		require.NoError(t, repo.Create(ctx, &rule))
	}

	rules, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, rules, 3)
	assert.Equal(t, []string{"Base", "Volumen", "Mayorista"}, []string{rules[0].Name, rules[1].Name, rules[2].Name})
}

func TestMaterialRepository_CodeIsUpperCased(t *testing.T) {
	repo := NewMaterialRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.Material{Code: " vin-01 ", Name: "Vinilo brillante", BaseCostM2: 3500}))

	got, err := repo.GetByCode(ctx, "vin-01")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "VIN-01", got.Code)
}

func TestClientRepository_Search(t *testing.T) {
	repo := NewClientRepository(newTestDB(t))
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, &entity.Client{Company: "Constructora Andes", RUT: "76.123.456-7"}))
	require.NoError(t, repo.Create(ctx, &entity.Client{Company: "Clínica Norte", RUT: "77.000.111-2"}))

	clients, total, err := repo.List(ctx, pagination.DefaultPagination(), "andes")
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "Constructora Andes", clients[0].Company)
}
