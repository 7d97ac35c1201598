package service

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/pluscontrol/plus-control-api/internal/domain/entity"
	mock_repository "github.com/pluscontrol/plus-control-api/internal/domain/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDiscountRuleInput_Validate(t *testing.T) {
	tests := []struct {
		name   string
		input  DiscountRuleInput
		fields []string
	}{
		{"valid", DiscountRuleInput{Name: "Mediano", MinArea: 10, MaxArea: 50, DiscountPercent: 5}, nil},
		{"open ended", DiscountRuleInput{Name: "Mayorista", MinArea: 50, DiscountPercent: 12}, nil},
		{"missing name", DiscountRuleInput{MinArea: 0, MaxArea: 10}, []string{"name"}},
		{"inverted range", DiscountRuleInput{Name: "x", MinArea: 20, MaxArea: 10}, []string{"max_area"}},
		{"percent too high", DiscountRuleInput{Name: "x", MaxArea: 10, DiscountPercent: 101}, []string{"discount_percent"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.validate()
			if tt.fields == nil {
				assert.NoError(t, err)
				return
			}
			appErr := requireAppError(t, err, http.StatusUnprocessableEntity)
			assert.Equal(t, tt.fields, fieldNames(appErr))
		})
	}
}

func TestDiscountRuleService_CreateAndUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_repository.NewMockDiscountRuleRepository(ctrl)
	svc := NewDiscountRuleService(repo)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	rule, err := svc.CreateRule(context.Background(), &DiscountRuleInput{Name: "  Mediano ", MinArea: 10, MaxArea: 50, DiscountPercent: 5})
	require.NoError(t, err)
	assert.Equal(t, "Mediano", rule.Name)

	missing := uuid.New()
	repo.EXPECT().GetByID(gomock.Any(), missing).Return(nil, nil)
	_, err = svc.UpdateRule(context.Background(), missing, &DiscountRuleInput{Name: "x", MaxArea: 1})
	requireAppError(t, err, http.StatusNotFound)
}

func TestOverlaps(t *testing.T) {
	rules := []entity.DiscountRule{
		{Name: "A", MinArea: 0, MaxArea: 10},
		{Name: "B", MinArea: 10, MaxArea: 50},
		{Name: "C", MinArea: 60, MaxArea: 0},
	}
	assert.Equal(t, [][2]string{{"A", "B"}}, Overlaps(rules))
}

func TestClientService_NormalizesInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_repository.NewMockClientRepository(ctrl)
	svc := NewClientService(repo)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	client, err := svc.CreateClient(context.Background(), &ClientInput{Company: " Andes SpA ", RUT: "76.123.456-k"})
	require.NoError(t, err)
	assert.Equal(t, "Andes SpA", client.Company)
	assert.Equal(t, "76123456-K", client.RUT)

	_, err = svc.CreateClient(context.Background(), &ClientInput{})
	requireAppError(t, err, http.StatusUnprocessableEntity)
}

func TestMaterialService_CodeIsUnique(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_repository.NewMockMaterialRepository(ctrl)
	svc := NewMaterialService(repo)

	repo.EXPECT().GetByCode(gomock.Any(), "VIN-01").Return(&entity.Material{ID: uuid.New(), Code: "VIN-01"}, nil)
	_, err := svc.CreateMaterial(context.Background(), &MaterialInput{Code: "vin-01", Name: "Vinilo"})
	requireAppError(t, err, http.StatusConflict)

	repo.EXPECT().GetByCode(gomock.Any(), "LON-13").Return(nil, nil)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	m, err := svc.CreateMaterial(context.Background(), &MaterialInput{
		Code:      " lon-13",
		Name:      "Lona 13oz",
		Datasheet: json.RawMessage(`{"ancho_max_cm":320}`),
	})
	require.NoError(t, err)
	assert.Equal(t, "LON-13", m.Code)
	assert.JSONEq(t, `{"ancho_max_cm":320}`, string(m.Datasheet))

	_, err = svc.CreateMaterial(context.Background(), &MaterialInput{Code: "X", Name: "Y", Datasheet: json.RawMessage(`{`)})
	requireAppError(t, err, http.StatusUnprocessableEntity)
}

func TestMaterialService_UpdateKeepsOwnCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_repository.NewMockMaterialRepository(ctrl)
	svc := NewMaterialService(repo)
	existing := &entity.Material{ID: uuid.New(), Code: "VIN-01", Name: "Vinilo"}

	repo.EXPECT().GetByID(gomock.Any(), existing.ID).Return(existing, nil)
	repo.EXPECT().GetByCode(gomock.Any(), "VIN-01").Return(existing, nil)
	repo.EXPECT().Update(gomock.Any(), existing).Return(nil)

	m, err := svc.UpdateMaterial(context.Background(), existing.ID, &MaterialInput{Code: "VIN-01", Name: "Vinilo Mate", BasePrice: 9000})
	require.NoError(t, err)
	assert.Equal(t, "Vinilo Mate", m.Name)
}
