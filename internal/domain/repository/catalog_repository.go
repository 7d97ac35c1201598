package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/pluscontrol/plus-control-api/internal/domain/entity"
	"github.com/pluscontrol/plus-control-api/pkg/pagination"
)

//go:generate mockgen -source=catalog_repository.go -destination=mocks/mock_catalog_repository.go -package=mock_repository

// DiscountRuleRepository defines the interface for the volume discount catalog
type DiscountRuleRepository interface {
	Create(ctx context.Context, rule *entity.DiscountRule) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.DiscountRule, error)
	Update(ctx context.Context, rule *entity.DiscountRule) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns every rule ordered by min_area ascending.
	List(ctx context.Context) ([]entity.DiscountRule, error)
}

// ClientRepository defines the interface for client data operations
type ClientRepository interface {
	Create(ctx context.Context, client *entity.Client) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Client, error)
	Update(ctx context.Context, client *entity.Client) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Client, int64, error)
}

// MaterialRepository defines the interface for material data operations
type MaterialRepository interface {
	Create(ctx context.Context, material *entity.Material) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Material, error)
	GetByCode(ctx context.Context, code string) (*entity.Material, error)
	Update(ctx context.Context, material *entity.Material) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Material, int64, error)
}
