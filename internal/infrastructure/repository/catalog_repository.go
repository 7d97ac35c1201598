package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/pluscontrol/plus-control-api/internal/domain/entity"
	domainRepo "github.com/pluscontrol/plus-control-api/internal/domain/repository"
	"github.com/pluscontrol/plus-control-api/pkg/pagination"
	"gorm.io/gorm"
)

type discountRuleRepository struct {
	db *gorm.DB
}

// NewDiscountRuleRepository creates a new discount rule repository
func NewDiscountRuleRepository(db *gorm.DB) domainRepo.DiscountRuleRepository {
	return &discountRuleRepository{db: db}
}

func (r *discountRuleRepository) Create(ctx context.Context, rule *entity.DiscountRule) error {
	return r.db.WithContext(ctx).Create(rule).Error
}

func (r *discountRuleRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.DiscountRule, error) {
	var rule entity.DiscountRule
	err := r.db.WithContext(ctx).First(&rule, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &rule, err
}

func (r *discountRuleRepository) Update(ctx context.Context, rule *entity.DiscountRule) error {
	return r.db.WithContext(ctx).Save(rule).Error
}

func (r *discountRuleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.DiscountRule{}, "id = ?", id).Error
}

func (r *discountRuleRepository) List(ctx context.Context) ([]entity.DiscountRule, error) {
	var rules []entity.DiscountRule
	err := r.db.WithContext(ctx).Order("min_area ASC").Order("created_at ASC").Find(&rules).Error
	return rules, err
}

type clientRepository struct {
	db *gorm.DB
}

// NewClientRepository creates a new client repository
func NewClientRepository(db *gorm.DB) domainRepo.ClientRepository {
	return &clientRepository{db: db}
}

func (r *clientRepository) Create(ctx context.Context, client *entity.Client) error {
	return r.db.WithContext(ctx).Create(client).Error
}

func (r *clientRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Client, error) {
	var client entity.Client
	err := r.db.WithContext(ctx).First(&client, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &client, err
}

func (r *clientRepository) Update(ctx context.Context, client *entity.Client) error {
	return r.db.WithContext(ctx).Save(client).Error
}

func (r *clientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Client{}, "id = ?", id).Error
}

func (r *clientRepository) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Client, int64, error) {
	var clients []entity.Client
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Client{}).
		Scopes(SearchScope(search, "empresa", "rut", "contacto_nombre"))
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Scopes(PaginateScope(params)).Order("empresa ASC").Find(&clients).Error
	return clients, total, err
}

type materialRepository struct {
	db *gorm.DB
}

// NewMaterialRepository creates a new material repository
func NewMaterialRepository(db *gorm.DB) domainRepo.MaterialRepository {
	return &materialRepository{db: db}
}

func (r *materialRepository) Create(ctx context.Context, material *entity.Material) error {
	return r.db.WithContext(ctx).Create(material).Error
}

func (r *materialRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Material, error) {
	var material entity.Material
	err := r.db.WithContext(ctx).First(&material, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &material, err
}

func (r *materialRepository) GetByCode(ctx context.Context, code string) (*entity.Material, error) {
	var material entity.Material
	err := r.db.WithContext(ctx).First(&material, "codigo = ?", strings.ToUpper(strings.TrimSpace(code))).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &material, err
}

func (r *materialRepository) Update(ctx context.Context, material *entity.Material) error {
	return r.db.WithContext(ctx).Save(material).Error
}

func (r *materialRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Material{}, "id = ?", id).Error
}

func (r *materialRepository) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Material, int64, error) {
	var materials []entity.Material
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Material{}).
		Scopes(SearchScope(search, "codigo", "nombre"))
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Scopes(PaginateScope(params)).Order("codigo ASC").Find(&materials).Error
	return materials, total, err
}
