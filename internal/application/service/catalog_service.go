package service

import (
	"context"
	"encoding/json"
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/pluscontrol/plus-control-api/internal/domain/entity"
	"github.com/pluscontrol/plus-control-api/internal/domain/finance"
	"github.com/pluscontrol/plus-control-api/internal/domain/repository"
	"github.com/pluscontrol/plus-control-api/pkg/apperror"
	"github.com/pluscontrol/plus-control-api/pkg/pagination"
	"github.com/pluscontrol/plus-control-api/pkg/utils"
	"gorm.io/datatypes"
)

// DiscountRuleService manages the volume discount catalog
type DiscountRuleService struct {
	ruleRepo repository.DiscountRuleRepository
}

// NewDiscountRuleService creates a new discount rule service
func NewDiscountRuleService(ruleRepo repository.DiscountRuleRepository) *DiscountRuleService {
	return &DiscountRuleService{ruleRepo: ruleRepo}
}

// DiscountRuleInput represents the input for creating or updating a rule
type DiscountRuleInput struct {
	Name            string
	MinArea         float64
	MaxArea         float64
	DiscountPercent float64
}

func (in *DiscountRuleInput) validate() error {
	var fields []apperror.FieldError
	if strings.TrimSpace(in.Name) == "" {
		fields = append(fields, apperror.FieldError{Field: "name", Message: "Name is required"})
	}
	if !nonNegative(in.MinArea) {
		fields = append(fields, apperror.FieldError{Field: "min_area", Message: "Minimum area must be zero or more"})
	}
	if !nonNegative(in.MaxArea) {
		fields = append(fields, apperror.FieldError{Field: "max_area", Message: "Maximum area must be zero or more"})
	} else if in.MaxArea != 0 && in.MinArea >= in.MaxArea {
		fields = append(fields, apperror.FieldError{Field: "max_area", Message: "Maximum area must be greater than minimum area"})
	}
	if math.IsNaN(in.DiscountPercent) || in.DiscountPercent < 0 || in.DiscountPercent > 100 {
		fields = append(fields, apperror.FieldError{Field: "discount_percent", Message: "Discount must be between 0 and 100"})
	}
	if len(fields) > 0 {
		return apperror.NewValidationError(fields)
	}
	return nil
}

func (s *DiscountRuleService) CreateRule(ctx context.Context, input *DiscountRuleInput) (*entity.DiscountRule, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	rule := &entity.DiscountRule{
		Name:            strings.TrimSpace(input.Name),
		MinArea:         input.MinArea,
		MaxArea:         input.MaxArea,
		DiscountPercent: input.DiscountPercent,
	}
	if err := s.ruleRepo.Create(ctx, rule); err != nil {
		return nil, err
	}
	return rule, nil
}

func (s *DiscountRuleService) GetRule(ctx context.Context, id uuid.UUID) (*entity.DiscountRule, error) {
	rule, err := s.ruleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rule == nil {
		return nil, apperror.NewNotFoundError("Discount rule")
	}
	return rule, nil
}

// ListRules returns the catalog in resolver order (min area ascending).
func (s *DiscountRuleService) ListRules(ctx context.Context) ([]entity.DiscountRule, error) {
	return s.ruleRepo.List(ctx)
}

func (s *DiscountRuleService) UpdateRule(ctx context.Context, id uuid.UUID, input *DiscountRuleInput) (*entity.DiscountRule, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	rule, err := s.GetRule(ctx, id)
	if err != nil {
		return nil, err
	}
	rule.Name = strings.TrimSpace(input.Name)
	rule.MinArea = input.MinArea
	rule.MaxArea = input.MaxArea
	rule.DiscountPercent = input.DiscountPercent
	if err := s.ruleRepo.Update(ctx, rule); err != nil {
		return nil, err
	}
	return rule, nil
}

func (s *DiscountRuleService) DeleteRule(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetRule(ctx, id); err != nil {
		return err
	}
	return s.ruleRepo.Delete(ctx, id)
}

// Overlaps reports pairs of rules whose ranges intersect. The resolver still
// picks the first, so overlaps are shown as a warning rather than refused.
func Overlaps(rules []entity.DiscountRule) [][2]string {
	var out [][2]string
	for i := 0; i < len(rules); i++ {
		for j := i + 1; j < len(rules); j++ {
			if rangesIntersect(rules[i].Range(), rules[j].Range()) {
				out = append(out, [2]string{rules[i].Name, rules[j].Name})
			}
		}
	}
	return out
}

func rangesIntersect(a, b finance.DiscountRange) bool {
	upper := func(r finance.DiscountRange) float64 {
		if r.MaxArea == 0 {
			return finance.OpenEndedMaxArea
		}
		return r.MaxArea
	}
	return a.MinArea <= upper(b) && b.MinArea <= upper(a)
}

// ClientService handles client-related operations
type ClientService struct {
	clientRepo repository.ClientRepository
}

// NewClientService creates a new client service
func NewClientService(clientRepo repository.ClientRepository) *ClientService {
	return &ClientService{clientRepo: clientRepo}
}

// ClientInput represents the input for creating or updating a client
type ClientInput struct {
	Company     string
	RUT         string
	ContactName string
	Email       *string
	Phone       *string
	Address     *string
}

func (in *ClientInput) validate() error {
	if strings.TrimSpace(in.Company) == "" {
		return apperror.NewValidationError([]apperror.FieldError{{Field: "empresa", Message: "Company is required"}})
	}
	return nil
}

func (in *ClientInput) applyTo(c *entity.Client) {
	c.Company = strings.TrimSpace(in.Company)
	c.RUT = utils.NormalizeRUT(in.RUT)
	c.ContactName = strings.TrimSpace(in.ContactName)
	c.Email = in.Email
	c.Phone = in.Phone
	c.Address = in.Address
}

func (s *ClientService) CreateClient(ctx context.Context, input *ClientInput) (*entity.Client, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	client := &entity.Client{}
	input.applyTo(client)
	if err := s.clientRepo.Create(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

func (s *ClientService) GetClient(ctx context.Context, id uuid.UUID) (*entity.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperror.NewNotFoundError("Client")
	}
	return client, nil
}

// ListClients retrieves clients with pagination
func (s *ClientService) ListClients(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Client], error) {
	params.Validate()
	clients, total, err := s.clientRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(clients, pagination.NewPagination(params.Page, params.PerPage, total)), nil
}

func (s *ClientService) UpdateClient(ctx context.Context, id uuid.UUID, input *ClientInput) (*entity.Client, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	client, err := s.GetClient(ctx, id)
	if err != nil {
		return nil, err
	}
	input.applyTo(client)
	if err := s.clientRepo.Update(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

func (s *ClientService) DeleteClient(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetClient(ctx, id); err != nil {
		return err
	}
	return s.clientRepo.Delete(ctx, id)
}

// MaterialService handles the material catalog
type MaterialService struct {
	materialRepo repository.MaterialRepository
}

// NewMaterialService creates a new material service
func NewMaterialService(materialRepo repository.MaterialRepository) *MaterialService {
	return &MaterialService{materialRepo: materialRepo}
}

// MaterialInput represents the input for creating or updating a material
type MaterialInput struct {
	Code            string
	Name            string
	BaseCostM2      int64
	SuggestedMargin float64
	BasePrice       int64
	Datasheet       json.RawMessage
}

func (in *MaterialInput) validate() error {
	var fields []apperror.FieldError
	if utils.NormalizeCode(in.Code) == "" {
		fields = append(fields, apperror.FieldError{Field: "codigo", Message: "Code is required"})
	}
	if strings.TrimSpace(in.Name) == "" {
		fields = append(fields, apperror.FieldError{Field: "nombre", Message: "Name is required"})
	}
	if in.BaseCostM2 < 0 || in.BasePrice < 0 {
		fields = append(fields, apperror.FieldError{Field: "precio", Message: "Prices cannot be negative"})
	}
	if !nonNegative(in.SuggestedMargin) {
		fields = append(fields, apperror.FieldError{Field: "margen_sugerido", Message: "Margin must be zero or more"})
	}
	if len(in.Datasheet) > 0 && !json.Valid(in.Datasheet) {
		fields = append(fields, apperror.FieldError{Field: "ficha_tecnica", Message: "Datasheet must be valid JSON"})
	}
	if len(fields) > 0 {
		return apperror.NewValidationError(fields)
	}
	return nil
}

func (in *MaterialInput) applyTo(m *entity.Material) {
	m.Code = utils.NormalizeCode(in.Code)
	m.Name = strings.TrimSpace(in.Name)
	m.BaseCostM2 = in.BaseCostM2
	m.SuggestedMargin = in.SuggestedMargin
	m.BasePrice = in.BasePrice
	if len(in.Datasheet) > 0 {
		m.Datasheet = datatypes.JSON(in.Datasheet)
	}
}

func (s *MaterialService) CreateMaterial(ctx context.Context, input *MaterialInput) (*entity.Material, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	if err := s.ensureCodeFree(ctx, input.Code, uuid.Nil); err != nil {
		return nil, err
	}
	material := &entity.Material{}
	input.applyTo(material)
	if err := s.materialRepo.Create(ctx, material); err != nil {
		return nil, err
	}
	return material, nil
}

func (s *MaterialService) GetMaterial(ctx context.Context, id uuid.UUID) (*entity.Material, error) {
	material, err := s.materialRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, apperror.NewNotFoundError("Material")
	}
	return material, nil
}

// ListMaterials retrieves materials with pagination
func (s *MaterialService) ListMaterials(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Material], error) {
	params.Validate()
	materials, total, err := s.materialRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(materials, pagination.NewPagination(params.Page, params.PerPage, total)), nil
}

func (s *MaterialService) UpdateMaterial(ctx context.Context, id uuid.UUID, input *MaterialInput) (*entity.Material, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	material, err := s.GetMaterial(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.ensureCodeFree(ctx, input.Code, id); err != nil {
		return nil, err
	}
	input.applyTo(material)
	if err := s.materialRepo.Update(ctx, material); err != nil {
		return nil, err
	}
	return material, nil
}

func (s *MaterialService) DeleteMaterial(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetMaterial(ctx, id); err != nil {
		return err
	}
	return s.materialRepo.Delete(ctx, id)
}

func (s *MaterialService) ensureCodeFree(ctx context.Context, code string, self uuid.UUID) error {
	existing, err := s.materialRepo.GetByCode(ctx, utils.NormalizeCode(code))
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != self {
		return apperror.NewConflictError("Material code already exists")
	}
	return nil
}
