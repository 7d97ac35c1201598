package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pluscontrol/plus-control-api/internal/domain/entity"
	"github.com/pluscontrol/plus-control-api/internal/domain/enum"
	"github.com/pluscontrol/plus-control-api/internal/domain/finance"
	"github.com/pluscontrol/plus-control-api/internal/domain/repository"
	"github.com/pluscontrol/plus-control-api/internal/domain/workflow"
	"github.com/pluscontrol/plus-control-api/pkg/apperror"
	"github.com/pluscontrol/plus-control-api/pkg/pagination"
	"github.com/pluscontrol/plus-control-api/pkg/utils"
)

// QuoteDefaults are applied to new quotes when the request leaves them blank.
type QuoteDefaults struct {
	FolioPrefix      string
	Validity         string
	PaymentCondition string
}

// QuoteService handles quote editing and the money side of a quote
type QuoteService struct {
	quoteRepo    repository.QuoteRepository
	ruleRepo     repository.DiscountRuleRepository
	clientRepo   repository.ClientRepository
	materialRepo repository.MaterialRepository
	calc         *finance.Calculator
	defaults     QuoteDefaults
}

// NewQuoteService creates a new quote service
func NewQuoteService(
	quoteRepo repository.QuoteRepository,
	ruleRepo repository.DiscountRuleRepository,
	clientRepo repository.ClientRepository,
	materialRepo repository.MaterialRepository,
	calc *finance.Calculator,
	defaults QuoteDefaults,
) *QuoteService {
	if defaults.FolioPrefix == "" {
		defaults.FolioPrefix = "COT"
	}
	return &QuoteService{
		quoteRepo:    quoteRepo,
		ruleRepo:     ruleRepo,
		clientRepo:   clientRepo,
		materialRepo: materialRepo,
		calc:         calc,
		defaults:     defaults,
	}
}

// QuoteWithTotals is a quote together with its recomputed figures.
type QuoteWithTotals struct {
	*entity.Quote
	StatusLabel  string             `json:"status_label"`
	NextStatuses []enum.QuoteStatus `json:"next_statuses"`
	Totals       finance.Totals     `json:"totals"`
}

func (s *QuoteService) withTotals(q *entity.Quote) *QuoteWithTotals {
	return &QuoteWithTotals{
		Quote:        q,
		StatusLabel:  q.Status.Label(),
		NextStatuses: workflow.NextStatuses(q.Status),
		Totals:       q.Totals(s.calc),
	}
}

// QuoteItemInput represents a line item input
type QuoteItemInput struct {
	MaterialID  *uuid.UUID
	ProductName string
	Description string
	Quantity    float64
	UnitPrice   int64
	UnitCost    int64
	Width       float64
	Height      float64
	ShopNotes   string
}

// QuoteInput carries the editable fields of a quote
type QuoteInput struct {
	ClientID         *uuid.UUID
	ClientName       string
	ClientRUT        string
	ClientContact    string
	DiscountPercent  float64
	ApplyTax         bool
	DepositPaid      int64
	Validity         string
	PaymentCondition string
	Notes            *string
	DueDate          *time.Time
	Items            []QuoteItemInput
}

// CreateQuote stores a new Draft quote with a fresh folio
func (s *QuoteService) CreateQuote(ctx context.Context, userID uuid.UUID, input *QuoteInput) (*QuoteWithTotals, error) {
	if err := validateQuoteInput(input); err != nil {
		return nil, err
	}

	nextNum, err := s.quoteRepo.NextFolioNumber(ctx)
	if err != nil {
		return nil, err
	}

	quote := &entity.Quote{
		Folio:     utils.FormatFolio(s.defaults.FolioPrefix, nextNum),
		CreatedBy: userID,
		Status:    enum.QuoteStatusDraft,
	}
	if err := s.apply(ctx, quote, input); err != nil {
		return nil, err
	}
	if quote.Validity == "" {
		quote.Validity = s.defaults.Validity
	}
	if quote.PaymentCondition == "" {
		quote.PaymentCondition = s.defaults.PaymentCondition
	}

	if err := s.quoteRepo.Create(ctx, quote); err != nil {
		return nil, err
	}
	return s.GetQuote(ctx, quote.ID)
}

// UpdateQuote rewrites an editable quote. The write only lands if the status
// is still the one observed here.
func (s *QuoteService) UpdateQuote(ctx context.Context, id uuid.UUID, input *QuoteInput) (*QuoteWithTotals, error) {
	if err := validateQuoteInput(input); err != nil {
		return nil, err
	}

	quote, err := s.loadEditable(ctx, id)
	if err != nil {
		return nil, err
	}
	observed := quote.Status
	if err := s.apply(ctx, quote, input); err != nil {
		return nil, err
	}

	if err := s.quoteRepo.UpdateIfStatus(ctx, quote, observed); err != nil {
		return nil, statusError(err)
	}
	return s.GetQuote(ctx, id)
}

// GetQuote retrieves a quote with its totals
func (s *QuoteService) GetQuote(ctx context.Context, id uuid.UUID) (*QuoteWithTotals, error) {
	quote, err := s.quoteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, quoteNotFound()
	}
	return s.withTotals(quote), nil
}

// ListQuotes retrieves quotes with pagination and filters
func (s *QuoteService) ListQuotes(ctx context.Context, params *repository.QuoteFilterParams) ([]QuoteWithTotals, int64, error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	params.Pagination.Validate()

	quotes, total, err := s.quoteRepo.List(ctx, params)
	if err != nil {
		return nil, 0, err
	}
	out := make([]QuoteWithTotals, len(quotes))
	for i := range quotes {
		out[i] = *s.withTotals(&quotes[i])
	}
	return out, total, nil
}

// DeleteQuote removes a quote that never left Draft
func (s *QuoteService) DeleteQuote(ctx context.Context, id uuid.UUID) error {
	quote, err := s.quoteRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if quote == nil {
		return quoteNotFound()
	}
	if quote.Status != enum.QuoteStatusDraft {
		return apperror.NewUnprocessableError("Only draft quotes can be deleted")
	}
	return s.quoteRepo.Delete(ctx, id)
}

// PreviewInput is an unsaved quote.
type PreviewInput struct {
	Items           []QuoteItemInput
	DiscountPercent float64
	DepositPaid     int64
	ApplyTax        bool
}

// PreviewResult is what the editor shows while a quote is being typed.
type PreviewResult struct {
	Totals              finance.Totals `json:"totals"`
	TotalArea           float64        `json:"total_area"`
	RecommendedDiscount float64        `json:"recommended_discount"`
}

// PreviewTotals recomputes totals for unsaved input. Nothing is stored.
func (s *QuoteService) PreviewTotals(ctx context.Context, input *PreviewInput) (*PreviewResult, error) {
	lines := make([]finance.LineInput, len(input.Items))
	areas := make([]finance.AreaInput, len(input.Items))
	for i, it := range input.Items {
		lines[i] = finance.LineInput{Quantity: it.Quantity, UnitPrice: float64(it.UnitPrice), UnitCost: float64(it.UnitCost)}
		areas[i] = finance.AreaInput{Width: it.Width, Height: it.Height, Quantity: it.Quantity}
	}

	rules, err := s.ruleRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	return &PreviewResult{
		Totals:              s.calc.QuoteTotals(lines, input.DiscountPercent, input.DepositPaid, input.ApplyTax),
		TotalArea:           finance.TotalArea(areas),
		RecommendedDiscount: finance.ResolveDiscount(areas, entity.DiscountRanges(rules)),
	}, nil
}

// DiscountRecommendation is the volume discount the catalog suggests for a quote.
type DiscountRecommendation struct {
	QuoteID         uuid.UUID `json:"quote_id"`
	TotalArea       float64   `json:"total_area"`
	RuleName        string    `json:"rule_name,omitempty"`
	DiscountPercent float64   `json:"discount_percent"`
	CurrentPercent  float64   `json:"current_percent"`
}

// RecommendDiscount resolves the volume discount for the quote's items
func (s *QuoteService) RecommendDiscount(ctx context.Context, id uuid.UUID) (*DiscountRecommendation, error) {
	quote, err := s.quoteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, quoteNotFound()
	}
	return s.recommend(ctx, quote)
}

func (s *QuoteService) recommend(ctx context.Context, quote *entity.Quote) (*DiscountRecommendation, error) {
	rules, err := s.ruleRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	area := finance.TotalArea(quote.AreaInputs())
	rec := &DiscountRecommendation{
		QuoteID:        quote.ID,
		TotalArea:      area,
		CurrentPercent: quote.DiscountPercent,
	}
	if idx, pct := finance.MatchRule(area, entity.DiscountRanges(rules)); idx >= 0 {
		rec.RuleName = rules[idx].Name
		rec.DiscountPercent = pct
	}
	return rec, nil
}

// ApplyRecommendedDiscount stores the recommended discount on an editable quote
func (s *QuoteService) ApplyRecommendedDiscount(ctx context.Context, id uuid.UUID) (*QuoteWithTotals, error) {
	quote, err := s.loadEditable(ctx, id)
	if err != nil {
		return nil, err
	}

	rec, err := s.recommend(ctx, quote)
	if err != nil {
		return nil, err
	}
	quote.DiscountPercent = rec.DiscountPercent

	if err := s.quoteRepo.UpdateIfStatus(ctx, quote, quote.Status); err != nil {
		return nil, statusError(err)
	}
	return s.GetQuote(ctx, id)
}

// RegisterPayment adds amount to the deposit. Allowed in every status but Rejected.
func (s *QuoteService) RegisterPayment(ctx context.Context, id uuid.UUID, amount int64) (*QuoteWithTotals, error) {
	if amount <= 0 {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "amount", Message: "Amount must be greater than zero"},
		})
	}

	quote, err := s.quoteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, quoteNotFound()
	}
	if quote.Status == enum.QuoteStatusRejected {
		return nil, apperror.NewUnprocessableError("Payments cannot be registered on a rejected quote")
	}

	ok, err := s.quoteRepo.AddDeposit(ctx, id, amount)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, statusError(repository.ErrStatusChanged)
	}
	return s.GetQuote(ctx, id)
}

func (s *QuoteService) loadEditable(ctx context.Context, id uuid.UUID) (*entity.Quote, error) {
	quote, err := s.quoteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, quoteNotFound()
	}
	if !quote.Status.IsEditable() {
		return nil, apperror.NewUnprocessableError(
			fmt.Sprintf("Quote in status %s can no longer be edited", quote.Status.Label()))
	}
	return quote, nil
}

// apply copies input onto quote, resolving the client snapshot and material names.
func (s *QuoteService) apply(ctx context.Context, quote *entity.Quote, input *QuoteInput) error {
	quote.ClientID = input.ClientID
	quote.ClientName = strings.TrimSpace(input.ClientName)
	quote.ClientRUT = strings.TrimSpace(input.ClientRUT)
	quote.ClientContact = strings.TrimSpace(input.ClientContact)

	if input.ClientID != nil {
		client, err := s.clientRepo.GetByID(ctx, *input.ClientID)
		if err != nil {
			return err
		}
		if client == nil {
			return apperror.NewNotFoundError("Client")
		}
		if quote.ClientName == "" {
			quote.ClientName = client.Company
		}
		if quote.ClientRUT == "" {
			quote.ClientRUT = client.RUT
		}
		if quote.ClientContact == "" {
			quote.ClientContact = client.ContactName
		}
	}

	quote.DiscountPercent = input.DiscountPercent
	quote.ApplyTax = input.ApplyTax
	quote.DepositPaid = input.DepositPaid
	quote.Notes = input.Notes
	quote.DueDate = input.DueDate
	if input.Validity != "" {
		quote.Validity = input.Validity
	}
	if input.PaymentCondition != "" {
		quote.PaymentCondition = input.PaymentCondition
	}

	items := make([]entity.QuoteItem, len(input.Items))
	for i, it := range input.Items {
		name := strings.TrimSpace(it.ProductName)
		if it.MaterialID != nil {
			material, err := s.materialRepo.GetByID(ctx, *it.MaterialID)
			if err != nil {
				return err
			}
			if material == nil {
				return apperror.NewNotFoundError("Material")
			}
			if name == "" {
				name = material.Name
			}
		}
		items[i] = entity.QuoteItem{
			QuoteID:     quote.ID,
			Position:    i,
			MaterialID:  it.MaterialID,
			ProductName: name,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			UnitCost:    it.UnitCost,
			Width:       it.Width,
			Height:      it.Height,
			ShopNotes:   it.ShopNotes,
		}
	}
	quote.Items = items
	return nil
}

func validateQuoteInput(input *QuoteInput) error {
	var fields []apperror.FieldError
	if input.ClientID == nil && strings.TrimSpace(input.ClientName) == "" {
		fields = append(fields, apperror.FieldError{Field: "client_name", Message: "Client is required"})
	}
	if !nonNegative(input.DiscountPercent) || input.DiscountPercent > 100 {
		fields = append(fields, apperror.FieldError{Field: "discount_percent", Message: "Discount must be between 0 and 100"})
	}
	if input.DepositPaid < 0 {
		fields = append(fields, apperror.FieldError{Field: "deposit_paid", Message: "Deposit cannot be negative"})
	}
	for i, it := range input.Items {
		prefix := fmt.Sprintf("items[%d].", i)
		if it.MaterialID == nil && strings.TrimSpace(it.ProductName) == "" {
			fields = append(fields, apperror.FieldError{Field: prefix + "product_name", Message: "Product name is required"})
		}
		if !nonNegative(it.Quantity) {
			fields = append(fields, apperror.FieldError{Field: prefix + "quantity", Message: "Quantity must be zero or more"})
		}
		if it.UnitPrice < 0 {
			fields = append(fields, apperror.FieldError{Field: prefix + "unit_price", Message: "Unit price cannot be negative"})
		}
		if it.UnitCost < 0 {
			fields = append(fields, apperror.FieldError{Field: prefix + "unit_cost", Message: "Unit cost cannot be negative"})
		}
		if !finance.LineWithinBounds(it.Quantity, float64(it.UnitPrice), float64(it.UnitCost)) {
			fields = append(fields, apperror.FieldError{
				Field:   prefix + "unit_price",
				Message: fmt.Sprintf("Line amount cannot exceed %d CLP", finance.MaxLineAmount),
			})
		}
		if !nonNegative(it.Width) || !nonNegative(it.Height) {
			fields = append(fields, apperror.FieldError{Field: prefix + "dimensions", Message: "Dimensions must be zero or more"})
		}
	}
	if len(fields) > 0 {
		return apperror.NewValidationError(fields)
	}
	return nil
}

func nonNegative(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
