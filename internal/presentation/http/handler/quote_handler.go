package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/pluscontrol/plus-control-api/internal/application/service"
	"github.com/pluscontrol/plus-control-api/internal/domain/enum"
	"github.com/pluscontrol/plus-control-api/internal/domain/repository"
	"github.com/pluscontrol/plus-control-api/internal/presentation/http/dto/request"
	"github.com/pluscontrol/plus-control-api/internal/presentation/http/dto/response"
	"github.com/pluscontrol/plus-control-api/pkg/apperror"
	"github.com/pluscontrol/plus-control-api/pkg/pagination"
)

// QuoteHandler handles quote editing, status changes and payments
type QuoteHandler struct {
	quoteService  *service.QuoteService
	statusService *service.StatusService
}

// NewQuoteHandler creates a new quote handler
func NewQuoteHandler(quoteService *service.QuoteService, statusService *service.StatusService) *QuoteHandler {
	return &QuoteHandler{quoteService: quoteService, statusService: statusService}
}

func toItemInputs(items []request.QuoteItemRequest) []service.QuoteItemInput {
	out := make([]service.QuoteItemInput, len(items))
	for i, it := range items {
		out[i] = service.QuoteItemInput{
			MaterialID:  it.MaterialID,
			ProductName: it.ProductName,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			UnitCost:    it.UnitCost,
			Width:       it.Width,
			Height:      it.Height,
			ShopNotes:   it.ShopNotes,
		}
	}
	return out
}

func toQuoteInput(req *request.QuoteRequest) (*service.QuoteInput, error) {
	var dueDate string
	if req.DueDate != nil {
		dueDate = *req.DueDate
	}
	due, err := parseDate(dueDate)
	if err != nil {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "due_date", Message: "must be a date in YYYY-MM-DD format"},
		})
	}

	return &service.QuoteInput{
		ClientID:         req.ClientID,
		ClientName:       req.ClientName,
		ClientRUT:        req.ClientRUT,
		ClientContact:    req.ClientContact,
		DiscountPercent:  req.DiscountPercent,
		ApplyTax:         boolOr(req.ApplyTax, true),
		DepositPaid:      req.DepositPaid,
		Validity:         req.Validity,
		PaymentCondition: req.PaymentCondition,
		Notes:            req.Notes,
		DueDate:          due,
		Items:            toItemInputs(req.Items),
	}, nil
}

// List handles listing quotes
// @Summary List Quotes
// @Description Quotes with recomputed totals, paginated and filtered
// @Tags quotes
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Param search query string false "Folio or client name"
// @Param status query string false "Status name, label or code"
// @Success 200 {object} response.APIResponse
// @Router /quotes [get]
func (h *QuoteHandler) List(c *gin.Context) {
	var req request.QuoteFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.QuoteFilterParams{
		Pagination: pageParams(req.Page, req.PerPage),
		Search:     req.Search,
		ClientID:   req.ClientID,
		SortBy:     req.SortBy,
		SortOrder:  req.SortOrder,
	}
	if req.Status != "" {
		status, err := enum.ParseQuoteStatus(req.Status)
		if err != nil {
			response.BadRequest(c, "Invalid status filter")
			return
		}
		params.Status = &status
	}

	quotes, total, err := h.quoteService.ListQuotes(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	result := pagination.NewPaginatedResult(quotes, pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total))
	response.SuccessWithPagination(c, "Quotes retrieved successfully", result)
}

// Get handles getting a single quote
// @Summary Get Quote
// @Tags quotes
// @Security BearerAuth
// @Produce json
// @Param id path string true "Quote ID"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /quotes/{id} [get]
func (h *QuoteHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "quote")
	if !ok {
		return
	}

	quote, err := h.quoteService.GetQuote(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quote retrieved successfully", quote)
}

// Create handles creating a quote
// @Summary Create Quote
// @Description Create a Draft quote with a new folio
// @Tags quotes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.QuoteRequest true "Quote data"
// @Success 201 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Router /quotes [post]
func (h *QuoteHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	input, err := toQuoteInput(&req)
	if err != nil {
		response.Error(c, err)
		return
	}

	quote, err := h.quoteService.CreateQuote(c.Request.Context(), *userID, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Quote created successfully", quote)
}

// Update handles replacing a quote's editable fields
// @Summary Update Quote
// @Description Replace items and money fields while the quote is still editable
// @Tags quotes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Quote ID"
// @Param request body request.QuoteRequest true "Quote data"
// @Success 200 {object} response.APIResponse
// @Failure 409 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Router /quotes/{id} [put]
func (h *QuoteHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "quote")
	if !ok {
		return
	}

	var req request.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	input, err := toQuoteInput(&req)
	if err != nil {
		response.Error(c, err)
		return
	}

	quote, err := h.quoteService.UpdateQuote(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quote updated successfully", quote)
}

// Delete handles deleting a draft quote
// @Summary Delete Quote
// @Tags quotes
// @Security BearerAuth
// @Param id path string true "Quote ID"
// @Success 204
// @Router /quotes/{id} [delete]
func (h *QuoteHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "quote")
	if !ok {
		return
	}

	if err := h.quoteService.DeleteQuote(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// Preview recomputes totals for an unsaved quote
// @Summary Preview Totals
// @Tags quotes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.PreviewRequest true "Unsaved quote"
// @Success 200 {object} response.APIResponse
// @Router /quotes/preview [post]
func (h *QuoteHandler) Preview(c *gin.Context) {
	var req request.PreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	result, err := h.quoteService.PreviewTotals(c.Request.Context(), &service.PreviewInput{
		Items:           toItemInputs(req.Items),
		DiscountPercent: req.DiscountPercent,
		DepositPaid:     req.DepositPaid,
		ApplyTax:        boolOr(req.ApplyTax, true),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Totals computed", result)
}

// Transition moves a quote to another status
// @Summary Change Quote Status
// @Description Simple transitions only; delivery goes through POST /quotes/{id}/delivery
// @Tags quotes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Quote ID"
// @Param request body request.StatusRequest true "Target status"
// @Success 200 {object} response.APIResponse
// @Failure 409 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Router /quotes/{id}/transition [post]
func (h *QuoteHandler) Transition(c *gin.Context) {
	id, ok := pathID(c, "quote")
	if !ok {
		return
	}

	var req request.StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	to, err := enum.ParseQuoteStatus(req.Status)
	if err != nil {
		response.BadRequest(c, "Unknown status")
		return
	}

	change, err := h.statusService.Transition(c.Request.Context(), id, to)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Status updated", change)
}

// Reject marks a quote as rejected
// @Summary Reject Quote
// @Tags quotes
// @Security BearerAuth
// @Produce json
// @Param id path string true "Quote ID"
// @Success 200 {object} response.APIResponse
// @Router /quotes/{id}/reject [post]
func (h *QuoteHandler) Reject(c *gin.Context) {
	id, ok := pathID(c, "quote")
	if !ok {
		return
	}

	change, err := h.statusService.Reject(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quote rejected", change)
}

// RegisterPayment adds a payment to the quote's deposit
// @Summary Register Payment
// @Tags quotes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Quote ID"
// @Param request body request.PaymentRequest true "Payment"
// @Success 200 {object} response.APIResponse
// @Router /quotes/{id}/payments [post]
func (h *QuoteHandler) RegisterPayment(c *gin.Context) {
	id, ok := pathID(c, "quote")
	if !ok {
		return
	}

	var req request.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Amount must be a positive integer")
		return
	}

	quote, err := h.quoteService.RegisterPayment(c.Request.Context(), id, req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment registered", quote)
}

// DiscountRecommendation returns the volume discount suggested by the rule catalog
// @Summary Recommend Discount
// @Tags quotes
// @Security BearerAuth
// @Produce json
// @Param id path string true "Quote ID"
// @Success 200 {object} response.APIResponse
// @Router /quotes/{id}/discount-recommendation [get]
func (h *QuoteHandler) DiscountRecommendation(c *gin.Context) {
	id, ok := pathID(c, "quote")
	if !ok {
		return
	}

	rec, err := h.quoteService.RecommendDiscount(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Discount recommendation", rec)
}

// ApplyDiscount stores the recommended volume discount on the quote
// @Summary Apply Recommended Discount
// @Tags quotes
// @Security BearerAuth
// @Produce json
// @Param id path string true "Quote ID"
// @Success 200 {object} response.APIResponse
// @Router /quotes/{id}/apply-discount [post]
func (h *QuoteHandler) ApplyDiscount(c *gin.Context) {
	id, ok := pathID(c, "quote")
	if !ok {
		return
	}

	quote, err := h.quoteService.ApplyRecommendedDiscount(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Discount applied", quote)
}
