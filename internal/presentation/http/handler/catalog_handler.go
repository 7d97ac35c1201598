package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/pluscontrol/plus-control-api/internal/application/service"
	"github.com/pluscontrol/plus-control-api/internal/presentation/http/dto/request"
	"github.com/pluscontrol/plus-control-api/internal/presentation/http/dto/response"
)

// DiscountRuleHandler handles the volume discount catalog
type DiscountRuleHandler struct {
	ruleService *service.DiscountRuleService
}

// NewDiscountRuleHandler creates a new discount rule handler
func NewDiscountRuleHandler(ruleService *service.DiscountRuleService) *DiscountRuleHandler {
	return &DiscountRuleHandler{ruleService: ruleService}
}

func toRuleInput(req *request.DiscountRuleRequest) *service.DiscountRuleInput {
	return &service.DiscountRuleInput{
		Name:            req.Name,
		MinArea:         req.MinArea,
		MaxArea:         req.MaxArea,
		DiscountPercent: req.DiscountPercent,
	}
}

// List returns the rules ordered by minimum area. Overlapping ranges are
// reported as warnings; the first matching rule wins.
// @Summary List Discount Rules
// @Tags discount-rules
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /discount-rules [get]
func (h *DiscountRuleHandler) List(c *gin.Context) {
	rules, err := h.ruleService.ListRules(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	var warnings []string
	for _, pair := range service.Overlaps(rules) {
		warnings = append(warnings, fmt.Sprintf("%q overlaps %q; %q applies first", pair[0], pair[1], pair[0]))
	}

	response.SuccessWithWarnings(c, 200, "Discount rules retrieved successfully", rules, warnings)
}

// Get returns one rule
// @Summary Get Discount Rule
// @Tags discount-rules
// @Security BearerAuth
// @Produce json
// @Param id path string true "Rule ID"
// @Success 200 {object} response.APIResponse
// @Router /discount-rules/{id} [get]
func (h *DiscountRuleHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "rule")
	if !ok {
		return
	}

	rule, err := h.ruleService.GetRule(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Discount rule retrieved successfully", rule)
}

// Create adds a rule
// @Summary Create Discount Rule
// @Tags discount-rules
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.DiscountRuleRequest true "Rule"
// @Success 201 {object} response.APIResponse
// @Router /discount-rules [post]
func (h *DiscountRuleHandler) Create(c *gin.Context) {
	var req request.DiscountRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	rule, err := h.ruleService.CreateRule(c.Request.Context(), toRuleInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Discount rule created successfully", rule)
}

// Update replaces a rule
// @Summary Update Discount Rule
// @Tags discount-rules
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Rule ID"
// @Param request body request.DiscountRuleRequest true "Rule"
// @Success 200 {object} response.APIResponse
// @Router /discount-rules/{id} [put]
func (h *DiscountRuleHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "rule")
	if !ok {
		return
	}

	var req request.DiscountRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	rule, err := h.ruleService.UpdateRule(c.Request.Context(), id, toRuleInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Discount rule updated successfully", rule)
}

// Delete removes a rule
// @Summary Delete Discount Rule
// @Tags discount-rules
// @Security BearerAuth
// @Param id path string true "Rule ID"
// @Success 204
// @Router /discount-rules/{id} [delete]
func (h *DiscountRuleHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "rule")
	if !ok {
		return
	}

	if err := h.ruleService.DeleteRule(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// ClientHandler handles client-related HTTP requests
type ClientHandler struct {
	clientService *service.ClientService
}

// NewClientHandler creates a new client handler
func NewClientHandler(clientService *service.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

func toClientInput(req *request.ClientRequest) *service.ClientInput {
	return &service.ClientInput{
		Company:     req.Company,
		RUT:         req.RUT,
		ContactName: req.ContactName,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
	}
}

// List handles listing clients
// @Summary List Clients
// @Tags clients
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Param search query string false "Company, RUT or contact"
// @Success 200 {object} response.APIResponse
// @Router /clients [get]
func (h *ClientHandler) List(c *gin.Context) {
	var req request.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.clientService.ListClients(c.Request.Context(), pageParams(req.Page, req.PerPage), req.Search)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, "Clients retrieved successfully", result)
}

// Get handles getting a client
// @Summary Get Client
// @Tags clients
// @Security BearerAuth
// @Produce json
// @Param id path string true "Client ID"
// @Success 200 {object} response.APIResponse
// @Router /clients/{id} [get]
func (h *ClientHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "client")
	if !ok {
		return
	}

	client, err := h.clientService.GetClient(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Client retrieved successfully", client)
}

// Create handles creating a client
// @Summary Create Client
// @Tags clients
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.ClientRequest true "Client"
// @Success 201 {object} response.APIResponse
// @Router /clients [post]
func (h *ClientHandler) Create(c *gin.Context) {
	var req request.ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	client, err := h.clientService.CreateClient(c.Request.Context(), toClientInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Client created successfully", client)
}

// Update handles replacing a client
// @Summary Update Client
// @Tags clients
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Client ID"
// @Param request body request.ClientRequest true "Client"
// @Success 200 {object} response.APIResponse
// @Router /clients/{id} [put]
func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "client")
	if !ok {
		return
	}

	var req request.ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	client, err := h.clientService.UpdateClient(c.Request.Context(), id, toClientInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Client updated successfully", client)
}

// Delete handles deleting a client
// @Summary Delete Client
// @Tags clients
// @Security BearerAuth
// @Param id path string true "Client ID"
// @Success 204
// @Router /clients/{id} [delete]
func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "client")
	if !ok {
		return
	}

	if err := h.clientService.DeleteClient(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// MaterialHandler handles the material catalog
type MaterialHandler struct {
	materialService *service.MaterialService
}

// NewMaterialHandler creates a new material handler
func NewMaterialHandler(materialService *service.MaterialService) *MaterialHandler {
	return &MaterialHandler{materialService: materialService}
}

func toMaterialInput(req *request.MaterialRequest) *service.MaterialInput {
	return &service.MaterialInput{
		Code:            req.Code,
		Name:            req.Name,
		BaseCostM2:      req.BaseCostM2,
		SuggestedMargin: req.SuggestedMargin,
		BasePrice:       req.BasePrice,
		Datasheet:       req.Datasheet,
	}
}

// List handles listing materials
// @Summary List Materials
// @Tags materials
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Param search query string false "Code or name"
// @Success 200 {object} response.APIResponse
// @Router /materials [get]
func (h *MaterialHandler) List(c *gin.Context) {
	var req request.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.materialService.ListMaterials(c.Request.Context(), pageParams(req.Page, req.PerPage), req.Search)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, "Materials retrieved successfully", result)
}

// Get handles getting a material
// @Summary Get Material
// @Tags materials
// @Security BearerAuth
// @Produce json
// @Param id path string true "Material ID"
// @Success 200 {object} response.APIResponse
// @Router /materials/{id} [get]
func (h *MaterialHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "material")
	if !ok {
		return
	}

	material, err := h.materialService.GetMaterial(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Material retrieved successfully", material)
}

// Create handles creating a material
// @Summary Create Material
// @Tags materials
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.MaterialRequest true "Material"
// @Success 201 {object} response.APIResponse
// @Failure 409 {object} response.APIResponse
// @Router /materials [post]
func (h *MaterialHandler) Create(c *gin.Context) {
	var req request.MaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	material, err := h.materialService.CreateMaterial(c.Request.Context(), toMaterialInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Material created successfully", material)
}

// Update handles replacing a material
// @Summary Update Material
// @Tags materials
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Material ID"
// @Param request body request.MaterialRequest true "Material"
// @Success 200 {object} response.APIResponse
// @Router /materials/{id} [put]
func (h *MaterialHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "material")
	if !ok {
		return
	}

	var req request.MaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	material, err := h.materialService.UpdateMaterial(c.Request.Context(), id, toMaterialInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Material updated successfully", material)
}

// Delete handles deleting a material
// @Summary Delete Material
// @Tags materials
// @Security BearerAuth
// @Param id path string true "Material ID"
// @Success 204
// @Router /materials/{id} [delete]
func (h *MaterialHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "material")
	if !ok {
		return
	}

	if err := h.materialService.DeleteMaterial(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
