package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pluscontrol/plus-control-api/internal/application/service"
	"github.com/pluscontrol/plus-control-api/internal/domain/enum"
	"github.com/pluscontrol/plus-control-api/internal/presentation/http/dto/request"
	"github.com/pluscontrol/plus-control-api/internal/presentation/http/dto/response"
)

// ProductionHandler serves the workshop board and the debt panel
type ProductionHandler struct {
	boardService       *service.ProductionBoardService
	statusService      *service.StatusService
	collectionsService *service.CollectionsService
	now                func() time.Time
}

// NewProductionHandler creates a new production handler
func NewProductionHandler(
	boardService *service.ProductionBoardService,
	statusService *service.StatusService,
	collectionsService *service.CollectionsService,
) *ProductionHandler {
	return &ProductionHandler{
		boardService:       boardService,
		statusService:      statusService,
		collectionsService: collectionsService,
		now:                time.Now,
	}
}

// Board returns the production board
// @Summary Production Board
// @Tags production
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /production/board [get]
func (h *ProductionHandler) Board(c *gin.Context) {
	board, err := h.boardService.Board(c.Request.Context(), h.now())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Board retrieved successfully", board)
}

// Move changes a quote's column on the board
// @Summary Move Board Card
// @Description Moves among Accepted, In Production and Ready. Delivery is refused here.
// @Tags production
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Quote ID"
// @Param request body request.StatusRequest true "Target column"
// @Success 200 {object} response.APIResponse
// @Failure 409 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Router /production/quotes/{id} [patch]
func (h *ProductionHandler) Move(c *gin.Context) {
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

	change, err := h.statusService.MoveOnBoard(c.Request.Context(), id, to)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Card moved", change)
}

// Debtors lists accepted work with money still owed
// @Summary Debtors
// @Tags collections
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /collections/debtors [get]
func (h *ProductionHandler) Debtors(c *gin.Context) {
	report, err := h.collectionsService.ListDebtors(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Debtors retrieved successfully", report)
}
