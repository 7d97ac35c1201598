package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pluscontrol/plus-control-api/internal/application/service"
	"github.com/pluscontrol/plus-control-api/internal/presentation/http/dto/request"
	"github.com/pluscontrol/plus-control-api/internal/presentation/http/dto/response"
	"github.com/pluscontrol/plus-control-api/pkg/apperror"
	"github.com/rs/zerolog"
)

const (
	evidenceField         = "evidence"
	defaultUploadMaxSize  = 10 << 20
	multipartFormOverhead = 1 << 20
)

// DeliveryHandler handles the delivery confirmation and its audit trail
type DeliveryHandler struct {
	deliveryService *service.DeliveryService
	maxUploadSize   int64
	log             zerolog.Logger
}

// NewDeliveryHandler creates a new delivery handler
func NewDeliveryHandler(deliveryService *service.DeliveryService, maxUploadSize int64, log zerolog.Logger) *DeliveryHandler {
	if maxUploadSize <= 0 {
		maxUploadSize = defaultUploadMaxSize
	}
	return &DeliveryHandler{
		deliveryService: deliveryService,
		maxUploadSize:   maxUploadSize,
		log:             log.With().Str("component", "delivery_handler").Logger(),
	}
}

// Confirm marks a quote as delivered
// @Summary Confirm Delivery
// @Description Checks balance and checklist, stores the photo evidence and commits the Delivered status with an audit record. Send an Idempotency-Key header to make retries safe.
// @Tags delivery
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Quote ID"
// @Param evidence formData file true "Delivery photo"
// @Param physical_check formData bool true "Goods checked against the order"
// @Param client_notified formData bool false "Client was notified"
// @Param override_confirmed formData bool false "Deliver although the quote is not Ready"
// @Param notes formData string false "Notes"
// @Success 201 {object} response.APIResponse
// @Failure 409 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Failure 502 {object} response.APIResponse
// @Router /quotes/{id}/delivery [post]
func (h *DeliveryHandler) Confirm(c *gin.Context) {
	id, ok := pathID(c, "quote")
	if !ok {
		return
	}
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadSize+multipartFormOverhead)

	var form request.DeliveryForm
	if err := c.ShouldBind(&form); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.ErrorWithCode(c, http.StatusRequestEntityTooLarge, h.tooLargeMessage())
			return
		}
		response.BadRequest(c, "Invalid delivery form")
		return
	}

	input := &service.DeliveryInput{
		QuoteID:           id,
		PerformedBy:       *userID,
		PhysicalCheck:     form.PhysicalCheck,
		ClientNotified:    form.ClientNotified,
		OverrideConfirmed: form.OverrideConfirmed,
		Notes:             form.Notes,
		UserAgent:         c.Request.UserAgent(),
		IP:                c.ClientIP(),
	}

	fh, err := c.FormFile(evidenceField)
	switch {
	case errors.Is(err, http.ErrMissingFile):
		// the gate reports missing evidence together with the other checklist items
	case err != nil:
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.ErrorWithCode(c, http.StatusRequestEntityTooLarge, h.tooLargeMessage())
			return
		}
		response.BadRequest(c, "Invalid evidence upload")
		return
	default:
		if fh.Size > h.maxUploadSize {
			response.ErrorWithCode(c, http.StatusRequestEntityTooLarge, h.tooLargeMessage())
			return
		}
		contentType := fh.Header.Get("Content-Type")
		if !strings.HasPrefix(contentType, "image/") {
			response.Error(c, apperror.NewValidationError([]apperror.FieldError{
				{Field: evidenceField, Message: "evidence must be an image"},
			}))
			return
		}
		file, err := fh.Open()
		if err != nil {
			response.BadRequest(c, "Invalid evidence upload")
			return
		}
		defer file.Close()

		input.Evidence = &service.EvidenceFile{
			Body:        file,
			Size:        fh.Size,
			ContentType: contentType,
			Filename:    fh.Filename,
		}
	}

	log := h.log.With().Str("quote_id", id.String()).Str("request_id", c.GetString("request_id")).Logger()
	result, err := h.deliveryService.ConfirmDelivery(c.Request.Context(), input, func(percent int) {
		log.Debug().Int("progress", percent).Msg("delivery progress")
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Delivery confirmed", result)
}

// Audit lists the delivery audit records of a quote
// @Summary Delivery Audit
// @Tags delivery
// @Security BearerAuth
// @Produce json
// @Param id path string true "Quote ID"
// @Success 200 {object} response.APIResponse
// @Router /quotes/{id}/delivery-audit [get]
func (h *DeliveryHandler) Audit(c *gin.Context) {
	id, ok := pathID(c, "quote")
	if !ok {
		return
	}

	records, err := h.deliveryService.ListDeliveryAudit(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Delivery audit retrieved successfully", records)
}

func (h *DeliveryHandler) tooLargeMessage() string {
	return fmt.Sprintf("Evidence exceeds the %d MB limit", h.maxUploadSize>>20)
}
