package handler

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pluscontrol/plus-control-api/internal/presentation/http/dto/response"
	"github.com/pluscontrol/plus-control-api/pkg/pagination"
)

const dateLayout = "2006-01-02"

// GetUserID extracts the user ID from the Gin context
func GetUserID(c *gin.Context) *uuid.UUID {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		return nil
	}
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return nil
	}
	return &userID
}

// GetUserRole extracts the user role from the Gin context
func GetUserRole(c *gin.Context) string {
	return c.GetString("user_role")
}

// pathID parses the :id parameter, writing a 400 when it is not a UUID.
func pathID(c *gin.Context, what string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid "+what+" ID")
		return uuid.Nil, false
	}
	return id, true
}

func pageParams(page, perPage int) *pagination.PaginationParams {
	p := &pagination.PaginationParams{Page: page, PerPage: perPage}
	p.Validate()
	return p
}

// parseDate reads a YYYY-MM-DD date. A full RFC 3339 timestamp is accepted too.
func parseDate(v string) (*time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil, nil
	}
	if t, err := time.Parse(dateLayout, v); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
