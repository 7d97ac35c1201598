package request

import "encoding/json"

// DiscountRuleRequest creates or replaces a volume discount rule.
// MaxArea 0 leaves the range open-ended.
type DiscountRuleRequest struct {
	Name            string  `json:"name" binding:"required,max=255"`
	MinArea         float64 `json:"min_area" binding:"min=0"`
	MaxArea         float64 `json:"max_area" binding:"min=0"`
	DiscountPercent float64 `json:"discount_percent" binding:"min=0,max=100"`
}

// ClientRequest creates or replaces a client
type ClientRequest struct {
	Company     string  `json:"company" binding:"required,max=255"`
	RUT         string  `json:"rut" binding:"max=20"`
	ContactName string  `json:"contact_name" binding:"max=255"`
	Email       *string `json:"email" binding:"omitempty,email"`
	Phone       *string `json:"phone" binding:"omitempty,max=50"`
	Address     *string `json:"address"`
}

// MaterialRequest creates or replaces a material
type MaterialRequest struct {
	Code            string          `json:"code" binding:"required,max=50"`
	Name            string          `json:"name" binding:"required,max=255"`
	BaseCostM2      int64           `json:"base_cost_m2" binding:"min=0"`
	SuggestedMargin float64         `json:"suggested_margin" binding:"min=0"`
	BasePrice       int64           `json:"base_price" binding:"min=0"`
	Datasheet       json.RawMessage `json:"datasheet" swaggertype:"object"`
}

// ListRequest carries page and search query parameters
type ListRequest struct {
	Search  string `form:"search"`
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
}
