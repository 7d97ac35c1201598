package request

import "github.com/google/uuid"

// QuoteItemRequest represents a line item in a quote request
type QuoteItemRequest struct {
	MaterialID  *uuid.UUID `json:"material_id"`
	ProductName string     `json:"product_name" binding:"required,max=255"`
	Description string     `json:"description"`
	Quantity    float64    `json:"quantity"`
	UnitPrice   int64      `json:"unit_price"`
	UnitCost    int64      `json:"unit_cost"`
	Width       float64    `json:"width"`
	Height      float64    `json:"height"`
	ShopNotes   string     `json:"shop_notes"`
}

// QuoteRequest is the body of quote create and full update.
// DueDate is a calendar date (YYYY-MM-DD).
type QuoteRequest struct {
	ClientID         *uuid.UUID         `json:"client_id"`
	ClientName       string             `json:"client_name" binding:"max=255"`
	ClientRUT        string             `json:"client_rut" binding:"max=20"`
	ClientContact    string             `json:"client_contact" binding:"max=255"`
	DiscountPercent  float64            `json:"discount_percent"`
	ApplyTax         *bool              `json:"apply_tax"`
	DepositPaid      int64              `json:"deposit_paid"`
	Validity         string             `json:"validity" binding:"max=100"`
	PaymentCondition string             `json:"payment_condition" binding:"max=100"`
	Notes            *string            `json:"notes"`
	DueDate          *string            `json:"due_date"`
	Items            []QuoteItemRequest `json:"items" binding:"required,min=1,dive"`
}

// PreviewRequest is an unsaved quote sent for a totals preview
type PreviewRequest struct {
	DiscountPercent float64            `json:"discount_percent"`
	ApplyTax        *bool              `json:"apply_tax"`
	DepositPaid     int64              `json:"deposit_paid"`
	Items           []QuoteItemRequest `json:"items" binding:"dive"`
}

// QuoteFilterRequest represents quote list filters
type QuoteFilterRequest struct {
	Search    string     `form:"search"`
	Status    string     `form:"status"`
	ClientID  *uuid.UUID `form:"client_id"`
	SortBy    string     `form:"sort_by"`
	SortOrder string     `form:"sort_order"`
	Page      int        `form:"page"`
	PerPage   int        `form:"per_page"`
}

// StatusRequest asks for a status change. Status accepts the name,
// the Spanish label or the numeric code.
type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// PaymentRequest registers money received from the client
type PaymentRequest struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}
