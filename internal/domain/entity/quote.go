package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/pluscontrol/plus-control-api/internal/domain/enum"
	"github.com/pluscontrol/plus-control-api/internal/domain/finance"
	"gorm.io/gorm"
)

// Quote is a price quotation that, once accepted, becomes a production order.
// Only inputs are persisted; totals are always recomputed from them.
type Quote struct {
	ID               uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	Folio            string           `gorm:"size:50;uniqueIndex;not null" json:"folio"`
	CreatedBy        uuid.UUID        `gorm:"type:uuid;index" json:"created_by"`
	ClientID         *uuid.UUID       `gorm:"type:uuid;index" json:"client_id,omitempty"`
	ClientName       string           `gorm:"size:255" json:"client_name"`
	ClientRUT        string           `gorm:"size:20;column:client_rut" json:"client_rut"`
	ClientContact    string           `gorm:"size:255" json:"client_contact"`
	DiscountPercent  float64          `gorm:"type:decimal(5,2);default:0" json:"discount_percent"`
	ApplyTax         bool             `gorm:"not null" json:"apply_tax"`
	DepositPaid      int64            `gorm:"default:0" json:"deposit_paid"`
	Status           enum.QuoteStatus `gorm:"default:0;index" json:"status"`
	Validity         string           `gorm:"size:50" json:"validity"`
	PaymentCondition string           `gorm:"size:100" json:"payment_condition"`
	Notes            *string          `gorm:"type:text" json:"notes,omitempty"`
	DueDate          *time.Time       `gorm:"column:due_date" json:"due_date,omitempty"`
	DeliveredAt      *time.Time       `json:"delivered_at,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
	DeletedAt        gorm.DeletedAt   `gorm:"index" json:"-"`

	Items []QuoteItem `gorm:"foreignKey:QuoteID" json:"items"`
}

// BeforeCreate generates a UUID before creating a new quote
func (q *Quote) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}

func (Quote) TableName() string {
	return "quotes"
}

// LineInputs returns the priced view of the items, in position order.
func (q *Quote) LineInputs() []finance.LineInput {
	out := make([]finance.LineInput, len(q.Items))
	for i, it := range q.Items {
		out[i] = it.LineInput()
	}
	return out
}

// AreaInputs returns the physical view of the items.
func (q *Quote) AreaInputs() []finance.AreaInput {
	out := make([]finance.AreaInput, len(q.Items))
	for i, it := range q.Items {
		out[i] = finance.AreaInput{Width: it.Width, Height: it.Height, Quantity: it.Quantity}
	}
	return out
}

// Totals runs the aggregator over the quote's current inputs.
func (q *Quote) Totals(calc *finance.Calculator) finance.Totals {
	return calc.QuoteTotals(q.LineInputs(), q.DiscountPercent, q.DepositPaid, q.ApplyTax)
}

// QuoteItem is one product or material line of a quote.
type QuoteItem struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	QuoteID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"quote_id"`
	Position    int        `gorm:"not null;default:0" json:"position"`
	MaterialID  *uuid.UUID `gorm:"type:uuid;index" json:"material_id,omitempty"`
	ProductName string     `gorm:"size:255;not null" json:"product_name"`
	Description string     `gorm:"type:text" json:"description"`
	Quantity    float64    `gorm:"not null" json:"quantity"`
	UnitPrice   int64      `gorm:"not null" json:"unit_price"`
	UnitCost    int64      `gorm:"default:0" json:"unit_cost"`
	Width       float64    `gorm:"default:0" json:"width"`
	Height      float64    `gorm:"default:0" json:"height"`
	ShopNotes   string     `gorm:"type:text" json:"shop_notes"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (qi *QuoteItem) BeforeCreate(tx *gorm.DB) error {
	if qi.ID == uuid.Nil {
		qi.ID = uuid.New()
	}
	return nil
}

func (QuoteItem) TableName() string {
	return "quote_items"
}

func (qi QuoteItem) LineInput() finance.LineInput {
	return finance.LineInput{
		Quantity:  qi.Quantity,
		UnitPrice: float64(qi.UnitPrice),
		UnitCost:  float64(qi.UnitCost),
	}
}
