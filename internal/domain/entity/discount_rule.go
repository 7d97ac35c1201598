package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/pluscontrol/plus-control-api/internal/domain/finance"
	"gorm.io/gorm"
)

// DiscountRule grants a percentage off when the ordered area falls in [MinArea, MaxArea] m2.
// MaxArea zero leaves the range open-ended.
type DiscountRule struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name            string    `gorm:"size:255;not null" json:"name"`
	MinArea         float64   `gorm:"not null;index" json:"min_area"`
	MaxArea         float64   `gorm:"not null" json:"max_area"`
	DiscountPercent float64   `gorm:"type:decimal(5,2);not null" json:"discount_percent"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (r *DiscountRule) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

func (DiscountRule) TableName() string {
	return "discount_rules"
}

func (r DiscountRule) Range() finance.DiscountRange {
	return finance.DiscountRange{
		Name:    r.Name,
		MinArea: r.MinArea,
		MaxArea: r.MaxArea,
		Percent: r.DiscountPercent,
	}
}

// DiscountRanges converts catalog rules, preserving order.
func DiscountRanges(rules []DiscountRule) []finance.DiscountRange {
	out := make([]finance.DiscountRange, len(rules))
	for i, r := range rules {
		out[i] = r.Range()
	}
	return out
}
