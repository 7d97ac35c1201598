package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Material is a printable substrate or finish priced per square metre.
type Material struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Code            string         `gorm:"size:50;uniqueIndex;not null;column:codigo" json:"codigo"`
	Name            string         `gorm:"size:255;not null;column:nombre" json:"nombre"`
	BaseCostM2      int64          `gorm:"default:0;column:costo_base_m2" json:"costo_base_m2"`
	SuggestedMargin float64        `gorm:"type:decimal(5,2);default:0;column:margen_sugerido" json:"margen_sugerido"`
	BasePrice       int64          `gorm:"default:0;column:precio_venta_base" json:"precio_venta_base"`
	Datasheet       datatypes.JSON `gorm:"column:ficha_tecnica" json:"ficha_tecnica,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeSave normalises the material code.
func (m *Material) BeforeSave(tx *gorm.DB) error {
	m.Code = strings.ToUpper(strings.TrimSpace(m.Code))
	return nil
}

// BeforeCreate generates a UUID before creating a new material
func (m *Material) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

func (Material) TableName() string {
	return "materials"
}
