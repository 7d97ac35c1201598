package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Client is a company the shop quotes for.
type Client struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Company     string         `gorm:"size:255;not null;column:empresa" json:"empresa"`
	RUT         string         `gorm:"size:20;index;column:rut" json:"rut"`
	ContactName string         `gorm:"size:255;column:contacto_nombre" json:"contacto_nombre"`
	Email       *string        `gorm:"size:255" json:"email,omitempty"`
	Phone       *string        `gorm:"size:50" json:"phone,omitempty"`
	Address     *string        `gorm:"type:text" json:"address,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new client
func (c *Client) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

func (Client) TableName() string {
	return "clients"
}
