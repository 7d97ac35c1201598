package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/pluscontrol/plus-control-api/internal/domain/enum"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ActionDeliveryCompleted is the only audited action so far.
const ActionDeliveryCompleted = "delivery_completed"

// ErrAuditImmutable is returned when something tries to rewrite an audit record.
var ErrAuditImmutable = errors.New("delivery audit records are append-only")

// FinancialSnapshot freezes the money side of a quote at delivery time.
type FinancialSnapshot struct {
	OrderTotal    int64              `gorm:"not null" json:"order_total"`
	Balance       int64              `gorm:"not null" json:"balance"`
	PaymentStatus enum.PaymentStatus `gorm:"size:20;not null" json:"payment_status"`
}

// OperationalChecklist records what the operator confirmed on hand-over.
type OperationalChecklist struct {
	PhysicalCheck  bool `gorm:"not null" json:"physical_check"`
	PhotoEvidence  bool `gorm:"not null" json:"photo_evidence"`
	ClientNotified bool `gorm:"not null" json:"client_notified"`
}

// DeliveryAuditRecord is written once, in the same transaction that marks a quote Delivered.
type DeliveryAuditRecord struct {
	ID           uuid.UUID            `gorm:"type:uuid;primary_key" json:"id"`
	QuoteID      uuid.UUID            `gorm:"type:uuid;not null;index" json:"quote_id"`
	Action       string               `gorm:"size:50;not null" json:"action"`
	PerformedBy  uuid.UUID            `gorm:"type:uuid;not null" json:"performed_by"`
	PerformedAt  time.Time            `gorm:"not null" json:"performed_at"`
	Financial    FinancialSnapshot    `gorm:"embedded;embeddedPrefix:snapshot_" json:"financial_snapshot"`
	Checklist    OperationalChecklist `gorm:"embedded;embeddedPrefix:checklist_" json:"operational_checklist"`
	EvidenceURL  string               `gorm:"type:text;not null" json:"evidence_url"`
	EvidencePath string               `gorm:"size:512;index" json:"evidence_path"`
	Notes        *string              `gorm:"type:text" json:"notes,omitempty"`
	Metadata     datatypes.JSON       `json:"metadata,omitempty"`
	CreatedAt    time.Time            `json:"created_at"`
}

func (a *DeliveryAuditRecord) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.Action == "" {
		a.Action = ActionDeliveryCompleted
	}
	return nil
}

func (a *DeliveryAuditRecord) BeforeUpdate(tx *gorm.DB) error {
	return ErrAuditImmutable
}

func (a *DeliveryAuditRecord) BeforeDelete(tx *gorm.DB) error {
	return ErrAuditImmutable
}

func (DeliveryAuditRecord) TableName() string {
	return "delivery_audit_log"
}
