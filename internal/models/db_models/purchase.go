package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type PurchaseStatus string

const (
	PurchaseStatusPending   PurchaseStatus = "pending"
	PurchaseStatusCompleted PurchaseStatus = "completed"
	PurchaseStatusFailed    PurchaseStatus = "failed"
	PurchaseStatusRefunded  PurchaseStatus = "refunded"
)

type Purchase struct {
	BaseModel
	UserID      uuid.UUID   `gorm:"type:uuid;index"`
	ContentID   uuid.UUID   `gorm:"type:uuid;index"`
	ContentType ContentType `gorm:"size:8;index"`

	AmountMinor int64
	Currency    string         `gorm:"size:3"`
	Status      PurchaseStatus `gorm:"size:16;index"`

	Provider      string
	ProviderTxnID string `gorm:"index"`

	PaidAt     *int64
	RefundedAt *int64

	// Raw provider receipts and webhook payloads for traceability.
	Receipt  datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
	Metadata datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	User User `gorm:"foreignKey:UserID"`
}
