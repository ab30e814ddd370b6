package db_models

import "github.com/google/uuid"

type RefundStatus string

const (
	RefundStatusRequested RefundStatus = "requested"
	RefundStatusApproved  RefundStatus = "approved"
	RefundStatusRejected  RefundStatus = "rejected"
	RefundStatusProcessed RefundStatus = "processed"
)

type Refund struct {
	BaseModel
	PurchaseID uuid.UUID `gorm:"type:uuid;index"`

	Status      RefundStatus `gorm:"size:16;index"`
	Reason      string
	AmountMinor int64

	Purchase Purchase `gorm:"foreignKey:PurchaseID"`
}
