package db_models

import "github.com/google/uuid"

type Discount struct {
	BaseModel
	Code      string    `gorm:"uniqueIndex"`
	CreatorID uuid.UUID `gorm:"type:uuid;index"`

	// Optional scope: nil content fields mean the code applies to all
	// of the creator's content.
	ContentID   *uuid.UUID  `gorm:"type:uuid"`
	ContentType ContentType `gorm:"size:8"`

	PercentOff     int64
	AmountOffMinor int64

	Active    bool `gorm:"default:true"`
	ExpiresAt *int64
}
