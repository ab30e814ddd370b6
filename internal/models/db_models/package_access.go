package db_models

import "github.com/google/uuid"

// PackageAccess is an out-of-band grant of viewing rights: the buyer
// gets an emailed key instead of an account. Email is normalized to
// lowercase at issuance; verification compares case-insensitively.
type PackageAccess struct {
	BaseModel
	Email       string      `gorm:"index"`
	AccessKey   string      `gorm:"uniqueIndex"`
	PackageID   uuid.UUID   `gorm:"type:uuid;index"`
	PackageType ContentType `gorm:"size:8"`
	CreatorID   uuid.UUID   `gorm:"type:uuid;index"`

	// Nil means the grant never expires.
	ExpiresAt      *int64
	LastAccessedAt *int64
	IsActive       bool `gorm:"default:true"`
}
