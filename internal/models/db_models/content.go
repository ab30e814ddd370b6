package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ContentType discriminates the two sellable package kinds. Access
// semantics are identical for both; only the metadata shape differs.
type ContentType string

const (
	ContentTypeTrip ContentType = "trip"
	ContentTypeGoTo ContentType = "goto"
)

type ContentStatus string

const (
	StatusDraft  ContentStatus = "draft"
	StatusLaunch ContentStatus = "launch"
)

type Trip struct {
	BaseModel
	CreatorID uuid.UUID     `gorm:"type:uuid;index"`
	Status    ContentStatus `gorm:"size:16;default:'draft';index"`

	Title       string
	Description string
	Location    string
	ImageURL    string

	// Price in minor units (999 = $9.99), ISO 4217 currency.
	PriceMinor int64
	Currency   string `gorm:"size:3"`

	StartDate *int64
	EndDate   *int64

	AvgRating   float64
	RatingCount int64
	BuyerCount  int64

	// Day-by-day itinerary and gallery, kept as a document the way the
	// authoring UI produced it.
	Days  datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
	Media datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
}

type GoTo struct {
	BaseModel
	CreatorID uuid.UUID     `gorm:"type:uuid;index;uniqueIndex:idx_gotos_creator_title"`
	Status    ContentStatus `gorm:"size:16;default:'draft';index"`

	// A creator cannot reuse a GoTo title; the composite unique index
	// surfaces the duplicate as a 409 at the boundary.
	Title       string `gorm:"uniqueIndex:idx_gotos_creator_title"`
	Description string
	ImageURL    string

	PriceMinor int64
	Currency   string `gorm:"size:3"`

	AvgRating   float64
	RatingCount int64
	BuyerCount  int64

	Spots datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
	Media datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
}
