package db_models

type Creator struct {
	BaseModel
	Name         string
	Email        string `gorm:"uniqueIndex"`
	Username     string `gorm:"uniqueIndex"`
	PasswordHash string

	Description        string
	ImageURL           string
	BackgroundImageURL string
	Instagram          string
	OnboardingComplete bool

	// Linked Stripe Connect account; empty until the creator finishes
	// the OAuth connect flow.
	StripeAccountID string `gorm:"index"`

	Trips []Trip `gorm:"foreignKey:CreatorID"`
	GoTos []GoTo `gorm:"foreignKey:CreatorID"`
}
