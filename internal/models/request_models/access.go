package request_models

type CheckAccessRequest struct {
	ContentID   string `json:"contentId" binding:"required,uuid"`
	ContentType string `json:"contentType" binding:"required,oneof=trip goto"`
}

type IssueAccessRequest struct {
	Email       string `json:"email" binding:"required,email"`
	PackageID   string `json:"packageId" binding:"required,uuid"`
	PackageType string `json:"packageType" binding:"required,oneof=trip goto"`
	CreatorID   string `json:"creatorId" binding:"required,uuid"`
	// ExpiresInHours overrides the default expiry window; 0 keeps the
	// default, a negative value issues an unbounded grant.
	ExpiresInHours int  `json:"expiresInHours"`
	SendEmail      bool `json:"sendEmail"`
}

type VerifyAccessRequest struct {
	Email     string `json:"email" binding:"required,email"`
	AccessKey string `json:"accessKey" binding:"required"`
	PackageID string `json:"packageId" binding:"required,uuid"`
}
