package response_models

type AccessDecision struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason"`
}

type IssueAccessResponse struct {
	AccessKey string `json:"accessKey"`
	ExpiresAt *int64 `json:"expiresAt,omitempty"`
}

// GrantSummary is what a successful verification returns; nothing in
// here distinguishes which field would have failed.
type GrantSummary struct {
	PackageID      string `json:"packageId"`
	PackageType    string `json:"packageType"`
	CreatorID      string `json:"creatorId"`
	ExpiresAt      *int64 `json:"expiresAt,omitempty"`
	LastAccessedAt *int64 `json:"lastAccessedAt,omitempty"`
}
