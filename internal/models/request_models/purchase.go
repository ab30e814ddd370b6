package request_models

type CreatePurchaseRequest struct {
	UserID      string `json:"userId" binding:"required,uuid"`
	ContentID   string `json:"contentId" binding:"required,uuid"`
	ContentType string `json:"contentType" binding:"required,oneof=trip goto"`
	AmountMinor int64  `json:"amountMinor" binding:"required"`
	Currency    string `json:"currency" binding:"required"`
}

type UpdatePurchaseStatusRequest struct {
	Status        string `json:"status" binding:"required,oneof=pending completed failed refunded"`
	ProviderTxnID string `json:"providerTxnId"`
}

type CreateDiscountRequest struct {
	Code           string  `json:"code" binding:"required"`
	CreatorID      string  `json:"creatorId" binding:"required,uuid"`
	ContentID      *string `json:"contentId"`
	ContentType    string  `json:"contentType"`
	PercentOff     int64   `json:"percentOff"`
	AmountOffMinor int64   `json:"amountOffMinor"`
	ExpiresAt      *int64  `json:"expiresAt"`
}

type UpdateDiscountRequest struct {
	Active    *bool  `json:"active"`
	ExpiresAt *int64 `json:"expiresAt"`
}

type CreateRefundRequest struct {
	PurchaseID  string `json:"purchaseId" binding:"required,uuid"`
	Reason      string `json:"reason"`
	AmountMinor int64  `json:"amountMinor"`
}

type UpdateRefundStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=requested approved rejected processed"`
}
