package response_models

type ConnectURLResponse struct {
	URL string `json:"url"`
}

type ConnectCallbackResponse struct {
	StripeAccountID string `json:"stripeAccountId"`
}

type MediaUploadResponse struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

type AuthTokenResponse struct {
	Token string `json:"token"`
	Kind  string `json:"kind"`
}
