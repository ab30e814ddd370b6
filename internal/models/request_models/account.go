package request_models

type UpdateCreatorRequest struct {
	Name               *string `json:"name"`
	Username           *string `json:"username"`
	Description        *string `json:"description"`
	ImageURL           *string `json:"imageUrl"`
	BackgroundImageURL *string `json:"backgroundImageUrl"`
	Instagram          *string `json:"instagram"`
	OnboardingComplete *bool   `json:"onboardingComplete"`
}

type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Username *string `json:"username"`
}
