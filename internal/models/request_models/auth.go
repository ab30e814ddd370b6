package request_models

type SignUpRequest struct {
	// Kind is "creator" or "user"; the two account kinds live in
	// disjoint tables.
	Kind     string `json:"kind" binding:"required,oneof=creator user"`
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

type SignInRequest struct {
	Kind     string `json:"kind" binding:"required,oneof=creator user"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
