package controllers

import (
	"github.com/gin-gonic/gin"

	"inzider/internal/models/request_models"
	"inzider/internal/models/response_models"
	"inzider/internal/services"
	"inzider/pkg/utils"
)

type AuthController struct {
	authService services.AuthServiceInterface
}

func NewAuthController(authService services.AuthServiceInterface) *AuthController {
	return &AuthController{authService: authService}
}

// SignUp godoc
// @Summary Register a creator or user account
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.SignUpRequest true "Sign up payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /auth/signup [post]
func (a *AuthController) SignUp(c *gin.Context) {
	var req request_models.SignUpRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	token, err := a.authService.SignUp(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, response_models.AuthTokenResponse{Token: token, Kind: req.Kind}, "Account created successfully")
}

// SignIn godoc
// @Summary Authenticate and return a session token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.SignInRequest true "Sign in payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /auth/signin [post]
func (a *AuthController) SignIn(c *gin.Context) {
	var req request_models.SignInRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	token, err := a.authService.SignIn(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.AuthTokenResponse{Token: token, Kind: req.Kind}, "Signed in successfully")
}
