package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"inzider/internal/models/response_models"
	"inzider/internal/services"
	"inzider/pkg/middleware"
	"inzider/pkg/utils"
)

type StripeController struct {
	stripeService services.StripeServiceInterface
}

func NewStripeController(stripeService services.StripeServiceInterface) *StripeController {
	return &StripeController{stripeService: stripeService}
}

// Connect answers with the authorize URL the connect button should
// point the creator at.
func (s *StripeController) Connect(c *gin.Context) {
	identity := middleware.IdentityFrom(c)
	url := s.stripeService.ConnectURL(identity.AccountID)
	utils.RespondSuccess(c, response_models.ConnectURLResponse{URL: url}, "Connect URL created")
}

// Callback exchanges the OAuth code for an account id and persists it
// on the creator carried in the state parameter.
func (s *StripeController) Callback(c *gin.Context) {
	code := c.Query("code")
	state := c.Query("state")
	if code == "" || state == "" {
		utils.RespondError(c, http.StatusBadRequest, "missing or invalid fields: code, state")
		return
	}

	creatorID, err := uuid.Parse(state)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "missing or invalid fields: state")
		return
	}

	accountID, err := s.stripeService.HandleCallback(c.Request.Context(), creatorID, code)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.ConnectCallbackResponse{StripeAccountID: accountID}, "Stripe account connected")
}

func (s *StripeController) Disconnect(c *gin.Context) {
	identity := middleware.IdentityFrom(c)
	if err := s.stripeService.Disconnect(c.Request.Context(), identity.AccountID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Stripe account disconnected")
}
