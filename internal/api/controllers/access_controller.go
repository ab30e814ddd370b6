package controllers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"inzider/internal/models/db_models"
	"inzider/internal/models/request_models"
	"inzider/internal/models/response_models"
	"inzider/internal/services"
	"inzider/pkg/middleware"
	"inzider/pkg/utils"
)

type AccessController struct {
	accessService services.AccessServiceInterface
	grantService  services.PackageAccessServiceInterface
}

func NewAccessController(
	accessService services.AccessServiceInterface,
	grantService services.PackageAccessServiceInterface,
) *AccessController {
	return &AccessController{
		accessService: accessService,
		grantService:  grantService,
	}
}

// Check godoc
// @Summary Decide whether the session may view a piece of content
// @Tags Access
// @Accept json
// @Produce json
// @Param request body request_models.CheckAccessRequest true "Access check payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /access/check [post]
func (a *AccessController) Check(c *gin.Context) {
	var req request_models.CheckAccessRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	contentID, err := uuid.Parse(req.ContentID)
	if err != nil {
		utils.HandleServiceError(c, utils.ErrNotFound)
		return
	}

	identity := middleware.IdentityFrom(c)
	decision := a.accessService.MayView(c.Request.Context(), identity.AccountID, contentID, db_models.ContentType(req.ContentType))

	utils.RespondSuccess(c, response_models.AccessDecision{
		Allowed: decision.Allowed,
		Reason:  string(decision.Reason),
	}, "Access decision evaluated")
}

// IssueTest godoc
// @Summary Issue an emailed access key for a package
// @Tags Access
// @Accept json
// @Produce json
// @Param request body request_models.IssueAccessRequest true "Issue payload"
// @Success 201 {object} utils.APIResponse
// @Security BearerAuth
// @Router /access/issue-test [post]
func (a *AccessController) IssueTest(c *gin.Context) {
	var req request_models.IssueAccessRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	packageID, err := uuid.Parse(req.PackageID)
	if err != nil {
		utils.HandleServiceError(c, utils.ErrNotFound)
		return
	}
	creatorID, err := uuid.Parse(req.CreatorID)
	if err != nil {
		utils.HandleServiceError(c, utils.ErrNotFound)
		return
	}

	var ttl time.Duration
	if req.ExpiresInHours > 0 {
		ttl = time.Duration(req.ExpiresInHours) * time.Hour
	} else if req.ExpiresInHours < 0 {
		ttl = -1
	}

	grant, err := a.grantService.Issue(c.Request.Context(), services.IssueGrantInput{
		Email:       req.Email,
		PackageID:   packageID,
		PackageType: db_models.ContentType(req.PackageType),
		CreatorID:   creatorID,
		TTL:         ttl,
		SendEmail:   req.SendEmail,
	})
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, response_models.IssueAccessResponse{
		AccessKey: grant.AccessKey,
		ExpiresAt: grant.ExpiresAt,
	}, "Access key issued")
}

// Verify godoc
// @Summary Verify an emailed access key
// @Description Returns a grant summary on success; every failure mode
// @Description answers with the same generic 403.
// @Tags Access
// @Accept json
// @Produce json
// @Param request body request_models.VerifyAccessRequest true "Verify payload"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /access/verify [post]
func (a *AccessController) Verify(c *gin.Context) {
	var req request_models.VerifyAccessRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	packageID, err := uuid.Parse(req.PackageID)
	if err != nil {
		// Same shape as any other verification failure.
		utils.HandleServiceError(c, utils.ErrAccessDenied)
		return
	}

	grant, err := a.grantService.Verify(c.Request.Context(), req.Email, req.AccessKey, packageID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.GrantSummary{
		PackageID:      grant.PackageID.String(),
		PackageType:    string(grant.PackageType),
		CreatorID:      grant.CreatorID.String(),
		ExpiresAt:      grant.ExpiresAt,
		LastAccessedAt: grant.LastAccessedAt,
	}, "Access verified")
}
