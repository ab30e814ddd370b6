package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"inzider/internal/models/db_models"
	"inzider/internal/models/request_models"
	"inzider/internal/services"
	"inzider/pkg/middleware"
	"inzider/pkg/utils"
)

type PurchaseController struct {
	purchaseService services.PurchaseServiceInterface
	accessService   services.AccessServiceInterface
}

func NewPurchaseController(
	purchaseService services.PurchaseServiceInterface,
	accessService services.AccessServiceInterface,
) *PurchaseController {
	return &PurchaseController{
		purchaseService: purchaseService,
		accessService:   accessService,
	}
}

// Create opens a purchase in the pending state; payment confirmation
// arrives later through UpdateStatus.
func (p *PurchaseController) Create(c *gin.Context) {
	var req request_models.CreatePurchaseRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	purchase, err := p.purchaseService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, purchase, "Purchase created successfully")
}

func (p *PurchaseController) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, utils.ErrNotFound)
		return
	}

	purchase, err := p.purchaseService.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, purchase, "Purchase fetched successfully")
}

// ListByUser returns the session account's own purchases. An explicit
// userId query is accepted only when it names the session account.
func (p *PurchaseController) ListByUser(c *gin.Context) {
	identity := middleware.IdentityFrom(c)
	if raw := c.Query("userId"); raw != "" {
		userID, err := uuid.Parse(raw)
		if err != nil {
			utils.RespondError(c, 400, "missing or invalid fields: userId")
			return
		}
		if userID != identity.AccountID {
			utils.HandleServiceError(c, utils.ErrForbidden)
			return
		}
	}

	purchases, err := p.purchaseService.ListByUser(c.Request.Context(), identity.AccountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, purchases, "Purchases fetched successfully")
}

func (p *PurchaseController) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, utils.ErrNotFound)
		return
	}

	var req request_models.UpdatePurchaseStatusRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	// Only the creator who owns the purchased content may drive its
	// purchase transitions; a buyer cannot complete their own payment.
	existing, err := p.purchaseService.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	ownerID, err := p.accessService.OwnerOf(c.Request.Context(), existing.ContentID, existing.ContentType)
	if err != nil {
		utils.HandleServiceError(c, utils.ErrDatabaseError)
		return
	}
	if ownerID == nil || *ownerID != middleware.IdentityFrom(c).AccountID {
		utils.HandleServiceError(c, utils.ErrForbidden)
		return
	}

	purchase, err := p.purchaseService.UpdateStatus(c.Request.Context(), id, db_models.PurchaseStatus(req.Status), req.ProviderTxnID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, purchase, "Purchase updated successfully")
}

func (p *PurchaseController) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, utils.ErrNotFound)
		return
	}

	if err := p.purchaseService.Delete(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Purchase deleted successfully")
}
