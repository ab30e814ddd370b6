package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"inzider/internal/models/db_models"
	"inzider/internal/models/request_models"
	"inzider/internal/services"
	"inzider/pkg/utils"
)

type RefundController struct {
	refundService services.RefundServiceInterface
}

func NewRefundController(refundService services.RefundServiceInterface) *RefundController {
	return &RefundController{refundService: refundService}
}

func (r *RefundController) Create(c *gin.Context) {
	var req request_models.CreateRefundRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	refund, err := r.refundService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, refund, "Refund requested successfully")
}

func (r *RefundController) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, utils.ErrNotFound)
		return
	}

	refund, err := r.refundService.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, refund, "Refund fetched successfully")
}

func (r *RefundController) ListByPurchase(c *gin.Context) {
	purchaseID, err := uuid.Parse(c.Query("purchaseId"))
	if err != nil {
		utils.RespondError(c, 400, "missing or invalid fields: purchaseId")
		return
	}

	refunds, err := r.refundService.ListByPurchase(c.Request.Context(), purchaseID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, refunds, "Refunds fetched successfully")
}

func (r *RefundController) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, utils.ErrNotFound)
		return
	}

	var req request_models.UpdateRefundStatusRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	refund, err := r.refundService.UpdateStatus(c.Request.Context(), id, db_models.RefundStatus(req.Status))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, refund, "Refund updated successfully")
}

func (r *RefundController) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, utils.ErrNotFound)
		return
	}

	if err := r.refundService.Delete(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Refund deleted successfully")
}
