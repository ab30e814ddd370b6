package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"inzider/internal/models/request_models"
	"inzider/internal/services"
	"inzider/pkg/utils"
)

type DiscountController struct {
	discountService services.DiscountServiceInterface
}

func NewDiscountController(discountService services.DiscountServiceInterface) *DiscountController {
	return &DiscountController{discountService: discountService}
}

func (d *DiscountController) Create(c *gin.Context) {
	var req request_models.CreateDiscountRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	discount, err := d.discountService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, discount, "Discount created successfully")
}

func (d *DiscountController) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, utils.ErrNotFound)
		return
	}

	discount, err := d.discountService.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, discount, "Discount fetched successfully")
}

// List resolves by code when ?code= is given, otherwise lists a
// creator's discounts.
func (d *DiscountController) List(c *gin.Context) {
	if code := c.Query("code"); code != "" {
		discount, err := d.discountService.GetByCode(c.Request.Context(), code)
		if err != nil {
			utils.HandleServiceError(c, err)
			return
		}
		utils.RespondSuccess(c, discount, "Discount fetched successfully")
		return
	}

	creatorID, err := uuid.Parse(c.Query("creatorId"))
	if err != nil {
		utils.RespondError(c, 400, "missing or invalid fields: creatorId")
		return
	}

	discounts, err := d.discountService.ListByCreator(c.Request.Context(), creatorID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, discounts, "Discounts fetched successfully")
}

func (d *DiscountController) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, utils.ErrNotFound)
		return
	}

	var req request_models.UpdateDiscountRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	discount, err := d.discountService.Update(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, discount, "Discount updated successfully")
}

func (d *DiscountController) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, utils.ErrNotFound)
		return
	}

	if err := d.discountService.Delete(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Discount deleted successfully")
}
