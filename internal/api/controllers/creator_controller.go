package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"inzider/internal/models/request_models"
	"inzider/internal/services"
	"inzider/pkg/utils"
)

type CreatorController struct {
	creatorService services.CreatorServiceInterface
}

func NewCreatorController(creatorService services.CreatorServiceInterface) *CreatorController {
	return &CreatorController{creatorService: creatorService}
}

func (cc *CreatorController) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, utils.ErrAccountNotFound)
		return
	}

	creator, err := cc.creatorService.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, creator, "Creator fetched successfully")
}

func (cc *CreatorController) List(c *gin.Context) {
	creators, err := cc.creatorService.List(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, creators, "Creators fetched successfully")
}

func (cc *CreatorController) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, utils.ErrAccountNotFound)
		return
	}

	var req request_models.UpdateCreatorRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	creator, err := cc.creatorService.Update(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, creator, "Creator updated successfully")
}

func (cc *CreatorController) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, utils.ErrAccountNotFound)
		return
	}

	if err := cc.creatorService.Delete(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Creator deleted successfully")
}
