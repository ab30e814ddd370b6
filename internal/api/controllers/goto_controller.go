package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"inzider/internal/models/request_models"
	"inzider/internal/services"
	"inzider/pkg/utils"
)

type GoToController struct {
	goToService services.GoToServiceInterface
}

func NewGoToController(goToService services.GoToServiceInterface) *GoToController {
	return &GoToController{goToService: goToService}
}

// Create godoc
// @Summary Create a GoTo
// @Description Titles are unique per creator; a reused title answers 409.
// @Tags GoTos
// @Accept json
// @Produce json
// @Param request body request_models.CreateGoToRequest true "GoTo payload"
// @Success 201 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /gotos [post]
func (g *GoToController) Create(c *gin.Context) {
	var req request_models.CreateGoToRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	goTo, err := g.goToService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, goTo, "GoTo created successfully")
}

func (g *GoToController) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, utils.ErrNotFound)
		return
	}

	goTo, err := g.goToService.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, goTo, "GoTo fetched successfully")
}

func (g *GoToController) List(c *gin.Context) {
	if creatorParam := c.Query("creatorId"); creatorParam != "" {
		creatorID, err := uuid.Parse(creatorParam)
		if err != nil {
			utils.HandleServiceError(c, utils.ErrNotFound)
			return
		}
		goTos, err := g.goToService.ListByCreator(c.Request.Context(), creatorID)
		if err != nil {
			utils.HandleServiceError(c, err)
			return
		}
		utils.RespondSuccess(c, goTos, "GoTos fetched successfully")
		return
	}

	goTos, err := g.goToService.ListLaunched(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, goTos, "GoTos fetched successfully")
}

func (g *GoToController) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, utils.ErrNotFound)
		return
	}

	var req request_models.UpdateGoToRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	goTo, err := g.goToService.Update(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, goTo, "GoTo updated successfully")
}

func (g *GoToController) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, utils.ErrNotFound)
		return
	}

	if err := g.goToService.Delete(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "GoTo deleted successfully")
}
