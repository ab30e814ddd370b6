package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"inzider/internal/models/request_models"
	"inzider/internal/services"
	"inzider/pkg/utils"
)

type TripController struct {
	tripService services.TripServiceInterface
}

func NewTripController(tripService services.TripServiceInterface) *TripController {
	return &TripController{tripService: tripService}
}

func (t *TripController) Create(c *gin.Context) {
	var req request_models.CreateTripRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	trip, err := t.tripService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, trip, "Trip created successfully")
}

func (t *TripController) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, utils.ErrNotFound)
		return
	}

	trip, err := t.tripService.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, trip, "Trip fetched successfully")
}

// List returns launched trips, or every trip for one creator when the
// creatorId query parameter is present.
func (t *TripController) List(c *gin.Context) {
	if creatorParam := c.Query("creatorId"); creatorParam != "" {
		creatorID, err := uuid.Parse(creatorParam)
		if err != nil {
			utils.HandleServiceError(c, utils.ErrNotFound)
			return
		}
		trips, err := t.tripService.ListByCreator(c.Request.Context(), creatorID)
		if err != nil {
			utils.HandleServiceError(c, err)
			return
		}
		utils.RespondSuccess(c, trips, "Trips fetched successfully")
		return
	}

	trips, err := t.tripService.ListLaunched(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, trips, "Trips fetched successfully")
}

func (t *TripController) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, utils.ErrNotFound)
		return
	}

	var req request_models.UpdateTripRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	trip, err := t.tripService.Update(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, trip, "Trip updated successfully")
}

func (t *TripController) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, utils.ErrNotFound)
		return
	}

	if err := t.tripService.Delete(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Trip deleted successfully")
}
