package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"inzider/internal/models/response_models"
	"inzider/internal/services"
	"inzider/pkg/utils"
)

type MediaController struct {
	mediaService services.MediaServiceInterface
}

func NewMediaController(mediaService services.MediaServiceInterface) *MediaController {
	return &MediaController{mediaService: mediaService}
}

// Upload accepts a multipart file, stores it under a random unique key
// and answers with the public URL.
func (m *MediaController) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "missing or invalid fields: file")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Could not read uploaded file")
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	object, err := m.mediaService.Upload(c.Request.Context(), fileHeader.Filename, contentType, file)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, response_models.MediaUploadResponse{
		Key: object.Key,
		URL: object.URL,
	}, "File uploaded successfully")
}

// Proxy streams a stored object back with permissive CORS and a
// one-year cache directive, so gated pages can embed media without
// touching the bucket directly.
func (m *MediaController) Proxy(c *gin.Context) {
	key := c.Param("key")
	media, err := m.mediaService.Get(c.Request.Context(), key)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	defer media.Body.Close()

	c.Header("Access-Control-Allow-Origin", "*")
	c.Header("Cache-Control", "public, max-age=31536000, immutable")
	if media.ContentLength > 0 {
		c.Header("Content-Length", strconv.FormatInt(media.ContentLength, 10))
	}

	c.DataFromReader(http.StatusOK, media.ContentLength, media.ContentType, media.Body, nil)
}

func (m *MediaController) Delete(c *gin.Context) {
	key := c.Param("key")
	if err := m.mediaService.Delete(c.Request.Context(), key); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "File deleted successfully")
}
