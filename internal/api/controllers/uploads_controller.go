package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"formflow/internal/services"
	"formflow/pkg/utils"
)

type UploadsController struct {
	uploadService services.UploadServiceInterface
}

func NewUploadsController(uploadService services.UploadServiceInterface) *UploadsController {
	return &UploadsController{uploadService: uploadService}
}

// Upload godoc
// @Summary Upload a file for a form field
// @Tags Forms
// @Accept multipart/form-data
// @Produce json
// @Param slug path string true "Form slug"
// @Param field_id formData string true "Field id"
// @Param file formData file true "File"
// @Success 200 {object} utils.APIResponse
// @Router /api/forms/{slug}/upload [post]
func (u *UploadsController) Upload(c *gin.Context) {
	fieldID := c.PostForm("field_id")
	if fieldID == "" {
		utils.RespondError(c, http.StatusBadRequest, "field_id is required")
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "file is required")
		return
	}

	src, err := header.Open()
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "could not read file")
		return
	}
	defer src.Close()

	result, err := u.uploadService.Upload(
		c.Request.Context(),
		c.Param("slug"),
		fieldID,
		header.Filename,
		header.Header.Get("Content-Type"),
		header.Size,
		src,
	)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, result, "File uploaded successfully")
}
