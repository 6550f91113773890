package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"formflow/internal/models/request_models"
	"formflow/internal/services"
	"formflow/pkg/utils"
)

type FormsController struct {
	formService services.FormServiceInterface
}

func NewFormsController(formService services.FormServiceInterface) *FormsController {
	return &FormsController{formService: formService}
}

// GetForm godoc
// @Summary Fetch a form definition
// @Description Returns the render-ready view model for a form, or its availability status
// @Tags Forms
// @Produce json
// @Param slug path string true "Form slug or id"
// @Success 200 {object} utils.APIResponse
// @Router /api/forms/{slug} [get]
func (f *FormsController) GetForm(c *gin.Context) {
	view, err := f.formService.GetFormView(c.Request.Context(), c.Param("slug"), services.SurfacePage)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, view, "Form fetched successfully")
}

// SubmitForm godoc
// @Summary Submit a form response
// @Tags Forms
// @Accept json
// @Produce json
// @Param slug path string true "Form slug or id"
// @Param request body request_models.SubmitFormRequest true "Submission payload"
// @Success 200 {object} utils.APIResponse
// @Router /api/forms/{slug}/submit [post]
func (f *FormsController) SubmitForm(c *gin.Context) {
	var req request_models.SubmitFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	surface := c.DefaultQuery("surface", services.SurfacePage)
	result, err := f.formService.SubmitForm(c.Request.Context(), c.Param("slug"), surface, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	if len(result.Errors) > 0 {
		utils.RespondSuccess(c, result, "Validation failed")
		return
	}
	utils.RespondSuccess(c, result, "Submission stored successfully")
}

// ListSubmissions godoc
// @Summary List a form's submissions
// @Description Requires the form's manage key
// @Tags Forms
// @Accept json
// @Produce json
// @Param slug path string true "Form slug"
// @Success 200 {object} utils.APIResponse
// @Router /api/forms/{slug}/submissions [post]
func (f *FormsController) ListSubmissions(c *gin.Context) {
	var req request_models.ListSubmissionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "25"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size")
		return
	}

	result, err := f.formService.ListSubmissions(c.Request.Context(), c.Param("slug"), req.ManageKey, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, result, "Submissions fetched successfully")
}
