package controllers

import (
	"github.com/gin-gonic/gin"

	"formflow/internal/services"
	"formflow/pkg/utils"
)

// PagesController serves the public page routes. Each returns the same
// render-ready view model shaped for its surface; availability problems come
// back as a status payload, not an HTTP error, so the client can render the
// matching status page.
type PagesController struct {
	formService services.FormServiceInterface
	flowService services.FlowServiceInterface
}

func NewPagesController(
	formService services.FormServiceInterface,
	flowService services.FlowServiceInterface,
) *PagesController {
	return &PagesController{formService: formService, flowService: flowService}
}

// RenderByID handles GET /:formId.
func (p *PagesController) RenderByID(c *gin.Context) {
	view, err := p.formService.GetFormView(c.Request.Context(), c.Param("formId"), services.SurfacePage)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, view, "")
}

// RenderBySlug handles GET /f/:slug.
func (p *PagesController) RenderBySlug(c *gin.Context) {
	view, err := p.formService.GetFormView(c.Request.Context(), c.Param("slug"), services.SurfacePage)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, view, "")
}

// RenderEmbed handles GET /embed/:formId.
func (p *PagesController) RenderEmbed(c *gin.Context) {
	view, err := p.formService.GetFormView(c.Request.Context(), c.Param("formId"), services.SurfaceEmbed)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, view, "")
}

// RenderVote handles GET /vote/:slug, the progressive flow surface.
func (p *PagesController) RenderVote(c *gin.Context) {
	view, err := p.flowService.View(c.Request.Context(), c.Param("slug"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, view, "")
}

// RenderSuccess handles GET /f/:slug/success.
func (p *PagesController) RenderSuccess(c *gin.Context) {
	view, err := p.formService.GetFormView(c.Request.Context(), c.Param("slug"), services.SurfacePage)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{
		"form_id": view.FormID,
		"slug":    view.Slug,
		"title":   view.Title,
	}, "Submission received")
}
