package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"formflow/internal/models/request_models"
	"formflow/internal/services"
	"formflow/pkg/utils"
)

type AnalyticsController struct {
	analyticsService services.AnalyticsServiceInterface
}

func NewAnalyticsController(analyticsService services.AnalyticsServiceInterface) *AnalyticsController {
	return &AnalyticsController{analyticsService: analyticsService}
}

// Record godoc
// @Summary Record a form analytics event
// @Description Best-effort; storage failures are logged and never surfaced
// @Tags Analytics
// @Accept json
// @Produce json
// @Param slug path string true "Form slug"
// @Param request body request_models.AnalyticsRequest true "Event payload"
// @Success 204
// @Router /api/forms/{slug}/analytics [post]
func (a *AnalyticsController) Record(c *gin.Context) {
	var req request_models.AnalyticsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := a.analyticsService.Record(c.Request.Context(), c.Param("slug"), req.VisitorID, req.Event, req.Meta); err != nil {
		log.Printf("analytics: event %q for %s dropped: %v", req.Event, c.Param("slug"), err)
	}
	c.Status(http.StatusNoContent)
}
