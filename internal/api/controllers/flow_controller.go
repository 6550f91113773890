package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"formflow/internal/models/request_models"
	"formflow/internal/services"
	"formflow/pkg/utils"
)

// FlowController is the action-dispatch endpoint for the progressive flow.
// One route, five actions. The abandon action is the beacon target: it
// acknowledges before doing any work and never reports failure.
type FlowController struct {
	flowService services.FlowServiceInterface
}

func NewFlowController(flowService services.FlowServiceInterface) *FlowController {
	return &FlowController{flowService: flowService}
}

// HandleAction godoc
// @Summary Progressive flow action dispatch
// @Description Dispatches view, init_session, update_field, submit and abandon actions
// @Tags Flow
// @Accept json
// @Produce json
// @Param slug path string true "Form slug"
// @Param request body request_models.FlowActionRequest true "Action payload"
// @Success 200 {object} utils.APIResponse
// @Router /api/flow/{slug} [post]
func (f *FlowController) HandleAction(c *gin.Context) {
	var req request_models.FlowActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	slug := c.Param("slug")
	ctx := c.Request.Context()

	switch req.Action {
	case "view":
		view, err := f.flowService.View(ctx, slug)
		if err != nil {
			utils.HandleServiceError(c, err)
			return
		}
		utils.RespondSuccess(c, view, "")

	case "init_session":
		resp, err := f.flowService.InitSession(ctx, slug, req.Phone)
		if err != nil {
			utils.HandleServiceError(c, err)
			return
		}
		utils.RespondSuccess(c, resp, "Session initialized")

	case "update_field":
		// Auto-save is fire-and-forget from the client's point of view:
		// once the token checks out, a storage hiccup is logged, never
		// surfaced, never retried.
		err := f.flowService.UpdateField(ctx, req.SessionToken, req.SubmissionID, req.FieldID, req.Value)
		if err != nil {
			if err == utils.ErrInvalidSessionToken || err == utils.ErrSessionNotFound {
				utils.HandleServiceError(c, err)
				return
			}
			log.Printf("flow: update_field %s on %s failed: %v", req.FieldID, req.SubmissionID, err)
		}
		c.Status(http.StatusNoContent)

	case "submit":
		resp, err := f.flowService.Submit(ctx, req.SessionToken, req.SubmissionID, req.Identity, req.Values)
		if err != nil {
			utils.HandleServiceError(c, err)
			return
		}
		if len(resp.Errors) > 0 {
			utils.RespondSuccess(c, resp, "Validation failed")
			return
		}
		utils.RespondSuccess(c, resp, "Submission stored successfully")

	case "abandon":
		// Beacon delivery: respond immediately, process detached from the
		// request so page teardown cannot cancel the write.
		token, submissionID := req.SessionToken, req.SubmissionID
		go func() {
			bg, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := f.flowService.Abandon(bg, token, submissionID); err != nil {
				log.Printf("flow: abandon beacon for %s dropped: %v", submissionID, err)
			}
		}()
		c.Status(http.StatusNoContent)

	default:
		utils.RespondError(c, http.StatusBadRequest, "Unknown action")
	}
}
