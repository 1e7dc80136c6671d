package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/arylegal/ary-backend/internal/services"
)

type DecisionHandler struct {
	proposalSvc services.ProposalService
}

func NewDecisionHandler(proposalSvc services.ProposalService) *DecisionHandler {
	return &DecisionHandler{proposalSvc: proposalSvc}
}

// POST /proposals/:proposal_id/decision
func (h *DecisionHandler) Decide(c *gin.Context) {
	proposalID, err := uuid.Parse(c.Param("proposal_id"))
	if err != nil {
		RespondError(c, http.StatusNotFound, "proposal_not_found", err)
		return
	}
	var req struct {
		Decision string  `json:"decision"`
		Reason   *string `json:"reason,omitempty"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	decision, err := h.proposalSvc.Decide(c.Request.Context(), proposalID, req.Decision, req.Reason)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondCreated(c, decision)
}
