package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/arylegal/ary-backend/internal/services"
)

type ProposalHandler struct {
	proposalSvc services.ProposalService
}

func NewProposalHandler(proposalSvc services.ProposalService) *ProposalHandler {
	return &ProposalHandler{proposalSvc: proposalSvc}
}

// POST /entries/:entry_id/proposals
func (h *ProposalHandler) Propose(c *gin.Context) {
	entryID, err := uuid.Parse(c.Param("entry_id"))
	if err != nil {
		RespondError(c, http.StatusNotFound, "entry_not_found", err)
		return
	}
	proposals, err := h.proposalSvc.ProposeForEntry(c.Request.Context(), entryID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondCreated(c, proposals)
}

// GET /entries/:entry_id/proposals
func (h *ProposalHandler) List(c *gin.Context) {
	entryID, err := uuid.Parse(c.Param("entry_id"))
	if err != nil {
		RespondError(c, http.StatusNotFound, "entry_not_found", err)
		return
	}
	proposals, err := h.proposalSvc.ListForEntry(c.Request.Context(), entryID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, proposals)
}
