package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/arylegal/ary-backend/internal/services"
)

type CaseHandler struct {
	caseSvc    services.CaseService
	sessionSvc services.SessionService
}

func NewCaseHandler(caseSvc services.CaseService, sessionSvc services.SessionService) *CaseHandler {
	return &CaseHandler{caseSvc: caseSvc, sessionSvc: sessionSvc}
}

// POST /cases
func (h *CaseHandler) Create(c *gin.Context) {
	var req services.CreateCaseInput
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	created, err := h.caseSvc.Create(c.Request.Context(), req)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondCreated(c, created)
}

// GET /cases
func (h *CaseHandler) List(c *gin.Context) {
	cases, err := h.caseSvc.List(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, cases)
}

// GET /cases/:case_id
func (h *CaseHandler) Get(c *gin.Context) {
	caseID, err := uuid.Parse(c.Param("case_id"))
	if err != nil {
		RespondError(c, http.StatusNotFound, "case_not_found", err)
		return
	}
	found, err := h.caseSvc.Get(c.Request.Context(), caseID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, found)
}

// GET /cases/:case_id/sessions
func (h *CaseHandler) ListSessions(c *gin.Context) {
	caseID, err := uuid.Parse(c.Param("case_id"))
	if err != nil {
		RespondError(c, http.StatusNotFound, "case_not_found", err)
		return
	}
	sessions, err := h.sessionSvc.ListForCase(c.Request.Context(), caseID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, sessions)
}
