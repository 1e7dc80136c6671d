package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/arylegal/ary-backend/internal/services"
)

type SessionHandler struct {
	sessionSvc services.SessionService
}

func NewSessionHandler(sessionSvc services.SessionService) *SessionHandler {
	return &SessionHandler{sessionSvc: sessionSvc}
}

// POST /sessions
func (h *SessionHandler) Create(c *gin.Context) {
	var req struct {
		CaseID string `json:"case_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	caseID, err := uuid.Parse(req.CaseID)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "case_id_required", err)
		return
	}
	session, err := h.sessionSvc.Create(c.Request.Context(), caseID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondCreated(c, session)
}

// GET /sessions/:session_id
func (h *SessionHandler) Get(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("session_id"))
	if err != nil {
		RespondError(c, http.StatusNotFound, "session_not_found", err)
		return
	}
	session, err := h.sessionSvc.Get(c.Request.Context(), sessionID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, session)
}
