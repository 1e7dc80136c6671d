package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/arylegal/ary-backend/internal/services"
)

type ArtifactHandler struct {
	sessionSvc  services.SessionService
	artifactSvc services.ArtifactService
}

func NewArtifactHandler(sessionSvc services.SessionService, artifactSvc services.ArtifactService) *ArtifactHandler {
	return &ArtifactHandler{sessionSvc: sessionSvc, artifactSvc: artifactSvc}
}

// POST /artifacts — finalize the session and return its artifact document.
func (h *ArtifactHandler) Finalize(c *gin.Context) {
	var req struct {
		SessionID string `json:"session_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	sessionID, err := uuid.Parse(req.SessionID)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "session_id_required", err)
		return
	}
	artifact, err := h.sessionSvc.Finalize(c.Request.Context(), sessionID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.Data(http.StatusCreated, "application/json; charset=utf-8", artifact.Document)
}

// GET /artifacts/:artifact_id — serves the stored bytes unchanged so repeat
// reads are byte-identical.
func (h *ArtifactHandler) Get(c *gin.Context) {
	artifactID, err := uuid.Parse(c.Param("artifact_id"))
	if err != nil {
		RespondError(c, http.StatusNotFound, "artifact_not_found", err)
		return
	}
	artifact, err := h.artifactSvc.Get(c.Request.Context(), artifactID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", artifact.Document)
}

// GET /sessions/:session_id/artifact
func (h *ArtifactHandler) GetForSession(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("session_id"))
	if err != nil {
		RespondError(c, http.StatusNotFound, "session_not_found", err)
		return
	}
	artifact, err := h.artifactSvc.GetForSession(c.Request.Context(), sessionID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", artifact.Document)
}
