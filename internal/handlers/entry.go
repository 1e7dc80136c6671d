package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/arylegal/ary-backend/internal/services"
)

type EntryHandler struct {
	entrySvc services.EntryService
}

func NewEntryHandler(entrySvc services.EntryService) *EntryHandler {
	return &EntryHandler{entrySvc: entrySvc}
}

// POST /sessions/:session_id/entries
func (h *EntryHandler) Add(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("session_id"))
	if err != nil {
		RespondError(c, http.StatusNotFound, "session_not_found", err)
		return
	}
	// Text is a pointer so a missing field is distinguishable from an
	// explicit empty answer, which is legal.
	var req struct {
		QuestionID string  `json:"question_id"`
		Text       *string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if req.Text == nil {
		RespondError(c, http.StatusBadRequest, "text_required", errMissingField("text"))
		return
	}
	entry, err := h.entrySvc.Add(c.Request.Context(), sessionID, req.QuestionID, *req.Text)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondCreated(c, entry)
}

// GET /sessions/:session_id/entries
func (h *EntryHandler) List(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("session_id"))
	if err != nil {
		RespondError(c, http.StatusNotFound, "session_not_found", err)
		return
	}
	entries, err := h.entrySvc.List(c.Request.Context(), sessionID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, entries)
}

// DELETE /sessions/:session_id/entries/:entry_id
func (h *EntryHandler) Delete(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("session_id"))
	if err != nil {
		RespondError(c, http.StatusNotFound, "session_not_found", err)
		return
	}
	entryID, err := uuid.Parse(c.Param("entry_id"))
	if err != nil {
		RespondError(c, http.StatusNotFound, "entry_not_found", err)
		return
	}
	if err := h.entrySvc.Delete(c.Request.Context(), sessionID, entryID); err != nil {
		RespondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
