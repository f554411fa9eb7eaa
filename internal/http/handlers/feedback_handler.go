// README: Feedback handlers for create and list.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campusride/internal/modules/feedback"
)

type FeedbackHandler struct {
	feedback *feedback.Service
}

func NewFeedbackHandler(svc *feedback.Service) *FeedbackHandler {
	return &FeedbackHandler{feedback: svc}
}

type createFeedbackReq struct {
	Name      string  `json:"name"`
	StudentID *string `json:"studentId"`
	Type      string  `json:"type"`
	Message   string  `json:"message"`
	Rating    *int    `json:"rating"`
}

func (h *FeedbackHandler) Create(c *gin.Context) {
	var req createFeedbackReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	f, err := h.feedback.Create(c.Request.Context(), feedback.CreateCommand{
		Name:      req.Name,
		StudentID: req.StudentID,
		Type:      req.Type,
		Message:   req.Message,
		Rating:    req.Rating,
	})
	if err != nil {
		writeFeedbackError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, f)
}

func (h *FeedbackHandler) List(c *gin.Context) {
	items, err := h.feedback.List(c.Request.Context())
	if err != nil {
		writeFeedbackError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, map[string]any{"feedback": items})
}
