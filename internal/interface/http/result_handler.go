package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/mokshit-giddanti/quiz-api/internal/application"
	"github.com/mokshit-giddanti/quiz-api/internal/interface/middleware"
	"github.com/mokshit-giddanti/quiz-api/pkg/response"
	"github.com/mokshit-giddanti/quiz-api/pkg/validation"
)

type ResultHandler struct {
	Svc    *application.ResultService
	Logger *logrus.Logger
}

func NewResultHandler(svc *application.ResultService, logger *logrus.Logger) *ResultHandler {
	return &ResultHandler{Svc: svc, Logger: logger}
}

type submitRequest struct {
	// Positional option indices, one per question. Absent positions score 0.
	Answers []int `json:"answers"`
}

// Submit POST /api/quizzes/:id/submit
func (h *ResultHandler) Submit(c *gin.Context) {
	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	uid := c.GetString(middleware.CtxUserIDKey)
	quizID := c.Param("id")
	summary, err := h.Svc.Submit(c.Request.Context(), uid, quizID, req.Answers)
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, "quiz not found", nil)
			return
		}
		h.Logger.WithError(err).WithField("quiz_id", quizID).Error("submit failed")
		response.Fail(c, http.StatusInternalServerError, "submit failed", nil)
		return
	}
	response.OK(c, http.StatusOK, summary, "result recorded")
}

// ListAll GET /api/admin/results
func (h *ResultHandler) ListAll(c *gin.Context) {
	results, err := h.Svc.ListAll(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("results list failed")
		response.Fail(c, http.StatusInternalServerError, "results list failed", nil)
		return
	}
	response.OK(c, http.StatusOK, results, "results")
}
