package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/mokshit-giddanti/quiz-api/internal/application"
	"github.com/mokshit-giddanti/quiz-api/internal/domain/entity"
	"github.com/mokshit-giddanti/quiz-api/pkg/response"
	"github.com/mokshit-giddanti/quiz-api/pkg/validation"
)

type QuizHandler struct {
	Svc    *application.QuizService
	Logger *logrus.Logger
}

func NewQuizHandler(svc *application.QuizService, logger *logrus.Logger) *QuizHandler {
	return &QuizHandler{Svc: svc, Logger: logger}
}

type optionPayload struct {
	Text string `json:"option_text" binding:"required"`
}

type questionPayload struct {
	Text          string          `json:"question_text" binding:"required"`
	Options       []optionPayload `json:"options" binding:"required,min=1,dive"`
	CorrectOption *int            `json:"correct_option" binding:"required"`
}

type createQuizRequest struct {
	Title     string            `json:"title" binding:"required"`
	Questions []questionPayload `json:"questions" binding:"required,min=1,dive"`
}

func (r *createQuizRequest) toQuestions() []entity.Question {
	out := make([]entity.Question, 0, len(r.Questions))
	for _, qp := range r.Questions {
		opts := make([]entity.Option, 0, len(qp.Options))
		for _, op := range qp.Options {
			opts = append(opts, entity.Option{Text: op.Text})
		}
		out = append(out, entity.Question{Text: qp.Text, Options: opts, CorrectOption: *qp.CorrectOption})
	}
	return out
}

// Create POST /api/admin/quizzes
func (h *QuizHandler) Create(c *gin.Context) {
	var req createQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	quiz, err := h.Svc.Create(c.Request.Context(), req.Title, req.toQuestions())
	if err != nil {
		if errors.Is(err, application.ErrInvalidQuiz) {
			response.Fail(c, http.StatusBadRequest, err.Error(), nil)
			return
		}
		h.Logger.WithError(err).Error("quiz create failed")
		response.Fail(c, http.StatusInternalServerError, "quiz create failed", nil)
		return
	}
	response.OK(c, http.StatusOK, quiz, "quiz created")
}

// Delete DELETE /api/admin/quizzes/:id
func (h *QuizHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, application.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, "quiz not found", nil)
			return
		}
		h.Logger.WithError(err).WithField("quiz_id", id).Error("quiz delete failed")
		response.Fail(c, http.StatusInternalServerError, "quiz delete failed", nil)
		return
	}
	response.OK[any](c, http.StatusOK, nil, "quiz deleted")
}

// List GET /api/quizzes
func (h *QuizHandler) List(c *gin.Context) {
	quizzes, err := h.Svc.List(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("quiz list failed")
		response.Fail(c, http.StatusInternalServerError, "quiz list failed", nil)
		return
	}
	response.OK(c, http.StatusOK, quizzes, "quizzes")
}

// Get GET /api/quizzes/:id
func (h *QuizHandler) Get(c *gin.Context) {
	id := c.Param("id")
	quiz, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, "quiz not found", nil)
			return
		}
		h.Logger.WithError(err).WithField("quiz_id", id).Error("quiz get failed")
		response.Fail(c, http.StatusInternalServerError, "quiz get failed", nil)
		return
	}
	response.OK(c, http.StatusOK, quiz, "quiz")
}
