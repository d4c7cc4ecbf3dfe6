package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mokshit-giddanti/quiz-api/internal/container"
	handlers "github.com/mokshit-giddanti/quiz-api/internal/interface/http"
	"github.com/mokshit-giddanti/quiz-api/internal/interface/middleware"
	"github.com/mokshit-giddanti/quiz-api/pkg/helpers"
)

// QuizModule wires the authenticated quiz-taking routes.
// Protected: GET /api/quizzes, GET /api/quizzes/:id, POST /api/quizzes/:id/submit
type QuizModule struct {
	Quizzes *handlers.QuizHandler
	Results *handlers.ResultHandler
	JWT     *helpers.JWTManager
}

func NewQuizModule(q *handlers.QuizHandler, r *handlers.ResultHandler, jwt *helpers.JWTManager) *QuizModule {
	return &QuizModule{Quizzes: q, Results: r, JWT: jwt}
}

func (m *QuizModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.RequireAuth(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.GET("/quizzes", m.Quizzes.List)
		auth.GET("/quizzes/:id", m.Quizzes.Get)
		auth.POST("/quizzes/:id/submit", m.Results.Submit)
	}
}
