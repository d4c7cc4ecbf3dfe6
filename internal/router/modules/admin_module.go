package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mokshit-giddanti/quiz-api/internal/container"
	handlers "github.com/mokshit-giddanti/quiz-api/internal/interface/http"
	"github.com/mokshit-giddanti/quiz-api/internal/interface/middleware"
	"github.com/mokshit-giddanti/quiz-api/pkg/helpers"
)

// AdminModule wires quiz authoring and the results audit view. Every route
// runs the full gate: authenticated, then admin.
// Protected (admin): POST /api/admin/quizzes, DELETE /api/admin/quizzes/:id,
// GET /api/admin/results
type AdminModule struct {
	Quizzes *handlers.QuizHandler
	Results *handlers.ResultHandler
	JWT     *helpers.JWTManager
}

func NewAdminModule(q *handlers.QuizHandler, r *handlers.ResultHandler, jwt *helpers.JWTManager) *AdminModule {
	return &AdminModule{Quizzes: q, Results: r, JWT: jwt}
}

func (m *AdminModule) Register(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")
	admin.Use(middleware.RequireAuth(m.JWT), middleware.RequireAdmin())
	admin.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		admin.POST("/quizzes", m.Quizzes.Create)
		admin.DELETE("/quizzes/:id", m.Quizzes.Delete)
		admin.GET("/results", m.Results.ListAll)
	}
}
