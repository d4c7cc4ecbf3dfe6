package router

import (
	"github.com/mokshit-giddanti/quiz-api/internal/application"
	"github.com/mokshit-giddanti/quiz-api/internal/container"
	pginfra "github.com/mokshit-giddanti/quiz-api/internal/infrastructure/postgres"
	handlers "github.com/mokshit-giddanti/quiz-api/internal/interface/http"
	"github.com/mokshit-giddanti/quiz-api/internal/router/modules"
)

// InitModules builds repositories, services and handlers from the container
// singletons and registers every feature module with the registry.
// Called once during startup.
func InitModules(r *Registry) {
	pool := container.GetPGPool()
	logger := container.GetLogger()
	jwt := container.GetJWT()

	userRepo := pginfra.NewUserRepository(pool)
	quizRepo := pginfra.NewQuizRepository(pool)
	resultRepo := pginfra.NewResultRepository(pool)

	authSvc := application.NewAuthService(userRepo, jwt, logger)
	quizSvc := application.NewQuizService(quizRepo, logger)
	resultSvc := application.NewResultService(resultRepo, quizRepo, logger)

	authHandler := handlers.NewAuthHandler(authSvc, logger)
	quizHandler := handlers.NewQuizHandler(quizSvc, logger)
	resultHandler := handlers.NewResultHandler(resultSvc, logger)
	healthHandler := handlers.NewHealthHandler(pool, container.GetRedis())

	r.Add(modules.NewAuthModule(authHandler, jwt))
	r.Add(modules.NewQuizModule(quizHandler, resultHandler, jwt))
	r.Add(modules.NewAdminModule(quizHandler, resultHandler, jwt))
	r.Add(modules.NewHealthModule(healthHandler))
	if cfg := container.GetConfig(); cfg != nil && cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
