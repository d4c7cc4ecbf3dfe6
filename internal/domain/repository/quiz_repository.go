package repository

import (
	"context"

	"github.com/mokshit-giddanti/quiz-api/internal/domain/entity"
)

// QuizRepository defines the interface for quiz-related database operations.
type QuizRepository interface {
	Create(ctx context.Context, q *entity.Quiz) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]entity.Quiz, error)
	Get(ctx context.Context, id string) (*entity.Quiz, error)
}
