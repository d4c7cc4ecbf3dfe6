package repository

import (
	"context"

	"github.com/mokshit-giddanti/quiz-api/internal/domain/entity"
)

// UserRepository defines the interface for user-related database operations.
// Users are created on registration and never mutated or deleted afterwards.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
