package repository

import (
	"context"

	"github.com/mokshit-giddanti/quiz-api/internal/domain/entity"
)

// ResultRepository defines the interface for result-related database
// operations. Results are append-only.
type ResultRepository interface {
	Create(ctx context.Context, r *entity.Result) error
	// ListExpanded returns all results joined with snapshots of the
	// referenced user and quiz. Used by the admin results view only.
	ListExpanded(ctx context.Context) ([]entity.AdminResult, error)
}
