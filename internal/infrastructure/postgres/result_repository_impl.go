package postgres

import (
	"context"
	"database/sql"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mokshit-giddanti/quiz-api/internal/domain/entity"
	"github.com/mokshit-giddanti/quiz-api/internal/domain/repository"
)

// ResultRepository appends scored attempts. Results keep id-only references
// to users and quizzes: no foreign keys, so deleting a quiz leaves its
// results in place and the expansion join degrades to empty snapshots.
type ResultRepository struct {
	pool *pgxpool.Pool
}

func NewResultRepository(pool *pgxpool.Pool) *ResultRepository {
	return &ResultRepository{pool: pool}
}

func (r *ResultRepository) Create(ctx context.Context, res *entity.Result) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO results (user_id, quiz_id, score)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, res.UserID, res.QuizID, res.Score)

	return row.Scan(&res.ID, &res.CreatedAt)
}

func (r *ResultRepository) ListExpanded(ctx context.Context) ([]entity.AdminResult, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT r.id, r.user_id, r.quiz_id, r.score, r.created_at,
		       u.name, u.email, q.title
		FROM results r
		LEFT JOIN users u ON u.id = r.user_id
		LEFT JOIN quizzes q ON q.id = r.quiz_id
		ORDER BY r.created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.AdminResult, 0)
	for rows.Next() {
		var ar entity.AdminResult
		var name, email, title sql.NullString
		if err := rows.Scan(&ar.ID, &ar.UserID, &ar.QuizID, &ar.Score, &ar.CreatedAt,
			&name, &email, &title); err != nil {
			return nil, err
		}
		if name.Valid || email.Valid {
			ar.User = entity.ResultUser{ID: ar.UserID, Name: name.String, Email: email.String}
		}
		if title.Valid {
			ar.Quiz = entity.ResultQuiz{ID: ar.QuizID, Title: title.String}
		}
		out = append(out, ar)
	}
	return out, rows.Err()
}

var _ repository.ResultRepository = (*ResultRepository)(nil)
