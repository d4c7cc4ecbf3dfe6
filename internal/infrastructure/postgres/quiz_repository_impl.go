package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mokshit-giddanti/quiz-api/internal/domain/entity"
	"github.com/mokshit-giddanti/quiz-api/internal/domain/repository"
)

// QuizRepository stores a quiz's question list as one jsonb document, so a
// quiz round-trips verbatim the way the API received it.
type QuizRepository struct {
	pool *pgxpool.Pool
}

func NewQuizRepository(pool *pgxpool.Pool) *QuizRepository {
	return &QuizRepository{pool: pool}
}

func (r *QuizRepository) Create(ctx context.Context, q *entity.Quiz) error {
	doc, err := json.Marshal(q.Questions)
	if err != nil {
		return err
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO quizzes (title, questions)
		VALUES ($1, $2)
		RETURNING id, created_at
	`, q.Title, doc)

	return row.Scan(&q.ID, &q.CreatedAt)
}

func (r *QuizRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM quizzes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *QuizRepository) List(ctx context.Context) ([]entity.Quiz, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, title, questions, created_at
		FROM quizzes
		ORDER BY created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	quizzes := make([]entity.Quiz, 0)
	for rows.Next() {
		q, err := scanQuiz(rows)
		if err != nil {
			return nil, err
		}
		quizzes = append(quizzes, *q)
	}
	return quizzes, rows.Err()
}

func (r *QuizRepository) Get(ctx context.Context, id string) (*entity.Quiz, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, title, questions, created_at
		FROM quizzes
		WHERE id = $1
	`, id)

	q, err := scanQuiz(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return q, nil
}

func scanQuiz(row pgx.Row) (*entity.Quiz, error) {
	q := &entity.Quiz{}
	var doc []byte
	if err := row.Scan(&q.ID, &q.Title, &doc, &q.CreatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(doc, &q.Questions); err != nil {
		return nil, err
	}
	return q, nil
}

var _ repository.QuizRepository = (*QuizRepository)(nil)
