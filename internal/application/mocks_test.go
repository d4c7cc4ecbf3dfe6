package application

import (
	"context"

	"github.com/mokshit-giddanti/quiz-api/internal/domain/entity"
	"github.com/mokshit-giddanti/quiz-api/internal/domain/repository"
)

// mock repositories: structs with func fields, overridden per test

type mockUserRepo struct {
	createFunc     func(ctx context.Context, u *entity.User) error
	getByIDFunc    func(ctx context.Context, id string) (*entity.User, error)
	getByEmailFunc func(ctx context.Context, email string) (*entity.User, error)
}

func (m *mockUserRepo) Create(ctx context.Context, u *entity.User) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.getByEmailFunc != nil {
		return m.getByEmailFunc(ctx, email)
	}
	return nil, repository.ErrNotFound
}

type mockQuizRepo struct {
	createFunc func(ctx context.Context, q *entity.Quiz) error
	deleteFunc func(ctx context.Context, id string) error
	listFunc   func(ctx context.Context) ([]entity.Quiz, error)
	getFunc    func(ctx context.Context, id string) (*entity.Quiz, error)
}

func (m *mockQuizRepo) Create(ctx context.Context, q *entity.Quiz) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, q)
	}
	return nil
}

func (m *mockQuizRepo) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func (m *mockQuizRepo) List(ctx context.Context) ([]entity.Quiz, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockQuizRepo) Get(ctx context.Context, id string) (*entity.Quiz, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

type mockResultRepo struct {
	createFunc       func(ctx context.Context, r *entity.Result) error
	listExpandedFunc func(ctx context.Context) ([]entity.AdminResult, error)
	created          []*entity.Result
}

func (m *mockResultRepo) Create(ctx context.Context, r *entity.Result) error {
	m.created = append(m.created, r)
	if m.createFunc != nil {
		return m.createFunc(ctx, r)
	}
	return nil
}

func (m *mockResultRepo) ListExpanded(ctx context.Context) ([]entity.AdminResult, error) {
	if m.listExpandedFunc != nil {
		return m.listExpandedFunc(ctx)
	}
	return nil, nil
}
