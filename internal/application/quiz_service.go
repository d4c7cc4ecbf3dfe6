package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/mokshit-giddanti/quiz-api/internal/domain/entity"
	repo "github.com/mokshit-giddanti/quiz-api/internal/domain/repository"
)

// ErrInvalidQuiz marks a quiz rejected by creation-time validation.
var ErrInvalidQuiz = errors.New("invalid quiz")

// QuizService owns the quiz lifecycle: admin create/delete, authenticated
// list/get. Quizzes are immutable once created.
type QuizService struct {
	Quizzes repo.QuizRepository
	Logger  *logrus.Logger
}

func NewQuizService(quizzes repo.QuizRepository, logger *logrus.Logger) *QuizService {
	return &QuizService{Quizzes: quizzes, Logger: logger}
}

// Create validates and persists a quiz. Every correct_option must index into
// its question's options, otherwise the question could never be scored.
func (s *QuizService) Create(ctx context.Context, title string, questions []entity.Question) (*entity.Quiz, error) {
	if len(questions) == 0 {
		return nil, fmt.Errorf("%w: at least one question required", ErrInvalidQuiz)
	}
	for i, q := range questions {
		if len(q.Options) == 0 {
			return nil, fmt.Errorf("%w: question %d has no options", ErrInvalidQuiz, i)
		}
		if q.CorrectOption < 0 || q.CorrectOption >= len(q.Options) {
			return nil, fmt.Errorf("%w: question %d correct_option %d out of range", ErrInvalidQuiz, i, q.CorrectOption)
		}
	}
	quiz := &entity.Quiz{Title: title, Questions: questions}
	if err := s.Quizzes.Create(ctx, quiz); err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"quiz_id": quiz.ID, "questions": len(questions)}).Info("quiz created")
	}
	return quiz, nil
}

func (s *QuizService) Delete(ctx context.Context, id string) error {
	if err := s.Quizzes.Delete(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	if s.Logger != nil {
		s.Logger.WithField("quiz_id", id).Info("quiz deleted")
	}
	return nil
}

func (s *QuizService) List(ctx context.Context) ([]entity.Quiz, error) {
	return s.Quizzes.List(ctx)
}

func (s *QuizService) Get(ctx context.Context, id string) (*entity.Quiz, error) {
	q, err := s.Quizzes.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return q, nil
}
