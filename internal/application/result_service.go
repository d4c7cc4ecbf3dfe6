package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/mokshit-giddanti/quiz-api/internal/domain/entity"
	repo "github.com/mokshit-giddanti/quiz-api/internal/domain/repository"
)

// ResultService scores submissions and records results. Results are
// append-only; re-submitting the same quiz records another row.
type ResultService struct {
	Results repo.ResultRepository
	Quizzes repo.QuizRepository
	Logger  *logrus.Logger
}

func NewResultService(results repo.ResultRepository, quizzes repo.QuizRepository, logger *logrus.Logger) *ResultService {
	return &ResultService{Results: results, Quizzes: quizzes, Logger: logger}
}

// SubmitSummary is what a submitter gets back: the recorded score out of the
// quiz's question count.
type SubmitSummary struct {
	ResultID string `json:"result_id"`
	QuizID   string `json:"quiz_id"`
	Score    int    `json:"score"`
	Total    int    `json:"total"`
}

// Submit scores answers by direct option-index comparison against the quiz's
// questions and appends a result. Answers are positional; a missing or extra
// position scores nothing.
func (s *ResultService) Submit(ctx context.Context, userID, quizID string, answers []int) (*SubmitSummary, error) {
	quiz, err := s.Quizzes.Get(ctx, quizID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	score := 0
	for i, q := range quiz.Questions {
		if i < len(answers) && answers[i] == q.CorrectOption {
			score++
		}
	}

	res := &entity.Result{UserID: userID, QuizID: quizID, Score: score}
	if err := s.Results.Create(ctx, res); err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{
			"result_id": res.ID,
			"user_id":   userID,
			"quiz_id":   quizID,
			"score":     score,
		}).Info("result recorded")
	}
	return &SubmitSummary{ResultID: res.ID, QuizID: quizID, Score: score, Total: len(quiz.Questions)}, nil
}

// ListAll returns every recorded result expanded with user and quiz
// snapshots. Admin results view only.
func (s *ResultService) ListAll(ctx context.Context) ([]entity.AdminResult, error) {
	return s.Results.ListExpanded(ctx)
}
