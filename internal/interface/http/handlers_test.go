package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/mokshit-giddanti/quiz-api/internal/application"
	"github.com/mokshit-giddanti/quiz-api/internal/domain/entity"
	"github.com/mokshit-giddanti/quiz-api/internal/domain/repository"
	"github.com/mokshit-giddanti/quiz-api/internal/interface/middleware"
	"github.com/mokshit-giddanti/quiz-api/pkg/helpers"
	"github.com/mokshit-giddanti/quiz-api/pkg/validation"
)

func init() {
	gin.SetMode(gin.TestMode)
	validation.Init()
}

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// in-memory repositories backing full handler flows

type memUserRepo struct {
	byEmail map[string]*entity.User
	nextID  int
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byEmail: map[string]*entity.User{}}
}

func (m *memUserRepo) Create(ctx context.Context, u *entity.User) error {
	if _, ok := m.byEmail[u.Email]; ok {
		return repository.ErrDuplicate
	}
	m.nextID++
	u.ID = "u-" + strconv.Itoa(m.nextID)
	u.CreatedAt = time.Now()
	cp := *u
	m.byEmail[u.Email] = &cp
	return nil
}

func (m *memUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	for _, u := range m.byEmail {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	u, ok := m.byEmail[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

type memQuizRepo struct {
	quizzes []entity.Quiz
	nextID  int
}

func (m *memQuizRepo) Create(ctx context.Context, q *entity.Quiz) error {
	m.nextID++
	q.ID = "q-" + strconv.Itoa(m.nextID)
	q.CreatedAt = time.Now()
	m.quizzes = append(m.quizzes, *q)
	return nil
}

func (m *memQuizRepo) Delete(ctx context.Context, id string) error {
	for i, q := range m.quizzes {
		if q.ID == id {
			m.quizzes = append(m.quizzes[:i], m.quizzes[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *memQuizRepo) List(ctx context.Context) ([]entity.Quiz, error) {
	out := make([]entity.Quiz, len(m.quizzes))
	copy(out, m.quizzes)
	return out, nil
}

func (m *memQuizRepo) Get(ctx context.Context, id string) (*entity.Quiz, error) {
	for _, q := range m.quizzes {
		if q.ID == id {
			cp := q
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

type memResultRepo struct {
	results []entity.Result
	users   *memUserRepo
	quizzes *memQuizRepo
	nextID  int
}

func (m *memResultRepo) Create(ctx context.Context, r *entity.Result) error {
	m.nextID++
	r.ID = "r-" + strconv.Itoa(m.nextID)
	r.CreatedAt = time.Now()
	m.results = append(m.results, *r)
	return nil
}

func (m *memResultRepo) ListExpanded(ctx context.Context) ([]entity.AdminResult, error) {
	out := make([]entity.AdminResult, 0, len(m.results))
	for _, r := range m.results {
		ar := entity.AdminResult{Result: r}
		if m.users != nil {
			if u, err := m.users.GetByID(ctx, r.UserID); err == nil {
				ar.User = entity.ResultUser{ID: u.ID, Name: u.Name, Email: u.Email}
			}
		}
		if m.quizzes != nil {
			if q, err := m.quizzes.Get(ctx, r.QuizID); err == nil {
				ar.Quiz = entity.ResultQuiz{ID: q.ID, Title: q.Title}
			}
		}
		out = append(out, ar)
	}
	return out, nil
}

// testApp is a fully wired router over in-memory repositories.
type testApp struct {
	router  *gin.Engine
	jwt     *helpers.JWTManager
	users   *memUserRepo
	quizzes *memQuizRepo
	results *memResultRepo
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	logger := testLogger()

	users := newMemUserRepo()
	quizzes := &memQuizRepo{}
	results := &memResultRepo{users: users, quizzes: quizzes}

	authSvc := application.NewAuthService(users, jwt, logger)
	quizSvc := application.NewQuizService(quizzes, logger)
	resultSvc := application.NewResultService(results, quizzes, logger)

	authH := NewAuthHandler(authSvc, logger)
	quizH := NewQuizHandler(quizSvc, logger)
	resultH := NewResultHandler(resultSvc, logger)

	r := gin.New()
	api := r.Group("/api")
	api.POST("/auth/register", authH.Register)
	api.POST("/auth/login", authH.Login)

	authed := api.Group("/")
	authed.Use(middleware.RequireAuth(jwt))
	authed.GET("/auth/me", authH.Me)
	authed.GET("/quizzes", quizH.List)
	authed.GET("/quizzes/:id", quizH.Get)
	authed.POST("/quizzes/:id/submit", resultH.Submit)

	admin := api.Group("/admin")
	admin.Use(middleware.RequireAuth(jwt), middleware.RequireAdmin())
	admin.POST("/quizzes", quizH.Create)
	admin.DELETE("/quizzes/:id", quizH.Delete)
	admin.GET("/results", resultH.ListAll)

	return &testApp{router: r, jwt: jwt, users: users, quizzes: quizzes, results: results}
}

func (a *testApp) request(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *testApp) tokenFor(t *testing.T, userID string, isAdmin bool) string {
	t.Helper()
	token, _, err := a.jwt.Generate(userID, isAdmin)
	require.NoError(t, err)
	return token
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var envelope struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope.Data
}

func decodeMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var envelope struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope.Message
}
