package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mokshit-giddanti/quiz-api/internal/domain/entity"
	repo "github.com/mokshit-giddanti/quiz-api/internal/domain/repository"
	"github.com/mokshit-giddanti/quiz-api/pkg/helpers"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrNotFound           = errors.New("not found")
)

// AuthService owns the user lifecycle: registration with bcrypt hashing and
// credential verification with token issuance.
type AuthService struct {
	Users  repo.UserRepository
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewAuthService(users repo.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger) *AuthService {
	return &AuthService{Users: users, JWT: jwt, Logger: logger}
}

// Register stores a new user with a hashed password. The plaintext is never
// persisted. The admin flag is caller-supplied, matching the registration
// contract; cmd/seed is the controlled path for minting administrators.
func (s *AuthService) Register(ctx context.Context, name, email, password string, isAdmin bool) error {
	hash, err := helpers.HashPassword(password)
	if err != nil {
		return err
	}
	u := &entity.User{Name: name, Email: email, PasswordHash: hash, IsAdmin: isAdmin}
	if err := s.Users.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return ErrEmailTaken
		}
		return err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"user_id": u.ID, "admin": u.IsAdmin}).Info("user registered")
	}
	return nil
}

type LoginResult struct {
	Token     string
	IsAdmin   bool
	ExpiresAt time.Time
}

// Login verifies credentials and issues a token. Unknown email and password
// mismatch return the same error so callers cannot tell them apart.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil || u == nil {
		return nil, ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(u.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	token, exp, err := s.JWT.Generate(u.ID, u.IsAdmin)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("token generation failed")
		}
		return nil, err
	}
	return &LoginResult{Token: token, IsAdmin: u.IsAdmin, ExpiresAt: exp}, nil
}

// Profile returns the stored user for an authenticated identity.
func (s *AuthService) Profile(ctx context.Context, userID string) (*entity.User, error) {
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil || u == nil {
		return nil, ErrNotFound
	}
	return u, nil
}
