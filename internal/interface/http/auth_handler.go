package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/mokshit-giddanti/quiz-api/internal/application"
	"github.com/mokshit-giddanti/quiz-api/internal/interface/middleware"
	"github.com/mokshit-giddanti/quiz-api/pkg/response"
	"github.com/mokshit-giddanti/quiz-api/pkg/validation"
)

type AuthHandler struct {
	Svc    *application.AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
	IsAdmin  bool   `json:"is_admin"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	Token     string `json:"token"`
	IsAdmin   bool   `json:"is_admin"`
	ExpiresAt string `json:"expires_at"`
}

// Register POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	err := h.Svc.Register(c.Request.Context(), req.Name, req.Email, req.Password, req.IsAdmin)
	if err != nil {
		if errors.Is(err, application.ErrEmailTaken) {
			response.Fail(c, http.StatusBadRequest, "email already registered", nil)
			return
		}
		h.Logger.WithError(err).Error("register failed")
		response.Fail(c, http.StatusInternalServerError, "registration failed", nil)
		return
	}
	response.OK[any](c, http.StatusOK, nil, "user registered")
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	res, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			// Uniform message whether the email is unknown or the password mismatches
			response.Fail(c, http.StatusBadRequest, "invalid email or password", nil)
			return
		}
		h.Logger.WithError(err).Error("login failed")
		response.Fail(c, http.StatusInternalServerError, "login failed", nil)
		return
	}
	body := loginResponse{Token: res.Token, IsAdmin: res.IsAdmin, ExpiresAt: res.ExpiresAt.UTC().Format(time.RFC3339)}
	response.OK(c, http.StatusOK, body, "login successful")
}

// Me GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	u, err := h.Svc.Profile(c.Request.Context(), uid)
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, "user not found", nil)
			return
		}
		h.Logger.WithError(err).WithField("user_id", uid).Error("profile lookup failed")
		response.Fail(c, http.StatusInternalServerError, "profile lookup failed", nil)
		return
	}
	response.OK(c, http.StatusOK, u, "profile")
}
