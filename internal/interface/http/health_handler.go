package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/mokshit-giddanti/quiz-api/pkg/response"
)

type HealthHandler struct {
	Pool *pgxpool.Pool
	RDB  *redis.Client
}

func NewHealthHandler(pool *pgxpool.Pool, rdb *redis.Client) *HealthHandler {
	return &HealthHandler{Pool: pool, RDB: rdb}
}

// Check GET /api/health
// Redis being down does not fail the check; the limiter fails open without it.
func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
	defer cancel()

	status := gin.H{"db": "skipped", "redis": "skipped"}
	healthy := true
	if h.Pool != nil {
		if err := h.Pool.Ping(ctx); err != nil {
			status["db"] = "down"
			healthy = false
		} else {
			status["db"] = "up"
		}
	}
	if h.RDB != nil {
		if err := h.RDB.Ping(ctx).Err(); err != nil {
			status["redis"] = "down"
		} else {
			status["redis"] = "up"
		}
	}

	if !healthy {
		response.Fail(c, http.StatusServiceUnavailable, "unhealthy", status)
		return
	}
	response.OK(c, http.StatusOK, status, "ok")
}
