package modules

import (
	"expvar"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mokshit-giddanti/quiz-api/internal/container"
	"github.com/mokshit-giddanti/quiz-api/internal/interface/middleware"
)

// DebugModule exposes expvar under /api/debug/vars. Mounted only when
// DEBUG_METRICS_ENABLED is set; the endpoint itself is rate-limited per IP
// since it carries no auth gate.
type DebugModule struct{}

func NewDebugModule() *DebugModule { return &DebugModule{} }

func (m *DebugModule) Register(rg *gin.RouterGroup) {
	rl := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())
	rg.GET("/debug/vars", rl, gin.WrapH(expvar.Handler()))
}
