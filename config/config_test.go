package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "quiz-api", cfg.AppName)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "devsecret", cfg.JWTSecret)
	assert.Equal(t, time.Hour, cfg.TokenTTL)
	assert.Equal(t, "db/migrations", cfg.MigrationsDir)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("JWT_SECRET", "prodsecret")
	t.Setenv("TOKEN_TTL", "30m")
	t.Setenv("DB_MAX_CONNS", "25")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "prodsecret", cfg.JWTSecret)
	assert.Equal(t, 30*time.Minute, cfg.TokenTTL)
	assert.Equal(t, int32(25), cfg.DBMaxConns)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("TOKEN_TTL", "soon")
	t.Setenv("DB_MAX_CONNS", "many")
	t.Setenv("DEBUG_METRICS_ENABLED", "yes please")

	cfg := Load()

	assert.Equal(t, time.Hour, cfg.TokenTTL)
	assert.Equal(t, int32(10), cfg.DBMaxConns)
	assert.True(t, cfg.DebugMetricsEnabled)
}

func TestPostgresDSN(t *testing.T) {
	c := &Config{
		DBHost: "db.internal", DBPort: "5433",
		DBUser: "quiz", DBPassword: "pw",
		DBName: "quizdb", DBSSLMode: "require",
	}
	assert.Equal(t, "postgres://quiz:pw@db.internal:5433/quizdb?sslmode=require", c.PostgresDSN())
}

func TestCORSOrigins(t *testing.T) {
	c := &Config{CORSAllowedOrigins: "http://a.test, http://b.test ,,"}
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, c.CORSOrigins())

	c = &Config{CORSAllowedOrigins: ""}
	assert.Empty(t, c.CORSOrigins())
}
