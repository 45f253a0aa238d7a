package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Padroes(t *testing.T) {
	t.Setenv("DATABASE_URL", "file:contratos.db")

	cfg := LoadConfig()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, "file:contratos.db", cfg.DatabaseURL)
	assert.Equal(t, 5*time.Second, cfg.DBTimeout)
	assert.Equal(t, 300*time.Second, cfg.CacheTTL)
	assert.Equal(t, 100, cfg.RateLimitMaxRequests)
	assert.Equal(t, time.Minute, cfg.RateLimitPeriod)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
}

func TestLoadConfig_LeAmbiente(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/contratos")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_TIMEOUT_SEC", "2")
	t.Setenv("RATE_LIMIT_MAX_REQUESTS", "abc")
	t.Setenv("CORS_ORIGINS", "https://painel.exemplo.com, ,http://localhost:3000")

	cfg := LoadConfig()

	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, 2*time.Second, cfg.DBTimeout)
	assert.Equal(t, 100, cfg.RateLimitMaxRequests, "valor inválido cai no padrão")
	assert.Equal(t, []string{"https://painel.exemplo.com", "http://localhost:3000"}, cfg.CORSOrigins)
}
