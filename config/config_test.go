package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_FromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "8081")
	t.Setenv("DATABASE_HOST", "db.internal")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_EXPIRES_IN", "2h")
	t.Setenv("LLM_PROVIDER", "openai")
	t.Setenv("QUIZ_SIZE", "0")
	t.Setenv("ADMIN_API_KEY", "admin")

	cfg, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, "8081", cfg.Server.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "3306", cfg.Database.Port)
	assert.Equal(t, "s3cret", cfg.JWT.Secret)
	assert.Equal(t, 2*time.Hour, cfg.JWT.ExpiresIn)
	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.OpenAIModel)
	assert.Equal(t, 20, cfg.Quiz.Size)
	assert.Equal(t, "admin", cfg.AdminAPIKey)
}

func TestNewConfig_BadTokenLifetime(t *testing.T) {
	t.Setenv("JWT_EXPIRES_IN", "soon")

	cfg, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, cfg.JWT.ExpiresIn)
}
