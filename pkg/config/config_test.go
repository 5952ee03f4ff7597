package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("PORT", "")
	t.Setenv("MONGO_DATABASE", "")
	t.Setenv("TOKEN_EXPIRY", "")
	t.Setenv("ALLOWED_ORIGINS", "")

	cfg := Load()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "8070", cfg.Port)
	assert.Equal(t, "ReserviaDB", cfg.MongoDatabase)
	assert.Equal(t, time.Hour, cfg.TokenExpiry)
	assert.NotEmpty(t, cfg.AllowedOrigins)
}

func TestLoad_TokenExpiryOverride(t *testing.T) {
	t.Setenv("TOKEN_EXPIRY", "30m")

	cfg := Load()

	assert.Equal(t, 30*time.Minute, cfg.TokenExpiry)
}

func TestValidate_MissingSecret(t *testing.T) {
	cfg := &Config{MongoURI: "mongodb://localhost:27017"}

	assert.Error(t, cfg.Validate())
}

func TestValidate_MissingURI(t *testing.T) {
	cfg := &Config{JWTSecret: "s3cret"}

	assert.Error(t, cfg.Validate())
}

func TestSplitEnv_TrimsAndDropsEmpty(t *testing.T) {
	t.Setenv("ALLOWED_ORIGINS", " http://a.example , ,http://b.example")

	cfg := Load()

	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.AllowedOrigins)
}
