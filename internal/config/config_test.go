package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("API_PAGE_SIZE", "")
	t.Setenv("JWT_ACCESS_TTL", "")
	t.Setenv("SMTP_HOST", "")
	t.Setenv("AWS_ENDPOINT", "")

	cfg := Load()
	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, 10, cfg.Server.PageSize)
	assert.Equal(t, 24*time.Hour, cfg.JWT.AccessTTL)
	assert.Empty(t, cfg.Email.Host)
	assert.False(t, cfg.MinIO.Enabled())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("API_PAGE_SIZE", "25")
	t.Setenv("JWT_ACCESS_TTL", "15m")
	t.Setenv("AWS_USE_SSL", "false")
	t.Setenv("AWS_ENDPOINT", "localhost:9000")
	t.Setenv("AWS_ACCESS_KEY_ID", "key")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "secret")

	cfg := Load()
	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, 25, cfg.Server.PageSize)
	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessTTL)
	assert.False(t, cfg.MinIO.UseSSL)
	assert.True(t, cfg.MinIO.Enabled())
}

func TestMalformedValuesFallBack(t *testing.T) {
	t.Setenv("API_PAGE_SIZE", "many")
	t.Setenv("JWT_ACCESS_TTL", "soon")

	cfg := Load()
	assert.Equal(t, 10, cfg.Server.PageSize)
	assert.Equal(t, 24*time.Hour, cfg.JWT.AccessTTL)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Database: DatabaseConfig{Host: "db"},
			JWT:      JWTConfig{Secret: strings.Repeat("s", 32)},
		}
	}

	require.NoError(t, valid().Validate())

	cfg := valid()
	cfg.JWT.Secret = ""
	assert.ErrorContains(t, cfg.Validate(), "JWT_SECRET is required")

	cfg = valid()
	cfg.JWT.Secret = "short"
	assert.ErrorContains(t, cfg.Validate(), "at least 32 bytes")

	cfg = valid()
	cfg.Email = EmailConfig{Host: "smtp.example.com"}
	assert.ErrorContains(t, cfg.Validate(), "EMAIL_FROM")

	cfg = valid()
	cfg.MinIO = MinIOConfig{Endpoint: "localhost:9000"}
	assert.ErrorContains(t, cfg.Validate(), "AWS_ACCESS_KEY_ID")
}

func TestDSN(t *testing.T) {
	dsn := DatabaseConfig{
		Host:     "db",
		Port:     "5433",
		User:     "yamdb",
		Password: "pw",
		DBName:   "reviews",
		SSLMode:  "require",
	}.DSN()

	for _, part := range []string{"host=db", "port=5433", "user=yamdb", "password=pw", "dbname=reviews", "sslmode=require"} {
		assert.Contains(t, dsn, part)
	}
}
