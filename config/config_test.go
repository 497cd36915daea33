package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	assert.Equal(t, "party-planner", cfg.AppName)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, bcrypt.DefaultCost, cfg.BcryptCost)
	assert.Equal(t, 64, cfg.AccessTokenBytes)
	assert.Equal(t, 10*time.Second, cfg.MongoConnectTimeout)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("MONGO_URL", "mongodb://db:27017")
	t.Setenv("BCRYPT_COST", "12")
	t.Setenv("MONGO_CONNECT_TIMEOUT", "3s")
	t.Setenv("HTTP_LOG_ENABLED", "true")

	cfg := Load()
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "mongodb://db:27017", cfg.MongoURI)
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.Equal(t, 3*time.Second, cfg.MongoConnectTimeout)
	assert.True(t, cfg.HTTPLogEnabled)
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	t.Setenv("BCRYPT_COST", "lots")
	t.Setenv("HTTP_LOG_ENABLED", "yep")

	cfg := Load()
	assert.Equal(t, bcrypt.DefaultCost, cfg.BcryptCost)
	assert.False(t, cfg.HTTPLogEnabled)
}

func TestCORSOrigins(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000, https://app.example.com ,")
	cfg := Load()
	assert.Equal(t, []string{"http://localhost:3000", "https://app.example.com"}, cfg.CORSOrigins())
}
