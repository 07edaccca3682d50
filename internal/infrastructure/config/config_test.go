package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, "craftkart-backend", cfg.App.Name)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "craftkart", cfg.Database.DBName)
	assert.Equal(t, 72*time.Hour, cfg.Returns.EligibilityWindow)
	assert.Equal(t, "50", cfg.Checkout.ShippingFee)
	assert.Equal(t, "50", cfg.Checkout.AdvancePercent)
	assert.Equal(t, 4, cfg.Writer.Workers)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Returns: ReturnsConfig{EligibilityWindow: 7 * 24 * time.Hour},
		App:     AppConfig{Port: "9090"},
	}
	applyDefaults(cfg)

	assert.Equal(t, 7*24*time.Hour, cfg.Returns.EligibilityWindow)
	assert.Equal(t, "9090", cfg.App.Port)
}

func TestValidate_ConnectionPool(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)
	cfg.Database.MaxIdleConns = 100
	cfg.Database.MaxOpenConns = 10

	err := cfg.validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_idle_conns")
}

func TestValidate_ProductionRequiresSecrets(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)
	cfg.App.Env = "production"

	err := cfg.validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jwt.secret")
}

func TestValidate_ProductionRejectsWildcardCORS(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)
	cfg.App.Env = "production"
	cfg.JWT.Secret = "0123456789abcdef0123456789abcdef"
	cfg.Database.Password = "secret"
	cfg.Database.SSLMode = "require"
	cfg.HTTP.CORSAllowOrigins = []string{"*"}

	err := cfg.validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cors_allow_origins")
}

func TestDatabaseDSN_EscapesCredentials(t *testing.T) {
	d := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "craft",
		Password: "p@ss:word/1",
		DBName:   "craftkart",
		SSLMode:  "disable",
	}

	dsn := d.DSN()
	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "sslmode=disable")
	assert.NotContains(t, dsn, "p@ss:word/1", "raw password must be URL escaped")
}

func TestRedisAddr(t *testing.T) {
	r := RedisConfig{Host: "localhost", Port: 6379}
	assert.Equal(t, "localhost:6379", r.Addr())
}
