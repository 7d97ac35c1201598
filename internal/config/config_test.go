package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "plus-control-api", cfg.App.Name)
	assert.InDelta(t, 0.19, cfg.Finance.TaxRate, 1e-9)
	assert.Equal(t, int64(100), cfg.Finance.DebtTolerance)
	assert.Equal(t, 30, cfg.Finance.BoardWindowDays)
	assert.Equal(t, "local", cfg.Storage.Driver)
	assert.Equal(t, "deliveries", cfg.Storage.KeyPrefix)
	assert.Equal(t, time.Hour, cfg.Maintenance.SweepInterval)
	assert.Equal(t, 12*time.Hour, cfg.JWT.ExpiryHours)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("FINANCE_TAX_RATE", "0.1")
	t.Setenv("STORAGE_DRIVER", "S3")
	t.Setenv("STORAGE_KEY_PREFIX", "plus/evidence")
	t.Setenv("MAINTENANCE_SWEEP_INTERVAL", "0")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.cl, https://b.cl")

	cfg := Load()

	assert.InDelta(t, 0.1, cfg.Finance.TaxRate, 1e-9)
	assert.Equal(t, "s3", cfg.Storage.Driver)
	assert.Equal(t, "plus/evidence", cfg.Storage.KeyPrefix)
	assert.Zero(t, cfg.Maintenance.SweepInterval)
	assert.Equal(t, []string{"https://a.cl", "https://b.cl"}, cfg.CORS.AllowedOrigins)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	db := DatabaseConfig{Host: "h", Port: "5432", Name: "n", User: "u", Password: "p", SSLMode: "disable", Timezone: "UTC"}
	assert.Equal(t, "host=h user=u password=p dbname=n port=5432 sslmode=disable TimeZone=UTC", db.DSN())
}
