package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "payout_gateway", cfg.Database.DBName)
	assert.Equal(t, 0.05, cfg.Withdrawal.FeeRate)
	assert.Equal(t, int64(1000), cfg.Withdrawal.MinAmount)
	assert.Equal(t, []int64{1000, 5000, 10000, 25000, 50000}, cfg.Withdrawal.Presets)
	assert.Equal(t, 30*time.Minute, cfg.Withdrawal.SessionTTL)
	assert.Equal(t, 10*time.Second, cfg.Ledger.Timeout)
}

func TestLoad_EnvOverride(t *testing.T) {
	os.Setenv("PGW_LEDGER_BASE_URL", "https://ledger.internal/api/v1/tenant")
	os.Setenv("PGW_WITHDRAWAL_MIN_AMOUNT", "2000")
	defer os.Unsetenv("PGW_LEDGER_BASE_URL")
	defer os.Unsetenv("PGW_WITHDRAWAL_MIN_AMOUNT")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "https://ledger.internal/api/v1/tenant", cfg.Ledger.BaseURL)
	assert.Equal(t, int64(2000), cfg.Withdrawal.MinAmount)
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  port: 9999
withdrawal:
  fee_rate: 0.03
  min_amount: 500
ledger:
  timeout: 5s
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, 0.03, cfg.Withdrawal.FeeRate)
	assert.Equal(t, int64(500), cfg.Withdrawal.MinAmount)
	assert.Equal(t, 5*time.Second, cfg.Ledger.Timeout)
}

func TestLoad_RejectsBadFeeRate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("withdrawal:\n  fee_rate: 1.5\n"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{
		Host: "db", Port: 5432, User: "u", Password: "p",
		DBName: "payout_gateway", SSLMode: "disable",
	}
	assert.Equal(t, "postgres://u:p@db:5432/payout_gateway?sslmode=disable", d.DSN())
}

func TestRedisConfig_Addr(t *testing.T) {
	r := RedisConfig{Host: "cache", Port: 6380}
	assert.Equal(t, "cache:6380", r.Addr())
}
