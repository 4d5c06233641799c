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
	// Run from a temp dir so a developer's local config.yaml is not picked up.
	tmp := t.TempDir()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmp))
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "points_exchange", cfg.Database.DBName)
	assert.Equal(t, int32(20), cfg.Database.MaxConns)
	assert.Equal(t, 24*time.Hour, cfg.JWT.Expiry)
	assert.Equal(t, "confidential-points-exchange", cfg.JWT.Issuer)
	assert.Equal(t, 10*time.Second, cfg.Oracle.Timeout)
	assert.Equal(t, 24*time.Hour, cfg.Oracle.VerifiedTTL)
	assert.Equal(t, "", cfg.Oracle.Endpoint)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_FromFile(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "config.yaml")
	content := []byte(`
server:
  port: 9090
  mode: release
database:
  dbname: exchange_test
engine:
  seal_key: "aabbccddeeff00112233445566778899aabbccddeeff00112233445566778899"
oracle:
  endpoint: "http://oracle.internal:7000/decrypt"
  proof_secret: "shared-proof-secret"
owner:
  bootstrap_id: "7b0e9f86-33f5-4f9f-9b88-6f0d9c2a9c11"
log:
  level: debug
  pretty: true
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, "exchange_test", cfg.Database.DBName)
	assert.Equal(t, "http://oracle.internal:7000/decrypt", cfg.Oracle.Endpoint)
	assert.Equal(t, "shared-proof-secret", cfg.Oracle.ProofSecret)
	assert.Equal(t, "7b0e9f86-33f5-4f9f-9b88-6f0d9c2a9c11", cfg.Owner.BootstrapID)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Pretty)
}

func TestLoad_EnvOverride(t *testing.T) {
	tmp := t.TempDir()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmp))
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	t.Setenv("CPX_SERVER_PORT", "7777")
	t.Setenv("CPX_DATABASE_HOST", "db.internal")
	t.Setenv("CPX_ORACLE_PROOF_SECRET", "env-secret")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 7777, cfg.Server.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "env-secret", cfg.Oracle.ProofSecret)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{
		Host: "localhost", Port: 5432, User: "u", Password: "p",
		DBName: "points_exchange", SSLMode: "disable",
	}
	assert.Equal(t, "postgres://u:p@localhost:5432/points_exchange?sslmode=disable", d.DSN())
}

func TestRedisConfig_Addr(t *testing.T) {
	r := RedisConfig{Host: "cache.internal", Port: 6380}
	assert.Equal(t, "cache.internal:6380", r.Addr())
}
