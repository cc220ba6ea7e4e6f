package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
[database]
dbname = "petcare"
user = "app"

[auth]
jwt_secret = "secret"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 3, cfg.Database.TxMaxRetries)
	assert.Equal(t, 10, cfg.Booking.DefaultPageLimit)
	assert.Equal(t, 100, cfg.Booking.MaxPageLimit)
	assert.Equal(t, time.Minute, cfg.Redis.StatsTTL())
	assert.Equal(t, "host=localhost port=5432 user=app password= dbname=petcare sslmode=disable", cfg.Database.DSN())
}

func TestLoad_OverridesValues(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[database]
dbname = "petcare"
tx_max_retries = 5

[auth]
jwt_secret = "secret"

[redis]
enabled = true
stats_ttl_seconds = 15

[booking]
default_page_limit = 20
max_page_limit = 50
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 5, cfg.Database.TxMaxRetries)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, 15*time.Second, cfg.Redis.StatsTTL())
	assert.Equal(t, 20, cfg.Booking.DefaultPageLimit)
}

func TestLoad_RequiresSecret(t *testing.T) {
	path := writeConfig(t, `
[database]
dbname = "petcare"
`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_InvalidLimits(t *testing.T) {
	path := writeConfig(t, `
[database]
dbname = "petcare"

[auth]
jwt_secret = "secret"

[booking]
default_page_limit = 50
max_page_limit = 10
`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
