package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
[server]
http_port = 8081

[database]
host = "db"
port = 5433
user = "hotel"
password = "secret"
dbname = "frontdesk"
sslmode = "disable"
tx_timeout_seconds = 5

[logs]
level = "debug"

[metrics]
enabled = true
path = "/metrics"
service_name = "hotel-frontdesk"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.ReadTimeout, "default must survive a partial file")
	assert.Equal(t, "db", cfg.Database.Host)
	assert.Equal(t, 5, cfg.Database.TxTimeoutSeconds)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HOTEL_DB_HOST", "postgres.internal")
	t.Setenv("HOTEL_HTTP_PORT", "9090")

	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "postgres.internal", cfg.Database.Host)
	assert.Equal(t, 9090, cfg.Server.HTTPPort)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
		assert.ErrorIs(t, err, ErrReadConfig)
	})

	t.Run("bad port in env", func(t *testing.T) {
		t.Setenv("HOTEL_DB_PORT", "five")
		_, err := Load(writeConfig(t, sampleConfig))
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("missing dbname", func(t *testing.T) {
		_, err := Load(writeConfig(t, "[database]\nhost = \"db\"\n"))
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: 5432, User: "u", Password: "p@ss", DBName: "hotel", SSLMode: "disable"}

	assert.Equal(t, "host=db port=5432 user=u password=p@ss dbname=hotel sslmode=disable", d.DSN())
	assert.Equal(t, "postgres://u:p%40ss@db:5432/hotel?sslmode=disable", d.MigrateURL())
}
