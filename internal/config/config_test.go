package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validConfig = `
[server]
http_port = 8080
read_timeout = 15
write_timeout = 15
idle_timeout = 60
shutdown_timeout = 10

[database]
host = "localhost"
port = 5432
user = "postgres"
password = "postgres"
dbname = "venue_booking"
sslmode = "disable"
max_open_conns = 25
max_idle_conns = 5
conn_max_lifetime = 300

[logs]
file = "logs/app.log"
level = "info"

[metrics]
enabled = true
path = "/metrics"
service_name = "venue-booking-service"

[auth]
jwt_secret = "test-secret"
token_ttl_minutes = 60
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "venue_booking", cfg.Database.DBName)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, 60, cfg.Auth.TokenTTLMinutes)
}

func TestLoad_DSN(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t,
		"host=localhost port=5432 user=postgres password=postgres dbname=venue_booking sslmode=disable",
		cfg.Database.DSN())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoad_ValidationFailures(t *testing.T) {
	tests := []struct {
		name   string
		broken string
	}{
		{"missing port", `
[database]
host = "localhost"
dbname = "venue_booking"
[auth]
jwt_secret = "s"
`},
		{"missing database", `
[server]
http_port = 8080
[auth]
jwt_secret = "s"
`},
		{"missing jwt secret", `
[server]
http_port = 8080
[database]
host = "localhost"
dbname = "venue_booking"
`},
		{"metrics enabled without path", `
[server]
http_port = 8080
[database]
host = "localhost"
dbname = "venue_booking"
[auth]
jwt_secret = "s"
[metrics]
enabled = true
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.broken))
			assert.Error(t, err)
		})
	}
}
