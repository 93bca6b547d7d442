package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
[salon_api]
url = "http://localhost:9000"

[auth]
jwt_secret = "secret"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "*", cfg.Server.CORSOrigin)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, 10, cfg.Booking.OpeningHour)
	assert.Equal(t, 20, cfg.Booking.ClosingHour)
	assert.Equal(t, 30, cfg.Booking.SlotMinutes)
	assert.Equal(t, 30, cfg.Booking.SelectionTTLMinutes)
}

func TestLoad_FullFile(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090
cors_allowed_origin = "https://salon.example.com"

[metrics]
enabled = true
service_name = "gateway-test"

[auth]
jwt_secret = "secret"
token_ttl_minutes = 120

[salon_api]
url = "http://salon:8080"
timeout = 3

[booking]
opening_hour = 9
closing_hour = 18
slot_minutes = 15
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "https://salon.example.com", cfg.Server.CORSOrigin)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "gateway-test", cfg.Metrics.ServiceName)
	assert.Equal(t, 120, cfg.Auth.TokenTTLMinutes)
	assert.Equal(t, "http://salon:8080", cfg.SalonAPI.URL)
	assert.Equal(t, 3, cfg.SalonAPI.Timeout)
	assert.Equal(t, 9, cfg.Booking.OpeningHour)
	assert.Equal(t, 18, cfg.Booking.ClosingHour)
	assert.Equal(t, 15, cfg.Booking.SlotMinutes)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "missing salon api url",
			body: "[auth]\njwt_secret = \"secret\"\n",
		},
		{
			name: "missing jwt secret",
			body: "[salon_api]\nurl = \"http://localhost:9000\"\n",
		},
		{
			name: "inverted business hours",
			body: `
[salon_api]
url = "http://localhost:9000"
[auth]
jwt_secret = "secret"
[booking]
opening_hour = 20
closing_hour = 10
`,
		},
		{
			name: "closing at midnight",
			body: `
[salon_api]
url = "http://localhost:9000"
[auth]
jwt_secret = "secret"
[booking]
opening_hour = 10
closing_hour = 24
`,
		},
		{
			name: "slot minutes not dividing the hour",
			body: `
[salon_api]
url = "http://localhost:9000"
[auth]
jwt_secret = "secret"
[booking]
slot_minutes = 25
`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
