package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/cmlabs-hris/presence-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("JWT_SECRET_KEY", "jwt-secret")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_MAX_CONNS", "10")
	t.Setenv("DB_MIN_CONNS", "2")
	t.Setenv("APP_TIMEZONE", "Europe/Rome")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.example.com, http://localhost:3000,")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "postgres://postgres:secret@db:5432/presence?sslmode=disable", cfg.DatabaseURL())
	assert.Equal(t, int32(10), cfg.Database.MaxConns)
	assert.Equal(t, int32(2), cfg.Database.MinConns)
	assert.Equal(t, "Europe/Rome", cfg.Location().String())
	assert.Equal(t, []string{"https://app.example.com", "http://localhost:3000"}, cfg.App.AllowedOrigins)
}

func TestLoad_MissingSecrets(t *testing.T) {
	t.Setenv("DB_PASSWORD", "")
	t.Setenv("JWT_SECRET_KEY", "")

	_, err := Load()

	assert.ErrorContains(t, err, "DB_PASSWORD is required")
}

func TestLoad_InvalidNumbers(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("JWT_SECRET_KEY", "jwt-secret")
	t.Setenv("DB_MAX_CONNS", "many")

	_, err := Load()

	assert.ErrorContains(t, err, "invalid DB_MAX_CONNS")
}

func TestConfig_Validate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Database: DatabaseConfig{Password: "p", MaxConns: 5, MinConns: 1},
			JWT:      JWTConfig{Secret: "s"},
			App:      AppConfig{Timezone: "UTC"},
		}
	}

	assert.NoError(t, base().Validate())

	cfg := base()
	cfg.Database.MinConns = 10
	assert.ErrorContains(t, cfg.Validate(), "DB_MIN_CONNS")

	cfg = base()
	cfg.App.Timezone = "Mars/Olympus"
	assert.ErrorContains(t, cfg.Validate(), "APP_TIMEZONE")
}

func TestConfig_SlogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, (&Config{App: AppConfig{LogLevel: "debug"}}).SlogLevel())
	assert.Equal(t, slog.LevelWarn, (&Config{App: AppConfig{LogLevel: "WARN"}}).SlogLevel())
	assert.Equal(t, slog.LevelInfo, (&Config{App: AppConfig{LogLevel: "loud"}}).SlogLevel())
}

// ===== COMPANY DEFAULTS =====

func writeDefaults(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "company.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadCompanyDefaults(t *testing.T) {
	path := writeDefaults(t, `
work_schedule:
  start_time: "09:00"
  end_time: "18:00"
  tolerance_minutes: 10
  working_days: [monday, tuesday, wednesday, thursday, friday]
geofence:
  latitude: 45.4642
  longitude: 9.19
  radius_meters: 300
`)

	defaults, err := LoadCompanyDefaults(path)
	require.NoError(t, err)

	ws := defaults.ScheduleRequest()
	require.NotNil(t, ws)
	entity := ws.ToEntity()
	assert.Equal(t, "09:00", entity.StartTime.String())
	assert.Equal(t, 10, entity.ToleranceMinutes)
	assert.True(t, entity.WorkingDays[1])
	assert.False(t, entity.WorkingDays[0])

	gf := defaults.GeofenceRequest()
	require.NotNil(t, gf)
	assert.InDelta(t, 45.4642, *gf.Latitude, 1e-9)
	assert.Equal(t, 300, gf.RadiusMeters)
	assert.True(t, gf.CheckoutEnabled)
}

func TestLoadCompanyDefaults_PartialAndInvalid(t *testing.T) {
	defaults, err := LoadCompanyDefaults(writeDefaults(t, "geofence:\n  checkout_enabled: false\n"))
	require.NoError(t, err)
	assert.Nil(t, defaults.ScheduleRequest())
	assert.False(t, defaults.GeofenceRequest().CheckoutEnabled)

	_, err = LoadCompanyDefaults(writeDefaults(t, `
work_schedule:
  start_time: "18:00"
  end_time: "09:00"
  working_days: [monday]
`))
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "end_time", verrs[0].Field)

	_, err = LoadCompanyDefaults(writeDefaults(t, "work_schedule: [not, a, map]"))
	assert.ErrorContains(t, err, "parse company defaults")

	_, err = LoadCompanyDefaults(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "read company defaults")
}

func TestCompanyDefaults_NilSafe(t *testing.T) {
	var d *CompanyDefaults
	assert.Nil(t, d.ScheduleRequest())
	assert.Nil(t, d.GeofenceRequest())
}
