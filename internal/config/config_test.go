package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const minimalConfig = `
[server]
http_port = 8084

[database]
host = "localhost"
port = 5432
user = "postgres"
password = "postgres"
dbname = "smc_appointments"
sslmode = "disable"

[business]
default_owner_id = "owner-1"
`

func TestLoad_BusinessDefaultsApplied(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	// Рабочие часы и шаг сетки не заданы — подставлены значения по умолчанию
	assert.Equal(t, domain.DefaultOpeningTime, cfg.Business.OpeningTime)
	assert.Equal(t, domain.DefaultClosingTime, cfg.Business.ClosingTime)
	assert.Equal(t, domain.DefaultSlotGranularityMinutes, cfg.Business.SlotGranularityMinutes)
}

func TestLoad_ExplicitBusinessValuesKept(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig+`
opening_time = "08:00"
closing_time = "20:00"
slot_granularity_minutes = 15
`))
	require.NoError(t, err)

	assert.Equal(t, "08:00", cfg.Business.OpeningTime)
	assert.Equal(t, "20:00", cfg.Business.ClosingTime)
	assert.Equal(t, 15, cfg.Business.SlotGranularityMinutes)
}

func TestLoad_InvalidHoursRejected(t *testing.T) {
	_, err := Load(writeConfig(t, minimalConfig+`
opening_time = "20:00"
closing_time = "08:00"
`))
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_UnknownTimezoneRejected(t *testing.T) {
	_, err := Load(writeConfig(t, minimalConfig+`
timezone = "Mars/Olympus"
`))
	require.ErrorIs(t, err, ErrInvalidConfig)
}
