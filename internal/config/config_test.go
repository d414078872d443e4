package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/drill/internal/spacedrep"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(NewViper())
	require.NoError(t, err)

	assert.Equal(t, "", cfg.DBPath)
	assert.Equal(t, "127.0.0.1:8000", cfg.Addr)
	assert.Equal(t, spacedrep.NameSpacedRepetition, cfg.Scheduler)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.False(t, cfg.IsDev())
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("DRILL_SCHEDULER", "simple")
	t.Setenv("DRILL_ADDR", ":9000")
	t.Setenv("DRILL_LOG_LEVEL", "debug")
	t.Setenv("DRILL_DB", "/tmp/drill-test.db")

	cfg, err := Load(NewViper())
	require.NoError(t, err)

	assert.Equal(t, "simple", cfg.Scheduler)
	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/drill-test.db", cfg.DBPath)
}

func TestLoad_OverrideWinsOverEnv(t *testing.T) {
	t.Setenv("DRILL_SCHEDULER", "simple")
	v := NewViper()
	v.Set(KeyScheduler, spacedrep.NameSpacedRepetition)

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, spacedrep.NameSpacedRepetition, cfg.Scheduler)
}

func TestValidate_UnknownScheduler(t *testing.T) {
	v := NewViper()
	v.Set(KeyScheduler, "sm2")

	_, err := Load(v)
	require.Error(t, err)

	var unknown *spacedrep.UnknownSchedulerError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "sm2", unknown.Name)
}

func TestValidate_ReportsAllErrors(t *testing.T) {
	cfg := &Config{
		Addr:      " ",
		Scheduler: "nope",
		LogLevel:  "loud",
		LogFormat: "xml",
		Mode:      "staging",
	}
	err := cfg.Validate()
	require.Error(t, err)
	for _, key := range []string{KeyScheduler, KeyAddr, KeyLogLevel, KeyLogFormat, KeyMode} {
		assert.Contains(t, err.Error(), key)
	}
}
