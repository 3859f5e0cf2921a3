package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestNewConfig(t *testing.T) {
	t.Run("uses defaults", func(t *testing.T) {
		cfg := newConfig(viper.New())

		assert.Equal(t, int32(DefaultPort), cfg.HTTP.Port)
		assert.Equal(t, "0.0.0.0", cfg.HTTP.Host)
		assert.Equal(t, 2, cfg.Global.ShutdownTimeoutInSeconds)
		assert.True(t, cfg.Requests.ProcessEnabled)
		assert.Equal(t, DefaultProcessSchedule, cfg.Requests.ProcessSchedule)
		assert.Empty(t, cfg.Audit.Dir)
		assert.True(t, cfg.Library.SeedDemoData)
		assert.False(t, cfg.Library.ReadOnly)
	})

	t.Run("reads environment", func(t *testing.T) {
		t.Setenv("PORT", "9000")
		t.Setenv("REQUESTS_PROCESS_SCHEDULE", "*/5 * * * *")
		t.Setenv("AUDIT_DIR", "/tmp/library-audit")
		t.Setenv("SEED_DEMO_DATA", "false")
		t.Setenv("READ_ONLY", "true")

		cfg := NewConfig()

		assert.Equal(t, int32(9000), cfg.HTTP.Port)
		assert.Equal(t, "*/5 * * * *", cfg.Requests.ProcessSchedule)
		assert.Equal(t, "/tmp/library-audit", cfg.Audit.Dir)
		assert.False(t, cfg.Library.SeedDemoData)
		assert.True(t, cfg.Library.ReadOnly)
	})
}
