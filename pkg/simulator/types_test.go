package simulator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalsim/vitalsim/pkg/config"
	"github.com/vitalsim/vitalsim/pkg/history"
)

func TestConfigValidate(t *testing.T) {
	t.Run("empty config gets defaults", func(t *testing.T) {
		cfg := &Config{}

		require.NoError(t, cfg.Validate())

		assert.Equal(t, defaultListenAddr, cfg.ListenAddr)
		assert.Equal(t, defaultLogLevel, cfg.LogLevel)
		assert.Equal(t, defaultTickInterval, time.Duration(cfg.TickInterval))
		assert.Equal(t, defaultAbnormalChance, cfg.AbnormalChance)
		assert.Equal(t, history.DefaultCapacity, cfg.HistorySize)
		assert.Len(t, cfg.Vitals, 5)
	})

	t.Run("default vitals are valid", func(t *testing.T) {
		cfg := DefaultConfig()

		require.NoError(t, cfg.Validate())

		for _, vital := range cfg.Vitals {
			assert.LessOrEqual(t, vital.Min, vital.Max, vital.Name)
			assert.LessOrEqual(t, vital.AbnormalMin, vital.AbnormalMax, vital.Name)
		}
	})

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:    "tick interval too small",
			mutate:  func(c *Config) { c.TickInterval = config.Duration(time.Millisecond) },
			wantErr: errTickIntervalTooSmall,
		},
		{
			name:    "negative abnormal chance",
			mutate:  func(c *Config) { c.AbnormalChance = -0.1 },
			wantErr: errInvalidAbnormalChance,
		},
		{
			name:    "abnormal chance above one",
			mutate:  func(c *Config) { c.AbnormalChance = 1.5 },
			wantErr: errInvalidAbnormalChance,
		},
		{
			name:    "negative history size",
			mutate:  func(c *Config) { c.HistorySize = -1 },
			wantErr: errInvalidHistorySize,
		},
		{
			name:    "empty vital name",
			mutate:  func(c *Config) { c.Vitals[0].Name = "" },
			wantErr: errInvalidVitalName,
		},
		{
			name:    "vital name with invalid characters",
			mutate:  func(c *Config) { c.Vitals[0].Name = "heart rate!" },
			wantErr: errInvalidVitalName,
		},
		{
			name:    "duplicate vital names",
			mutate:  func(c *Config) { c.Vitals[1].Name = c.Vitals[0].Name },
			wantErr: errDuplicateVitalName,
		},
		{
			name:    "missing unit",
			mutate:  func(c *Config) { c.Vitals[0].Unit = "" },
			wantErr: errUnitRequired,
		},
		{
			name:    "inverted normal range",
			mutate:  func(c *Config) { c.Vitals[0].Min = 120; c.Vitals[0].Max = 60 },
			wantErr: errInvalidRange,
		},
		{
			name:    "inverted abnormal range",
			mutate:  func(c *Config) { c.Vitals[0].AbnormalMin = 200; c.Vitals[0].AbnormalMax = 100 },
			wantErr: errInvalidAbnormalRange,
		},
		{
			name:    "precision out of bounds",
			mutate:  func(c *Config) { c.Vitals[0].Precision = 7 },
			wantErr: errInvalidPrecision,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			assert.ErrorIs(t, cfg.Validate(), tt.wantErr)
		})
	}
}
