package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err, "an explicit path must exist")

	cfg, err = Load("")
	require.NoError(t, err)

	assert.Equal(t, "cooling-calculator", cfg.App.Name)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, "water", cfg.Engine.DefaultFluidType)
	assert.Equal(t, 8760.0, cfg.Commercial.OperatingHours)
	assert.Empty(t, cfg.Catalog.Path)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_FileOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `app:
  name: cooling-calculator
  mode: production
  log_level: warn
regional:
  default_region: nordic
  default_subregion: norway
engine:
  default_fluid_type: propylene_glycol
  default_glycol_percent: 30
commercial:
  electricity_cost: 0.10
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Mode)
	assert.Equal(t, "nordic", cfg.Regional.DefaultRegion)
	assert.Equal(t, "propylene_glycol", cfg.Engine.DefaultFluidType)
	assert.Equal(t, 30.0, cfg.Engine.DefaultGlycolPercent)
	assert.Equal(t, 0.10, cfg.Commercial.ElectricityCost)
	// Untouched sections keep their defaults.
	assert.Equal(t, 8760.0, cfg.Commercial.OperatingHours)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("COOLINGCALC_ENGINE_DEFAULT_GLYCOL_PERCENT", "25")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 25.0, cfg.Engine.DefaultGlycolPercent)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg, err := Load("")
		require.NoError(t, err)
		return cfg
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad mode", func(c *Config) { c.App.Mode = "staging" }},
		{"bad log level", func(c *Config) { c.App.LogLevel = "trace" }},
		{"subregion without region", func(c *Config) { c.Regional.DefaultSubregion = "norway" }},
		{"unknown fluid", func(c *Config) { c.Engine.DefaultFluidType = "brine" }},
		{"glycol out of range", func(c *Config) { c.Engine.DefaultGlycolPercent = 70 }},
		{"negative altitude", func(c *Config) { c.Engine.AltitudeM = -10 }},
		{"zero operating hours", func(c *Config) { c.Commercial.OperatingHours = 0 }},
		{"free electricity", func(c *Config) { c.Commercial.ElectricityCost = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
