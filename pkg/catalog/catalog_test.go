package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grit-hub-leg/thermal-calculator-2/pkg/models"
)

func TestNew_EmptyIsConfigurationError(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrEmptyCatalog)
}

func TestNew_RejectsBadEntries(t *testing.T) {
	fan := &models.FanSpecs{NominalAirFlow: 3000, MaxAirFlow: 4000, NominalPower: 50, NominalNoise: 52}

	_, err := New([]*models.Product{{ID: "X1", Series: "turbo", Fan: fan}})
	assert.Error(t, err)

	_, err = New([]*models.Product{
		{ID: "X1", Series: models.SeriesActive, Fan: fan},
		{ID: "X1", Series: models.SeriesActive, Fan: fan},
	})
	assert.Error(t, err)
}

func TestNew_RejectsMissingSeriesSpecs(t *testing.T) {
	_, err := New([]*models.Product{{ID: "X1", Series: models.SeriesActive}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fan specs")

	_, err = New([]*models.Product{{ID: "X2", Series: models.SeriesHPC}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fan specs")

	_, err = New([]*models.Product{{ID: "X3", Series: models.SeriesPassive}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "passive specs")
}

func TestBuiltinCatalog(t *testing.T) {
	c, err := New(BuiltinProducts())
	require.NoError(t, err)

	assert.Equal(t, 7, c.Len())
	assert.Len(t, c.BySeries(models.SeriesActive), 3)
	assert.Len(t, c.BySeries(models.SeriesPassive), 3)
	assert.Len(t, c.BySeries(models.SeriesHPC), 1)

	hpc := c.ByID("CL23_48U800")
	require.NotNil(t, hpc)
	assert.Equal(t, 204.0, hpc.MaxCoolingCapacityKW)
	assert.Equal(t, 8, hpc.NumberOfFans)
	assert.Equal(t, 7.0, hpc.Water.NominalDeltaT)

	assert.Nil(t, c.ByID("CL99"))
}

func TestNew_SortsValveOptions(t *testing.T) {
	c, err := New(BuiltinProducts())
	require.NoError(t, err)

	for _, p := range c.Products() {
		options := p.ValveOptions
		for i := 1; i < len(options); i++ {
			assert.LessOrEqual(t, options[i-1].MaxFlowRate, options[i].MaxFlowRate,
				"valve options of %s are not sorted", p.ID)
		}
	}
}

func TestBuiltin_SeriesInvariants(t *testing.T) {
	for _, p := range BuiltinProducts() {
		if p.IsPassive() {
			assert.NotNil(t, p.Passive, "%s needs a passive envelope", p.ID)
			assert.Nil(t, p.Fan, "%s must not carry fan specs", p.ID)
			assert.Zero(t, p.NumberOfFans)
		} else {
			assert.NotNil(t, p.Fan, "%s needs fan specs", p.ID)
			assert.Positive(t, p.NumberOfFans)
		}
		assert.Positive(t, p.Water.NominalDeltaT)
		assert.NotEmpty(t, p.ValveOptions)
	}
}

func TestLoad_EmptyPathUsesBuiltin(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 7, c.Len())
}

func TestLoad_FromYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "products.yaml")
	data := `products:
  - id: TEST_42U600
    name: Test Door
    series: active
    rack_type: 42U600
    max_cooling_capacity_kw: 40
    number_of_fans: 2
    fan_specs:
      nominal_air_flow: 3000
      max_air_flow: 4000
      nominal_power: 50
      nominal_noise: 52
    water_specs:
      min_inlet_temp: 10
      max_inlet_temp: 22
      nominal_delta_t: 5
    valve_options:
      - type: 2way
        size: DN 25
        max_flow_rate: 6.3
        kv_value: 10
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 1, c.Len())

	p := c.ByID("TEST_42U600")
	require.NotNil(t, p)
	assert.Equal(t, models.SeriesActive, p.Series)
	assert.Equal(t, 40.0, p.MaxCoolingCapacityKW)
	require.NotNil(t, p.Fan)
	assert.Equal(t, 3000.0, p.Fan.NominalAirFlow)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/products.yaml")
	assert.Error(t, err)
}
