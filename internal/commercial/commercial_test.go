package commercial

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grit-hub-leg/thermal-calculator-2/pkg/models"
)

func defaultInputs() Inputs {
	return Inputs{
		OperatingHours:  8760,
		ElectricityCost: 0.15,
		CarbonFactor:    0.5,
	}
}

func activeProduct() *models.Product {
	return &models.Product{
		ID:     "CL20_42U600",
		Series: models.SeriesActive,
		Efficiency: models.EfficiencySpecs{
			OperationalSavings: 0.8,
		},
	}
}

func passiveProduct() *models.Product {
	return &models.Product{ID: "CL21_42U800", Series: models.SeriesPassive}
}

func TestEnergyCosts(t *testing.T) {
	costs := EnergyCosts(500, 8760, 0.15)

	assert.Equal(t, 0.5, costs.PowerKW)
	assert.InDelta(t, 4380, costs.AnnualEnergyKWh, 1e-9)
	assert.InDelta(t, 657, costs.AnnualCost, 1e-9)
}

func TestEnvironmental(t *testing.T) {
	impact := Environmental(4380, 0.5)

	assert.InDelta(t, 2190, impact.AnnualCarbonKG, 1e-9)
	assert.InDelta(t, 2190*0.039, impact.TreeEquivalent, 1e-9)
	assert.InDelta(t, 2190/4600.0, impact.CarEquivalent, 1e-9)
}

func TestCapitalCost(t *testing.T) {
	assert.InDelta(t, 10000+500*50, CapitalCost(activeProduct(), 50), 1e-9)
	assert.InDelta(t, 12000+600*25, CapitalCost(passiveProduct(), 25), 1e-9)
}

func TestCalculate_ActiveBaselineFromOperationalSavings(t *testing.T) {
	result := Calculate(activeProduct(), 50, 500, defaultInputs())

	// 80% operational savings means the baseline draws five times as much.
	assert.InDelta(t, 2.5, result.TraditionalEnergy.PowerKW, 1e-9)
	assert.Greater(t, result.AnnualSavings, 0.0)

	require.True(t, result.ROIPercent.Finite)
	require.True(t, result.PaybackYears.Finite)
	assert.InDelta(t, result.CapitalCost/result.AnnualSavings, result.PaybackYears.Value, 1e-9)
}

func TestCalculate_PassiveComparesAgainstNominalActive(t *testing.T) {
	result := Calculate(passiveProduct(), 25, 0, defaultInputs())

	assert.Zero(t, result.Energy.AnnualCost)
	assert.Zero(t, result.Environmental.AnnualCarbonKG)

	// Baseline is a tenth of the load: 2.5 kW.
	assert.InDelta(t, 2.5, result.TraditionalEnergy.PowerKW, 1e-9)
	assert.InDelta(t, result.TraditionalEnergy.AnnualCost, result.AnnualSavings, 1e-9)
}

func TestCalculate_NoSavingsHasNoFinitePayback(t *testing.T) {
	product := activeProduct()
	product.Efficiency.OperationalSavings = 0

	// Baseline equals own consumption, so savings are zero.
	result := Calculate(product, 50, 500, defaultInputs())

	assert.InDelta(t, 0, result.AnnualSavings, 1e-9)
	assert.False(t, result.PaybackYears.Finite)
	require.True(t, result.ROIPercent.Finite)
	assert.InDelta(t, 0, result.ROIPercent.Value, 1e-9)
}

func TestTCO(t *testing.T) {
	summary := TCO(35000, 1000)

	assert.Equal(t, 10, summary.LifetimeYears)
	assert.InDelta(t, 10000, summary.LifetimeEnergyCost, 1e-9)
	// 2% of capital per year over the service life.
	assert.InDelta(t, 7000, summary.LifetimeMaintenance, 1e-9)
	assert.InDelta(t, 52000, summary.TotalCost, 1e-9)
}

func TestCalculate_IncludesTCO(t *testing.T) {
	result := Calculate(activeProduct(), 50, 500, defaultInputs())

	assert.Equal(t, 10, result.TCO.LifetimeYears)
	assert.InDelta(t, result.Energy.AnnualCost*10, result.TCO.LifetimeEnergyCost, 1e-9)
	assert.Greater(t, result.TCO.TotalCost, result.CapitalCost)
}
