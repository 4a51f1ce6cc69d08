package efficiency

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grit-hub-leg/thermal-calculator-2/pkg/models"
)

func activeProduct() *models.Product {
	return &models.Product{
		ID:                   "CL20_42U600",
		Series:               models.SeriesActive,
		MaxCoolingCapacityKW: 65,
		Efficiency:           models.EfficiencySpecs{MinPUE: 1.035},
	}
}

func hpcProduct() *models.Product {
	return &models.Product{
		ID:                   "CL23_48U800",
		Series:               models.SeriesHPC,
		MaxCoolingCapacityKW: 204,
		Efficiency:           models.EfficiencySpecs{MinPUE: 1.02, RatedEER: 100},
		Dimensions:           models.Dimensions{WidthMM: 800},
	}
}

func TestCalculate_Active(t *testing.T) {
	result := Calculate(activeProduct(), 50, 500)

	require.True(t, result.COP.Finite)
	assert.InDelta(t, 100.0, result.COP.Value, 1e-9)

	require.True(t, result.EER.Finite)
	assert.InDelta(t, 50*BTUPerKW/500, result.EER.Value, 1e-9)

	assert.InDelta(t, (50+0.5)/50, result.ActualPUE, 1e-9)
	assert.Equal(t, 1.035, result.ProductMinPUE)
	assert.Equal(t, 0.5, result.PowerKW)
	assert.False(t, result.HPCOptimized)
}

func TestCalculate_PassiveHasNoFiniteRatios(t *testing.T) {
	product := activeProduct()
	product.Series = models.SeriesPassive

	result := Calculate(product, 25, 0)

	assert.False(t, result.COP.Finite)
	assert.False(t, result.EER.Finite)
	assert.InDelta(t, 1.0, result.ActualPUE, 1e-9)
	assert.Zero(t, result.PowerKW)
}

func TestCalculate_HPCScalesWithLoad(t *testing.T) {
	product := hpcProduct()

	// Half load: factor = 0.7 + 0.3*0.5 = 0.85.
	half := Calculate(product, 102, 2000)
	require.True(t, half.EER.Finite)
	assert.InDelta(t, 85.0, half.EER.Value, 1e-9)
	assert.InDelta(t, 85.0/3.412, half.COP.Value, 1e-9)
	assert.True(t, half.HPCOptimized)
	assert.InDelta(t, 50.0, half.LoadPercent, 1e-9)

	// Full load reaches the rated figure.
	full := Calculate(product, 204, 4000)
	assert.InDelta(t, 100.0, full.EER.Value, 1e-9)

	// kW per metre of the 0.8 m door.
	assert.InDelta(t, 204/0.8, full.CoolingDensityKW, 1e-9)
}

func TestCalculate_HPCLoadFactorIsMonotone(t *testing.T) {
	product := hpcProduct()

	low := Calculate(product, 51, 1000)
	high := Calculate(product, 153, 3000)
	assert.Less(t, low.EER.Value, high.EER.Value)
}
