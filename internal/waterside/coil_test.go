package waterside

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grit-hub-leg/thermal-calculator-2/internal/fluids"
	"github.com/grit-hub-leg/thermal-calculator-2/pkg/models"
)

func coilProduct() *models.Product {
	p := testProduct()
	p.Coil.FinSpacingMM = 1.6
	p.Coil.FinThicknessMM = 0.12
	p.Coil.FinAreaM2 = 5.0
	p.Dimensions = models.Dimensions{HeightMM: 2000, WidthMM: 600}
	return p
}

func TestCoilAnalysis(t *testing.T) {
	solver := NewSolver(coilProduct(), fluids.Water)

	water, err := solver.Solve(50, 15, nil, nil)
	require.NoError(t, err)

	analysis, err := solver.CoilAnalysis(water, 12000, 24)
	require.NoError(t, err)

	assert.Greater(t, analysis.WaterSideHTC, 0.0)
	assert.Greater(t, analysis.AirSideHTC, 0.0)
	assert.Greater(t, analysis.FinEfficiency, 0.0)
	assert.LessOrEqual(t, analysis.FinEfficiency, 1.0)
	assert.Greater(t, analysis.OverallU, 0.0)
	assert.Less(t, analysis.OverallU, analysis.WaterSideHTC,
		"overall U cannot exceed the best film coefficient")
	assert.Greater(t, analysis.NTU, 0.0)
	assert.GreaterOrEqual(t, analysis.Effectiveness, 0.0)
	assert.LessOrEqual(t, analysis.Effectiveness, 1.0)
}

func TestCoilAnalysis_MoreAirRaisesUA(t *testing.T) {
	solver := NewSolver(coilProduct(), fluids.Water)

	water, err := solver.Solve(50, 15, nil, nil)
	require.NoError(t, err)

	low, err := solver.CoilAnalysis(water, 6000, 24)
	require.NoError(t, err)
	high, err := solver.CoilAnalysis(water, 16000, 24)
	require.NoError(t, err)

	assert.Greater(t, high.AirSideHTC, low.AirSideHTC)
	assert.Greater(t, high.UA, low.UA)
}

func TestCoilAnalysis_RejectsZeroAirFlow(t *testing.T) {
	solver := NewSolver(coilProduct(), fluids.Water)

	water, err := solver.Solve(50, 15, nil, nil)
	require.NoError(t, err)

	_, err = solver.CoilAnalysis(water, 0, 24)
	assert.Error(t, err)
}
