package waterside

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grit-hub-leg/thermal-calculator-2/internal/fluids"
	"github.com/grit-hub-leg/thermal-calculator-2/pkg/models"
)

func testProduct() *models.Product {
	return &models.Product{
		ID:     "CL20_42U600",
		Series: models.SeriesActive,
		Coil: models.CoilGeometry{
			TubeDiameterMM: 12,
			TubeLengthM:    2.0,
			TubeRows:       4,
			NumberOfPasses: 4,
		},
		Water: models.WaterSpecs{
			MinInletTemp:        7,
			MaxInletTemp:        27,
			NominalDeltaT:       5,
			MinFlowRate:         2,
			RecommendedFlowRate: 9,
		},
	}
}

func TestSolve_NominalDeltaT(t *testing.T) {
	solver := NewSolver(testProduct(), fluids.Water)

	result, err := solver.Solve(50, 15, nil, nil)
	require.NoError(t, err)

	// 50 kW at cp=4.182 and the nominal 5 K rise.
	assert.InDelta(t, 8.62, result.FlowRate, 0.01)
	assert.InDelta(t, 5.0, result.DeltaT, 1e-9)
	assert.InDelta(t, 20.0, result.ReturnTemp, 1e-9)
	assert.Equal(t, 15.0, result.SupplyTemp)
	assert.Greater(t, result.PressureDrop, 0.0)
}

func TestSolve_GivenReturnTemp(t *testing.T) {
	solver := NewSolver(testProduct(), fluids.Water)

	result, err := solver.Solve(50, 15, models.Float64Ptr(25), nil)
	require.NoError(t, err)

	assert.InDelta(t, 10.0, result.DeltaT, 1e-9)
	assert.InDelta(t, 4.31, result.FlowRate, 0.01)
}

func TestSolve_GivenFlowRate(t *testing.T) {
	solver := NewSolver(testProduct(), fluids.Water)

	result, err := solver.Solve(50, 15, nil, models.Float64Ptr(8.62))
	require.NoError(t, err)

	assert.InDelta(t, 5.0, result.DeltaT, 0.01)
	assert.InDelta(t, 20.0, result.ReturnTemp, 0.01)
}

func TestSolve_RoundTrip(t *testing.T) {
	solver := NewSolver(testProduct(), fluids.Water)

	first, err := solver.Solve(75, 18, nil, models.Float64Ptr(11.5))
	require.NoError(t, err)

	// Feed the derived return temperature back and recover the flow.
	second, err := solver.Solve(75, 18, models.Float64Ptr(first.ReturnTemp), nil)
	require.NoError(t, err)

	assert.InEpsilon(t, 11.5, second.FlowRate, 1e-6)
}

func TestSolve_ReturnTempInvariant(t *testing.T) {
	solver := NewSolver(testProduct(), fluids.Water)

	loads := []float64{5, 25, 50, 93, 204}
	for _, load := range loads {
		result, err := solver.Solve(load, 15, nil, nil)
		require.NoError(t, err)
		assert.Greater(t, result.ReturnTemp, result.SupplyTemp)
		assert.Greater(t, result.DeltaT, 0.0)
	}
}

func TestSolve_Underconstrained(t *testing.T) {
	solver := NewSolver(testProduct(), fluids.Water)

	tests := []struct {
		name       string
		coolingKW  float64
		supplyTemp float64
		returnTemp *float64
		flowRate   *float64
	}{
		{"zero load", 0, 15, nil, nil},
		{"negative load", -10, 15, nil, nil},
		{"inverted return temp", 50, 15, models.Float64Ptr(12), nil},
		{"zero flow", 50, 15, nil, models.Float64Ptr(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := solver.Solve(tt.coolingKW, tt.supplyTemp, tt.returnTemp, tt.flowRate)
			assert.ErrorIs(t, err, ErrUnderconstrained)
		})
	}
}

func TestSolve_GlycolNeedsMoreFlow(t *testing.T) {
	product := testProduct()
	water := NewSolver(product, fluids.Water)
	glycolProps, _ := fluids.Resolve(models.FluidEthyleneGlycol, 30)
	glycol := NewSolver(product, glycolProps)

	waterResult, err := water.Solve(50, 15, nil, nil)
	require.NoError(t, err)
	glycolResult, err := glycol.Solve(50, 15, nil, nil)
	require.NoError(t, err)

	// Lower specific heat means more flow for the same load and rise.
	assert.Greater(t, glycolResult.FlowRate, waterResult.FlowRate)
}

func TestEffectiveness_Bounds(t *testing.T) {
	result := &models.WaterSideResult{
		FlowRate: 8.62, SupplyTemp: 15, ReturnTemp: 20, DeltaT: 5,
	}

	eff := Effectiveness(result, fluids.Water, 12000, 24)
	assert.GreaterOrEqual(t, eff, 0.0)
	assert.LessOrEqual(t, eff, 1.0)

	// Room at or below supply gives zero driving potential.
	assert.Zero(t, Effectiveness(result, fluids.Water, 12000, 15))
}
