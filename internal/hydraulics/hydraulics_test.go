package hydraulics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReynolds(t *testing.T) {
	tests := []struct {
		name      string
		velocity  float64
		diameter  float64
		density   float64
		viscosity float64
		expected  float64
		wantErr   bool
	}{
		{
			name:     "water in 12mm tube",
			velocity: 1.0, diameter: 0.012, density: 998.0, viscosity: 0.001,
			expected: 11976.0,
		},
		{
			name:     "zero velocity",
			velocity: 0.0, diameter: 0.012, density: 998.0, viscosity: 0.001,
			expected: 0.0,
		},
		{
			name:     "zero diameter rejected",
			velocity: 1.0, diameter: 0.0, density: 998.0, viscosity: 0.001,
			wantErr: true,
		},
		{
			name:     "zero viscosity rejected",
			velocity: 1.0, diameter: 0.012, density: 998.0, viscosity: 0.0,
			wantErr: true,
		},
		{
			name:     "negative velocity rejected",
			velocity: -1.0, diameter: 0.012, density: 998.0, viscosity: 0.001,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			re, err := Reynolds(tt.velocity, tt.diameter, tt.density, tt.viscosity)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrNonPhysicalInput)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, re, 1e-6)
		})
	}
}

func TestFrictionFactor_Laminar(t *testing.T) {
	f, err := FrictionFactor(1000, 0.0001)
	require.NoError(t, err)
	assert.InDelta(t, 0.064, f, 1e-9)
}

func TestFrictionFactor_Turbulent(t *testing.T) {
	f, err := FrictionFactor(100000, 0.0001)
	require.NoError(t, err)
	// Haaland value for smooth-ish pipe at Re=1e5 is around 0.018.
	assert.InDelta(t, 0.0185, f, 0.002)
}

func TestFrictionFactor_ContinuousAtRegimeBoundaries(t *testing.T) {
	const roughness = 0.0002 / 0.012

	below, err := FrictionFactor(ReynoldsLaminarLimit-1e-6, roughness)
	require.NoError(t, err)
	at, err := FrictionFactor(ReynoldsLaminarLimit, roughness)
	require.NoError(t, err)
	assert.InDelta(t, below, at, 1e-6, "laminar boundary must be continuous")

	atUpper, err := FrictionFactor(ReynoldsTurbulentLimit, roughness)
	require.NoError(t, err)
	above, err := FrictionFactor(ReynoldsTurbulentLimit+1e-6, roughness)
	require.NoError(t, err)
	assert.InDelta(t, atUpper, above, 1e-6, "turbulent boundary must be continuous")
}

func TestFrictionFactor_TransitionBandStaysBetweenEndpoints(t *testing.T) {
	const roughness = 0.001

	fLam, err := FrictionFactor(ReynoldsLaminarLimit, roughness)
	require.NoError(t, err)
	fTurb, err := FrictionFactor(ReynoldsTurbulentLimit, roughness)
	require.NoError(t, err)

	lo := math.Min(fLam, fTurb)
	hi := math.Max(fLam, fTurb)
	for re := 2300.0; re <= 4000.0; re += 100.0 {
		f, err := FrictionFactor(re, roughness)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, f, lo, "Re=%g", re)
		assert.LessOrEqual(t, f, hi, "Re=%g", re)
	}
}

func TestFrictionFactor_NonPhysical(t *testing.T) {
	_, err := FrictionFactor(0, 0.0001)
	assert.ErrorIs(t, err, ErrNonPhysicalInput)

	_, err = FrictionFactor(5000, -0.1)
	assert.ErrorIs(t, err, ErrNonPhysicalInput)
}

func TestDarcyWeisbach(t *testing.T) {
	// f=0.02, L=10m, D=0.05m, water, 2 m/s: ΔP = 0.02*(10/0.05)*(998*4/2) = 7984 Pa
	dp, err := DarcyWeisbach(0.02, 10, 0.05, 998, 2)
	require.NoError(t, err)
	assert.InDelta(t, 7984.0, dp, 1e-6)
}

func TestDarcyWeisbach_NonPhysical(t *testing.T) {
	_, err := DarcyWeisbach(0.02, 10, 0, 998, 2)
	assert.ErrorIs(t, err, ErrNonPhysicalInput)
}

func TestPipeVelocity(t *testing.T) {
	// 8.6 m³/h in a 12 mm tube.
	v, err := PipeVelocity(8.6, 0.012)
	require.NoError(t, err)
	area := math.Pi * 0.006 * 0.006
	assert.InDelta(t, (8.6/3600.0)/area, v, 1e-9)

	_, err = PipeVelocity(8.6, 0)
	assert.ErrorIs(t, err, ErrNonPhysicalInput)
}
