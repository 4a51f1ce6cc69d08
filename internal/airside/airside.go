// Package airside derives the air-circuit performance of a door. Active
// doors run fan-law calculations against the product's fan bank; passive
// doors evaluate whatever air flow the servers push against the coil's
// flow and pressure envelope. HPC doors share the active air path.
package airside

import (
	"github.com/grit-hub-leg/thermal-calculator-2/pkg/models"
)

// Air properties at 20°C used throughout the air-side heat balance.
const (
	AirDensity      = 1.2   // kg/m³
	AirSpecificHeat = 1.005 // kJ/kg·K
)

// Hints carries the optional request inputs a solver may use.
type Hints struct {
	// FanSpeedPercent forces the fan speed instead of deriving it from the
	// required air flow. Active and HPC doors only.
	FanSpeedPercent *float64

	// ServerAirFlow is the air flow pushed by the servers in m³/h.
	// Passive doors only.
	ServerAirFlow *float64

	// ServerPressure is the static pressure available from the server
	// fans in Pa. Passive doors only.
	ServerPressure *float64

	// AirDensity overrides the sea-level air density used to size the
	// required air flow, in kg/m³. Zero means the 20°C default.
	AirDensity float64
}

func (h Hints) density() float64 {
	if h.AirDensity > 0 {
		return h.AirDensity
	}
	return AirDensity
}

// Solver derives air-side performance for one door variant. Insufficient
// physical conditions are reported in the result, never as an error.
type Solver interface {
	Solve(coolingKW, roomTemp, desiredTemp float64, hints Hints) *models.AirSideResult
}

// ForProduct returns the solver matching the product's series.
func ForProduct(product *models.Product) Solver {
	switch product.Series {
	case models.SeriesPassive:
		return &PassiveSolver{Product: product}
	case models.SeriesHPC:
		return &ActiveSolver{Product: product}
	default:
		return &ActiveSolver{Product: product}
	}
}

// RequiredAirFlow returns the volumetric air flow in m³/h needed to move
// the given load across the room-to-desired temperature differential,
// at sea-level air density.
func RequiredAirFlow(coolingKW, roomTemp, desiredTemp float64) float64 {
	return RequiredAirFlowAt(coolingKW, roomTemp, desiredTemp, AirDensity)
}

// RequiredAirFlowAt is RequiredAirFlow evaluated at the given air
// density. Thinner air at altitude carries less heat per volume, so the
// same load needs more flow.
func RequiredAirFlowAt(coolingKW, roomTemp, desiredTemp, density float64) float64 {
	deltaT := roomTemp - desiredTemp
	massFlow := coolingKW * 1000 / (AirSpecificHeat * 1000 * deltaT)
	return massFlow / density * 3600
}

// StaticPressure models coil static pressure as a quadratic in flow.
func StaticPressure(airFlow float64) float64 {
	return 25.0 + 0.05*(airFlow/1000)*(airFlow/1000)
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
