package airside

import (
	"fmt"

	"github.com/grit-hub-leg/thermal-calculator-2/pkg/models"
)

// Door pressure-drop model reference point for passive coils.
const (
	basePressureDrop = 20.0   // Pa
	referenceFlow    = 3000.0 // m³/h
)

// PassiveSolver evaluates server-driven air flow against a fanless door's
// envelope. Shortfalls derate the achievable cooling proportionally and
// surface as warnings, never errors.
type PassiveSolver struct {
	Product *models.Product
}

func (s *PassiveSolver) Solve(coolingKW, roomTemp, desiredTemp float64, hints Hints) *models.AirSideResult {
	specs := s.Product.Passive

	serverFlow := RequiredAirFlowAt(coolingKW, roomTemp, desiredTemp, hints.density())
	if hints.ServerAirFlow != nil {
		serverFlow = *hints.ServerAirFlow
	}

	serverPressure := specs.RequiredServerPressure
	if hints.ServerPressure != nil {
		serverPressure = *hints.ServerPressure
	}

	actualCooling := coolingKW
	flowSufficient := true
	var warning string

	switch {
	case serverFlow < specs.MinAirFlow:
		flowSufficient = false
		actualCooling = serverFlow / specs.MinAirFlow * coolingKW
		warning = fmt.Sprintf("server air flow (%.1f m³/h) is below minimum required (%.1f m³/h)",
			serverFlow, specs.MinAirFlow)
	case serverFlow > specs.MaxAirFlow:
		// Full cooling still achievable, at the cost of pressure drop.
		flowSufficient = false
		warning = fmt.Sprintf("server air flow (%.1f m³/h) exceeds maximum recommended (%.1f m³/h)",
			serverFlow, specs.MaxAirFlow)
	}

	// Door pressure drop scales with the square of flow.
	ratio := serverFlow / referenceFlow
	pressureDrop := basePressureDrop * ratio * ratio

	pressureSufficient := serverPressure >= pressureDrop
	if !pressureSufficient {
		actualCooling *= serverPressure / pressureDrop
		pressureWarning := fmt.Sprintf("server pressure (%.1f Pa) is insufficient for required pressure drop (%.1f Pa)",
			serverPressure, pressureDrop)
		if warning != "" {
			warning += " and " + pressureWarning
		} else {
			warning = pressureWarning
		}
	}

	return &models.AirSideResult{
		RequiredAirFlow:    serverFlow,
		MinAirFlow:         specs.MinAirFlow,
		MaxAirFlow:         specs.MaxAirFlow,
		AirFlowSufficient:  flowSufficient,
		ServerPressure:     serverPressure,
		DoorPressureDrop:   pressureDrop,
		PressureSufficient: pressureSufficient,
		ActualCoolingKW:    actualCooling,
		Warning:            warning,
	}
}
