// Package validation checks cooling requests against physical ranges and
// ordering constraints before any solver runs. Hard violations become
// errors; values that are merely outside the optimal envelope become
// warnings carried through to the result.
package validation

import (
	"errors"
	"fmt"

	"github.com/grit-hub-leg/thermal-calculator-2/pkg/models"
)

// ErrInvalidRequest indicates the request failed validation.
var ErrInvalidRequest = errors.New("invalid request")

// bounds is an inclusive numeric range.
type bounds struct {
	min, max float64
}

func (b bounds) contains(v float64) bool {
	return v >= b.min && v <= b.max
}

// Physically reasonable ranges for request parameters.
var parameterRanges = map[string]bounds{
	"cooling_kw":           {0, 500},
	"room_temp":            {10, 40},
	"desired_temp":         {10, 35},
	"water_temp":           {5, 30},
	"flow_rate":            {0, 50},
	"return_water_temp":    {5, 50},
	"fan_speed_percentage": {0, 100},
	"server_air_flow":      {0, 20000},
	"server_pressure":      {0, 500},
	"glycol_percentage":    {0, 60},
}

var validRackTypes = map[string]bool{
	"42U600": true,
	"42U800": true,
	"48U800": true,
}

// Result carries soft warnings from a successful validation.
type Result struct {
	Warnings []string
}

// ValidateRequest checks the request after unit normalisation, so all
// quantities are SI. It returns an error for out-of-range required fields,
// inverted temperature ordering, or unknown categorical values; optional
// fields out of range only warn.
func ValidateRequest(req *models.CoolingRequest) (*Result, error) {
	result := &Result{}

	required := []struct {
		name  string
		value float64
	}{
		{"cooling_kw", req.CoolingKW},
		{"room_temp", req.RoomTemp},
		{"desired_temp", req.DesiredTemp},
		{"water_temp", req.WaterTemp},
	}
	for _, p := range required {
		r := parameterRanges[p.name]
		if !r.contains(p.value) {
			return nil, fmt.Errorf("%w: parameter %s (%g) is outside valid range (%g to %g)",
				ErrInvalidRequest, p.name, p.value, r.min, r.max)
		}
	}

	if req.CoolingKW == 0 {
		return nil, fmt.Errorf("%w: cooling_kw must be positive", ErrInvalidRequest)
	}

	// Cooling needs the room warmer than the target and the water colder
	// than the target.
	if req.RoomTemp <= req.DesiredTemp {
		return nil, fmt.Errorf("%w: room temperature (%g°C) must be higher than desired temperature (%g°C) for cooling",
			ErrInvalidRequest, req.RoomTemp, req.DesiredTemp)
	}
	if req.WaterTemp >= req.DesiredTemp {
		return nil, fmt.Errorf("%w: water temperature (%g°C) must be lower than desired temperature (%g°C) for effective cooling",
			ErrInvalidRequest, req.WaterTemp, req.DesiredTemp)
	}

	optional := []struct {
		name  string
		value *float64
	}{
		{"flow_rate", req.FlowRate},
		{"return_water_temp", req.ReturnWaterTemp},
		{"fan_speed_percentage", req.FanSpeedPercent},
		{"server_air_flow", req.ServerAirFlow},
		{"server_pressure", req.ServerPressure},
		{"glycol_percentage", req.GlycolPercentage},
	}
	for _, p := range optional {
		if p.value == nil {
			continue
		}
		r := parameterRanges[p.name]
		if !r.contains(*p.value) {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("parameter %s (%g) is outside optimal range (%g to %g)", p.name, *p.value, r.min, r.max))
		}
	}

	if req.RackType != "" && !validRackTypes[req.RackType] {
		return nil, fmt.Errorf("%w: rack_type %q must be one of: 42U600, 42U800, 48U800",
			ErrInvalidRequest, req.RackType)
	}
	if req.FluidType != "" && !req.FluidType.Valid() {
		// Unknown fluids degrade to water downstream; flag here so the
		// caller sees it early.
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("fluid_type %q is not recognised, water properties will be used", req.FluidType))
	}
	if req.Units != "" && req.Units != models.UnitsMetric && req.Units != models.UnitsImperial {
		return nil, fmt.Errorf("%w: units %q must be metric or imperial", ErrInvalidRequest, req.Units)
	}

	if req.FluidType != "" && req.FluidType != models.FluidWater && req.GlycolPercentage != nil {
		switch {
		case *req.GlycolPercentage <= 0:
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("glycol percentage (%g%%) is too low for %s, consider using water instead",
					*req.GlycolPercentage, req.FluidType))
		case *req.GlycolPercentage > 50:
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("high glycol percentage (%g%%) may significantly reduce heat transfer efficiency",
					*req.GlycolPercentage))
		}
	}

	if req.PassivePreferred && req.CoolingKW > 30 {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("cooling requirement (%g kW) may exceed typical passive cooling capacity (30 kW), active cooling might be required",
				req.CoolingKW))
	}

	return result, nil
}

// ValidateProductCompatibility checks a selected product against the
// request. Capacity and envelope shortfalls are warnings; only a water
// temperature outside the product envelope is an error.
func ValidateProductCompatibility(product *models.Product, coolingKW, waterTemp float64) (*Result, error) {
	result := &Result{}

	if !product.CanCool(coolingKW) {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("cooling requirement (%g kW) exceeds product capacity (%g kW)",
				coolingKW, product.MaxCoolingCapacityKW))
	} else if coolingKW < product.MaxCoolingCapacityKW*0.2 {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("cooling requirement (%g kW) is significantly lower than product capacity (%g kW), consider a smaller unit",
				coolingKW, product.MaxCoolingCapacityKW))
	}

	if waterTemp < product.Water.MinInletTemp {
		return nil, fmt.Errorf("%w: water temperature (%g°C) is below product minimum (%g°C)",
			ErrInvalidRequest, waterTemp, product.Water.MinInletTemp)
	}
	if waterTemp > product.Water.MaxInletTemp {
		return nil, fmt.Errorf("%w: water temperature (%g°C) is above product maximum (%g°C)",
			ErrInvalidRequest, waterTemp, product.Water.MaxInletTemp)
	}

	if product.IsPassive() && waterTemp > 14 {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("water temperature (%g°C) is above optimal for passive cooling (14°C), efficiency may be reduced",
				waterTemp))
	}

	return result, nil
}
