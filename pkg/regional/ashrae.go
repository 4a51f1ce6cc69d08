package regional

import (
	"fmt"
	"math"
)

// ASHRAEClass is one thermal guideline envelope for IT equipment.
type ASHRAEClass struct {
	TempRecommended     Range
	HumidityRecommended Range
	TempAllowable       Range
	HumidityAllowable   Range
	MaxDewPoint         float64
	Description         string
}

// ASHRAEClasses are the A1 through A4 envelopes of the thermal guidelines.
var ASHRAEClasses = map[string]ASHRAEClass{
	"A1": {
		TempRecommended:     Range{Min: 18, Max: 27},
		HumidityRecommended: Range{Min: 40, Max: 60},
		TempAllowable:       Range{Min: 15, Max: 32},
		HumidityAllowable:   Range{Min: 20, Max: 80},
		MaxDewPoint:         17,
		Description:         "Enterprise servers, storage products",
	},
	"A2": {
		TempRecommended:     Range{Min: 18, Max: 27},
		HumidityRecommended: Range{Min: 35, Max: 70},
		TempAllowable:       Range{Min: 10, Max: 35},
		HumidityAllowable:   Range{Min: 20, Max: 80},
		MaxDewPoint:         21,
		Description:         "Volume servers, storage products, personal computers, workstations",
	},
	"A3": {
		TempRecommended:     Range{Min: 18, Max: 27},
		HumidityRecommended: Range{Min: 30, Max: 80},
		TempAllowable:       Range{Min: 5, Max: 40},
		HumidityAllowable:   Range{Min: 8, Max: 85},
		MaxDewPoint:         24,
		Description:         "IT equipment, point-of-sale, ruggedized controllers",
	},
	"A4": {
		TempRecommended:     Range{Min: 18, Max: 27},
		HumidityRecommended: Range{Min: 20, Max: 80},
		TempAllowable:       Range{Min: 5, Max: 45},
		HumidityAllowable:   Range{Min: 8, Max: 90},
		MaxDewPoint:         24,
		Description:         "Point-of-sale equipment, ruggedized controllers, PDAs",
	},
}

// ConditionCheck is the outcome of validating room conditions against an
// ASHRAE class.
type ConditionCheck struct {
	Valid         bool
	InRecommended bool
	InAllowable   bool
	DewPoint      float64
	DewPointOK    bool
	Message       string
}

// DewPoint returns the dew point in °C via the Magnus approximation.
func DewPoint(temp, relativeHumidity float64) float64 {
	const a = 17.27
	const b = 237.7
	alpha := a*temp/(b+temp) + math.Log(relativeHumidity/100)
	return b * alpha / (a - alpha)
}

// ValidateConditions checks temperature and humidity against the named
// ASHRAE class envelope.
func ValidateConditions(temp, humidity float64, className string) (ConditionCheck, error) {
	class, ok := ASHRAEClasses[className]
	if !ok {
		return ConditionCheck{}, fmt.Errorf("unknown ASHRAE class %q", className)
	}

	check := ConditionCheck{
		InRecommended: class.TempRecommended.Contains(temp) && class.HumidityRecommended.Contains(humidity),
		InAllowable:   class.TempAllowable.Contains(temp) && class.HumidityAllowable.Contains(humidity),
		DewPoint:      DewPoint(temp, humidity),
	}
	check.DewPointOK = check.DewPoint <= class.MaxDewPoint
	check.Valid = check.InAllowable && check.DewPointOK

	switch {
	case check.Valid && check.InRecommended:
		check.Message = fmt.Sprintf("conditions are within ASHRAE %s recommended range", className)
	case check.Valid:
		check.Message = fmt.Sprintf("conditions are within ASHRAE %s allowable range, but outside recommended range", className)
	case !check.DewPointOK:
		check.Message = fmt.Sprintf("dew point (%.1f°C) exceeds maximum (%g°C) for ASHRAE %s",
			check.DewPoint, class.MaxDewPoint, className)
	default:
		check.Message = fmt.Sprintf("conditions are outside ASHRAE %s allowable range", className)
	}
	return check, nil
}
