// Package units converts request and result quantities between the metric
// and imperial systems. All conversions are pure unit-pair arithmetic.
package units

import "fmt"

// Conversion factors.
const (
	kwPerTon  = 3.517 // 1 ton of refrigeration
	gpmPerM3H = 4.403
	cfmPerM3H = 0.589
	m3hPerCFM = 1.699
	psiPerKPA = 0.145
	kpaPerPSI = 6.895
)

// CelsiusToFahrenheit converts a temperature.
func CelsiusToFahrenheit(c float64) float64 { return c*9/5 + 32 }

// FahrenheitToCelsius converts a temperature.
func FahrenheitToCelsius(f float64) float64 { return (f - 32) * 5 / 9 }

// DeltaCToF converts a temperature difference, which has no offset.
func DeltaCToF(dc float64) float64 { return dc * 9 / 5 }

// KWToTons converts cooling capacity to tons of refrigeration.
func KWToTons(kw float64) float64 { return kw / kwPerTon }

// TonsToKW converts tons of refrigeration to kW.
func TonsToKW(tons float64) float64 { return tons * kwPerTon }

// M3HToGPM converts a water flow to US gallons per minute.
func M3HToGPM(m3h float64) float64 { return m3h * gpmPerM3H }

// GPMToM3H converts US gallons per minute to m³/h.
func GPMToM3H(gpm float64) float64 { return gpm / gpmPerM3H }

// M3HToCFM converts an air flow to cubic feet per minute.
func M3HToCFM(m3h float64) float64 { return m3h * cfmPerM3H }

// CFMToM3H converts cubic feet per minute to m³/h.
func CFMToM3H(cfm float64) float64 { return cfm * m3hPerCFM }

// KPAToPSI converts a pressure.
func KPAToPSI(kpa float64) float64 { return kpa * psiPerKPA }

// PSIToKPA converts a pressure.
func PSIToKPA(psi float64) float64 { return psi * kpaPerPSI }

// ConvertTemperature converts between named unit pairs.
func ConvertTemperature(value float64, from, to string) (float64, error) {
	switch {
	case from == to:
		return value, nil
	case from == "celsius" && to == "fahrenheit":
		return CelsiusToFahrenheit(value), nil
	case from == "fahrenheit" && to == "celsius":
		return FahrenheitToCelsius(value), nil
	}
	return 0, fmt.Errorf("unsupported temperature conversion %q to %q", from, to)
}

// ConvertPower converts between named unit pairs.
func ConvertPower(value float64, from, to string) (float64, error) {
	switch {
	case from == to:
		return value, nil
	case from == "kw" && to == "tons":
		return KWToTons(value), nil
	case from == "tons" && to == "kw":
		return TonsToKW(value), nil
	}
	return 0, fmt.Errorf("unsupported power conversion %q to %q", from, to)
}

// ConvertFlowRate converts between named unit pairs for water and air flow.
func ConvertFlowRate(value float64, from, to string) (float64, error) {
	switch {
	case from == to:
		return value, nil
	case from == "m3h" && to == "gpm":
		return M3HToGPM(value), nil
	case from == "gpm" && to == "m3h":
		return GPMToM3H(value), nil
	case from == "m3h" && to == "cfm":
		return M3HToCFM(value), nil
	case from == "cfm" && to == "m3h":
		return CFMToM3H(value), nil
	}
	return 0, fmt.Errorf("unsupported flow conversion %q to %q", from, to)
}

// ConvertPressure converts between named unit pairs.
func ConvertPressure(value float64, from, to string) (float64, error) {
	switch {
	case from == to:
		return value, nil
	case from == "kpa" && to == "psi":
		return KPAToPSI(value), nil
	case from == "psi" && to == "kpa":
		return PSIToKPA(value), nil
	}
	return 0, fmt.Errorf("unsupported pressure conversion %q to %q", from, to)
}

// RequestInputs holds the four boundary quantities of a request in
// whatever system they arrived in.
type RequestInputs struct {
	CoolingKW   float64
	RoomTemp    float64
	DesiredTemp float64
	WaterTemp   float64
}

// ToMetric converts imperial request inputs (tons, °F) to SI. Metric
// inputs pass through untouched.
func ToMetric(in RequestInputs, imperial bool) RequestInputs {
	if !imperial {
		return in
	}
	return RequestInputs{
		CoolingKW:   TonsToKW(in.CoolingKW),
		RoomTemp:    FahrenheitToCelsius(in.RoomTemp),
		DesiredTemp: FahrenheitToCelsius(in.DesiredTemp),
		WaterTemp:   FahrenheitToCelsius(in.WaterTemp),
	}
}
