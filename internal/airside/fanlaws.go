package airside

import "math"

// Affinity laws relating fan speed to flow, pressure and power. Speeds are
// in any consistent unit (rpm or percent).

// FanLawFlow scales flow linearly with speed.
func FanLawFlow(flow1, speed1, speed2 float64) float64 {
	return flow1 * (speed2 / speed1)
}

// FanLawPressure scales pressure with the square of speed.
func FanLawPressure(pressure1, speed1, speed2 float64) float64 {
	ratio := speed2 / speed1
	return pressure1 * ratio * ratio
}

// FanLawPower scales power with the cube of speed.
func FanLawPower(power1, speed1, speed2 float64) float64 {
	ratio := speed2 / speed1
	return power1 * ratio * ratio * ratio
}

// FanSpeedForFlow inverts the flow law for the speed that delivers the
// required flow.
func FanSpeedForFlow(requiredFlow, nominalFlow, nominalSpeed float64) float64 {
	return nominalSpeed * (requiredFlow / nominalFlow)
}

// FanNoiseLevel adjusts a base noise figure for speed and listening
// distance. Speed contributes 15·log10 of the ratio, distance attenuates
// at 20·log10. Never negative.
func FanNoiseLevel(baseNoise, speedRatio, distance float64) float64 {
	speedNoise := -50.0
	if speedRatio > 0 {
		speedNoise = 15 * math.Log10(speedRatio)
	}
	var attenuation float64
	if distance > 0 {
		attenuation = 20 * math.Log10(distance)
	}
	return math.Max(0, baseNoise+speedNoise-attenuation)
}

// MultipleFansNoise sums sound pressure levels on an energy basis.
func MultipleFansNoise(levels []float64) float64 {
	if len(levels) == 0 {
		return 0
	}
	var energy float64
	for _, level := range levels {
		energy += math.Pow(10, level/10)
	}
	return 10 * math.Log10(energy)
}

// AirDensityAtAltitude returns dry-air density for an altitude in metres
// and a temperature in °C, via the barometric formula and ideal gas law.
func AirDensityAtAltitude(altitude, temperature float64) float64 {
	const (
		standardPressure = 101325.0 // Pa at sea level
		gasConstant      = 287.058  // J/kg·K for dry air
	)
	tempK := temperature + 273.15
	tempAtAltitude := 288.15 - 0.0065*altitude
	pressureRatio := math.Pow(tempAtAltitude/288.15, 5.255)
	return standardPressure * pressureRatio / (gasConstant * tempK)
}
