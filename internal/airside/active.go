package airside

import (
	"github.com/grit-hub-leg/thermal-calculator-2/internal/logger"
	"github.com/grit-hub-leg/thermal-calculator-2/pkg/models"
)

// ActiveSolver derives fan speed, power and noise for fan-assisted doors
// using the affinity laws. It also serves HPC doors, which differ only in
// efficiency scaling downstream.
type ActiveSolver struct {
	Product *models.Product
}

func (s *ActiveSolver) Solve(coolingKW, roomTemp, desiredTemp float64, hints Hints) *models.AirSideResult {
	fans := s.Product.Fan
	numFans := s.Product.NumberOfFans
	if numFans < 1 {
		numFans = 1
	}

	requiredFlow := RequiredAirFlowAt(coolingKW, roomTemp, desiredTemp, hints.density())
	staticPressure := StaticPressure(requiredFlow)

	nominalFlow := fans.NominalAirFlow * float64(numFans)

	var fanSpeed float64
	if hints.FanSpeedPercent != nil {
		fanSpeed = clampPercent(*hints.FanSpeedPercent)
	} else {
		fanSpeed = clampPercent(FanSpeedForFlow(requiredFlow, nominalFlow, 100))
	}

	actualFlow := fans.NominalAirFlow * float64(numFans) * fanSpeed / 100

	// Cubic fan law for power, log law for noise.
	power := FanLawPower(fans.NominalPower, 100, fanSpeed) * float64(numFans)

	var noise float64
	if fanSpeed > 0 {
		noise = FanNoiseLevel(fans.NominalNoise, fanSpeed/100, 0)
	}

	maxFlow := fans.MaxAirFlow * float64(numFans)
	fanSufficient := requiredFlow <= maxFlow
	if !fanSufficient {
		logger.WithProduct(s.Product.ID).Warnf(
			"required air flow %.0f m³/h exceeds fan bank maximum %.0f m³/h", requiredFlow, maxFlow)
	}

	return &models.AirSideResult{
		RequiredAirFlow: requiredFlow,
		ActualAirFlow:   actualFlow,
		StaticPressure:  staticPressure,
		FanSpeedPercent: fanSpeed,
		PowerW:          power,
		NoiseLevel:      noise,
		NumberOfFans:    numFans,
		FanSufficient:   fanSufficient,
		ActualCoolingKW: coolingKW,
	}
}
