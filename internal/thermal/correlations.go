// Package thermal provides the closed-form heat-exchanger correlations used
// by the solvers: LMTD, effectiveness-NTU by exchanger topology, Nusselt
// numbers and the derived heat-transfer coefficients.
package thermal

import (
	"fmt"
	"math"

	"github.com/grit-hub-leg/thermal-calculator-2/internal/hydraulics"
	"github.com/grit-hub-leg/thermal-calculator-2/internal/logger"
)

// FlowArrangement selects the LMTD temperature pairing.
type FlowArrangement string

const (
	FlowCounter  FlowArrangement = "counter"
	FlowParallel FlowArrangement = "parallel"
	FlowCross    FlowArrangement = "cross"
)

// ExchangerType selects the effectiveness-NTU closed form.
type ExchangerType string

const (
	ExchangerCounterflow  ExchangerType = "counterflow"
	ExchangerParallelflow ExchangerType = "parallelflow"
	ExchangerCrossflow    ExchangerType = "crossflow"
	ExchangerShellAndTube ExchangerType = "shell_and_tube"
)

// Geometry selects the Nusselt correlation family.
type Geometry string

const (
	GeometryTube  Geometry = "tube"
	GeometryPlate Geometry = "plate"
	GeometryFin   Geometry = "fin"
)

// crossFlowCorrection approximates the LMTD correction factor for unmixed
// cross flow.
const crossFlowCorrection = 0.9

// HeatTransferRate returns Q = ṁ·cp·ΔT in kW for a mass flow in kg/s and a
// specific heat in kJ/kg·K.
func HeatTransferRate(massFlow, specificHeat, tempDiff float64) float64 {
	return massFlow * specificHeat * tempDiff
}

// MassFlowFromHeatRate inverts Q = ṁ·cp·ΔT for the mass flow in kg/s.
func MassFlowFromHeatRate(heatRateKW, specificHeat, tempDiff float64) (float64, error) {
	if tempDiff <= 0 {
		return 0, fmt.Errorf("%w: temperature difference must be positive, got %g", hydraulics.ErrNonPhysicalInput, tempDiff)
	}
	if specificHeat <= 0 {
		return 0, fmt.Errorf("%w: specific heat must be positive, got %g", hydraulics.ErrNonPhysicalInput, specificHeat)
	}
	return heatRateKW / (specificHeat * tempDiff), nil
}

// LMTD returns the log mean temperature difference for the given inlet and
// outlet temperatures. When the two end differences are within 0.001 K the
// first is returned directly to avoid dividing by a near-zero logarithm.
// Cross flow applies a fixed correction factor.
func LMTD(hotIn, hotOut, coldIn, coldOut float64, arrangement FlowArrangement) (float64, error) {
	var deltaT1, deltaT2 float64
	if arrangement == FlowParallel {
		deltaT1 = hotIn - coldIn
		deltaT2 = hotOut - coldOut
	} else {
		deltaT1 = hotIn - coldOut
		deltaT2 = hotOut - coldIn
	}

	if deltaT1 <= 0 || deltaT2 <= 0 {
		return 0, fmt.Errorf("%w: temperature differences must be positive (deltaT1=%g, deltaT2=%g)",
			hydraulics.ErrNonPhysicalInput, deltaT1, deltaT2)
	}

	factor := 1.0
	if arrangement == FlowCross {
		factor = crossFlowCorrection
	}

	// Log-mean of equal differences is the difference itself; no
	// arrangement correction applies in the degenerate case.
	if math.Abs(deltaT1-deltaT2) < 0.001 {
		return deltaT1, nil
	}
	return (deltaT1 - deltaT2) / math.Log(deltaT1/deltaT2) * factor, nil
}

// EffectivenessNTU returns the heat-exchanger effectiveness for the given
// capacity rates and UA value, branched by exchanger topology. The result
// is always clamped to [0,1]. Zero capacity rates or UA yield zero without
// error; negative inputs are non-physical.
func EffectivenessNTU(cMin, cMax, ua float64, exchangerType ExchangerType) (float64, error) {
	if cMin < 0 || cMax < 0 || ua < 0 {
		return 0, fmt.Errorf("%w: capacity rates and UA must be non-negative (cMin=%g, cMax=%g, ua=%g)",
			hydraulics.ErrNonPhysicalInput, cMin, cMax, ua)
	}
	if cMin == 0 || cMax == 0 || ua == 0 {
		return 0, nil
	}

	cRatio := cMin / cMax
	ntu := ua / cMin

	var eff float64
	switch exchangerType {
	case ExchangerCounterflow:
		if cRatio < 1 {
			num := 1 - math.Exp(-ntu*(1-cRatio))
			den := 1 - cRatio*math.Exp(-ntu*(1-cRatio))
			eff = num / den
		} else {
			eff = ntu / (1 + ntu)
		}
	case ExchangerParallelflow:
		eff = (1 - math.Exp(-ntu*(1+cRatio))) / (1 + cRatio)
	case ExchangerShellAndTube:
		// One shell pass, even tube passes.
		root := math.Sqrt(1 + cRatio*cRatio)
		expTerm := math.Exp(-ntu * root)
		eff = 2 / ((1 + cRatio) + root*(1+expTerm)/(1-expTerm))
	case ExchangerCrossflow:
		eff = crossflowEffectiveness(ntu, cRatio)
	default:
		logger.Warnf("heat exchanger type %q not recognised, using crossflow", exchangerType)
		eff = crossflowEffectiveness(ntu, cRatio)
	}

	return clamp01(eff), nil
}

// crossflowEffectiveness is the unmixed-unmixed cross-flow approximation.
func crossflowEffectiveness(ntu, cRatio float64) float64 {
	inner := math.Exp(-cRatio*math.Pow(ntu, 0.78)) - 1
	return 1 - math.Exp(math.Pow(ntu, 0.22)/cRatio*inner)
}

// Nusselt returns the Nusselt number for the given flow conditions and
// geometry. Tube flow switches between the laminar constant-flux value,
// the Gnielinski transition correlation and Dittus-Boelter.
func Nusselt(reynolds, prandtl float64, geometry Geometry) (float64, error) {
	if reynolds < 0 || prandtl <= 0 {
		return 0, fmt.Errorf("%w: invalid reynolds/prandtl (re=%g, pr=%g)",
			hydraulics.ErrNonPhysicalInput, reynolds, prandtl)
	}

	switch geometry {
	case GeometryTube:
		switch {
		case reynolds < 2300:
			return 4.36, nil
		case reynolds < 10000:
			f := math.Pow(0.79*math.Log(reynolds)-1.64, -2)
			num := f * (reynolds - 1000) * prandtl
			den := 1 + 12.7*math.Sqrt(f)*(math.Pow(prandtl, 2.0/3.0)-1)
			if den <= 0 {
				return 3.66, nil
			}
			return num / den, nil
		default:
			// Dittus-Boelter, cooling exponent.
			return 0.023 * math.Pow(reynolds, 0.8) * math.Pow(prandtl, 0.4), nil
		}
	case GeometryPlate:
		return 0.4 * math.Pow(reynolds, 0.64) * math.Pow(prandtl, 0.4), nil
	case GeometryFin:
		return 0.134 * math.Pow(reynolds, 0.681) * math.Pow(prandtl, 0.33), nil
	default:
		logger.Warnf("geometry %q not recognised, using tube correlation", geometry)
		return 0.023 * math.Pow(reynolds, 0.8) * math.Pow(prandtl, 0.4), nil
	}
}

// HeatTransferCoefficient returns h = Nu·k/L in W/m²·K.
func HeatTransferCoefficient(reynolds, prandtl, characteristicLength, thermalConductivity float64, geometry Geometry) (float64, error) {
	if characteristicLength <= 0 {
		return 0, fmt.Errorf("%w: characteristic length must be positive, got %g",
			hydraulics.ErrNonPhysicalInput, characteristicLength)
	}
	nu, err := Nusselt(reynolds, prandtl, geometry)
	if err != nil {
		return 0, err
	}
	return nu * thermalConductivity / characteristicLength, nil
}

// OverallU returns the overall heat-transfer coefficient from the film
// coefficients, wall conduction and fouling resistances.
func OverallU(hHot, hCold, kWall, wallThickness, foulingHot, foulingCold float64) (float64, error) {
	if hHot <= 0 || hCold <= 0 || kWall <= 0 {
		return 0, fmt.Errorf("%w: film coefficients and wall conductivity must be positive",
			hydraulics.ErrNonPhysicalInput)
	}
	r := 1/hHot + wallThickness/kWall + foulingHot + foulingCold + 1/hCold
	return 1 / r, nil
}

// FinEfficiency returns η = tanh(mL)/(mL) for a straight fin.
func FinEfficiency(h, k, finThickness, finLength float64) (float64, error) {
	if h <= 0 || k <= 0 || finThickness <= 0 || finLength <= 0 {
		return 0, fmt.Errorf("%w: fin parameters must be positive", hydraulics.ErrNonPhysicalInput)
	}
	m := math.Sqrt(2 * h / (k * finThickness))
	ml := m * finLength
	return math.Tanh(ml) / ml, nil
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
