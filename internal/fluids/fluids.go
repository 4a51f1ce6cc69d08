// Package fluids resolves thermophysical properties for the supported
// coolants. Glycol mixtures use linear corrections on the water baseline,
// which is adequate for concentrations up to about 60 percent.
package fluids

import (
	"fmt"

	"github.com/grit-hub-leg/thermal-calculator-2/internal/logger"
	"github.com/grit-hub-leg/thermal-calculator-2/pkg/models"
)

// Water holds the baseline properties at 20°C that all glycol corrections
// are applied against.
var Water = models.FluidProperties{
	Density:             998.0,
	SpecificHeat:        4.182,
	Viscosity:           0.001,
	ThermalConductivity: 0.6,
}

// Resolve returns the properties for the given fluid and glycol
// concentration. Unknown fluid types fall back to water and return a
// warning string rather than an error, so a calculation can still complete.
func Resolve(fluidType models.FluidType, glycolPercentage float64) (models.FluidProperties, string) {
	if fluidType == models.FluidWater || glycolPercentage == 0 {
		if fluidType != models.FluidWater && !fluidType.Valid() {
			warning := fmt.Sprintf("unknown fluid type %q, using water properties", fluidType)
			logger.Warn(warning)
			return Water, warning
		}
		return Water, ""
	}

	factor := glycolPercentage / 100.0

	switch fluidType {
	case models.FluidEthyleneGlycol:
		return models.FluidProperties{
			Density:             Water.Density * (1 + 0.13*factor),
			SpecificHeat:        Water.SpecificHeat * (1 - 0.45*factor),
			Viscosity:           Water.Viscosity * (1 + 10*factor),
			ThermalConductivity: Water.ThermalConductivity * (1 - 0.3*factor),
		}, ""
	case models.FluidPropyleneGlycol:
		return models.FluidProperties{
			Density:             Water.Density * (1 + 0.06*factor),
			SpecificHeat:        Water.SpecificHeat * (1 - 0.4*factor),
			Viscosity:           Water.Viscosity * (1 + 15*factor),
			ThermalConductivity: Water.ThermalConductivity * (1 - 0.35*factor),
		}, ""
	default:
		warning := fmt.Sprintf("unknown fluid type %q, using water properties", fluidType)
		logger.Warn(warning)
		return Water, warning
	}
}

// Prandtl returns cp·μ/k for the given properties, with the specific heat
// converted to J/kg·K.
func Prandtl(props models.FluidProperties) float64 {
	return props.SpecificHeat * 1000 * props.Viscosity / props.ThermalConductivity
}
