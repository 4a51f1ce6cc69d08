package waterside

import (
	"math"

	"github.com/grit-hub-leg/thermal-calculator-2/internal/fluids"
	"github.com/grit-hub-leg/thermal-calculator-2/internal/hydraulics"
	"github.com/grit-hub-leg/thermal-calculator-2/internal/thermal"
	"github.com/grit-hub-leg/thermal-calculator-2/pkg/models"
)

// Air-side properties at data-centre conditions.
const (
	airDensity      = 1.2    // kg/m³
	airSpecificHeat = 1.005  // kJ/kg·K
	airPrandtl      = 0.71
	airViscosity    = 1.8e-5 // Pa·s
	airConductivity = 0.026  // W/m·K
)

// Coil material properties: copper tube, aluminium fin.
const (
	tubeWallConductivity = 385.0  // W/m·K
	tubeWallThickness    = 0.0005 // m
	finConductivity      = 205.0  // W/m·K
	finLength            = 0.01   // m, half tube pitch
	foulingResistance    = 0.0001 // m²·K/W per side
)

// CoilAnalysis rates the door coil as a crossflow exchanger at the solved
// operating point: film coefficients from Nusselt correlations, overall U
// through the tube wall, and effectiveness by the NTU method.
func (s *Solver) CoilAnalysis(water *models.WaterSideResult, airFlow, roomTemp float64) (*models.ExchangerAnalysis, error) {
	geo := s.product.Coil
	diameter := geo.TubeDiameterMM / 1000

	velocity, err := hydraulics.PipeVelocity(water.FlowRate, diameter)
	if err != nil {
		return nil, err
	}
	re, err := hydraulics.Reynolds(velocity, diameter, s.fluid.Density, s.fluid.Viscosity)
	if err != nil {
		return nil, err
	}
	hWater, err := thermal.HeatTransferCoefficient(
		re, fluids.Prandtl(s.fluid), diameter, s.fluid.ThermalConductivity, thermal.GeometryTube)
	if err != nil {
		return nil, err
	}

	faceArea := s.product.Dimensions.HeightMM / 1000 * s.product.Dimensions.WidthMM / 1000
	if faceArea <= 0 || airFlow <= 0 {
		return nil, hydraulics.ErrNonPhysicalInput
	}
	faceVelocity := airFlow / 3600 / faceArea
	finSpacing := geo.FinSpacingMM / 1000
	reAir := airDensity * faceVelocity * finSpacing / airViscosity

	hAir, err := thermal.HeatTransferCoefficient(
		reAir, airPrandtl, finSpacing, airConductivity, thermal.GeometryFin)
	if err != nil {
		return nil, err
	}
	finEff, err := thermal.FinEfficiency(hAir, finConductivity, geo.FinThicknessMM/1000, finLength)
	if err != nil {
		return nil, err
	}

	u, err := thermal.OverallU(hAir*finEff, hWater,
		tubeWallConductivity, tubeWallThickness, foulingResistance, foulingResistance)
	if err != nil {
		return nil, err
	}
	ua := u * geo.FinAreaM2

	waterCapacity := water.FlowRate * s.fluid.Density / 3600 * s.fluid.SpecificHeat * 1000
	airCapacity := airFlow * airDensity / 3600 * airSpecificHeat * 1000
	cMin := math.Min(waterCapacity, airCapacity)
	cMax := math.Max(waterCapacity, airCapacity)

	eff, err := thermal.EffectivenessNTU(cMin, cMax, ua, thermal.ExchangerCrossflow)
	if err != nil {
		return nil, err
	}

	analysis := &models.ExchangerAnalysis{
		WaterSideHTC:  hWater,
		AirSideHTC:    hAir,
		FinEfficiency: finEff,
		OverallU:      u,
		UA:            ua,
		NTU:           ua / cMin,
		Effectiveness: eff,
	}

	// Driving temperature difference when the air outlet stays above the
	// water inlet; degenerate pinches leave the field at zero.
	q := waterCapacity * water.DeltaT
	airOut := roomTemp - q/airCapacity
	if lmtd, err := thermal.LMTD(roomTemp, airOut, water.SupplyTemp, water.ReturnTemp, thermal.FlowCross); err == nil {
		analysis.LMTD = lmtd
	}
	return analysis, nil
}
