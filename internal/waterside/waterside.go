// Package waterside solves the water-circuit heat balance for a door: given
// the cooling load and supply temperature plus either the flow rate or the
// return temperature, it derives the missing quantity and the coil
// pressure drop.
package waterside

import (
	"errors"
	"fmt"
	"math"

	"github.com/grit-hub-leg/thermal-calculator-2/internal/hydraulics"
	"github.com/grit-hub-leg/thermal-calculator-2/internal/logger"
	"github.com/grit-hub-leg/thermal-calculator-2/pkg/models"
)

// ErrUnderconstrained is returned when the request does not pin down a
// positive load and temperature rise.
var ErrUnderconstrained = errors.New("water side underconstrained")

// tubeRoughness is the absolute roughness of drawn copper tube in metres.
const tubeRoughness = 1.5e-6

// Solver computes water-side results against one product's coil geometry
// and one resolved fluid. It holds no per-request state.
type Solver struct {
	product *models.Product
	fluid   models.FluidProperties
}

// NewSolver returns a solver bound to the given product and fluid.
func NewSolver(product *models.Product, fluid models.FluidProperties) *Solver {
	return &Solver{product: product, fluid: fluid}
}

// Solve derives the full water-side state. returnTemp and flowRate are
// optional; when both are nil the product's nominal delta-T is substituted.
// The flow rate is in m³/h and the pressure drop in kPa.
func (s *Solver) Solve(coolingKW, supplyTemp float64, returnTemp, flowRate *float64) (*models.WaterSideResult, error) {
	if coolingKW <= 0 {
		return nil, fmt.Errorf("%w: cooling load must be positive, got %g kW", ErrUnderconstrained, coolingKW)
	}

	var deltaT, flow float64

	switch {
	case flowRate != nil:
		flow = *flowRate
		if flow <= 0 {
			return nil, fmt.Errorf("%w: flow rate must be positive, got %g m³/h", ErrUnderconstrained, flow)
		}
		massFlow := flow * s.fluid.Density / 3600
		deltaT = coolingKW / (massFlow * s.fluid.SpecificHeat)
	case returnTemp != nil:
		deltaT = *returnTemp - supplyTemp
		if deltaT <= 0 {
			return nil, fmt.Errorf("%w: return temperature %g°C must exceed supply %g°C",
				ErrUnderconstrained, *returnTemp, supplyTemp)
		}
		flow = s.flowForDeltaT(coolingKW, deltaT)
	default:
		deltaT = s.product.Water.NominalDeltaT
		logger.WithProduct(s.product.ID).Debugf("substituting nominal water delta-T %.1f K", deltaT)
		flow = s.flowForDeltaT(coolingKW, deltaT)
	}

	if deltaT <= 0 {
		return nil, fmt.Errorf("%w: derived delta-T %g K is not positive", ErrUnderconstrained, deltaT)
	}

	pressureDrop, err := s.pressureDrop(flow)
	if err != nil {
		return nil, err
	}

	return &models.WaterSideResult{
		FlowRate:     flow,
		SupplyTemp:   supplyTemp,
		ReturnTemp:   supplyTemp + deltaT,
		DeltaT:       deltaT,
		PressureDrop: pressureDrop,
	}, nil
}

// flowForDeltaT converts Q = ṁ·cp·ΔT into a volumetric flow in m³/h.
func (s *Solver) flowForDeltaT(coolingKW, deltaT float64) float64 {
	massFlow := coolingKW / (s.fluid.SpecificHeat * deltaT)
	return massFlow / s.fluid.Density * 3600
}

// pressureDrop runs the coil circuit through the friction model. The wetted
// length is the tube length times the number of passes.
func (s *Solver) pressureDrop(flowRate float64) (float64, error) {
	geo := s.product.Coil
	diameter := geo.TubeDiameterMM / 1000

	velocity, err := hydraulics.PipeVelocity(flowRate, diameter)
	if err != nil {
		return 0, err
	}

	re, err := hydraulics.Reynolds(velocity, diameter, s.fluid.Density, s.fluid.Viscosity)
	if err != nil {
		return 0, err
	}

	f, err := hydraulics.FrictionFactor(re, tubeRoughness/diameter)
	if err != nil {
		return 0, err
	}

	length := geo.TubeLengthM * float64(geo.NumberOfPasses)
	dropPa, err := hydraulics.DarcyWeisbach(f, length, diameter, s.fluid.Density, velocity)
	if err != nil {
		return 0, err
	}

	// Bends and headers add on top of straight-tube friction.
	minorLossFactor := 1.0 + 0.1*float64(geo.NumberOfPasses)
	return dropPa * minorLossFactor / 1000, nil
}

// Effectiveness estimates the exchanger effectiveness for the solved state
// using the NTU method with the air stream as the hot side.
func Effectiveness(result *models.WaterSideResult, fluid models.FluidProperties, airFlow, roomTemp float64) float64 {
	waterCapacity := result.FlowRate * fluid.Density / 3600 * fluid.SpecificHeat * 1000
	airCapacity := airFlow * airDensity / 3600 * airSpecificHeat * 1000

	cMin := math.Min(waterCapacity, airCapacity)
	if cMin == 0 || roomTemp <= result.SupplyTemp {
		return 0
	}

	// Actual over maximum possible heat transfer.
	q := waterCapacity * result.DeltaT
	qMax := cMin * (roomTemp - result.SupplyTemp)
	return math.Max(0, math.Min(1, q/qMax))
}
