// Package hydraulics provides the friction and pressure-drop correlations
// shared by the water-side and air-side solvers. All functions are pure;
// non-physical inputs (zero or negative diameter, density, viscosity) are
// rejected with ErrNonPhysicalInput.
package hydraulics

import (
	"errors"
	"fmt"
	"math"
)

// ErrNonPhysicalInput indicates an input outside the physical domain of a
// correlation, e.g. a zero diameter that would divide by zero.
var ErrNonPhysicalInput = errors.New("non-physical input")

// Flow regime boundaries for pipe flow.
const (
	ReynoldsLaminarLimit   = 2300.0
	ReynoldsTurbulentLimit = 4000.0
)

// Reynolds returns the Reynolds number Re = ρ·v·D/μ for pipe flow.
func Reynolds(velocity, diameter, density, viscosity float64) (float64, error) {
	if diameter <= 0 {
		return 0, fmt.Errorf("%w: diameter must be positive, got %g", ErrNonPhysicalInput, diameter)
	}
	if density <= 0 {
		return 0, fmt.Errorf("%w: density must be positive, got %g", ErrNonPhysicalInput, density)
	}
	if viscosity <= 0 {
		return 0, fmt.Errorf("%w: viscosity must be positive, got %g", ErrNonPhysicalInput, viscosity)
	}
	if velocity < 0 {
		return 0, fmt.Errorf("%w: velocity must be non-negative, got %g", ErrNonPhysicalInput, velocity)
	}
	return density * velocity * diameter / viscosity, nil
}

// FrictionFactor returns the Darcy friction factor for the given Reynolds
// number and relative roughness. Laminar flow uses 64/Re, fully turbulent
// flow the explicit Haaland approximation of the Colebrook equation, and
// the transition band a linear blend so the factor is continuous at both
// regime boundaries.
func FrictionFactor(reynolds, relativeRoughness float64) (float64, error) {
	if reynolds <= 0 {
		return 0, fmt.Errorf("%w: reynolds number must be positive, got %g", ErrNonPhysicalInput, reynolds)
	}
	if relativeRoughness < 0 {
		return 0, fmt.Errorf("%w: relative roughness must be non-negative, got %g", ErrNonPhysicalInput, relativeRoughness)
	}

	switch {
	case reynolds < ReynoldsLaminarLimit:
		return 64.0 / reynolds, nil
	case reynolds > ReynoldsTurbulentLimit:
		return haaland(reynolds, relativeRoughness), nil
	default:
		fLam := 64.0 / ReynoldsLaminarLimit
		fTurb := haaland(ReynoldsTurbulentLimit, relativeRoughness)
		frac := (reynolds - ReynoldsLaminarLimit) / (ReynoldsTurbulentLimit - ReynoldsLaminarLimit)
		return fLam + frac*(fTurb-fLam), nil
	}
}

// haaland is the explicit Colebrook approximation
// f = (-1.8·log10((ε/D/3.7)^1.11 + 6.9/Re))⁻².
func haaland(reynolds, relativeRoughness float64) float64 {
	term := math.Pow(relativeRoughness/3.7, 1.11) + 6.9/reynolds
	return math.Pow(-1.8*math.Log10(term), -2)
}

// DarcyWeisbach returns the pressure drop ΔP = f·(L/D)·(ρ·v²/2) in Pa.
func DarcyWeisbach(frictionFactor, length, diameter, density, velocity float64) (float64, error) {
	if diameter <= 0 {
		return 0, fmt.Errorf("%w: diameter must be positive, got %g", ErrNonPhysicalInput, diameter)
	}
	if length < 0 {
		return 0, fmt.Errorf("%w: length must be non-negative, got %g", ErrNonPhysicalInput, length)
	}
	if density <= 0 {
		return 0, fmt.Errorf("%w: density must be positive, got %g", ErrNonPhysicalInput, density)
	}
	return frictionFactor * (length / diameter) * (density * velocity * velocity / 2), nil
}

// PipeVelocity returns the mean flow velocity in m/s for a volumetric flow
// in m³/h through a circular pipe of the given diameter in m.
func PipeVelocity(flowRateM3h, diameter float64) (float64, error) {
	if diameter <= 0 {
		return 0, fmt.Errorf("%w: diameter must be positive, got %g", ErrNonPhysicalInput, diameter)
	}
	if flowRateM3h < 0 {
		return 0, fmt.Errorf("%w: flow rate must be non-negative, got %g", ErrNonPhysicalInput, flowRateM3h)
	}
	area := math.Pi * (diameter / 2) * (diameter / 2)
	return (flowRateM3h / 3600.0) / area, nil
}
