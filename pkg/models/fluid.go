package models

// FluidType identifies the coolant circulating through the door coil.
type FluidType string

const (
	FluidWater           FluidType = "water"
	FluidEthyleneGlycol  FluidType = "ethylene_glycol"
	FluidPropyleneGlycol FluidType = "propylene_glycol"
)

// Valid reports whether f is a supported fluid type.
func (f FluidType) Valid() bool {
	switch f {
	case FluidWater, FluidEthyleneGlycol, FluidPropyleneGlycol:
		return true
	}
	return false
}

// FluidProperties holds the transport properties used by the solvers.
// Derived per request from fluid type and glycol percentage; never cached
// across requests.
type FluidProperties struct {
	Density             float64 `json:"density"`              // kg/m³
	SpecificHeat        float64 `json:"specific_heat"`        // kJ/kg·K
	Viscosity           float64 `json:"viscosity"`            // Pa·s
	ThermalConductivity float64 `json:"thermal_conductivity"` // W/m·K
}
