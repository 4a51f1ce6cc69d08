// Package commercial turns a technical operating point into cost, savings
// and environmental figures against a traditional-cooling baseline.
package commercial

import (
	"github.com/grit-hub-leg/thermal-calculator-2/pkg/models"
)

// Carbon equivalence factors for the environmental summary.
const (
	treesPerKGCarbon = 0.039  // trees needed to absorb one kg CO2 per year
	kgCarbonPerCar   = 4600.0 // annual kg CO2 of one car
)

// Capital cost model. Passive doors cost more per kW than active ones.
const (
	activeBaseCost   = 10000.0
	activePerKWCost  = 500.0
	passiveBaseCost  = 12000.0
	passivePerKWCost = 600.0
)

// passiveBaselineFraction sizes the traditional-cooling comparison for a
// passive door at a tenth of the cooling load.
const passiveBaselineFraction = 0.1

// Ownership projection assumptions.
const (
	serviceLifeYears      = 10
	annualMaintenanceRate = 0.02 // fraction of capital cost per year
)

// Inputs carries the request parameters the commercial layer depends on.
type Inputs struct {
	OperatingHours  float64 // hours per year
	ElectricityCost float64 // currency per kWh
	CarbonFactor    float64 // kg CO2 per kWh
}

// EnergyCosts derives annual energy and spend from a power draw in W.
func EnergyCosts(powerW, operatingHours, electricityCost float64) models.EnergyCosts {
	powerKW := powerW / 1000
	annualEnergy := powerKW * operatingHours
	return models.EnergyCosts{
		PowerKW:         powerKW,
		AnnualEnergyKWh: annualEnergy,
		AnnualCost:      annualEnergy * electricityCost,
	}
}

// Environmental converts annual energy into emission equivalents.
func Environmental(annualEnergyKWh, carbonFactor float64) models.EnvironmentalImpact {
	carbon := annualEnergyKWh * carbonFactor
	return models.EnvironmentalImpact{
		AnnualCarbonKG: carbon,
		TreeEquivalent: carbon * treesPerKGCarbon,
		CarEquivalent:  carbon / kgCarbonPerCar,
	}
}

// CapitalCost estimates the installed cost of a door for its series.
func CapitalCost(product *models.Product, coolingKW float64) float64 {
	if product.IsPassive() {
		return passiveBaseCost + passivePerKWCost*coolingKW
	}
	return activeBaseCost + activePerKWCost*coolingKW
}

// Calculate produces the full commercial comparison. The traditional
// baseline scales the door's own power draw by the datasheet operational
// savings; passive doors, drawing nothing, compare against a nominal
// active system instead.
func Calculate(product *models.Product, coolingKW, powerW float64, in Inputs) *models.CommercialResult {
	energy := EnergyCosts(powerW, in.OperatingHours, in.ElectricityCost)
	environmental := Environmental(energy.AnnualEnergyKWh, in.CarbonFactor)

	var traditionalPowerW float64
	if product.IsPassive() {
		traditionalPowerW = passiveBaselineFraction * coolingKW * 1000
	} else {
		savings := product.Efficiency.OperationalSavings
		if savings < 1 {
			traditionalPowerW = powerW / (1 - savings)
		} else {
			traditionalPowerW = powerW * 10
		}
	}
	traditional := EnergyCosts(traditionalPowerW, in.OperatingHours, in.ElectricityCost)

	annualSavings := traditional.AnnualCost - energy.AnnualCost
	capitalCost := CapitalCost(product, coolingKW)

	roi := models.UnboundedRatio()
	if capitalCost > 0 {
		roi = models.FiniteRatio(annualSavings / capitalCost * 100)
	}

	payback := models.UnboundedRatio()
	if annualSavings > 0 {
		payback = models.FiniteRatio(capitalCost / annualSavings)
	}

	return &models.CommercialResult{
		Energy:            energy,
		Environmental:     environmental,
		TraditionalEnergy: traditional,
		AnnualSavings:     annualSavings,
		CapitalCost:       capitalCost,
		ROIPercent:        roi,
		PaybackYears:      payback,
		TCO:               TCO(capitalCost, energy.AnnualCost),
	}
}

// TCO projects total ownership cost over the service life: capital plus
// energy plus maintenance as a fixed fraction of capital per year.
func TCO(capitalCost, annualEnergyCost float64) models.TCOSummary {
	lifetimeEnergy := annualEnergyCost * serviceLifeYears
	lifetimeMaintenance := capitalCost * annualMaintenanceRate * serviceLifeYears
	return models.TCOSummary{
		LifetimeYears:       serviceLifeYears,
		LifetimeEnergyCost:  lifetimeEnergy,
		LifetimeMaintenance: lifetimeMaintenance,
		TotalCost:           capitalCost + lifetimeEnergy + lifetimeMaintenance,
	}
}
