// Package efficiency derives COP, EER and PUE figures from a solved
// technical result. Passive doors draw no power, so their COP and EER have
// no finite value; that case is carried explicitly as an unbounded Ratio
// rather than an IEEE infinity.
package efficiency

import (
	"github.com/grit-hub-leg/thermal-calculator-2/pkg/models"
)

// BTUPerKW converts kW of cooling to BTU/h for EER.
const BTUPerKW = 3412.14

// Calculate returns the efficiency metrics for the given load and fan
// power. HPC doors get their EER rescaled against the datasheet rating by
// load fraction, rewarding operation near full capacity.
func Calculate(product *models.Product, coolingKW, powerW float64) *models.EfficiencyResult {
	powerKW := powerW / 1000

	cop := models.DivideRatio(coolingKW, powerKW)
	eer := models.DivideRatio(coolingKW*BTUPerKW, powerW)

	var actualPUE float64
	if coolingKW > 0 {
		actualPUE = (coolingKW + powerKW) / coolingKW
	}

	result := &models.EfficiencyResult{
		COP:           cop,
		EER:           eer,
		ProductMinPUE: product.Efficiency.MinPUE,
		ActualPUE:     actualPUE,
		PowerKW:       powerKW,
	}

	if product.Series == models.SeriesHPC {
		applyHPCScaling(result, product, coolingKW)
	}

	return result
}

// applyHPCScaling replaces the raw EER with the rated figure scaled by a
// load factor between 0.7 and 1.0, then rederives COP from it.
func applyHPCScaling(result *models.EfficiencyResult, product *models.Product, coolingKW float64) {
	maxCapacity := product.MaxCoolingCapacityKW
	if maxCapacity <= 0 {
		return
	}

	loadPercent := coolingKW / maxCapacity * 100
	loadFactor := 0.7 + 0.3*loadPercent/100

	scaledEER := product.Efficiency.RatedEER * loadFactor
	result.EER = models.FiniteRatio(scaledEER)
	result.COP = models.FiniteRatio(scaledEER / 3.412)

	result.HPCOptimized = true
	result.LoadPercent = loadPercent

	// kW per metre of rack width.
	if product.Dimensions.WidthMM > 0 {
		result.CoolingDensityKW = coolingKW / (product.Dimensions.WidthMM / 1000)
	}
}
