// Package valve picks a control valve for a solved water-side flow rate.
package valve

import (
	"sort"

	"github.com/grit-hub-leg/thermal-calculator-2/internal/logger"
	"github.com/grit-hub-leg/thermal-calculator-2/pkg/models"
)

// bandHalfWidth is the recommended operating margin around the selected
// valve's utilization, in percentage points.
const bandHalfWidth = 20.0

// Select returns the smallest valve whose capacity covers the flow rate.
// When no option suffices it returns the largest with Sufficient false.
// Options may arrive in any order; selection is stable for equal
// capacities. A nil is returned only for an empty option list.
func Select(flowRate float64, options []models.ValveOption) *models.ValveRecommendation {
	if len(options) == 0 {
		return nil
	}

	sorted := make([]models.ValveOption, len(options))
	copy(sorted, options)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].MaxFlowRate < sorted[j].MaxFlowRate
	})

	chosen := sorted[len(sorted)-1]
	sufficient := false
	for _, option := range sorted {
		if option.MaxFlowRate >= flowRate {
			chosen = option
			sufficient = true
			break
		}
	}

	if !sufficient {
		logger.Warnf("no valve covers %.2f m³/h, recommending largest (%s %s at %.2f m³/h)",
			flowRate, chosen.Type, chosen.Size, chosen.MaxFlowRate)
	}

	utilization := 0.0
	if chosen.MaxFlowRate > 0 {
		utilization = flowRate / chosen.MaxFlowRate * 100
	}

	return &models.ValveRecommendation{
		ValveType:          chosen.Type,
		ValveSize:          chosen.Size,
		MaxFlowRate:        chosen.MaxFlowRate,
		KvValue:            chosen.KvValue,
		Sufficient:         sufficient,
		UtilizationPercent: utilization,
		RecommendedBand: models.OperatingBand{
			Nominal: utilization,
			Min:     clampPercent(utilization - bandHalfWidth),
			Max:     clampPercent(utilization + bandHalfWidth),
		},
	}
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
