// Package regional holds deployment-region defaults: electricity prices,
// carbon factors, preferred coolants and climate envelopes. Settings
// inherit hierarchically from global to region to subregion.
package regional

import (
	"github.com/grit-hub-leg/thermal-calculator-2/internal/logger"
	"github.com/grit-hub-leg/thermal-calculator-2/pkg/models"
)

// Range is an inclusive numeric interval.
type Range struct {
	Min float64 `json:"min" mapstructure:"min"`
	Max float64 `json:"max" mapstructure:"max"`
}

// Contains reports whether v lies inside the range.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Settings describes the operating context of one region. Zero fields in a
// more specific layer fall back to the enclosing layer.
type Settings struct {
	Currency                string            `json:"currency" mapstructure:"currency"`
	ElectricityCost         float64           `json:"electricity_cost" mapstructure:"electricity_cost"` // per kWh
	CarbonFactor            float64           `json:"carbon_factor" mapstructure:"carbon_factor"`       // kg CO2/kWh
	DefaultVoltage          float64           `json:"default_voltage" mapstructure:"default_voltage"`
	DefaultFluid            models.FluidType  `json:"default_fluid" mapstructure:"default_fluid"`
	DefaultGlycolPercentage float64           `json:"default_glycol_percentage" mapstructure:"default_glycol_percentage"`
	PreferredUnits          models.UnitSystem `json:"preferred_units" mapstructure:"preferred_units"`
	ReferencePUE            float64           `json:"reference_pue" mapstructure:"reference_pue"`
	AmbientTemp             Range             `json:"ambient_temp" mapstructure:"ambient_temp"`
	Humidity                Range             `json:"humidity" mapstructure:"humidity"`
	WaterMinTemp            float64           `json:"water_min_temp" mapstructure:"water_min_temp"` // 0 means no constraint
	FreeCoolingPotential    string            `json:"free_cooling_potential" mapstructure:"free_cooling_potential"`
	Regulations             []string          `json:"regulations" mapstructure:"regulations"`
}

// Region is one entry of the dataset, optionally refined by subregions.
type Region struct {
	Settings   Settings            `json:"settings" mapstructure:"settings"`
	Subregions map[string]Settings `json:"subregions" mapstructure:"subregions"`
}

// Dataset is the full regional hierarchy under a global default.
type Dataset struct {
	Global  Settings          `json:"global" mapstructure:"global"`
	Regions map[string]Region `json:"regions" mapstructure:"regions"`
}

// Get resolves settings for a region and optional subregion by layering
// each level over the previous one. An unknown region falls back to the
// global defaults with a log warning, mirroring how requests without any
// region behave.
func (d *Dataset) Get(region, subregion string) Settings {
	settings := d.Global

	r, ok := d.Regions[region]
	if !ok {
		if region != "" {
			logger.Warnf("region %q not found, using global settings", region)
		}
		return settings
	}
	settings = overlay(settings, r.Settings)

	if subregion != "" {
		if sub, ok := r.Subregions[subregion]; ok {
			settings = overlay(settings, sub)
		} else {
			logger.Warnf("subregion %q not found in region %q", subregion, region)
		}
	}
	return settings
}

// Regions lists the known region names.
func (d *Dataset) RegionNames() []string {
	names := make([]string, 0, len(d.Regions))
	for name := range d.Regions {
		names = append(names, name)
	}
	return names
}

// overlay copies the set fields of src over base. Numeric zero and empty
// string mean "inherit".
func overlay(base, src Settings) Settings {
	out := base
	if src.Currency != "" {
		out.Currency = src.Currency
	}
	if src.ElectricityCost != 0 {
		out.ElectricityCost = src.ElectricityCost
	}
	if src.CarbonFactor != 0 {
		out.CarbonFactor = src.CarbonFactor
	}
	if src.DefaultVoltage != 0 {
		out.DefaultVoltage = src.DefaultVoltage
	}
	if src.DefaultFluid != "" {
		out.DefaultFluid = src.DefaultFluid
	}
	if src.DefaultGlycolPercentage != 0 {
		out.DefaultGlycolPercentage = src.DefaultGlycolPercentage
	}
	if src.PreferredUnits != "" {
		out.PreferredUnits = src.PreferredUnits
	}
	if src.ReferencePUE != 0 {
		out.ReferencePUE = src.ReferencePUE
	}
	if src.AmbientTemp != (Range{}) {
		out.AmbientTemp = src.AmbientTemp
	}
	if src.Humidity != (Range{}) {
		out.Humidity = src.Humidity
	}
	if src.WaterMinTemp != 0 {
		out.WaterMinTemp = src.WaterMinTemp
	}
	if src.FreeCoolingPotential != "" {
		out.FreeCoolingPotential = src.FreeCoolingPotential
	}
	if len(src.Regulations) > 0 {
		out.Regulations = src.Regulations
	}
	return out
}
