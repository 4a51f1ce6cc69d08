package regional

import "github.com/grit-hub-leg/thermal-calculator-2/pkg/models"

// DefaultDataset returns the built-in regional hierarchy. Electricity
// costs are in the local currency per kWh, carbon factors in kg CO2/kWh.
func DefaultDataset() *Dataset {
	return &Dataset{
		Global: Settings{
			Currency:        "USD",
			ElectricityCost: 0.15,
			CarbonFactor:    0.5,
			DefaultVoltage:  230,
			DefaultFluid:    models.FluidWater,
			ReferencePUE:    1.8,
		},
		Regions: map[string]Region{
			"europe": {
				Settings: Settings{
					Currency:             "EUR",
					ElectricityCost:      0.20,
					CarbonFactor:         0.275,
					DefaultVoltage:       230,
					AmbientTemp:          Range{Min: 10, Max: 25},
					Humidity:             Range{Min: 40, Max: 70},
					FreeCoolingPotential: "moderate",
					Regulations:          []string{"EU Code of Conduct for Data Centers", "EN 50600"},
				},
				Subregions: map[string]Settings{
					"uk": {
						Currency:        "GBP",
						ElectricityCost: 0.22,
						CarbonFactor:    0.233,
						AmbientTemp:     Range{Min: 7, Max: 20},
						Regulations:     []string{"EU Code of Conduct for Data Centers", "EN 50600", "UK Climate Change Agreement"},
					},
					"germany": {
						Currency:        "EUR",
						ElectricityCost: 0.23,
						CarbonFactor:    0.338,
						AmbientTemp:     Range{Min: 5, Max: 24},
					},
					"france": {
						Currency:        "EUR",
						ElectricityCost: 0.17,
						CarbonFactor:    0.056,
						AmbientTemp:     Range{Min: 8, Max: 25},
					},
				},
			},
			"north_america": {
				Settings: Settings{
					Currency:             "USD",
					ElectricityCost:      0.15,
					CarbonFactor:         0.417,
					DefaultVoltage:       208,
					PreferredUnits:       models.UnitsImperial,
					AmbientTemp:          Range{Min: 10, Max: 30},
					Humidity:             Range{Min: 30, Max: 60},
					FreeCoolingPotential: "moderate",
					Regulations:          []string{"ASHRAE 90.4", "ENERGY STAR for Data Centers"},
				},
				Subregions: map[string]Settings{
					"west_coast": {
						ElectricityCost:      0.18,
						CarbonFactor:         0.227,
						AmbientTemp:          Range{Min: 15, Max: 30},
						FreeCoolingPotential: "good",
					},
					"east_coast": {
						ElectricityCost: 0.16,
						CarbonFactor:    0.302,
						AmbientTemp:     Range{Min: 5, Max: 32},
						Humidity:        Range{Min: 40, Max: 80},
					},
					"midwest": {
						ElectricityCost:      0.12,
						CarbonFactor:         0.614,
						AmbientTemp:          Range{Min: -15, Max: 35},
						FreeCoolingPotential: "excellent",
					},
				},
			},
			"nordic": {
				Settings: Settings{
					Currency:                "EUR",
					ElectricityCost:         0.10,
					CarbonFactor:            0.028,
					DefaultFluid:            models.FluidPropyleneGlycol,
					DefaultGlycolPercentage: 30,
					AmbientTemp:             Range{Min: -10, Max: 20},
					Humidity:                Range{Min: 30, Max: 70},
					FreeCoolingPotential:    "high",
				},
				Subregions: map[string]Settings{
					"norway": {
						Currency:        "NOK",
						ElectricityCost: 0.08,
						CarbonFactor:    0.011,
						AmbientTemp:     Range{Min: -15, Max: 20},
					},
					"sweden": {
						Currency:        "SEK",
						ElectricityCost: 0.09,
						CarbonFactor:    0.013,
						AmbientTemp:     Range{Min: -10, Max: 22},
					},
					"finland": {
						Currency:        "EUR",
						ElectricityCost: 0.11,
						CarbonFactor:    0.093,
						AmbientTemp:     Range{Min: -20, Max: 25},
					},
				},
			},
			"asia_pacific": {
				Settings: Settings{
					Currency:             "USD",
					ElectricityCost:      0.18,
					CarbonFactor:         0.408,
					AmbientTemp:          Range{Min: 18, Max: 35},
					Humidity:             Range{Min: 50, Max: 90},
					FreeCoolingPotential: "limited",
					Regulations:          []string{"SS 564", "Green Mark for Data Centers"},
				},
				Subregions: map[string]Settings{
					"singapore": {
						Currency:        "SGD",
						ElectricityCost: 0.18,
						CarbonFactor:    0.408,
						AmbientTemp:     Range{Min: 25, Max: 32},
						Humidity:        Range{Min: 70, Max: 90},
						WaterMinTemp:    18,
					},
					"japan": {
						Currency:        "JPY",
						ElectricityCost: 0.22,
						CarbonFactor:    0.57,
						AmbientTemp:     Range{Min: 5, Max: 35},
						Humidity:        Range{Min: 40, Max: 80},
					},
					"australia": {
						Currency:        "AUD",
						ElectricityCost: 0.25,
						CarbonFactor:    0.79,
						PreferredUnits:  models.UnitsMetric,
						AmbientTemp:     Range{Min: 15, Max: 45},
						Humidity:        Range{Min: 20, Max: 60},
					},
				},
			},
			"middle_east": {
				Settings: Settings{
					Currency:             "USD",
					ElectricityCost:      0.08,
					CarbonFactor:         0.718,
					AmbientTemp:          Range{Min: 20, Max: 50},
					Humidity:             Range{Min: 10, Max: 90},
					FreeCoolingPotential: "very limited",
				},
				Subregions: map[string]Settings{
					"uae": {
						Currency:        "AED",
						ElectricityCost: 0.08,
						CarbonFactor:    0.644,
						AmbientTemp:     Range{Min: 20, Max: 48},
						Humidity:        Range{Min: 30, Max: 90},
					},
					"saudi_arabia": {
						Currency:        "SAR",
						ElectricityCost: 0.05,
						CarbonFactor:    0.825,
						AmbientTemp:     Range{Min: 15, Max: 50},
						Humidity:        Range{Min: 10, Max: 50},
					},
				},
			},
		},
	}
}
