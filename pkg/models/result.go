package models

import "time"

// WaterSideResult holds the resolved water-side operating point.
// Invariant: ReturnTemp = SupplyTemp + DeltaT and DeltaT > 0.
type WaterSideResult struct {
	FlowRate     float64 `json:"flow_rate"`     // m³/h
	SupplyTemp   float64 `json:"supply_temp"`   // °C
	ReturnTemp   float64 `json:"return_temp"`   // °C
	DeltaT       float64 `json:"delta_t"`       // °C
	PressureDrop float64 `json:"pressure_drop"` // kPa
}

// AirSideResult holds the resolved air-side operating point. Active units
// populate the fan fields; passive units populate the envelope fields and
// always report zero power and noise. Insufficiency is data, not an error.
type AirSideResult struct {
	RequiredAirFlow float64 `json:"required_air_flow"` // m³/h
	ActualAirFlow   float64 `json:"actual_air_flow,omitempty"`
	StaticPressure  float64 `json:"static_pressure,omitempty"` // Pa
	FanSpeedPercent float64 `json:"fan_speed_percentage"`      // clamped to [0,100]
	PowerW          float64 `json:"power_consumption"`         // W
	NoiseLevel      float64 `json:"noise_level"`               // dB(A)
	NumberOfFans    int     `json:"number_of_fans"`
	FanSufficient   bool    `json:"fan_sufficient"`

	MinAirFlow         float64 `json:"min_air_flow,omitempty"` // m³/h, passive envelope
	MaxAirFlow         float64 `json:"max_air_flow,omitempty"` // m³/h, passive envelope
	AirFlowSufficient  bool    `json:"air_flow_sufficient"`
	ServerPressure     float64 `json:"server_pressure,omitempty"`     // Pa
	DoorPressureDrop   float64 `json:"door_pressure_drop,omitempty"`  // Pa
	PressureSufficient bool    `json:"pressure_sufficient"`

	ActualCoolingKW float64 `json:"actual_cooling_capacity"` // derated on passive shortfall
	Warning         string  `json:"warning,omitempty"`
}

// ExchangerAnalysis rates the door coil as a crossflow heat exchanger at
// the solved operating point.
type ExchangerAnalysis struct {
	WaterSideHTC  float64 `json:"water_side_htc"` // W/m²·K
	AirSideHTC    float64 `json:"air_side_htc"`   // W/m²·K
	FinEfficiency float64 `json:"fin_efficiency"`
	OverallU      float64 `json:"overall_u"` // W/m²·K
	UA            float64 `json:"ua"`        // W/K
	NTU           float64 `json:"ntu"`
	Effectiveness float64 `json:"effectiveness"` // [0,1]
	LMTD          float64 `json:"lmtd,omitempty"` // K
}

// OperatingBand is the recommended valve opening range in percent.
type OperatingBand struct {
	Nominal float64 `json:"nominal"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
}

// ValveRecommendation is the outcome of valve selection for a flow rate.
type ValveRecommendation struct {
	ValveType          string        `json:"valve_type"`
	ValveSize          string        `json:"valve_size"`
	MaxFlowRate        float64       `json:"max_flow_rate"` // m³/h
	KvValue            float64       `json:"kv_value"`
	Sufficient         bool          `json:"sufficient"`
	UtilizationPercent float64       `json:"utilization_percentage"`
	RecommendedBand    OperatingBand `json:"recommended_settings"`
}

// EfficiencyResult holds COP/EER/PUE for the operating point. COP and EER
// are unbounded for passive units.
type EfficiencyResult struct {
	COP           Ratio   `json:"cop"`
	EER           Ratio   `json:"eer"`
	ProductMinPUE float64 `json:"product_min_pue"`
	ActualPUE     float64 `json:"actual_pue"`
	PowerKW       float64 `json:"power_usage"`

	HPCOptimized     bool    `json:"hpc_optimized,omitempty"`
	LoadPercent      float64 `json:"optimal_load_percentage,omitempty"`
	CoolingDensityKW float64 `json:"cooling_density,omitempty"` // kW per metre of rack width
}

// EnergyCosts summarises annual consumption and spend.
type EnergyCosts struct {
	PowerKW         float64 `json:"power_kw"`
	AnnualEnergyKWh float64 `json:"annual_energy_kwh"`
	AnnualCost      float64 `json:"annual_cost"`
}

// EnvironmentalImpact expresses annual emissions in familiar equivalents.
type EnvironmentalImpact struct {
	AnnualCarbonKG float64 `json:"annual_carbon_kg"`
	TreeEquivalent float64 `json:"tree_equivalent"`
	CarEquivalent  float64 `json:"car_equivalent"`
}

// TCOSummary projects ownership cost over the unit's service life.
type TCOSummary struct {
	LifetimeYears       int     `json:"lifetime_years"`
	LifetimeEnergyCost  float64 `json:"lifetime_energy_cost"`
	LifetimeMaintenance float64 `json:"lifetime_maintenance"`
	TotalCost           float64 `json:"total_cost"`
}

// CommercialResult compares the unit against traditional cooling.
type CommercialResult struct {
	Energy            EnergyCosts         `json:"energy_costs"`
	Environmental     EnvironmentalImpact `json:"environmental"`
	TraditionalEnergy EnergyCosts         `json:"traditional_energy_costs"`
	AnnualSavings     float64             `json:"annual_savings"`
	CapitalCost       float64             `json:"capital_cost"`
	ROIPercent        Ratio               `json:"roi_percentage"`
	PaybackYears      Ratio               `json:"payback_years"`
	TCO               TCOSummary          `json:"tco"`
}

// ProductSummary is the product view embedded in a performance result.
type ProductSummary struct {
	ID                   string `json:"id"`
	Name                 string `json:"name"`
	Series               Series `json:"series"`
	RackType             string `json:"rack_type"`
	MaxCoolingCapacityKW float64 `json:"max_cooling_capacity_kw"`
	CapacitySufficient   bool   `json:"capacity_sufficient"`
}

// PerformanceResult is the engine's sole output. Produced fresh per call,
// holds no cross-request state, and is never partially populated: a failed
// request yields an error instead.
type PerformanceResult struct {
	CalculationID string    `json:"calculation_id"`
	Timestamp     time.Time `json:"timestamp"`

	CoolingKW  float64             `json:"cooling_capacity"`
	Product    ProductSummary      `json:"product"`
	WaterSide  WaterSideResult     `json:"water_side"`
	AirSide    AirSideResult       `json:"air_side"`
	Valve      ValveRecommendation `json:"valve_recommendation"`
	Efficiency EfficiencyResult    `json:"efficiency"`
	Exchanger  *ExchangerAnalysis  `json:"exchanger_analysis,omitempty"`
	Commercial *CommercialResult   `json:"commercial,omitempty"`

	FluidType        FluidType       `json:"fluid_type"`
	GlycolPercentage float64         `json:"glycol_percentage"`
	Fluid            FluidProperties `json:"fluid_properties"`

	// FluidWarning is set when an unknown fluid type fell back to water
	// properties. Inspectable by callers rather than log-only.
	FluidWarning string   `json:"fluid_warning,omitempty"`
	Warnings     []string `json:"warnings,omitempty"`
}
