package models

// Series identifies the product family of a rear-door heat exchanger.
type Series string

const (
	// SeriesActive covers fan-assisted doors (CL20).
	SeriesActive Series = "active"
	// SeriesPassive covers doors driven by server fans only (CL21).
	SeriesPassive Series = "passive"
	// SeriesHPC covers high-capacity active doors (CL23).
	SeriesHPC Series = "hpc"
)

// Valid reports whether s is a known product series.
func (s Series) Valid() bool {
	switch s {
	case SeriesActive, SeriesPassive, SeriesHPC:
		return true
	}
	return false
}

// CoilGeometry describes the water coil of a heat exchanger door.
type CoilGeometry struct {
	TubeDiameterMM float64 `json:"tube_diameter_mm" mapstructure:"tube_diameter_mm"`
	TubeLengthM    float64 `json:"tube_length_m" mapstructure:"tube_length_m"`
	TubeRows       int     `json:"tube_rows" mapstructure:"tube_rows"`
	FinSpacingMM   float64 `json:"fin_spacing_mm" mapstructure:"fin_spacing_mm"`
	FinThicknessMM float64 `json:"fin_thickness_mm" mapstructure:"fin_thickness_mm"`
	FinAreaM2      float64 `json:"fin_area_m2" mapstructure:"fin_area_m2"`
	NumberOfPasses int     `json:"number_of_passes" mapstructure:"number_of_passes"`
}

// FanSpecs describes a single fan of an active door. System totals scale
// with the product's fan count.
type FanSpecs struct {
	Model              string  `json:"model" mapstructure:"model"`
	NominalAirFlow     float64 `json:"nominal_air_flow" mapstructure:"nominal_air_flow"`         // m³/h per fan
	MaxAirFlow         float64 `json:"max_air_flow" mapstructure:"max_air_flow"`                 // m³/h per fan
	NominalStaticPress float64 `json:"nominal_static_pressure" mapstructure:"nominal_static_pressure"` // Pa
	MaxStaticPress     float64 `json:"max_static_pressure" mapstructure:"max_static_pressure"`   // Pa
	NominalPower       float64 `json:"nominal_power" mapstructure:"nominal_power"`               // W per fan
	NominalNoise       float64 `json:"nominal_noise" mapstructure:"nominal_noise"`               // dB(A)
}

// PassiveSpecs describes the air-flow envelope of a passive door.
type PassiveSpecs struct {
	MinAirFlow             float64 `json:"min_air_flow" mapstructure:"min_air_flow"`     // m³/h
	MaxAirFlow             float64 `json:"max_air_flow" mapstructure:"max_air_flow"`     // m³/h
	RequiredServerPressure float64 `json:"required_server_pressure" mapstructure:"required_server_pressure"` // Pa
}

// WaterSpecs describes the water-side operating envelope.
type WaterSpecs struct {
	MinInletTemp        float64 `json:"min_inlet_temp" mapstructure:"min_inlet_temp"`   // °C
	MaxInletTemp        float64 `json:"max_inlet_temp" mapstructure:"max_inlet_temp"`   // °C
	NominalDeltaT       float64 `json:"nominal_delta_t" mapstructure:"nominal_delta_t"` // °C
	MinFlowRate         float64 `json:"min_flow_rate" mapstructure:"min_flow_rate"`     // m³/h
	RecommendedFlowRate float64 `json:"recommended_flow_rate" mapstructure:"recommended_flow_rate"`
}

// ValveOption is one control valve compatible with a product.
type ValveOption struct {
	Type        string  `json:"type" mapstructure:"type"` // "2way", "epiv"
	Size        string  `json:"size" mapstructure:"size"` // "DN 25", ...
	MaxFlowRate float64 `json:"max_flow_rate" mapstructure:"max_flow_rate"` // m³/h
	KvValue     float64 `json:"kv_value" mapstructure:"kv_value"`
}

// Dimensions holds the physical envelope of a door.
type Dimensions struct {
	HeightMM    float64 `json:"height_mm" mapstructure:"height_mm"`
	WidthMM     float64 `json:"width_mm" mapstructure:"width_mm"`
	DepthMM     float64 `json:"depth_mm" mapstructure:"depth_mm"`
	WetWeightKG float64 `json:"wet_weight_kg" mapstructure:"wet_weight_kg"`
}

// ElectricalSpecs holds supply requirements. All zero for passive doors.
type ElectricalSpecs struct {
	MaxCurrentA float64 `json:"max_current_a" mapstructure:"max_current_a"`
	Voltage     float64 `json:"voltage" mapstructure:"voltage"`
	Phases      int     `json:"phases" mapstructure:"phases"`
}

// EfficiencySpecs holds rated efficiency figures from the datasheet.
type EfficiencySpecs struct {
	MinPUE             float64 `json:"min_pue" mapstructure:"min_pue"`
	RatedEER           float64 `json:"rated_eer" mapstructure:"rated_eer"` // 0 means not rated (passive)
	OperationalSavings float64 `json:"operational_savings" mapstructure:"operational_savings"` // fraction vs traditional cooling
}

// ControllerSpecs describes the door controller of active units.
type ControllerSpecs struct {
	Model       string   `json:"model" mapstructure:"model"`
	ControlType string   `json:"control_type" mapstructure:"control_type"`
	Protocols   []string `json:"protocols" mapstructure:"protocols"`
	SupportsRMS bool     `json:"supports_rms" mapstructure:"supports_rms"`
}

// Product is one catalog entry. Products are loaded once at startup and
// treated as read-only for the process lifetime.
type Product struct {
	ID                   string           `json:"id" mapstructure:"id"`
	Name                 string           `json:"name" mapstructure:"name"`
	Series               Series           `json:"series" mapstructure:"series"`
	RackType             string           `json:"rack_type" mapstructure:"rack_type"`
	MaxCoolingCapacityKW float64          `json:"max_cooling_capacity_kw" mapstructure:"max_cooling_capacity_kw"`
	NumberOfFans         int              `json:"number_of_fans" mapstructure:"number_of_fans"`
	Coil                 CoilGeometry     `json:"coil_geometry" mapstructure:"coil_geometry"`
	Fan                  *FanSpecs        `json:"fan_specs,omitempty" mapstructure:"fan_specs"`
	Passive              *PassiveSpecs    `json:"passive_specs,omitempty" mapstructure:"passive_specs"`
	Water                WaterSpecs       `json:"water_specs" mapstructure:"water_specs"`
	ValveOptions         []ValveOption    `json:"valve_options" mapstructure:"valve_options"`
	Dimensions           Dimensions       `json:"dimensions" mapstructure:"dimensions"`
	Electrical           ElectricalSpecs  `json:"electrical" mapstructure:"electrical"`
	Efficiency           EfficiencySpecs  `json:"efficiency" mapstructure:"efficiency"`
	Controller           *ControllerSpecs `json:"controller_specs,omitempty" mapstructure:"controller_specs"`
	ASHRAEClass          string           `json:"ashrae_class" mapstructure:"ashrae_class"`
	PartNumber           string           `json:"part_number" mapstructure:"part_number"`
}

// IsPassive reports whether the product relies on server fans for air flow.
func (p *Product) IsPassive() bool {
	return p.Series == SeriesPassive
}

// SystemNominalAirFlow returns the nominal air flow of all fans combined in
// m³/h. Zero for passive units.
func (p *Product) SystemNominalAirFlow() float64 {
	if p.Fan == nil {
		return 0
	}
	return p.Fan.NominalAirFlow * float64(p.NumberOfFans)
}

// SystemMaxAirFlow returns the maximum air flow of all fans combined in
// m³/h. Zero for passive units.
func (p *Product) SystemMaxAirFlow() float64 {
	if p.Fan == nil {
		return 0
	}
	return p.Fan.MaxAirFlow * float64(p.NumberOfFans)
}

// CanCool reports whether the rated capacity covers the requested load.
func (p *Product) CanCool(coolingKW float64) bool {
	return coolingKW <= p.MaxCoolingCapacityKW
}

// Summary returns the lightweight product view embedded in results.
func (p *Product) Summary(coolingKW float64) ProductSummary {
	return ProductSummary{
		ID:                   p.ID,
		Name:                 p.Name,
		Series:               p.Series,
		RackType:             p.RackType,
		MaxCoolingCapacityKW: p.MaxCoolingCapacityKW,
		CapacitySufficient:   p.CanCool(coolingKW),
	}
}
