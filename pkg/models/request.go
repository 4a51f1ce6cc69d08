package models

// UnitSystem selects the measurement system of request values.
type UnitSystem string

const (
	UnitsMetric   UnitSystem = "metric"
	UnitsImperial UnitSystem = "imperial"
)

// CoolingRequest is the input contract of the performance engine. The four
// leading fields are required; pointer fields are optional hints the solver
// derives when absent. Metric units unless Units is set to imperial
// (cooling in tons of refrigeration, temperatures in °F).
type CoolingRequest struct {
	CoolingKW   float64 `json:"cooling_kw"`
	RoomTemp    float64 `json:"room_temp"`
	DesiredTemp float64 `json:"desired_temp"`
	WaterTemp   float64 `json:"water_temp"`

	FlowRate        *float64 `json:"flow_rate,omitempty"`         // m³/h
	ReturnWaterTemp *float64 `json:"return_water_temp,omitempty"` // °C
	FanSpeedPercent *float64 `json:"fan_speed_percentage,omitempty"`
	ServerAirFlow   *float64 `json:"server_air_flow,omitempty"` // m³/h, passive units
	ServerPressure  *float64 `json:"server_pressure,omitempty"` // Pa, passive units

	RackType         string     `json:"rack_type,omitempty"`
	FluidType        FluidType  `json:"fluid_type,omitempty"`
	GlycolPercentage *float64   `json:"glycol_percentage,omitempty"`
	PassivePreferred bool       `json:"passive_preferred,omitempty"`
	ProductID        string     `json:"product_id,omitempty"`
	Units            UnitSystem `json:"units,omitempty"`

	Region    string `json:"region,omitempty"`
	Subregion string `json:"subregion,omitempty"`

	IncludeCommercial  *bool    `json:"include_commercial,omitempty"`
	OperatingHours     *float64 `json:"operating_hours,omitempty"`  // h/year
	ElectricityCost    *float64 `json:"electricity_cost,omitempty"` // per kWh
	CarbonFactor       *float64 `json:"carbon_factor,omitempty"`    // kg CO2/kWh
}

// Float64Ptr is a convenience for populating optional request fields.
func Float64Ptr(v float64) *float64 { return &v }

// BoolPtr is a convenience for populating optional request fields.
func BoolPtr(v bool) *bool { return &v }
