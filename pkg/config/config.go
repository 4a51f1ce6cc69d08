package config

// Config is the top-level runtime configuration of the cooling engine.
type Config struct {
	App        AppConfig        `mapstructure:"app"`
	Catalog    CatalogConfig    `mapstructure:"catalog"`
	Regional   RegionalConfig   `mapstructure:"regional"`
	Engine     EngineConfig     `mapstructure:"engine"`
	Commercial CommercialConfig `mapstructure:"commercial"`
}

type AppConfig struct {
	Name     string `mapstructure:"name"`
	Mode     string `mapstructure:"mode"`
	LogLevel string `mapstructure:"log_level"`
}

// CatalogConfig points at the product database. An empty path selects the
// built-in datasheet catalog.
type CatalogConfig struct {
	Path string `mapstructure:"path"`
}

// RegionalConfig selects the default deployment region applied when a
// request does not name one.
type RegionalConfig struct {
	DefaultRegion    string `mapstructure:"default_region"`
	DefaultSubregion string `mapstructure:"default_subregion"`
}

// EngineConfig holds calculation defaults that requests may override.
type EngineConfig struct {
	DefaultFluidType     string  `mapstructure:"default_fluid_type"`
	DefaultGlycolPercent float64 `mapstructure:"default_glycol_percent"`
	AltitudeM            float64 `mapstructure:"altitude_m"`
}

// CommercialConfig holds the site assumptions behind cost and ROI figures.
type CommercialConfig struct {
	OperatingHours  float64 `mapstructure:"operating_hours"`
	ElectricityCost float64 `mapstructure:"electricity_cost"`
	CarbonFactor    float64 `mapstructure:"carbon_factor"`
}
