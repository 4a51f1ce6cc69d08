package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set defaults
	setDefaults(v)

	// Config file settings
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/coolingcalc")
	}

	// Environment variable settings
	v.SetEnvPrefix("COOLINGCALC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found, use defaults and env vars
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	// App defaults
	v.SetDefault("app.name", "cooling-calculator")
	v.SetDefault("app.mode", "development")
	v.SetDefault("app.log_level", "info")

	// Catalog defaults: empty path means the built-in product set
	v.SetDefault("catalog.path", "")

	// Regional defaults
	v.SetDefault("regional.default_region", "")
	v.SetDefault("regional.default_subregion", "")

	// Engine defaults
	v.SetDefault("engine.default_fluid_type", "water")
	v.SetDefault("engine.default_glycol_percent", 0.0)
	v.SetDefault("engine.altitude_m", 0.0)

	// Commercial defaults
	v.SetDefault("commercial.operating_hours", 8760.0)
	v.SetDefault("commercial.electricity_cost", 0.15)
	v.SetDefault("commercial.carbon_factor", 0.5)
}
