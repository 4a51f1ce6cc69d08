package config

import (
	"errors"
	"fmt"
)

func (c *Config) Validate() error {
	var errs []error

	// App validation
	if c.App.Name == "" {
		errs = append(errs, errors.New("app.name is required"))
	}

	validModes := map[string]bool{"development": true, "production": true, "test": true}
	if !validModes[c.App.Mode] {
		errs = append(errs, fmt.Errorf("app.mode must be one of: development, production, test"))
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.App.LogLevel] {
		errs = append(errs, fmt.Errorf("app.log_level must be one of: debug, info, warn, error"))
	}

	// Regional validation: a subregion only makes sense under a region
	if c.Regional.DefaultSubregion != "" && c.Regional.DefaultRegion == "" {
		errs = append(errs, errors.New("regional.default_subregion requires regional.default_region"))
	}

	// Engine validation
	validFluids := map[string]bool{"water": true, "ethylene_glycol": true, "propylene_glycol": true}
	if !validFluids[c.Engine.DefaultFluidType] {
		errs = append(errs, errors.New("engine.default_fluid_type must be one of: water, ethylene_glycol, propylene_glycol"))
	}
	if c.Engine.DefaultGlycolPercent < 0 || c.Engine.DefaultGlycolPercent > 60 {
		errs = append(errs, errors.New("engine.default_glycol_percent must be between 0 and 60"))
	}
	if c.Engine.AltitudeM < 0 {
		errs = append(errs, errors.New("engine.altitude_m must not be negative"))
	}

	// Commercial validation
	if c.Commercial.OperatingHours <= 0 || c.Commercial.OperatingHours > 8784 {
		errs = append(errs, errors.New("commercial.operating_hours must be between 1 and 8784"))
	}
	if c.Commercial.ElectricityCost <= 0 {
		errs = append(errs, errors.New("commercial.electricity_cost must be positive"))
	}
	if c.Commercial.CarbonFactor < 0 {
		errs = append(errs, errors.New("commercial.carbon_factor must not be negative"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %v", errs)
	}

	return nil
}
