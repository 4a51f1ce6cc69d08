// Package engine orchestrates one cooling performance calculation: request
// validation, regional defaults, product selection and the water-side,
// air-side, efficiency and commercial solvers, assembled into a single
// result.
package engine

import (
	"fmt"
	"time"

	"github.com/grit-hub-leg/thermal-calculator-2/internal/airside"
	"github.com/grit-hub-leg/thermal-calculator-2/internal/commercial"
	"github.com/grit-hub-leg/thermal-calculator-2/internal/efficiency"
	"github.com/grit-hub-leg/thermal-calculator-2/internal/fluids"
	"github.com/grit-hub-leg/thermal-calculator-2/internal/logger"
	"github.com/grit-hub-leg/thermal-calculator-2/internal/selection"
	"github.com/grit-hub-leg/thermal-calculator-2/internal/valve"
	"github.com/grit-hub-leg/thermal-calculator-2/internal/waterside"
	"github.com/grit-hub-leg/thermal-calculator-2/pkg/catalog"
	"github.com/grit-hub-leg/thermal-calculator-2/pkg/config"
	"github.com/grit-hub-leg/thermal-calculator-2/pkg/models"
	"github.com/grit-hub-leg/thermal-calculator-2/pkg/regional"
	"github.com/grit-hub-leg/thermal-calculator-2/pkg/units"
	"github.com/grit-hub-leg/thermal-calculator-2/pkg/validation"
)

// Engine computes rear-door heat-exchanger performance for one request at
// a time. It is safe for concurrent use: all dependencies are read-only
// after construction and every calculation works on its own state.
type Engine struct {
	catalog  *catalog.Catalog
	selector *selection.Selector
	regions  *regional.Dataset
	cfg      *config.Config
}

// New wires an engine from its dependencies. A nil regions dataset falls
// back to the built-in one and a nil config to the loader defaults.
func New(cat *catalog.Catalog, regions *regional.Dataset, cfg *config.Config) (*Engine, error) {
	if cat == nil {
		return nil, catalog.ErrEmptyCatalog
	}
	selector, err := selection.NewSelector(cat.Products())
	if err != nil {
		return nil, err
	}
	if regions == nil {
		regions = regional.DefaultDataset()
	}
	if cfg == nil {
		cfg, err = config.Load("")
		if err != nil {
			return nil, err
		}
	}
	return &Engine{
		catalog:  cat,
		selector: selector,
		regions:  regions,
		cfg:      cfg,
	}, nil
}

// NewFromConfig builds an engine directly from runtime configuration: the
// logger is set up from the app section and the catalog loaded from the
// configured path, with the built-in product set as fallback.
func NewFromConfig(cfg *config.Config) (*Engine, error) {
	if cfg == nil {
		var err error
		cfg, err = config.Load("")
		if err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger.Setup(cfg.App.LogLevel, cfg.App.Mode)

	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	return New(cat, nil, cfg)
}

// Calculate runs the full pipeline for one request. Errors carry the
// failing stage in their message; an insufficient product is reported in
// the result, not as an error.
func (e *Engine) Calculate(req *models.CoolingRequest) (*models.PerformanceResult, error) {
	if req == nil {
		return nil, fmt.Errorf("request: nil request")
	}

	calcID := models.NewCalculationID()
	log := logger.WithCalculation(calcID)

	norm := e.normalize(req)
	if norm.Region == "" {
		norm.Region = e.cfg.Regional.DefaultRegion
		norm.Subregion = e.cfg.Regional.DefaultSubregion
	}
	settings := e.regions.Get(norm.Region, norm.Subregion)
	e.applyRegionalDefaults(&norm, settings)

	validated, err := validation.ValidateRequest(&norm)
	if err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	warnings := validated.Warnings

	if settings.WaterMinTemp > 0 && norm.WaterTemp < settings.WaterMinTemp {
		warnings = append(warnings, fmt.Sprintf(
			"supply water %.1f°C is below the regional minimum of %.1f°C", norm.WaterTemp, settings.WaterMinTemp))
	}

	glycol := 0.0
	if norm.GlycolPercentage != nil {
		glycol = *norm.GlycolPercentage
	}
	fluid, fluidWarning := fluids.Resolve(norm.FluidType, glycol)

	product, err := e.pickProduct(&norm)
	if err != nil {
		return nil, fmt.Errorf("selection: %w", err)
	}
	log = log.WithField("product", product.ID)

	compat, err := validation.ValidateProductCompatibility(product, norm.CoolingKW, norm.WaterTemp)
	if err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	warnings = append(warnings, compat.Warnings...)

	if class, ok := regional.ASHRAEClasses[product.ASHRAEClass]; ok {
		if !class.TempAllowable.Contains(norm.RoomTemp) {
			warnings = append(warnings, fmt.Sprintf(
				"room temperature %.1f°C is outside the ASHRAE %s allowable range (%g to %g°C)",
				norm.RoomTemp, product.ASHRAEClass, class.TempAllowable.Min, class.TempAllowable.Max))
		}
	}

	waterSolver := waterside.NewSolver(product, fluid)
	water, err := waterSolver.Solve(norm.CoolingKW, norm.WaterTemp, norm.ReturnWaterTemp, norm.FlowRate)
	if err != nil {
		return nil, fmt.Errorf("water side: %w", err)
	}

	valveRec := valve.Select(water.FlowRate, product.ValveOptions)
	if valveRec == nil {
		return nil, fmt.Errorf("valve: product %s has no valve options", product.ID)
	}

	hints := airside.Hints{
		FanSpeedPercent: norm.FanSpeedPercent,
		ServerAirFlow:   norm.ServerAirFlow,
		ServerPressure:  norm.ServerPressure,
	}
	if e.cfg.Engine.AltitudeM > 0 {
		hints.AirDensity = airside.AirDensityAtAltitude(e.cfg.Engine.AltitudeM, norm.RoomTemp)
	}
	air := airside.ForProduct(product).Solve(norm.CoolingKW, norm.RoomTemp, norm.DesiredTemp, hints)
	if air.Warning != "" {
		warnings = append(warnings, air.Warning)
	}

	airFlow := air.ActualAirFlow
	if airFlow == 0 {
		airFlow = air.RequiredAirFlow
	}
	exchanger, err := waterSolver.CoilAnalysis(water, airFlow, norm.RoomTemp)
	if err != nil {
		log.Warnf("coil rating unavailable: %v", err)
		exchanger = nil
	}

	eff := efficiency.Calculate(product, air.ActualCoolingKW, air.PowerW)

	var comm *models.CommercialResult
	if norm.IncludeCommercial == nil || *norm.IncludeCommercial {
		comm = commercial.Calculate(product, norm.CoolingKW, air.PowerW, e.commercialInputs(&norm, settings))
	}

	if !product.CanCool(norm.CoolingKW) {
		log.Warnf("capacity shortfall: %.1f kW requested against %.1f kW rated",
			norm.CoolingKW, product.MaxCoolingCapacityKW)
	}
	log.WithField("flow_rate", water.FlowRate).Info("calculation complete")

	return &models.PerformanceResult{
		CalculationID:    calcID,
		Timestamp:        time.Now().UTC(),
		CoolingKW:        norm.CoolingKW,
		Product:          product.Summary(norm.CoolingKW),
		WaterSide:        *water,
		AirSide:          *air,
		Valve:            *valveRec,
		Efficiency:       *eff,
		Exchanger:        exchanger,
		Commercial:       comm,
		FluidType:        norm.FluidType,
		GlycolPercentage: glycol,
		Fluid:            fluid,
		FluidWarning:     fluidWarning,
		Warnings:         warnings,
	}, nil
}

// normalize returns a metric copy of the request. Imperial requests arrive
// with cooling in tons of refrigeration and temperatures in °F; optional
// water-side hints in GPM and °F are converted alongside.
func (e *Engine) normalize(req *models.CoolingRequest) models.CoolingRequest {
	norm := *req
	imperial := req.Units == models.UnitsImperial

	in := units.ToMetric(units.RequestInputs{
		CoolingKW:   req.CoolingKW,
		RoomTemp:    req.RoomTemp,
		DesiredTemp: req.DesiredTemp,
		WaterTemp:   req.WaterTemp,
	}, imperial)
	norm.CoolingKW = in.CoolingKW
	norm.RoomTemp = in.RoomTemp
	norm.DesiredTemp = in.DesiredTemp
	norm.WaterTemp = in.WaterTemp

	if imperial {
		if req.FlowRate != nil {
			norm.FlowRate = models.Float64Ptr(units.GPMToM3H(*req.FlowRate))
		}
		if req.ReturnWaterTemp != nil {
			norm.ReturnWaterTemp = models.Float64Ptr(units.FahrenheitToCelsius(*req.ReturnWaterTemp))
		}
		if req.ServerAirFlow != nil {
			norm.ServerAirFlow = models.Float64Ptr(units.CFMToM3H(*req.ServerAirFlow))
		}
		norm.Units = models.UnitsMetric
	}
	return norm
}

// applyRegionalDefaults fills the coolant fields a request left open from
// the resolved regional settings, then the engine configuration.
func (e *Engine) applyRegionalDefaults(req *models.CoolingRequest, settings regional.Settings) {
	if req.FluidType == "" {
		req.FluidType = settings.DefaultFluid
		if req.FluidType == "" {
			req.FluidType = models.FluidType(e.cfg.Engine.DefaultFluidType)
		}
		if req.GlycolPercentage == nil && req.FluidType != models.FluidWater {
			pct := settings.DefaultGlycolPercentage
			if pct == 0 {
				pct = e.cfg.Engine.DefaultGlycolPercent
			}
			req.GlycolPercentage = models.Float64Ptr(pct)
		}
	}
	if req.GlycolPercentage == nil && req.FluidType != models.FluidWater {
		req.GlycolPercentage = models.Float64Ptr(e.cfg.Engine.DefaultGlycolPercent)
	}
}

// pickProduct resolves an explicit product id or runs the selector.
func (e *Engine) pickProduct(req *models.CoolingRequest) (*models.Product, error) {
	if req.ProductID != "" {
		return e.selector.ByID(req.ProductID)
	}
	product := e.selector.Select(req.CoolingKW, selection.Criteria{
		RackType:         req.RackType,
		PassivePreferred: req.PassivePreferred,
	})
	if product == nil {
		return nil, fmt.Errorf("no product available for %.1f kW", req.CoolingKW)
	}
	return product, nil
}

// commercialInputs layers request overrides over regional settings over
// the engine configuration.
func (e *Engine) commercialInputs(req *models.CoolingRequest, settings regional.Settings) commercial.Inputs {
	in := commercial.Inputs{
		OperatingHours:  e.cfg.Commercial.OperatingHours,
		ElectricityCost: e.cfg.Commercial.ElectricityCost,
		CarbonFactor:    e.cfg.Commercial.CarbonFactor,
	}
	if settings.ElectricityCost > 0 {
		in.ElectricityCost = settings.ElectricityCost
	}
	if settings.CarbonFactor > 0 {
		in.CarbonFactor = settings.CarbonFactor
	}
	if req.OperatingHours != nil {
		in.OperatingHours = *req.OperatingHours
	}
	if req.ElectricityCost != nil {
		in.ElectricityCost = *req.ElectricityCost
	}
	if req.CarbonFactor != nil {
		in.CarbonFactor = *req.CarbonFactor
	}
	return in
}
