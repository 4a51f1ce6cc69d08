package catalog

import "github.com/grit-hub-leg/thermal-calculator-2/pkg/models"

// BuiltinProducts returns the ColdLogik rear-door range: CL20 active,
// CL21 passive and CL23 HPC doors.
func BuiltinProducts() []*models.Product {
	coldLogikController := &models.ControllerSpecs{
		Model:       "ColdLogik Controller",
		ControlType: "variable voltage",
		Protocols:   []string{"Modbus", "BACnet", "SNMP"},
		SupportsRMS: true,
	}

	valvesDN25DN32 := []models.ValveOption{
		{Type: "2way", Size: "DN 25", MaxFlowRate: 6.3, KvValue: 10.0},
		{Type: "2way", Size: "DN 32", MaxFlowRate: 10.0, KvValue: 16.0},
		{Type: "epiv", Size: "DN 25", MaxFlowRate: 4.8, KvValue: 8.6},
		{Type: "epiv", Size: "DN 32", MaxFlowRate: 9.5, KvValue: 15.0},
	}
	valvesDN25 := []models.ValveOption{
		{Type: "2way", Size: "DN 25", MaxFlowRate: 6.3, KvValue: 10.0},
		{Type: "epiv", Size: "DN 25", MaxFlowRate: 4.8, KvValue: 8.6},
	}

	return []*models.Product{
		{
			ID:                   "CL20_42U600",
			Name:                 "ColdLogik CL20 Rear Door Heat Exchanger 42U 600mm",
			Series:               models.SeriesActive,
			RackType:             "42U600",
			MaxCoolingCapacityKW: 65,
			NumberOfFans:         4,
			Coil: models.CoilGeometry{
				TubeDiameterMM: 12, TubeLengthM: 1.2, TubeRows: 4,
				FinSpacingMM: 2.0, FinThicknessMM: 0.15, FinAreaM2: 2.8, NumberOfPasses: 4,
			},
			Fan: &models.FanSpecs{
				Model: "EC Fan", NominalAirFlow: 6847, MaxAirFlow: 8217,
				NominalStaticPress: 55, MaxStaticPress: 80, NominalPower: 60, NominalNoise: 54,
			},
			Water: models.WaterSpecs{
				MinInletTemp: 14, MaxInletTemp: 21, NominalDeltaT: 5,
				MinFlowRate: 1.0, RecommendedFlowRate: 4.0,
			},
			ValveOptions: valvesDN25DN32,
			Dimensions:   models.Dimensions{HeightMM: 2040, WidthMM: 596, DepthMM: 380, WetWeightKG: 145},
			Electrical:   models.ElectricalSpecs{MaxCurrentA: 12.5, Voltage: 230, Phases: 1},
			Efficiency:   models.EfficiencySpecs{MinPUE: 1.03, RatedEER: 80, OperationalSavings: 0.86},
			Controller:   coldLogikController,
			ASHRAEClass:  "A1",
			PartNumber:   "CL20-42U600",
		},
		{
			ID:                   "CL20_42U800",
			Name:                 "ColdLogik CL20 Rear Door Heat Exchanger 42U 800mm",
			Series:               models.SeriesActive,
			RackType:             "42U800",
			MaxCoolingCapacityKW: 75,
			NumberOfFans:         5,
			Coil: models.CoilGeometry{
				TubeDiameterMM: 12, TubeLengthM: 1.6, TubeRows: 4,
				FinSpacingMM: 2.0, FinThicknessMM: 0.15, FinAreaM2: 3.7, NumberOfPasses: 4,
			},
			Fan: &models.FanSpecs{
				Model: "EC Fan", NominalAirFlow: 7500, MaxAirFlow: 8217,
				NominalStaticPress: 55, MaxStaticPress: 80, NominalPower: 60, NominalNoise: 54,
			},
			Water: models.WaterSpecs{
				MinInletTemp: 14, MaxInletTemp: 21, NominalDeltaT: 5,
				MinFlowRate: 1.5, RecommendedFlowRate: 5.0,
			},
			ValveOptions: valvesDN25DN32,
			Dimensions:   models.Dimensions{HeightMM: 2040, WidthMM: 796, DepthMM: 380, WetWeightKG: 170},
			Electrical:   models.ElectricalSpecs{MaxCurrentA: 12.5, Voltage: 230, Phases: 1},
			Efficiency:   models.EfficiencySpecs{MinPUE: 1.03, RatedEER: 80, OperationalSavings: 0.86},
			Controller:   coldLogikController,
			ASHRAEClass:  "A1",
			PartNumber:   "CL20-42U800",
		},
		{
			ID:                   "CL20_48U800",
			Name:                 "ColdLogik CL20 Rear Door Heat Exchanger 48U 800mm",
			Series:               models.SeriesActive,
			RackType:             "48U800",
			MaxCoolingCapacityKW: 93,
			NumberOfFans:         6,
			Coil: models.CoilGeometry{
				TubeDiameterMM: 12, TubeLengthM: 1.8, TubeRows: 4,
				FinSpacingMM: 2.0, FinThicknessMM: 0.15, FinAreaM2: 4.2, NumberOfPasses: 4,
			},
			Fan: &models.FanSpecs{
				Model: "EC Fan", NominalAirFlow: 8217, MaxAirFlow: 8217,
				NominalStaticPress: 60, MaxStaticPress: 85, NominalPower: 60, NominalNoise: 56,
			},
			Water: models.WaterSpecs{
				MinInletTemp: 14, MaxInletTemp: 21, NominalDeltaT: 5,
				MinFlowRate: 2.0, RecommendedFlowRate: 6.5,
			},
			ValveOptions: []models.ValveOption{
				{Type: "2way", Size: "DN 32", MaxFlowRate: 10.0, KvValue: 16.0},
				{Type: "2way", Size: "DN 40", MaxFlowRate: 16.0, KvValue: 25.0},
				{Type: "epiv", Size: "DN 32", MaxFlowRate: 9.5, KvValue: 15.0},
				{Type: "epiv", Size: "DN 40", MaxFlowRate: 15.0, KvValue: 24.0},
			},
			Dimensions:  models.Dimensions{HeightMM: 2485, WidthMM: 796, DepthMM: 380, WetWeightKG: 190},
			Electrical:  models.ElectricalSpecs{MaxCurrentA: 12.5, Voltage: 230, Phases: 1},
			Efficiency:  models.EfficiencySpecs{MinPUE: 1.03, RatedEER: 80, OperationalSavings: 0.86},
			Controller:  coldLogikController,
			ASHRAEClass: "A1",
			PartNumber:  "CL20-48U800",
		},
		{
			ID:                   "CL21_42U600",
			Name:                 "ColdLogik CL21 Smart Passive RDHx 42U 600mm",
			Series:               models.SeriesPassive,
			RackType:             "42U600",
			MaxCoolingCapacityKW: 20,
			Coil: models.CoilGeometry{
				TubeDiameterMM: 12, TubeLengthM: 1.2, TubeRows: 6,
				FinSpacingMM: 1.8, FinThicknessMM: 0.15, FinAreaM2: 3.0, NumberOfPasses: 6,
			},
			Passive: &models.PassiveSpecs{MinAirFlow: 1000, MaxAirFlow: 4000, RequiredServerPressure: 20},
			Water: models.WaterSpecs{
				MinInletTemp: 14, MaxInletTemp: 14, NominalDeltaT: 6,
				MinFlowRate: 1.0, RecommendedFlowRate: 3.0,
			},
			ValveOptions: valvesDN25,
			Dimensions:   models.Dimensions{HeightMM: 2000, WidthMM: 597, DepthMM: 198, WetWeightKG: 100},
			Efficiency:   models.EfficiencySpecs{MinPUE: 1.01, OperationalSavings: 1.0},
			ASHRAEClass:  "A1",
			PartNumber:   "CL21-42U600",
		},
		{
			ID:                   "CL21_42U800",
			Name:                 "ColdLogik CL21 Smart Passive RDHx 42U 800mm",
			Series:               models.SeriesPassive,
			RackType:             "42U800",
			MaxCoolingCapacityKW: 25,
			Coil: models.CoilGeometry{
				TubeDiameterMM: 12, TubeLengthM: 1.6, TubeRows: 6,
				FinSpacingMM: 1.8, FinThicknessMM: 0.15, FinAreaM2: 4.0, NumberOfPasses: 6,
			},
			Passive: &models.PassiveSpecs{MinAirFlow: 1000, MaxAirFlow: 5000, RequiredServerPressure: 20},
			Water: models.WaterSpecs{
				MinInletTemp: 14, MaxInletTemp: 14, NominalDeltaT: 6,
				MinFlowRate: 1.5, RecommendedFlowRate: 3.5,
			},
			ValveOptions: valvesDN25,
			Dimensions:   models.Dimensions{HeightMM: 2000, WidthMM: 797, DepthMM: 198, WetWeightKG: 115},
			Efficiency:   models.EfficiencySpecs{MinPUE: 1.01, OperationalSavings: 1.0},
			ASHRAEClass:  "A1",
			PartNumber:   "CL21-42U800",
		},
		{
			ID:                   "CL21_48U800",
			Name:                 "ColdLogik CL21 Smart Passive RDHx 48U 800mm",
			Series:               models.SeriesPassive,
			RackType:             "48U800",
			MaxCoolingCapacityKW: 29,
			Coil: models.CoilGeometry{
				TubeDiameterMM: 12, TubeLengthM: 1.8, TubeRows: 6,
				FinSpacingMM: 1.8, FinThicknessMM: 0.15, FinAreaM2: 4.5, NumberOfPasses: 6,
			},
			Passive: &models.PassiveSpecs{MinAirFlow: 1000, MaxAirFlow: 6000, RequiredServerPressure: 20},
			Water: models.WaterSpecs{
				MinInletTemp: 14, MaxInletTemp: 14, NominalDeltaT: 6,
				MinFlowRate: 2.0, RecommendedFlowRate: 4.0,
			},
			ValveOptions: valvesDN25DN32,
			Dimensions:   models.Dimensions{HeightMM: 2444, WidthMM: 797, DepthMM: 198, WetWeightKG: 125},
			Efficiency:   models.EfficiencySpecs{MinPUE: 1.01, OperationalSavings: 1.0},
			ASHRAEClass:  "A1",
			PartNumber:   "CL21-48U800",
		},
		{
			ID:                   "CL23_48U800",
			Name:                 "ColdLogik CL23 HPC RDHx 48U 800mm",
			Series:               models.SeriesHPC,
			RackType:             "48U800",
			MaxCoolingCapacityKW: 204,
			NumberOfFans:         8,
			Coil: models.CoilGeometry{
				TubeDiameterMM: 12, TubeLengthM: 1.8, TubeRows: 8,
				FinSpacingMM: 1.6, FinThicknessMM: 0.15, FinAreaM2: 5.5, NumberOfPasses: 8,
			},
			Fan: &models.FanSpecs{
				Model: "High-Performance EC Fan", NominalAirFlow: 14229, MaxAirFlow: 16000,
				NominalStaticPress: 80, MaxStaticPress: 120, NominalPower: 120, NominalNoise: 60,
			},
			Water: models.WaterSpecs{
				MinInletTemp: 14, MaxInletTemp: 23, NominalDeltaT: 7,
				MinFlowRate: 4.0, RecommendedFlowRate: 12.0,
			},
			ValveOptions: []models.ValveOption{
				{Type: "2way", Size: "DN 40", MaxFlowRate: 16.0, KvValue: 25.0},
				{Type: "2way", Size: "DN 50", MaxFlowRate: 25.0, KvValue: 40.0},
				{Type: "epiv", Size: "DN 40", MaxFlowRate: 15.0, KvValue: 24.0},
				{Type: "epiv", Size: "DN 50", MaxFlowRate: 24.0, KvValue: 38.0},
			},
			Dimensions:  models.Dimensions{HeightMM: 2481, WidthMM: 799, DepthMM: 415, WetWeightKG: 185},
			Electrical:  models.ElectricalSpecs{MaxCurrentA: 16, Voltage: 230, Phases: 1},
			Efficiency:  models.EfficiencySpecs{MinPUE: 1.035, RatedEER: 100, OperationalSavings: 0.92},
			Controller:  coldLogikController,
			ASHRAEClass: "A1",
			PartNumber:  "CL23-48U800",
		},
	}
}
