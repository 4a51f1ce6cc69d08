package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grit-hub-leg/thermal-calculator-2/pkg/models"
)

func validRequest() *models.CoolingRequest {
	return &models.CoolingRequest{
		CoolingKW:   50,
		RoomTemp:    24,
		DesiredTemp: 22,
		WaterTemp:   15,
	}
}

func TestValidateRequest_Valid(t *testing.T) {
	result, err := ValidateRequest(validRequest())
	require.NoError(t, err)
	assert.Empty(t, result.Warnings)
}

func TestValidateRequest_RangeViolations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.CoolingRequest)
	}{
		{"zero cooling load", func(r *models.CoolingRequest) { r.CoolingKW = 0 }},
		{"cooling load above range", func(r *models.CoolingRequest) { r.CoolingKW = 600 }},
		{"room temp below range", func(r *models.CoolingRequest) { r.RoomTemp = 5; r.DesiredTemp = 4 }},
		{"room temp above range", func(r *models.CoolingRequest) { r.RoomTemp = 45 }},
		{"water temp below range", func(r *models.CoolingRequest) { r.WaterTemp = 2 }},
		{"water temp above range", func(r *models.CoolingRequest) { r.WaterTemp = 35 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			_, err := ValidateRequest(req)
			assert.ErrorIs(t, err, ErrInvalidRequest)
		})
	}
}

func TestValidateRequest_InvertedTemperatures(t *testing.T) {
	req := validRequest()
	req.RoomTemp = 22
	req.DesiredTemp = 24

	_, err := ValidateRequest(req)
	require.ErrorIs(t, err, ErrInvalidRequest)
	assert.Contains(t, err.Error(), "must be higher than desired")
}

func TestValidateRequest_WaterWarmerThanTarget(t *testing.T) {
	req := validRequest()
	req.WaterTemp = 23

	_, err := ValidateRequest(req)
	require.ErrorIs(t, err, ErrInvalidRequest)
	assert.Contains(t, err.Error(), "must be lower than desired")
}

func TestValidateRequest_OptionalOutOfRangeWarns(t *testing.T) {
	req := validRequest()
	req.FlowRate = models.Float64Ptr(80)

	result, err := ValidateRequest(req)
	require.NoError(t, err)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "flow_rate")
}

func TestValidateRequest_CategoricalFields(t *testing.T) {
	req := validRequest()
	req.RackType = "60U1200"
	_, err := ValidateRequest(req)
	assert.ErrorIs(t, err, ErrInvalidRequest)

	req = validRequest()
	req.Units = "nautical"
	_, err = ValidateRequest(req)
	assert.ErrorIs(t, err, ErrInvalidRequest)

	// Unknown fluids warn instead of failing; the solver substitutes water.
	req = validRequest()
	req.FluidType = "brine"
	result, err := ValidateRequest(req)
	require.NoError(t, err)
	require.NotEmpty(t, result.Warnings)
	assert.Contains(t, result.Warnings[0], "brine")
}

func TestValidateRequest_GlycolWarnings(t *testing.T) {
	req := validRequest()
	req.FluidType = models.FluidEthyleneGlycol
	req.GlycolPercentage = models.Float64Ptr(55)

	result, err := ValidateRequest(req)
	require.NoError(t, err)
	require.NotEmpty(t, result.Warnings)
	assert.Contains(t, result.Warnings[0], "glycol")
}

func TestValidateRequest_PassiveOverThirtyKWWarns(t *testing.T) {
	req := validRequest()
	req.PassivePreferred = true

	result, err := ValidateRequest(req)
	require.NoError(t, err)
	require.NotEmpty(t, result.Warnings)
	assert.Contains(t, result.Warnings[0], "passive")
}

func TestValidateProductCompatibility(t *testing.T) {
	product := &models.Product{
		ID:                   "CL20_42U600",
		Series:               models.SeriesActive,
		MaxCoolingCapacityKW: 65,
		Water: models.WaterSpecs{
			MinInletTemp: 7,
			MaxInletTemp: 27,
		},
	}

	t.Run("in envelope", func(t *testing.T) {
		result, err := ValidateProductCompatibility(product, 50, 15)
		require.NoError(t, err)
		assert.Empty(t, result.Warnings)
	})

	t.Run("capacity shortfall warns", func(t *testing.T) {
		result, err := ValidateProductCompatibility(product, 80, 15)
		require.NoError(t, err)
		require.NotEmpty(t, result.Warnings)
		assert.Contains(t, result.Warnings[0], "exceeds product capacity")
	})

	t.Run("oversized unit warns", func(t *testing.T) {
		result, err := ValidateProductCompatibility(product, 5, 15)
		require.NoError(t, err)
		require.NotEmpty(t, result.Warnings)
		assert.Contains(t, result.Warnings[0], "smaller unit")
	})

	t.Run("water temp outside envelope fails", func(t *testing.T) {
		_, err := ValidateProductCompatibility(product, 50, 5)
		assert.ErrorIs(t, err, ErrInvalidRequest)

		_, err = ValidateProductCompatibility(product, 50, 29)
		assert.ErrorIs(t, err, ErrInvalidRequest)
	})

	t.Run("warm water on passive door warns", func(t *testing.T) {
		passive := *product
		passive.Series = models.SeriesPassive
		result, err := ValidateProductCompatibility(&passive, 50, 16)
		require.NoError(t, err)
		require.NotEmpty(t, result.Warnings)
		assert.Contains(t, result.Warnings[len(result.Warnings)-1], "passive")
	})
}
