package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestROI(t *testing.T) {
	tests := []struct {
		name        string
		conversions int64
		spend       float64
		want        float64
	}{
		{name: "positive return", conversions: 10, spend: 200, want: 150},
		{name: "net loss", conversions: 2, spend: 200, want: -50},
		{name: "no conversions", conversions: 0, spend: 200, want: -100},
		{name: "zero spend", conversions: 10, spend: 0, want: 0},
		{name: "zero spend no conversions", conversions: 0, spend: 0, want: 0},
		{name: "rounded", conversions: 1, spend: 30, want: 66.67},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ROI(tc.conversions, tc.spend, DefaultConversionValue))
		})
	}
}

func TestROI_CustomConversionValue(t *testing.T) {
	assert.Equal(t, 0.0, ROI(4, 100, 25))
	assert.Equal(t, 300.0, ROI(4, 100, 100))
}

func TestBudgetUsage(t *testing.T) {
	assert.Equal(t, 75.0, BudgetUsage(1000, 750))
	assert.Equal(t, 120.0, BudgetUsage(1000, 1200))
	assert.Equal(t, 0.0, BudgetUsage(0, 100))
	assert.Equal(t, 0.0, BudgetUsage(500, 0))
	assert.Equal(t, 33.33, BudgetUsage(300, 100))
}

func TestBudgetAlert(t *testing.T) {
	assert.True(t, BudgetAlert(1000, 850, 80))
	assert.False(t, BudgetAlert(1000, 700, 80))
	assert.True(t, BudgetAlert(1000, 800, 80), "threshold is inclusive")
	assert.True(t, BudgetAlert(1000, 1500, DefaultAlertThreshold))
	assert.False(t, BudgetAlert(0, 100, DefaultAlertThreshold))
}

func TestCTR(t *testing.T) {
	assert.Equal(t, 1.0, CTR(100, 10000))
	assert.Equal(t, 0.0, CTR(100, 0))
	assert.Equal(t, 0.0, CTR(0, 0))
	assert.Equal(t, 33.33, CTR(1, 3))
}

func TestConversionRate(t *testing.T) {
	assert.Equal(t, 5.0, ConversionRate(10, 200))
	assert.Equal(t, 0.0, ConversionRate(10, 0))
	assert.Equal(t, 66.67, ConversionRate(2, 3))
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{in: 1.005, want: 1.0},
		{in: -1.005, want: -1.0},
		{in: 2.675, want: 2.67},
		{in: 0.125, want: 0.12},
		{in: -0.125, want: -0.12},
		{in: 0.375, want: 0.38},
		{in: 1.006, want: 1.01},
		{in: 2.5, want: 2.5},
		{in: 0.004, want: 0},
		{in: 123456.789, want: 123456.79},
		{in: 1e20, want: 1e20},
		{in: 0, want: 0},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, Round2(tc.in), "%v", tc.in)
	}
}

// TestRates_HalfwayResults covers results that land on or next to a
// rounding half after the division.
func TestRates_HalfwayResults(t *testing.T) {
	assert.Equal(t, 0.12, BudgetUsage(800, 1))
	assert.Equal(t, 0.12, CTR(1, 800))
	assert.Equal(t, 0.12, ConversionRate(1, 800))
}
