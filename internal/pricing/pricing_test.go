package pricing_test

import (
	"testing"

	"github.com/carespace/carespace-api/internal/models"
	"github.com/carespace/carespace-api/internal/pricing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceForDuration(t *testing.T) {
	product := &models.Product{Price1Month: 15000, Price2Month: 28000, Price3Month: 39000}

	tests := []struct {
		name     string
		duration string
		expected int64
	}{
		{name: "1 month", duration: "1month", expected: 15000},
		{name: "2 months", duration: "2month", expected: 28000},
		{name: "3 months", duration: "3month", expected: 39000},
		{name: "absent falls back to 1 month", duration: "", expected: 15000},
		{name: "unknown falls back to 1 month", duration: "bogus", expected: 15000},
		{name: "case sensitive", duration: "2MONTH", expected: 15000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, pricing.PriceForDuration(product, tt.duration))
		})
	}
}

func TestPriceForDuration_FallbackLaw(t *testing.T) {
	products := []*models.Product{
		{Price1Month: 0},
		{Price1Month: 1, Price2Month: 2, Price3Month: 3},
		{Price1Month: 99999, Price2Month: 0, Price3Month: 0},
	}

	for _, p := range products {
		assert.Equal(t, p.Price1Month, pricing.PriceForDuration(p, "1month"))
		assert.Equal(t, p.Price1Month, pricing.PriceForDuration(p, "bogus"))
	}
}

func TestApply(t *testing.T) {
	first := &models.Product{Price1Month: 100, Price2Month: 180, Price3Month: 250}
	second := &models.Product{Price1Month: 50, Price2Month: 90, Price3Month: 120}

	pricing.Apply("3month", first, second)

	require.NotNil(t, first.Price)
	require.NotNil(t, second.Price)
	assert.Equal(t, int64(250), *first.Price)
	assert.Equal(t, int64(120), *second.Price)
}

func TestParseDuration(t *testing.T) {
	assert.Equal(t, pricing.OneMonth, pricing.ParseDuration(""))
	assert.Equal(t, pricing.TwoMonth, pricing.ParseDuration("2month"))
	assert.Equal(t, pricing.ThreeMonth, pricing.ParseDuration("3month"))
	assert.Equal(t, pricing.OneMonth, pricing.ParseDuration("12month"))
}
