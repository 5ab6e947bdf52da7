// Package pricing projects a product's stored duration tiers onto the single
// price shown to a customer for a requested rental duration.
package pricing

import "github.com/carespace/carespace-api/internal/models"

type Duration string

const (
	OneMonth   Duration = "1month"
	TwoMonth   Duration = "2month"
	ThreeMonth Duration = "3month"
)

// ParseDuration maps a raw query value onto a known tier.
//
// Unrecognised values, including the empty string, resolve to OneMonth.
func ParseDuration(raw string) Duration {
	switch Duration(raw) {
	case TwoMonth:
		return TwoMonth
	case ThreeMonth:
		return ThreeMonth
	default:
		return OneMonth
	}
}

// PriceForDuration returns the tier of p matching duration, falling back to
// the 1-month tier for anything ParseDuration does not recognise.
func PriceForDuration(p *models.Product, duration string) int64 {
	switch ParseDuration(duration) {
	case TwoMonth:
		return p.Price2Month
	case ThreeMonth:
		return p.Price3Month
	default:
		return p.Price1Month
	}
}

// Apply sets Price on every product for the given duration.
func Apply(duration string, products ...*models.Product) {
	for _, p := range products {
		price := PriceForDuration(p, duration)
		p.Price = &price
	}
}
