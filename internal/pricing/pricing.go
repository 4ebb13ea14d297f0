// Package pricing computes instant estimates for corrugated box orders.
// Compute is a pure function: identical input always yields identical
// output, and it is safe to call from any number of goroutines.
package pricing

import (
	"fmt"
	"math"
)

type PlyType string

const (
	Ply3 PlyType = "3-ply"
	Ply5 PlyType = "5-ply"
	Ply7 PlyType = "7-ply"
)

// Base rate per unit by ply type, in rupees. These values must match the
// published calculator exactly.
var baseRates = map[PlyType]float64{
	Ply3: 15,
	Ply5: 25,
	Ply7: 40,
}

// Quantity discount tiers, evaluated highest threshold first.
var discountTiers = []struct {
	MinQuantity int
	Factor      float64
}{
	{1000, 0.85},
	{500, 0.90},
	{100, 0.95},
}

const (
	// Unit price grows linearly with volume in units of 100 cubic inches.
	volumeRateDivisor  = 100.0
	sizeMultiplierStep = 0.02

	// Printing surcharge per unit: printingBase + printingPerColor*colors.
	printingBase     = 5.0
	printingPerColor = 2.0

	minColors = 1
	maxColors = 4
)

// BoxSpecification describes one box order to be priced. Dimensions are in
// inches. ColorCount is only meaningful when PrintingRequested is set.
type BoxSpecification struct {
	PlyType           PlyType `json:"plyType"`
	Length            float64 `json:"length"`
	Width             float64 `json:"width"`
	Height            float64 `json:"height"`
	Quantity          int     `json:"quantity"`
	PrintingRequested bool    `json:"printingRequested"`
	ColorCount        int     `json:"colorCount"`
}

// PriceQuote is the computed estimate. The breakdown fields are for display
// only and are never persisted.
type PriceQuote struct {
	TotalPrice   float64 `json:"totalPrice"`
	PricePerUnit float64 `json:"pricePerUnit"`

	BaseRate       float64 `json:"baseRate"`
	SizeMultiplier float64 `json:"sizeMultiplier"`
	DiscountFactor float64 `json:"discountFactor"`
	PrintingCost   float64 `json:"printingCost"`
}

// InvalidSpecificationError reports a malformed or out-of-domain input.
// Retrying with the same input cannot succeed.
type InvalidSpecificationError struct {
	Field  string
	Reason string
}

func (e *InvalidSpecificationError) Error() string {
	return fmt.Sprintf("invalid specification: %s: %s", e.Field, e.Reason)
}

func invalid(field, reason string) error {
	return &InvalidSpecificationError{Field: field, Reason: reason}
}

// Compute prices a box specification. It returns an
// *InvalidSpecificationError when the spec is out of domain.
func Compute(spec BoxSpecification) (PriceQuote, error) {
	baseRate, ok := baseRates[spec.PlyType]
	if !ok {
		return PriceQuote{}, invalid("plyType", fmt.Sprintf("unknown ply type %q", spec.PlyType))
	}
	if spec.Length <= 0 {
		return PriceQuote{}, invalid("length", "must be positive")
	}
	if spec.Width <= 0 {
		return PriceQuote{}, invalid("width", "must be positive")
	}
	if spec.Height <= 0 {
		return PriceQuote{}, invalid("height", "must be positive")
	}
	if spec.Quantity <= 0 {
		return PriceQuote{}, invalid("quantity", "must be positive")
	}
	if spec.PrintingRequested && (spec.ColorCount < minColors || spec.ColorCount > maxColors) {
		return PriceQuote{}, invalid("colorCount", fmt.Sprintf("must be between %d and %d", minColors, maxColors))
	}

	volume := spec.Length * spec.Width * spec.Height / volumeRateDivisor
	sizeMultiplier := 1 + volume*sizeMultiplierStep

	discountFactor := 1.0
	for _, tier := range discountTiers {
		if spec.Quantity >= tier.MinQuantity {
			discountFactor = tier.Factor
			break
		}
	}

	printingCost := 0.0
	if spec.PrintingRequested {
		printingCost = printingBase + printingPerColor*float64(spec.ColorCount)
	}

	pricePerUnit := (baseRate*sizeMultiplier + printingCost) * discountFactor

	return PriceQuote{
		TotalPrice:     round2(pricePerUnit * float64(spec.Quantity)),
		PricePerUnit:   pricePerUnit,
		BaseRate:       baseRate,
		SizeMultiplier: sizeMultiplier,
		DiscountFactor: discountFactor,
		PrintingCost:   printingCost,
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
