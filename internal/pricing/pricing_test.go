package pricing

import (
	"errors"
	"math"
	"testing"
)

const eps = 1e-9

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func mustCompute(t *testing.T, spec BoxSpecification) PriceQuote {
	t.Helper()
	quote, err := Compute(spec)
	if err != nil {
		t.Fatalf("Compute(%+v) failed: %v", spec, err)
	}
	return quote
}

func TestCompute_PlainBoxes(t *testing.T) {
	quote := mustCompute(t, BoxSpecification{
		PlyType:  Ply3,
		Length:   12,
		Width:    10,
		Height:   8,
		Quantity: 500,
	})

	// volume=9.6, sizeMultiplier=1.192, 10% tier discount
	if !approxEqual(quote.SizeMultiplier, 1.192) {
		t.Errorf("Incorrect size multiplier, got %v, want 1.192", quote.SizeMultiplier)
	}
	if quote.DiscountFactor != 0.90 {
		t.Errorf("Incorrect discount factor, got %v, want 0.90", quote.DiscountFactor)
	}
	if !approxEqual(quote.PricePerUnit, 16.092) {
		t.Errorf("Incorrect unit price, got %v, want 16.092", quote.PricePerUnit)
	}
	if quote.TotalPrice != 8046.00 {
		t.Errorf("Incorrect total, got %v, want 8046.00", quote.TotalPrice)
	}
}

func TestCompute_TopTierDiscount(t *testing.T) {
	quote := mustCompute(t, BoxSpecification{
		PlyType:  Ply3,
		Length:   12,
		Width:    10,
		Height:   8,
		Quantity: 1000,
	})

	if quote.DiscountFactor != 0.85 {
		t.Errorf("Incorrect discount factor, got %v, want 0.85", quote.DiscountFactor)
	}
	if !approxEqual(quote.PricePerUnit, 15.198) {
		t.Errorf("Incorrect unit price, got %v, want 15.198", quote.PricePerUnit)
	}
	if quote.TotalPrice != 15198.00 {
		t.Errorf("Incorrect total, got %v, want 15198.00", quote.TotalPrice)
	}
}

func TestCompute_WithPrinting(t *testing.T) {
	quote := mustCompute(t, BoxSpecification{
		PlyType:           Ply5,
		Length:            10,
		Width:             10,
		Height:            10,
		Quantity:          200,
		PrintingRequested: true,
		ColorCount:        2,
	})

	// volume=10, sizeMultiplier=1.2, printing 5+2*2=9, 5% tier discount:
	// (25*1.2+9)*0.95 = 37.05
	if !approxEqual(quote.PrintingCost, 9) {
		t.Errorf("Incorrect printing cost, got %v, want 9", quote.PrintingCost)
	}
	if !approxEqual(quote.PricePerUnit, 37.05) {
		t.Errorf("Incorrect unit price, got %v, want 37.05", quote.PricePerUnit)
	}
	if quote.TotalPrice != 7410.00 {
		t.Errorf("Incorrect total, got %v, want 7410.00", quote.TotalPrice)
	}
}

func TestCompute_DiscountTierBoundaries(t *testing.T) {
	spec := BoxSpecification{PlyType: Ply5, Length: 10, Width: 10, Height: 10}

	cases := []struct {
		quantity int
		factor   float64
	}{
		{1, 1.00},
		{99, 1.00},
		{100, 0.95},
		{499, 0.95},
		{500, 0.90},
		{999, 0.90},
		{1000, 0.85},
		{5000, 0.85},
	}

	for _, tc := range cases {
		spec.Quantity = tc.quantity
		quote := mustCompute(t, spec)
		if quote.DiscountFactor != tc.factor {
			t.Errorf("quantity %d: got factor %v, want %v", tc.quantity, quote.DiscountFactor, tc.factor)
		}
	}

	// Crossing a tier edge must strictly decrease the unit price.
	for _, edge := range []int{100, 500, 1000} {
		spec.Quantity = edge - 1
		below := mustCompute(t, spec)
		spec.Quantity = edge
		at := mustCompute(t, spec)
		if at.PricePerUnit >= below.PricePerUnit {
			t.Errorf("unit price did not drop at tier edge %d: %v -> %v",
				edge, below.PricePerUnit, at.PricePerUnit)
		}
	}
}

func TestCompute_UnitPriceGrowsWithDimensions(t *testing.T) {
	base := BoxSpecification{PlyType: Ply7, Length: 10, Width: 10, Height: 10, Quantity: 250}
	ref := mustCompute(t, base)

	grow := []BoxSpecification{base, base, base}
	grow[0].Length += 1
	grow[1].Width += 1
	grow[2].Height += 1

	for i, spec := range grow {
		quote := mustCompute(t, spec)
		if quote.PricePerUnit <= ref.PricePerUnit {
			t.Errorf("case %d: unit price did not grow with dimension: %v <= %v",
				i, quote.PricePerUnit, ref.PricePerUnit)
		}
	}
}

func TestCompute_PrintingSurchargeLinearInColors(t *testing.T) {
	spec := BoxSpecification{
		PlyType:           Ply3,
		Length:            8,
		Width:             6,
		Height:            4,
		Quantity:          1200,
		PrintingRequested: true,
	}

	// Each extra color adds 2*discountFactor to the unit price.
	for colors := minColors; colors < maxColors; colors++ {
		spec.ColorCount = colors
		lo := mustCompute(t, spec)
		spec.ColorCount = colors + 1
		hi := mustCompute(t, spec)

		delta := hi.PricePerUnit - lo.PricePerUnit
		want := printingPerColor * lo.DiscountFactor
		if !approxEqual(delta, want) {
			t.Errorf("colors %d->%d: surcharge delta %v, want %v", colors, colors+1, delta, want)
		}
	}
}

func TestCompute_TotalMatchesUnitPrice(t *testing.T) {
	specs := []BoxSpecification{
		{PlyType: Ply3, Length: 1, Width: 1, Height: 1, Quantity: 1},
		{PlyType: Ply5, Length: 24, Width: 18, Height: 12, Quantity: 750, PrintingRequested: true, ColorCount: 4},
		{PlyType: Ply7, Length: 36, Width: 30, Height: 24, Quantity: 3000},
	}

	for _, spec := range specs {
		quote := mustCompute(t, spec)
		if quote.PricePerUnit <= 0 {
			t.Errorf("%+v: non-positive unit price %v", spec, quote.PricePerUnit)
		}
		want := round2(quote.PricePerUnit * float64(spec.Quantity))
		if quote.TotalPrice != want {
			t.Errorf("%+v: total %v, want %v", spec, quote.TotalPrice, want)
		}
	}
}

func TestCompute_Idempotent(t *testing.T) {
	spec := BoxSpecification{
		PlyType:           Ply5,
		Length:            15,
		Width:             12,
		Height:            9,
		Quantity:          640,
		PrintingRequested: true,
		ColorCount:        3,
	}

	first := mustCompute(t, spec)
	second := mustCompute(t, spec)
	if first != second {
		t.Errorf("Compute is not idempotent: %+v != %+v", first, second)
	}
}

func TestCompute_InvalidInput(t *testing.T) {
	valid := BoxSpecification{PlyType: Ply3, Length: 12, Width: 10, Height: 8, Quantity: 500}

	cases := []struct {
		name   string
		mutate func(*BoxSpecification)
		field  string
	}{
		{"unknown ply", func(s *BoxSpecification) { s.PlyType = "9-ply" }, "plyType"},
		{"empty ply", func(s *BoxSpecification) { s.PlyType = "" }, "plyType"},
		{"zero quantity", func(s *BoxSpecification) { s.Quantity = 0 }, "quantity"},
		{"negative length", func(s *BoxSpecification) { s.Length = -1 }, "length"},
		{"zero width", func(s *BoxSpecification) { s.Width = 0 }, "width"},
		{"zero height", func(s *BoxSpecification) { s.Height = 0 }, "height"},
		{"colors too low", func(s *BoxSpecification) { s.PrintingRequested = true; s.ColorCount = 0 }, "colorCount"},
		{"colors too high", func(s *BoxSpecification) { s.PrintingRequested = true; s.ColorCount = 5 }, "colorCount"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			spec := valid
			tc.mutate(&spec)

			_, err := Compute(spec)
			if err == nil {
				t.Fatalf("expected error for %+v, got nil", spec)
			}
			var specErr *InvalidSpecificationError
			if !errors.As(err, &specErr) {
				t.Fatalf("expected InvalidSpecificationError, got %T", err)
			}
			if specErr.Field != tc.field {
				t.Errorf("error names field %q, want %q", specErr.Field, tc.field)
			}
		})
	}
}

func TestCompute_ColorCountIgnoredWithoutPrinting(t *testing.T) {
	// Without printing the color count is not meaningful and must not be
	// validated or priced.
	spec := BoxSpecification{PlyType: Ply3, Length: 12, Width: 10, Height: 8, Quantity: 500, ColorCount: 9}
	quote := mustCompute(t, spec)
	if quote.PrintingCost != 0 {
		t.Errorf("printing cost %v for non-printed order, want 0", quote.PrintingCost)
	}
}
