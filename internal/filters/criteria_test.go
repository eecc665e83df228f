package filters

import (
	"errors"
	"testing"
)

func TestParseSize(t *testing.T) {
	for _, in := range []string{"S", " m ", "xl", "XXL"} {
		if _, err := ParseSize(in); err != nil {
			t.Fatalf("ParseSize(%q) returned error: %v", in, err)
		}
	}
	_, err := ParseSize("XS")
	if !errors.Is(err, ErrUnknownSize) {
		t.Fatalf("ParseSize(XS) error = %v, want ErrUnknownSize", err)
	}
}

func TestNormalize_SwapsReversedPrices(t *testing.T) {
	c := Criteria{PriceMin: 500, PriceMax: 30}.Normalize()
	if c.PriceMin != 30 || c.PriceMax != 500 {
		t.Fatalf("Normalize prices = %d-%d, want 30-500", c.PriceMin, c.PriceMax)
	}
	if c.Size != DefaultSize {
		t.Fatalf("Normalize size = %q, want %q", c.Size, DefaultSize)
	}
}

func TestShared_MapsFields(t *testing.T) {
	got := Criteria{Category: "Shoes", Color: "#000000", Size: SizeL, PriceMin: 1, PriceMax: 2}.Shared()
	want := Shared{CategoryName: "Shoes", Color: "#000000", Size: "L", MinPrice: 1, MaxPrice: 2}
	if got != want {
		t.Fatalf("Shared = %#v, want %#v", got, want)
	}
}

func TestColorName(t *testing.T) {
	if got := ColorName("#F41C1C"); got != "Red" {
		t.Fatalf("ColorName(#F41C1C) = %q, want Red", got)
	}
	if got := ColorName("teal"); got != "teal" {
		t.Fatalf("ColorName(teal) = %q, want teal", got)
	}
}
