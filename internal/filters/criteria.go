package filters

import (
	"errors"
	"fmt"
	"strings"
)

// Size is one of the fixed garment sizes a listing can be filtered by.
type Size string

const (
	SizeS   Size = "S"
	SizeM   Size = "M"
	SizeL   Size = "L"
	SizeXL  Size = "XL"
	SizeXXL Size = "XXL"
)

// Sizes lists the selectable sizes in display order.
var Sizes = []Size{SizeS, SizeM, SizeL, SizeXL, SizeXXL}

// ErrUnknownSize is returned when a size outside Sizes is requested.
var ErrUnknownSize = errors.New("unknown size")

// ParseSize normalizes value and reports whether it names a known size.
func ParseSize(value string) (Size, error) {
	candidate := Size(strings.ToUpper(strings.TrimSpace(value)))
	for _, size := range Sizes {
		if size == candidate {
			return size, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSize, value)
}

// Color is a selectable color swatch. Code is what gets stored and exported.
type Color struct {
	Name string
	Code string
}

// Colors lists the selectable colors in display order.
var Colors = []Color{
	{Name: "Red", Code: "#f41c1c"},
	{Name: "Blue", Code: "#3c34d5"},
	{Name: "Green", Code: "#007137"},
	{Name: "Black", Code: "#000000"},
	{Name: "Purple", Code: "#c12ec8"},
}

// ColorName returns the display name for code, or code itself when it is not
// one of the predefined swatches.
func ColorName(code string) string {
	for _, c := range Colors {
		if strings.EqualFold(c.Code, code) {
			return c.Name
		}
	}
	return code
}

const (
	DefaultPriceMin = 20
	DefaultPriceMax = 10000
	DefaultSize     = SizeS
)

// Criteria is the working filter set.
type Criteria struct {
	Category string
	Color    string
	Size     Size
	PriceMin int
	PriceMax int
}

// Default returns the criteria used before anything has been imported.
func Default() Criteria {
	return Criteria{
		Size:     DefaultSize,
		PriceMin: DefaultPriceMin,
		PriceMax: DefaultPriceMax,
	}
}

// Normalize enforces PriceMin <= PriceMax by swapping a reversed pair and
// fills an empty size with the default.
func (c Criteria) Normalize() Criteria {
	if c.PriceMin > c.PriceMax {
		c.PriceMin, c.PriceMax = c.PriceMax, c.PriceMin
	}
	if c.Size == "" {
		c.Size = DefaultSize
	}
	return c
}

// Shared converts the criteria into the object published to sibling consumers.
func (c Criteria) Shared() Shared {
	return Shared{
		CategoryName: c.Category,
		Color:        c.Color,
		Size:         string(c.Size),
		MinPrice:     c.PriceMin,
		MaxPrice:     c.PriceMax,
	}
}

// Shared is the resolved filter set handed to the result list. The schema tags
// double as the exported query parameter names.
type Shared struct {
	CategoryName string `json:"category_name" schema:"category_name,omitempty"`
	Color        string `json:"color" schema:"color,omitempty"`
	Size         string `json:"size" schema:"size,omitempty"`
	MinPrice     int    `json:"min_price" schema:"min_price"`
	MaxPrice     int    `json:"max_price" schema:"max_price"`
}
