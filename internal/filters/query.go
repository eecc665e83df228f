package filters

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/gorilla/schema"
)

// SearchParam is the free-text search parameter dropped once filters change.
const SearchParam = "search"

var (
	decoder = schema.NewDecoder()
	encoder = schema.NewEncoder()
)

func init() {
	decoder.IgnoreUnknownKeys(true)
}

// queryParams mirrors the query parameters read on import. Prices stay
// strings so malformed values can fall back to their defaults instead of
// failing the whole decode.
type queryParams struct {
	Category     string `schema:"category"`
	CategoryName string `schema:"category_name"`
	Color        string `schema:"color"`
	Size         string `schema:"size,default:S"`
	MinPrice     string `schema:"min_price,default:20"`
	MaxPrice     string `schema:"max_price,default:10000"`
}

// Decode builds criteria from a page query. It never fails: missing or
// malformed values are replaced with defaults.
func Decode(query url.Values) Criteria {
	var params queryParams
	if err := decoder.Decode(&params, firstValues(query)); err != nil {
		params = queryParams{}
	}

	size, err := ParseSize(params.Size)
	if err != nil {
		size = DefaultSize
	}

	c := Criteria{
		Category: firstNonEmpty(params.Category, params.CategoryName),
		Color:    strings.TrimSpace(params.Color),
		Size:     size,
		PriceMin: parsePrice(params.MinPrice, DefaultPriceMin),
		PriceMax: parsePrice(params.MaxPrice, DefaultPriceMax),
	}
	return c.Normalize()
}

// Apply returns a copy of current with the criteria written over it: the
// search parameter is removed, category_name/color/size are set when
// non-empty and both prices are always set. A category_name already present
// in current is left alone when the criteria carry no category.
func Apply(current url.Values, c Criteria) (url.Values, error) {
	next := make(url.Values, len(current)+5)
	for key, values := range current {
		next[key] = append([]string(nil), values...)
	}
	next.Del(SearchParam)

	encoded := url.Values{}
	if err := encoder.Encode(c.Shared(), encoded); err != nil {
		return nil, fmt.Errorf("encode filters: %w", err)
	}
	for key, values := range encoded {
		if len(values) == 0 {
			continue
		}
		next.Set(key, values[0])
	}
	return next, nil
}

// firstValues keeps only the first value per key, matching how a page reads a
// single query parameter.
func firstValues(query url.Values) map[string][]string {
	out := make(map[string][]string, len(query))
	for key, values := range query {
		if len(values) > 0 {
			out[key] = values[:1]
		}
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

// parsePrice reads a leading integer the way browsers parse price inputs:
// surrounding whitespace and trailing junk are ignored ("50abc" is 50).
// Values without a leading integer, and empty values, yield def.
func parsePrice(raw string, def int) int {
	s := strings.TrimSpace(raw)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return def
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return def
	}
	return n
}
