package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// CategoryID is an opaque category identifier. The API sends either strings
// or numbers; both decode to their textual form.
type CategoryID string

// UnmarshalJSON accepts a JSON string or number.
func (id *CategoryID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = CategoryID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("category id: %w", err)
	}
	*id = CategoryID(n.String())
	return nil
}

// CategoryOption is one selectable category. Name is both the label and the
// value written to the URL.
type CategoryOption struct {
	ID   CategoryID `json:"id"`
	Name string     `json:"name"`
}

// categoriesResponse mirrors /api/front/categories. Fields stay loosely typed
// so shape problems can be told apart from transport problems.
type categoriesResponse struct {
	Status any             `json:"status"`
	Data   json.RawMessage `json:"data"`
}

// truthy reports whether v would pass a boolean check in the storefront API's
// loosely typed envelope: false, 0, "", null and a missing field are falsy.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case float64:
		return t != 0
	case string:
		return t != ""
	default:
		return true
	}
}

// isArray reports whether raw holds a JSON array.
func isArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}

