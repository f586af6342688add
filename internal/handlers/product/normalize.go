package product

import (
	"encoding/json"
	"strings"
)

// NormalizeInStock maps the mixed client representations of the stock toggle
// onto the integer column the table uses. Every write path must go through
// this: booleans → 1/0, the string "true" (case-insensitive) → 1 and any
// other string → 0, numbers keep their truth (non-zero → 1), anything else
// → 0.
func NormalizeInStock(v interface{}) int {
	switch val := v.(type) {
	case bool:
		if val {
			return 1
		}
		return 0
	case string:
		if strings.EqualFold(val, "true") {
			return 1
		}
		return 0
	case float64: // encoding/json decodes every JSON number to float64
		if val != 0 {
			return 1
		}
		return 0
	case int:
		if val != 0 {
			return 1
		}
		return 0
	case json.Number:
		if f, err := val.Float64(); err == nil && f != 0 {
			return 1
		}
		return 0
	default:
		return 0
	}
}
