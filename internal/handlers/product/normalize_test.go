package product

import (
	"encoding/json"
	"testing"
)

func TestNormalizeInStock(t *testing.T) {
	cases := []struct {
		name  string
		input interface{}
		want  int
	}{
		{"bool true", true, 1},
		{"bool false", false, 0},
		{"string true", "true", 1},
		{"string TRUE", "TRUE", 1},
		{"string True", "True", 1},
		{"string false", "false", 0},
		{"string yes", "yes", 0},
		{"string empty", "", 0},
		{"number one", float64(1), 1},
		{"number zero", float64(0), 0},
		{"number nonzero", float64(7), 1},
		{"int one", 1, 1},
		{"json.Number", json.Number("1"), 1},
		{"json.Number zero", json.Number("0"), 0},
		{"nil", nil, 0},
		{"object", map[string]interface{}{"v": true}, 0},
		{"array", []interface{}{1}, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeInStock(tc.input); got != tc.want {
				t.Errorf("NormalizeInStock(%v) = %d, want %d", tc.input, got, tc.want)
			}
		})
	}
}

func TestNormalizeInStockSurvivesJSONDecode(t *testing.T) {
	// The three shapes clients actually send for the same toggle.
	for _, raw := range []string{`{"in_stock":true}`, `{"in_stock":"true"}`, `{"in_stock":1}`} {
		var body struct {
			InStock interface{} `json:"in_stock"`
		}
		if err := json.Unmarshal([]byte(raw), &body); err != nil {
			t.Fatalf("unmarshal %s: %v", raw, err)
		}
		if got := NormalizeInStock(body.InStock); got != 1 {
			t.Errorf("NormalizeInStock on %s = %d, want 1", raw, got)
		}
	}
}
