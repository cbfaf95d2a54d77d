package config

import (
	"reflect"
	"testing"
)

func TestDetectUnknownFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  map[string]interface{}
		want []string
	}{
		{
			name: "all known",
			raw: map[string]interface{}{
				"$schema":   "x",
				"tolerance": map[string]interface{}{"value": 0.1, "mode": "relative"},
				"output":    map[string]interface{}{"format": "text", "precision": 2},
				"random":    map[string]interface{}{"max": 5, "seed": 1},
				"tests":     map[string]interface{}{"directory": "t", "pattern": "*.json", "parallelism": 1},
			},
			want: nil,
		},
		{
			name: "root level sorted",
			raw:  map[string]interface{}{"zeta": 1, "alpha": 2},
			want: []string{
				`unknown field "alpha" at root level (ignored)`,
				`unknown field "zeta" at root level (ignored)`,
			},
		},
		{
			name: "nested",
			raw: map[string]interface{}{
				"tests":  map[string]interface{}{"timeout": "1s"},
				"random": map[string]interface{}{"min": 0},
			},
			want: []string{
				`unknown field "min" in random (ignored)`,
				`unknown field "timeout" in tests (ignored)`,
			},
		},
		{
			name: "section with scalar value is skipped",
			raw:  map[string]interface{}{"output": "json"},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := detectUnknownFields(tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("detectUnknownFields() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetYAMLFields(t *testing.T) {
	t.Parallel()
	got := getYAMLFields(reflect.TypeOf(ToleranceConfig{}))
	want := map[string]bool{"value": true, "mode": true}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("getYAMLFields() = %v, want %v", got, want)
	}
}
