package config

import (
	"os"
	"path/filepath"
	"testing"
)

// FuzzLoadAndValidate checks that arbitrary YAML never panics the loader and
// that any accepted configuration passes validation.
// Run: go test -fuzz=FuzzLoadAndValidate -fuzztime=30s ./internal/config
func FuzzLoadAndValidate(f *testing.F) {
	seeds := []string{
		``,
		`{}`,
		`null`,
		`[]`,
		`"string"`,
		`123`,
		"tolerance:\n  value: 0.01\n  mode: relative\n",
		"tolerance:\n  value: 1e308\n",
		"tolerance:\n  value: .nan\n",
		"tolerance:\n  value: .inf\n",
		"output:\n  format: json\n  precision: 17\n",
		"random:\n  seed: 18446744073709551615\n",
		"random:\n  seed: -1\n",
		"tests:\n  directory: \"\"\n",
		"? [a, b]\n: c\n",
		"1: one\n",
		"tolerance: [unclosed\n",
		"&anchor a: *anchor\n",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, content string) {
		path := filepath.Join(t.TempDir(), DefaultFileName)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}

		cfg, _, err := LoadAndValidate(path)
		if err != nil {
			return
		}
		if err := Validate(cfg); err != nil {
			t.Errorf("LoadAndValidate() accepted config that fails Validate(): %v", err)
		}
	})
}
