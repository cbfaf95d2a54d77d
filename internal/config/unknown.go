package config

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// detectUnknownFields compares decoded YAML with the known struct fields and
// returns one warning per unrecognised key, in sorted order.
func detectUnknownFields(raw map[string]interface{}) []string {
	var warnings []string

	known := getYAMLFields(reflect.TypeOf(Config{}))
	for _, key := range sortedKeys(raw) {
		if !known[key] {
			warnings = append(warnings, fmt.Sprintf("unknown field %q at root level (ignored)", key))
		}
	}

	sections := map[string]reflect.Type{
		"tolerance": reflect.TypeOf(ToleranceConfig{}),
		"output":    reflect.TypeOf(OutputConfig{}),
		"random":    reflect.TypeOf(RandomConfig{}),
		"tests":     reflect.TypeOf(TestsConfig{}),
	}
	for _, section := range sortedKeys(raw) {
		typ, ok := sections[section]
		if !ok {
			continue
		}
		fields, ok := raw[section].(map[string]interface{})
		if !ok {
			continue
		}
		knownFields := getYAMLFields(typ)
		for _, key := range sortedKeys(fields) {
			if !knownFields[key] {
				warnings = append(warnings, fmt.Sprintf("unknown field %q in %s (ignored)", key, section))
			}
		}
	}

	return warnings
}

// getYAMLFields returns a map of known YAML field names for a struct type.
func getYAMLFields(t reflect.Type) map[string]bool {
	fields := make(map[string]bool)
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("yaml")
		if tag == "" || tag == "-" {
			continue
		}
		name := strings.Split(tag, ",")[0]
		if name != "" {
			fields[name] = true
		}
	}
	return fields
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
