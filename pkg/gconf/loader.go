package gconf

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// OptionsFromFile loads an option profile from a file, auto-detecting
// format by extension. Supported extensions: .yaml, .yml, .json.
//
// A profile is a flat mapping of parameter keys to option values. It
// carries site defaults: append the connection string's own options
// after the profile's when building the Source, so the connection
// string wins on conflict.
func OptionsFromFile(path string) ([]Option, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read option profile: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return OptionsFromYAML(data)
	case ".json":
		return OptionsFromJSON(data)
	default:
		return nil, fmt.Errorf("unsupported option profile extension: %s", ext)
	}
}

// OptionsFromYAML parses YAML profile data into ordered options.
func OptionsFromYAML(data []byte) ([]Option, error) {
	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return profileOptions(m)
}

// OptionsFromJSON parses JSON profile data into ordered options.
func OptionsFromJSON(data []byte) ([]Option, error) {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	return profileOptions(m)
}

// profileOptions renders a decoded profile map as ordered options, keys
// sorted so loading is deterministic. Only scalar values are accepted;
// everything is carried as text, parsed at resolution time only.
func profileOptions(m map[string]any) ([]Option, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	opts := make([]Option, 0, len(m))
	for _, k := range keys {
		var text string
		switch v := m[k].(type) {
		case string:
			text = v
		case bool:
			text = strconv.FormatBool(v)
		case int:
			text = strconv.Itoa(v)
		case int64:
			text = strconv.FormatInt(v, 10)
		case float64:
			text = strconv.FormatFloat(v, 'g', -1, 64)
		default:
			return nil, fmt.Errorf("option %s: unsupported value type %T", k, v)
		}
		opts = append(opts, Option{Key: k, Value: text})
	}
	return opts, nil
}
