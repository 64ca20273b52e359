package vfs

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
)

// DecodeSeed parses a seed document. Format is chosen by extension:
// .yaml/.yml, .toml or .json.
func DecodeSeed(name string, data []byte) (map[string]interface{}, error) {
	var entries map[string]interface{}

	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &entries); err != nil {
			return nil, fmt.Errorf("YAML parse error: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &entries); err != nil {
			return nil, fmt.Errorf("TOML parse error: %w", err)
		}
	case ".json":
		if err := sonic.Unmarshal(data, &entries); err != nil {
			return nil, fmt.Errorf("JSON parse error: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported seed format %q", ext)
	}

	return entries, nil
}

// LoadSeed reads a seed file from the host and applies it to t.
func LoadSeed(t *Tree, name string) error {
	data, err := os.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read seed: %w", err)
	}
	entries, err := DecodeSeed(name, data)
	if err != nil {
		return err
	}
	return Seed(t, entries)
}

// Seed populates t below the root. Mappings become directories and scalar
// values become files; a null value is an empty file. Entries are applied in
// lexicographic order through the regular tree operations, so an existing
// directory is reused and an existing file is overwritten.
func Seed(t *Tree, entries map[string]interface{}) error {
	return seedInto(t, nil, entries)
}

func seedInto(t *Tree, dir []string, entries map[string]interface{}) error {
	for _, name := range slices.Sorted(maps.Keys(entries)) {
		if name == "" || name == "." || name == ".." || strings.Contains(name, "/") {
			return fmt.Errorf("seed %s: invalid entry name %q", Join(dir), name)
		}
		path := append(slices.Clone(dir), name)

		switch v := entries[name].(type) {
		case map[string]interface{}:
			if err := seedDir(t, path); err != nil {
				return err
			}
			if err := seedInto(t, path, v); err != nil {
				return err
			}
		case map[interface{}]interface{}:
			converted := make(map[string]interface{}, len(v))
			for k, child := range v {
				converted[fmt.Sprint(k)] = child
			}
			if err := seedDir(t, path); err != nil {
				return err
			}
			if err := seedInto(t, path, converted); err != nil {
				return err
			}
		case nil:
			if err := t.Touch(path); err != nil {
				return err
			}
		case string:
			if err := t.WriteFile(path, v, false); err != nil {
				return err
			}
		case []interface{}:
			return fmt.Errorf("seed %s: lists are not supported", Join(path))
		default:
			if err := t.WriteFile(path, fmt.Sprint(v), false); err != nil {
				return err
			}
		}
	}
	return nil
}

func seedDir(t *Tree, path []string) error {
	err := t.Mkdir(path)
	if err == nil {
		return nil
	}
	if n, ok := t.Lookup(path); ok && IsDir(n) {
		return nil
	}
	return err
}
