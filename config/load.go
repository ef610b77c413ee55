package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

var ErrUnsupportedFormat = errors.New("unsupported options file format")

// LoadOptions reads an option list from a .yaml/.yml, .toml or .json file.
// YAML and TOML keep the key order of the file; JSON objects are read in sorted key order.
// A YAML or JSON file may also hold a list of single-key mappings to repeat a key.
func LoadOptions(path string) (Options, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("stat options path: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read options file %s: %w", path, err)
	}

	var opts Options
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		opts, err = decodeYAML(data)
	case ".toml":
		opts, err = decodeTOML(data)
	case ".json":
		opts, err = decodeJSON(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("decode options from %s: %w", path, err)
	}

	return opts, nil
}

func decodeYAML(data []byte) (Options, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if len(doc.Content) == 0 {
		return Options{}, nil
	}

	root := doc.Content[0]
	switch root.Kind {
	case yaml.MappingNode:
		return yamlPairs(root)
	case yaml.SequenceNode:
		opts := make(Options, 0, len(root.Content))
		for _, item := range root.Content {
			if item.Kind != yaml.MappingNode {
				return nil, fmt.Errorf("line %d: expected a mapping", item.Line)
			}
			pairs, err := yamlPairs(item)
			if err != nil {
				return nil, err
			}
			opts = append(opts, pairs...)
		}
		return opts, nil
	}

	var raw any
	if err := root.Decode(&raw); err != nil {
		return nil, err
	}
	return Coerce(raw), nil
}

func yamlPairs(m *yaml.Node) (Options, error) {
	opts := make(Options, 0, len(m.Content)/2)
	for i := 0; i+1 < len(m.Content); i += 2 {
		var value any
		if err := m.Content[i+1].Decode(&value); err != nil {
			return nil, fmt.Errorf("option %q: %w", m.Content[i].Value, err)
		}
		opts = append(opts, With(Key(m.Content[i].Value), value))
	}
	return opts, nil
}

func decodeTOML(data []byte) (Options, error) {
	var raw map[string]any
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, err
	}

	opts := make(Options, 0, len(raw))
	for _, k := range md.Keys() {
		if len(k) != 1 {
			continue
		}
		opts = append(opts, With(Key(k[0]), raw[k[0]]))
	}
	return opts, nil
}

func decodeJSON(data []byte) (Options, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	return Coerce(raw), nil
}
