// Copyright 2026 The cfggen Authors.
// SPDX-License-Identifier: Apache-2.0

// Package files loads serialized templates into raw trees (mappings as
// *orderedmap.Map, sequences as []interface{}) and encodes resolved
// trees back out.
package files

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	yamlExts = []string{".yaml", ".yml"}
	jsonExts = []string{".json", ".json5"}
)

func NewUnsupportedFormatError(path, ext string) error {
	return &UnsupportedFormatError{Path: path, Ext: ext}
}

// UnsupportedFormatError indicates a template file extension outside
// the supported set.
type UnsupportedFormatError struct {
	Path string
	Ext  string
}

func (e UnsupportedFormatError) Error() string {
	return fmt.Sprintf("Unsupported template extension '%s' for file '%s' (expected one of: %s)",
		e.Ext, e.Path, strings.Join(append(append([]string{}, jsonExts...), yamlExts...), ", "))
}

// Load reads a template file and parses it according to its extension.
func Load(path string) (interface{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("Reading template file '%s': %s", path, err)
	}
	return Parse(data, path)
}

// Parse picks a parser by the extension of path: relaxed JSON for
// .json/.json5, YAML for .yml/.yaml.
func Parse(data []byte, path string) (interface{}, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case containsExt(yamlExts, ext):
		tpl, err := parseYAML(data)
		if err != nil {
			return nil, fmt.Errorf("Parsing YAML template '%s': %s", path, err)
		}
		return tpl, nil

	case containsExt(jsonExts, ext):
		tpl, err := parseJSON(data)
		if err != nil {
			return nil, fmt.Errorf("Parsing JSON template '%s': %s", path, err)
		}
		return tpl, nil

	default:
		return nil, NewUnsupportedFormatError(path, ext)
	}
}

func containsExt(exts []string, ext string) bool {
	for _, knownExt := range exts {
		if knownExt == ext {
			return true
		}
	}
	return false
}
