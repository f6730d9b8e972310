// Copyright 2026 The cfggen Authors.
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/orco-compute/cfggen/pkg/orderedmap"
)

type OutputFormat string

const (
	OutputFormatYAML OutputFormat = "yaml"
	OutputFormatJSON OutputFormat = "json"
	OutputFormatTOML OutputFormat = "toml"
)

// Encode serializes a resolved tree. YAML and JSON keep mapping key
// order; TOML sorts keys (and requires the toplevel to be a mapping).
func Encode(val interface{}, format OutputFormat) ([]byte, error) {
	switch format {
	case OutputFormatYAML:
		return yaml.Marshal(val)

	case OutputFormatJSON:
		data, err := json.MarshalIndent(val, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil

	case OutputFormatTOML:
		if _, ok := val.(*orderedmap.Map); !ok {
			return nil, fmt.Errorf("Expected toplevel value to be a mapping for TOML output")
		}
		var buf bytes.Buffer
		err := toml.NewEncoder(&buf).Encode(orderedmap.Conversion{Object: val}.AsUnorderedMaps())
		if err != nil {
			return nil, err
		}
		return buf.Bytes(), nil

	default:
		return nil, fmt.Errorf("Unknown output format '%s' (expected one of: yaml, json, toml)", format)
	}
}
