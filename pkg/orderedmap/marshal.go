// Copyright 2026 The cfggen Authors.
// SPDX-License-Identifier: Apache-2.0

package orderedmap

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

var _ yaml.Marshaler = &Map{}
var _ json.Marshaler = &Map{}

// MarshalYAML emits the map as a YAML mapping node so that output
// preserves insertion order (the default map encoder sorts keys).
func (m *Map) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, item := range m.items {
		keyNode := &yaml.Node{}
		keyNode.SetString(item.Key)

		valNode := &yaml.Node{}
		if item.Value == nil {
			valNode.Kind = yaml.ScalarNode
			valNode.Tag = "!!null"
			valNode.Value = "null"
		} else {
			err := valNode.Encode(item.Value)
			if err != nil {
				return nil, err
			}
		}

		node.Content = append(node.Content, keyNode, valNode)
	}
	return node, nil
}

func (m *Map) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, item := range m.items {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyBs, err := json.Marshal(item.Key)
		if err != nil {
			return nil, err
		}
		valBs, err := json.Marshal(item.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(keyBs)
		buf.WriteByte(':')
		buf.Write(valBs)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
