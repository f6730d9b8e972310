// Copyright 2026 The cfggen Authors.
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/orco-compute/cfggen/pkg/orderedmap"
)

// parseYAML decodes via yaml.Node rather than straight into
// interface{} so that mapping key order survives (the plain decoder
// hands back unordered maps).
func parseYAML(data []byte) (interface{}, error) {
	var root yaml.Node
	err := yaml.Unmarshal(data, &root)
	if err != nil {
		return nil, err
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		// empty document
		return nil, nil
	}
	return yamlVal(root.Content[0])
}

func yamlVal(node *yaml.Node) (interface{}, error) {
	switch node.Kind {
	case yaml.SequenceNode:
		result := make([]interface{}, 0, len(node.Content))
		for _, item := range node.Content {
			val, err := yamlVal(item)
			if err != nil {
				return nil, err
			}
			result = append(result, val)
		}
		return result, nil

	case yaml.MappingNode:
		result := orderedmap.NewMap()
		for i := 0; i < len(node.Content); i += 2 {
			keyNode, valNode := node.Content[i], node.Content[i+1]

			var key string
			err := keyNode.Decode(&key)
			if err != nil {
				return nil, fmt.Errorf("Expected mapping key at line %d to be a string: %s",
					keyNode.Line, err)
			}
			if result.Has(key) {
				return nil, fmt.Errorf("Expected mapping key '%s' at line %d to be unique",
					key, keyNode.Line)
			}

			val, err := yamlVal(valNode)
			if err != nil {
				return nil, err
			}
			result.Set(key, val)
		}
		return result, nil

	case yaml.AliasNode:
		return yamlVal(node.Alias)

	case yaml.ScalarNode:
		var val interface{}
		err := node.Decode(&val)
		if err != nil {
			return nil, err
		}
		return val, nil

	default:
		return nil, fmt.Errorf("Unexpected YAML node kind %d at line %d", node.Kind, node.Line)
	}
}
