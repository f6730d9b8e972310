// Copyright 2026 The cfggen Authors.
// SPDX-License-Identifier: Apache-2.0

package template

import (
	"github.com/orco-compute/cfggen/pkg/orderedmap"
)

// opFunc receives the operator argument exactly as written; each
// operator decides when and whether to resolve it.
type opFunc func(s *state, arg interface{}) (interface{}, error)

// bare spellings are accepted as aliases of the canonical $-prefixed
// names; both dialects appear in templates in the wild
var operators map[string]opFunc

func init() {
	operators = map[string]opFunc{
		refOp:     resolveRef,
		rangeOp:   resolveRange,
		concatOp:  resolveConcat,
		productOp: resolveProduct,
		zipOp:     resolveZip,
		envOp:     resolveEnv,
		"ref":     resolveRef,
		"range":   resolveRange,
		"+":       resolveConcat,
		"product": resolveProduct,
		"zip":     resolveZip,
		"env":     resolveEnv,
	}
}

const (
	refOp     = "$ref"
	rangeOp   = "$range"
	concatOp  = "$+"
	productOp = "$product"
	zipOp     = "$zip"
	envOp     = "$env"
)

// state is the per-Build resolution state. It is never shared across
// Build calls.
type state struct {
	// toplevel is the unresolved root mapping that '$ref' looks keys
	// up in; nil when the root is not a mapping.
	toplevel *orderedmap.Map

	// computed memoizes fully resolved toplevel keys, write-once.
	computed map[string]interface{}

	// resolving holds the keys whose resolution is in progress; a
	// '$ref' chain reaching back into this set is a cycle.
	resolving map[string]struct{}

	environment map[string]string
}

func newState(root interface{}, env map[string]string) *state {
	toplevel, _ := root.(*orderedmap.Map)
	return &state{
		toplevel:    toplevel,
		computed:    map[string]interface{}{},
		resolving:   map[string]struct{}{},
		environment: env,
	}
}

// resolve walks a node: single-entry mappings whose key names an
// operator dispatch to it, containers recurse, scalars pass through.
func (s *state) resolve(node interface{}) (interface{}, error) {
	if nodeMap, ok := node.(*orderedmap.Map); ok && nodeMap.Len() == 1 {
		item := nodeMap.Items()[0]
		if op, found := operators[item.Key]; found {
			return op(s, item.Value)
		}
	}

	switch typedNode := node.(type) {
	case []interface{}:
		result := make([]interface{}, len(typedNode))
		for i, item := range typedNode {
			resolved, err := s.resolve(item)
			if err != nil {
				return nil, err
			}
			result[i] = resolved
		}
		return result, nil

	case *orderedmap.Map:
		result := orderedmap.NewMap()
		err := typedNode.IterateErr(func(k string, v interface{}) error {
			resolved, err := s.resolve(v)
			if err != nil {
				return err
			}
			result.Set(k, resolved)
			return nil
		})
		if err != nil {
			return nil, err
		}
		return result, nil

	default:
		return node, nil
	}
}

// resolveSeq resolves each element of a raw sequence argument,
// requiring every element to resolve to a sequence itself. Shared by
// '$+' and '$zip'.
func (s *state) resolveSeq(op string, items []interface{}) ([][]interface{}, error) {
	result := make([][]interface{}, len(items))
	for i, item := range items {
		resolved, err := s.resolve(item)
		if err != nil {
			return nil, err
		}
		seq, ok := resolved.([]interface{})
		if !ok {
			return nil, NewInvalidArgumentError(op, "each element to resolve to a sequence")
		}
		result[i] = seq
	}
	return result, nil
}
