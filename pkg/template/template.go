// Copyright 2026 The cfggen Authors.
// SPDX-License-Identifier: Apache-2.0

// Package template resolves declarative configuration templates: trees
// of mappings, sequences and scalars in which single-entry mappings
// named after an operator ('$ref', '$range', '$+', '$product', '$zip',
// '$env') are expanded until none remain.
package template

import (
	"fmt"
	"os"
	"strings"

	"github.com/orco-compute/cfggen/pkg/orderedmap"
)

// BuildOpts configures a single Build call.
type BuildOpts struct {
	// Env is the environment visible to '$env'. When nil, a snapshot
	// of the process environment is taken via EnvSnapshotFunc.
	Env map[string]string

	// EnvSnapshotFunc supplies the process environment in the form of
	// os.Environ. Defaults to os.Environ; tests inject fixed values.
	EnvSnapshotFunc func() []string
}

// Build resolves tpl into a tree with no operator nodes left. Each
// call owns fresh resolution state (memoization cache and in-progress
// set), so independent calls may run concurrently.
func Build(tpl interface{}, opts BuildOpts) (interface{}, error) {
	env := opts.Env
	if env == nil {
		snapshotFunc := opts.EnvSnapshotFunc
		if snapshotFunc == nil {
			snapshotFunc = os.Environ
		}
		env = envFromPairs(snapshotFunc())
	}

	return newState(tpl, env).resolve(tpl)
}

// Merge shallow-merges raw (unresolved) toplevel mappings in order:
// later templates' keys overwrite earlier templates' same-named keys.
// Values are not deep-merged.
func Merge(tpls []interface{}) (*orderedmap.Map, error) {
	merged := orderedmap.NewMap()
	for i, tpl := range tpls {
		tplMap, ok := tpl.(*orderedmap.Map)
		if !ok {
			return nil, NewInvalidArgumentError("merge",
				fmt.Sprintf("template %d to be a toplevel mapping", i))
		}
		tplMap.Iterate(func(k string, v interface{}) {
			merged.Set(k, v)
		})
	}
	return merged, nil
}

func envFromPairs(pairs []string) map[string]string {
	env := map[string]string{}
	for _, pair := range pairs {
		pieces := strings.SplitN(pair, "=", 2)
		if len(pieces) == 2 {
			env[pieces[0]] = pieces[1]
		}
	}
	return env
}
