// Copyright 2026 The cfggen Authors.
// SPDX-License-Identifier: Apache-2.0

package template

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/orco-compute/cfggen/pkg/orderedmap"
)

// resolveRef looks a key up in the toplevel mapping, resolving it on
// first use and returning the memoized value afterwards. A key whose
// resolution is already in progress is a cycle.
func resolveRef(s *state, arg interface{}) (interface{}, error) {
	key, ok := arg.(string)
	if !ok {
		return nil, NewInvalidArgumentError(refOp, "a toplevel key name")
	}

	if value, found := s.computed[key]; found {
		return value, nil
	}
	if _, active := s.resolving[key]; active {
		return nil, NewCycleError(key)
	}

	var raw interface{}
	found := false
	if s.toplevel != nil {
		raw, found = s.toplevel.Get(key)
	}
	if !found {
		return nil, NewMissingKeyError(refOp, key)
	}

	s.resolving[key] = struct{}{}
	value, err := s.resolve(raw)
	delete(s.resolving, key)
	if err != nil {
		return nil, err
	}

	s.computed[key] = value
	return value, nil
}

// resolveRange materializes a half-open integer range: a bare count n
// means [0, n), a 2- or 3-element sequence means [start, stop) with an
// optional step. Negative steps count down.
func resolveRange(s *state, arg interface{}) (interface{}, error) {
	if n, ok := asInt(arg); ok {
		return rangeSeq(rangeOp, 0, n, 1)
	}

	if args, ok := arg.([]interface{}); ok && len(args) >= 2 && len(args) <= 3 {
		bounds := make([]int, len(args))
		for i, rawBound := range args {
			bound, ok := asInt(rawBound)
			if !ok {
				return nil, NewInvalidArgumentError(rangeOp, "integer bounds")
			}
			bounds[i] = bound
		}
		step := 1
		if len(bounds) == 3 {
			step = bounds[2]
		}
		return rangeSeq(rangeOp, bounds[0], bounds[1], step)
	}

	return nil, NewInvalidArgumentError(rangeOp,
		"an integer or a [start, stop] / [start, stop, step] sequence")
}

func rangeSeq(op string, start, stop, step int) ([]interface{}, error) {
	if step == 0 {
		return nil, NewInvalidArgumentError(op, "a non-zero step")
	}
	result := []interface{}{}
	if step > 0 {
		for i := start; i < stop; i += step {
			result = append(result, i)
		}
	} else {
		for i := start; i > stop; i += step {
			result = append(result, i)
		}
	}
	return result, nil
}

// resolveConcat flattens one level: each element of the raw sequence
// argument must resolve to a sequence, and the results are chained in
// input order.
func resolveConcat(s *state, arg interface{}) (interface{}, error) {
	items, ok := arg.([]interface{})
	if !ok {
		return nil, NewInvalidArgumentError(concatOp, "a sequence of sequences")
	}

	seqs, err := s.resolveSeq(concatOp, items)
	if err != nil {
		return nil, err
	}

	result := []interface{}{}
	for _, seq := range seqs {
		result = append(result, seq...)
	}
	return result, nil
}

// resolveProduct resolves its whole argument first (so the factors may
// themselves come from operators), then dispatches on shape: a
// sequence of sequences yields tuples, a mapping of field to sequence
// yields one mapping per combination. The last factor varies fastest.
func resolveProduct(s *state, arg interface{}) (interface{}, error) {
	resolved, err := s.resolve(arg)
	if err != nil {
		return nil, err
	}

	switch typedArg := resolved.(type) {
	case []interface{}:
		factors := make([][]interface{}, len(typedArg))
		for i, item := range typedArg {
			seq, ok := item.([]interface{})
			if !ok {
				return nil, NewInvalidArgumentError(productOp, "each factor to be a sequence")
			}
			factors[i] = seq
		}

		rows := cartesian(factors)
		result := make([]interface{}, len(rows))
		for i, row := range rows {
			result[i] = row
		}
		return result, nil

	case *orderedmap.Map:
		keys := typedArg.Keys()
		factors := make([][]interface{}, 0, typedArg.Len())
		err := typedArg.IterateErr(func(k string, v interface{}) error {
			seq, ok := v.([]interface{})
			if !ok {
				return NewInvalidArgumentError(productOp,
					fmt.Sprintf("field '%s' to be a sequence", k))
			}
			factors = append(factors, seq)
			return nil
		})
		if err != nil {
			return nil, err
		}

		rows := cartesian(factors)
		result := make([]interface{}, len(rows))
		for i, row := range rows {
			combination := orderedmap.NewMap()
			for j, key := range keys {
				combination.Set(key, row[j])
			}
			result[i] = combination
		}
		return result, nil

	default:
		return nil, NewInvalidArgumentError(productOp, "a sequence or a mapping of sequences")
	}
}

// cartesian returns the cartesian product rows in lexicographic order
// by position (rightmost factor innermost). No factors yields a single
// empty row; an empty factor yields no rows.
func cartesian(factors [][]interface{}) [][]interface{} {
	total := 1
	for _, factor := range factors {
		total *= len(factor)
	}
	if total == 0 {
		return nil
	}

	rows := make([][]interface{}, 0, total)
	indexes := make([]int, len(factors))
	for {
		row := make([]interface{}, len(factors))
		for i, factor := range factors {
			row[i] = factor[indexes[i]]
		}
		rows = append(rows, row)

		i := len(factors) - 1
		for ; i >= 0; i-- {
			indexes[i]++
			if indexes[i] < len(factors[i]) {
				break
			}
			indexes[i] = 0
		}
		if i < 0 {
			break
		}
	}
	return rows
}

// resolveZip zips its resolved input sequences element-wise,
// truncating to the shortest.
func resolveZip(s *state, arg interface{}) (interface{}, error) {
	items, ok := arg.([]interface{})
	if !ok {
		return nil, NewInvalidArgumentError(zipOp, "a sequence of sequences")
	}

	seqs, err := s.resolveSeq(zipOp, items)
	if err != nil {
		return nil, err
	}
	if len(seqs) == 0 {
		return []interface{}{}, nil
	}

	shortest := len(seqs[0])
	for _, seq := range seqs[1:] {
		if len(seq) < shortest {
			shortest = len(seq)
		}
	}

	result := make([]interface{}, shortest)
	for i := 0; i < shortest; i++ {
		row := make([]interface{}, len(seqs))
		for j, seq := range seqs {
			row[j] = seq[i]
		}
		result[i] = row
	}
	return result, nil
}

type envConversion func(raw string) (interface{}, error)

var envConversions = map[string]envConversion{
	"str": func(raw string) (interface{}, error) { return raw, nil },
	"int": func(raw string) (interface{}, error) {
		n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return nil, err
		}
		return int(n), nil
	},
	"float": func(raw string) (interface{}, error) {
		return strconv.ParseFloat(strings.TrimSpace(raw), 64)
	},
	"bool": func(raw string) (interface{}, error) {
		// truthiness of the raw value: any non-empty string is true
		return len(raw) > 0, nil
	},
}

// resolveEnv looks a variable up in the environment map. The argument
// is either a bare name or a mapping with 'name', optional 'default'
// and optional 'type' (str, int, float, bool). A present-but-empty
// value is still present; only an absent key falls back to the
// default, and with no default the lookup fails.
func resolveEnv(s *state, arg interface{}) (interface{}, error) {
	name := ""
	var defaultVal interface{}
	typeName := "str"

	switch typedArg := arg.(type) {
	case string:
		name = typedArg

	case *orderedmap.Map:
		rawName, found := typedArg.Get("name")
		if !found {
			return nil, NewInvalidArgumentError(envOp, "a 'name' field")
		}
		nameStr, ok := rawName.(string)
		if !ok {
			return nil, NewInvalidArgumentError(envOp, "'name' to be a string")
		}
		name = nameStr

		defaultVal, _ = typedArg.Get("default")

		if rawType, found := typedArg.Get("type"); found {
			typeName = fmt.Sprintf("%v", rawType)
		}

	default:
		return nil, NewInvalidArgumentError(envOp, "a string or a mapping")
	}

	convert, found := envConversions[typeName]
	if !found {
		return nil, NewUnknownTypeError(typeName)
	}

	raw, found := s.environment[name]
	if !found {
		if defaultVal != nil {
			return defaultVal, nil
		}
		return nil, NewMissingKeyError(envOp, name)
	}

	value, err := convert(raw)
	if err != nil {
		return nil, fmt.Errorf("Expected env var '%s' to convert to %s: %s", name, typeName, err)
	}
	return value, nil
}

func asInt(val interface{}) (int, bool) {
	switch typedVal := val.(type) {
	case int:
		return typedVal, true
	case int64:
		return int(typedVal), true
	default:
		return 0, false
	}
}
