// Copyright 2026 The cfggen Authors.
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/tidwall/jsonc"

	"github.com/orco-compute/cfggen/pkg/orderedmap"
)

// parseJSON accepts relaxed JSON (comments, trailing commas; the usual
// .json5 conveniences) by rewriting it to strict JSON first, then
// decodes token-by-token so that object key order survives.
func parseJSON(data []byte) (interface{}, error) {
	dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
	dec.UseNumber()

	val, err := jsonVal(dec)
	if err != nil {
		return nil, err
	}

	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("Expected exactly one JSON value")
	}
	return val, nil
}

func jsonVal(dec *json.Decoder) (interface{}, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch typedTok := tok.(type) {
	case json.Delim:
		switch typedTok {
		case '{':
			result := orderedmap.NewMap()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("Expected object key to be a string, got %v", keyTok)
				}

				val, err := jsonVal(dec)
				if err != nil {
					return nil, err
				}
				result.Set(key, val)
			}
			// consume closing '}'
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return result, nil

		case '[':
			result := []interface{}{}
			for dec.More() {
				val, err := jsonVal(dec)
				if err != nil {
					return nil, err
				}
				result = append(result, val)
			}
			// consume closing ']'
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return result, nil

		default:
			return nil, fmt.Errorf("Unexpected JSON delimiter %v", typedTok)
		}

	case json.Number:
		if n, err := strconv.ParseInt(typedTok.String(), 10, 64); err == nil {
			return int(n), nil
		}
		return typedTok.Float64()

	default:
		// string, bool or nil
		return tok, nil
	}
}
