// Copyright 2026 The cfggen Authors.
// SPDX-License-Identifier: Apache-2.0

package orderedmap

type Conversion struct {
	Object interface{}
}

// AsUnorderedMaps rewrites every *Map in the tree into a plain
// map[string]interface{}. Used for encoders that cannot consume *Map
// directly (e.g. TOML); insertion order is lost.
func (c Conversion) AsUnorderedMaps() interface{} {
	return c.asUnorderedMaps(c.Object)
}

func (c Conversion) asUnorderedMaps(object interface{}) interface{} {
	switch typedObj := object.(type) {
	case *Map:
		result := map[string]interface{}{}
		typedObj.Iterate(func(k string, v interface{}) {
			result[k] = c.asUnorderedMaps(v)
		})
		return result

	case []interface{}:
		result := make([]interface{}, len(typedObj))
		for i, item := range typedObj {
			result[i] = c.asUnorderedMaps(item)
		}
		return result

	default:
		return typedObj
	}
}

// FromUnorderedMaps rewrites plain string maps into *Map (keys
// sorted, since plain maps carry no order). Mostly useful to tests
// that build expected trees from literals.
func (c Conversion) FromUnorderedMaps() interface{} {
	return c.fromUnorderedMaps(c.Object)
}

func (c Conversion) fromUnorderedMaps(object interface{}) interface{} {
	switch typedObj := object.(type) {
	case map[string]interface{}:
		result := NewMap()
		for _, key := range sortedKeys(typedObj) {
			result.Set(key, c.fromUnorderedMaps(typedObj[key]))
		}
		return result

	case []interface{}:
		result := make([]interface{}, len(typedObj))
		for i, item := range typedObj {
			result[i] = c.fromUnorderedMaps(item)
		}
		return result

	default:
		return typedObj
	}
}
