// Copyright 2026 The cfggen Authors.
// SPDX-License-Identifier: Apache-2.0

package orderedmap

import "sort"

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
