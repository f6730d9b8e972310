// Copyright 2026 The cfggen Authors.
// SPDX-License-Identifier: Apache-2.0

package orderedmap

// Map is a string-keyed mapping that remembers insertion order.
// Every mapping node of a template is represented as *Map so that
// order-sensitive operations (e.g. iterating product fields) see keys
// in the order they were written.
type Map struct {
	items []Item
}

type Item struct {
	Key   string
	Value interface{}
}

func NewMap() *Map {
	return &Map{}
}

func NewMapWithItems(items []Item) *Map {
	return &Map{items}
}

// Set overwrites the value for an existing key in place, keeping its
// original position, and appends unknown keys.
func (m *Map) Set(key string, value interface{}) {
	for i, item := range m.items {
		if item.Key == key {
			item.Value = value
			m.items[i] = item
			return
		}
	}
	m.items = append(m.items, Item{key, value})
}

func (m *Map) Get(key string) (interface{}, bool) {
	for _, item := range m.items {
		if item.Key == key {
			return item.Value, true
		}
	}
	return nil, false
}

func (m *Map) Has(key string) bool {
	_, found := m.Get(key)
	return found
}

func (m *Map) Delete(key string) bool {
	for i, item := range m.items {
		if item.Key == key {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return true
		}
	}
	return false
}

func (m *Map) Keys() (keys []string) {
	m.Iterate(func(k string, _ interface{}) {
		keys = append(keys, k)
	})
	return
}

// Items returns the backing items in insertion order. Callers must not
// mutate the returned slice.
func (m *Map) Items() []Item { return m.items }

func (m *Map) Iterate(iterFunc func(k string, v interface{})) {
	for _, item := range m.items {
		iterFunc(item.Key, item.Value)
	}
}

func (m *Map) IterateErr(iterFunc func(k string, v interface{}) error) error {
	for _, item := range m.items {
		err := iterFunc(item.Key, item.Value)
		if err != nil {
			return err
		}
	}
	return nil
}

func (m *Map) Len() int { return len(m.items) }
