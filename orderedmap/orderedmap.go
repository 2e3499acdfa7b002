// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

// Package orderedmap provides a string-keyed map that remembers the order in
// which keys were first inserted.
package orderedmap

import "iter"

// A Map is a collection of values keyed by string. Iteration visits keys in
// the order they were first inserted; overwriting a value does not move its
// key. The zero value is an empty map.
//
// Pointers returned by GetOrInsert and Get remain valid until the key is
// deleted or the map is cleared, even as more keys are inserted.
//
// A Map must not be accessed concurrently from multiple goroutines without
// external synchronization.
type Map[V any] struct {
	entries []entry[V]
	index   map[string]int
	ndead   int
}

type entry[V any] struct {
	key   string
	value *V // nil for deleted slots
}

// GetOrInsert returns a pointer to the value for key. If key is not present,
// a zero value is appended to the end of the iteration order first.
func (m *Map[V]) GetOrInsert(key string) *V {
	if i, ok := m.index[key]; ok {
		return m.entries[i].value
	}
	if m.index == nil {
		m.index = make(map[string]int)
	}
	v := new(V)
	m.index[key] = len(m.entries)
	m.entries = append(m.entries, entry[V]{key: key, value: v})
	return v
}

// Get returns a pointer to the value for key, if present.
func (m *Map[V]) Get(key string) (_ *V, ok bool) {
	if m == nil {
		return nil, false
	}
	i, ok := m.index[key]
	if !ok {
		return nil, false
	}
	return m.entries[i].value, true
}

// Set stores v under key. An existing key keeps its position.
func (m *Map[V]) Set(key string, v V) {
	*m.GetOrInsert(key) = v
}

// Contains reports whether key is present in m.
func (m *Map[V]) Contains(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Len returns the number of keys in m.
func (m *Map[V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries) - m.ndead
}

// Delete removes key from m and reports whether it was present. If the key
// is inserted again later, it goes to the end of the iteration order.
func (m *Map[V]) Delete(key string) bool {
	if m == nil {
		return false
	}
	i, ok := m.index[key]
	if !ok {
		return false
	}
	delete(m.index, key)
	m.entries[i] = entry[V]{}
	m.ndead++
	if m.ndead == len(m.entries) {
		m.Clear()
	}
	return true
}

// Clear removes all keys from m.
func (m *Map[V]) Clear() {
	for i := range m.entries {
		// Zero out for garbage collection.
		m.entries[i] = entry[V]{}
	}
	m.entries = m.entries[:0]
	m.index = nil
	m.ndead = 0
}

// Keys returns the keys of m in insertion order.
func (m *Map[V]) Keys() []string {
	if m.Len() == 0 {
		return nil
	}
	keys := make([]string, 0, m.Len())
	for k := range m.All() {
		keys = append(keys, k)
	}
	return keys
}

// All returns an iterator over the keys and values of m in insertion order.
// The iterator may be used more than once and observes later updates to
// values.
func (m *Map[V]) All() iter.Seq2[string, *V] {
	return func(yield func(string, *V) bool) {
		if m == nil {
			return
		}
		// Entries appended during iteration are visited as well.
		for i := 0; i < len(m.entries); i++ {
			e := m.entries[i]
			if e.value == nil {
				continue
			}
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}
