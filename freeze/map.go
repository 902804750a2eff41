// SPDX-License-Identifier: MIT
// Package: valo/freeze
//
// map.go — Map, the frozen mapping variant installed by the Immutability Guard.
//
// Contract (strict):
//   • The source map is copied once at construction; later changes to the
//     source are invisible to the frozen copy.
//   • Every mutating method reports ErrImmutable and performs no change.
//   • Iteration order is deterministic: entries sorted by formatted key,
//     with the key's dynamic type as a tie-break.

package freeze

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/mitchellh/hashstructure/v2"
)

// mapEntry is one key/value pair with its precomputed sort keys.
type mapEntry struct {
	key     any
	val     any
	keyStr  string // fmt "%v" of key; primary sort key
	keyType string // fmt "%T" of key; tie-break for keys that format alike
}

// Map is an immutable mapping. It is produced by NewMap (or Freeze) from any
// Go map value and thereafter rejects all mutation with ErrImmutable.
//
// The zero Map is empty and usable read-only.
type Map struct {
	entries []mapEntry  // sorted by (keyStr, keyType)
	index   map[any]int // key → position in entries
}

// NewMap copies the top level of src (any map kind) into a frozen Map.
// Nested containers inside src are not converted (shallow freeze).
// Returns ErrNotMapping when src is not a map value.
// Complexity: O(n log n) time, O(n) space.
func NewMap(src any) (*Map, error) {
	if src == nil {
		return nil, fmt.Errorf("NewMap(nil): %w", ErrNotMapping)
	}
	rv := reflect.ValueOf(src)
	if rv.Kind() != reflect.Map {
		return nil, fmt.Errorf("NewMap(%T): %w", src, ErrNotMapping)
	}

	m := &Map{
		entries: make([]mapEntry, 0, rv.Len()),
		index:   make(map[any]int, rv.Len()),
	}
	iter := rv.MapRange()
	for iter.Next() {
		k := iter.Key().Interface()
		v := iter.Value().Interface()
		m.entries = append(m.entries, mapEntry{
			key:     k,
			val:     v,
			keyStr:  fmt.Sprintf("%v", k),
			keyType: fmt.Sprintf("%T", k),
		})
	}
	sort.Slice(m.entries, func(i, j int) bool {
		if m.entries[i].keyStr != m.entries[j].keyStr {
			return m.entries[i].keyStr < m.entries[j].keyStr
		}
		return m.entries[i].keyType < m.entries[j].keyType
	})
	for i, e := range m.entries {
		m.index[e.key] = i
	}

	return m, nil
}

// Get returns the value stored under key and whether the key exists.
// Complexity: O(1).
func (m *Map) Get(key any) (any, bool) {
	i, ok := m.index[key]
	if !ok {
		return nil, false
	}

	return m.entries[i].val, true
}

// Len returns the number of entries. Complexity: O(1).
func (m *Map) Len() int { return len(m.entries) }

// Keys returns a fresh slice of keys in deterministic order.
// Complexity: O(n) time and space.
func (m *Map) Keys() []any {
	keys := make([]any, len(m.entries))
	for i, e := range m.entries {
		keys[i] = e.key
	}

	return keys
}

// Range calls fn for each entry in deterministic order until fn returns false.
// Complexity: O(n).
func (m *Map) Range(fn func(key, val any) bool) {
	for _, e := range m.entries {
		if !fn(e.key, e.val) {
			return
		}
	}
}

// Items returns a fresh mutable map holding a top-level copy of the entries.
// Mutating the returned map does not affect the frozen Map.
// Complexity: O(n) time and space.
func (m *Map) Items() map[any]any {
	out := make(map[any]any, len(m.entries))
	for _, e := range m.entries {
		out[e.key] = e.val
	}

	return out
}

// Equal reports whether both mappings hold the same keys with deeply equal
// values. A nil other is never equal. Complexity: O(n) DeepEqual comparisons.
func (m *Map) Equal(other *Map) bool {
	if other == nil || len(m.entries) != len(other.entries) {
		return false
	}
	for _, e := range m.entries {
		ov, ok := other.Get(e.key)
		if !ok || !reflect.DeepEqual(e.val, ov) {
			return false
		}
	}

	return true
}

// String renders the mapping as map[k1:v1 k2:v2] in deterministic key order,
// matching the fmt layout of native Go maps so frozen values blend into the
// value object's string form.
func (m *Map) String() string {
	var b strings.Builder
	b.WriteString("map[")
	for i, e := range m.entries {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v:%v", e.key, e.val)
	}
	b.WriteByte(']')

	return b.String()
}

// Hash implements hashstructure.Hashable: the digest covers the ordered
// key/value pairs, so equal mappings hash identically regardless of the
// source map's iteration order.
func (m *Map) Hash() (uint64, error) {
	pairs := make([]any, 0, 2*len(m.entries))
	for _, e := range m.entries {
		pairs = append(pairs, e.key, e.val)
	}

	return hashstructure.Hash(pairs, hashstructure.FormatV2, nil)
}

// Set rejects item insertion or replacement. Always returns ErrImmutable.
func (m *Map) Set(key, val any) error {
	return fmt.Errorf("Map.Set(%v): %w", key, ErrImmutable)
}

// Delete rejects item removal. Always returns ErrImmutable.
func (m *Map) Delete(key any) error {
	return fmt.Errorf("Map.Delete(%v): %w", key, ErrImmutable)
}

// Clear rejects bulk removal. Always returns ErrImmutable.
func (m *Map) Clear() error {
	return fmt.Errorf("Map.Clear: %w", ErrImmutable)
}

// Update rejects bulk merging of another mapping. Always returns ErrImmutable.
func (m *Map) Update(other any) error {
	return fmt.Errorf("Map.Update(%T): %w", other, ErrImmutable)
}

// SetDefault rejects default-insertion. Unlike a mutable mapping it does not
// insert fallback; it always returns ErrImmutable.
func (m *Map) SetDefault(key, fallback any) (any, error) {
	return nil, fmt.Errorf("Map.SetDefault(%v): %w", key, ErrImmutable)
}

// Pop rejects removal-by-key. Always returns ErrImmutable.
func (m *Map) Pop(key any) (any, error) {
	return nil, fmt.Errorf("Map.Pop(%v): %w", key, ErrImmutable)
}

// PopItem rejects removal of the last entry. Always returns ErrImmutable.
func (m *Map) PopItem() (any, any, error) {
	return nil, nil, fmt.Errorf("Map.PopItem: %w", ErrImmutable)
}
