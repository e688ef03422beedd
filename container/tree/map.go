package tree

import "github.com/segmentio/rbtree/container/rbtree"

// Map is a map type associating keys to values in a similar way to the standard
// Go map type, but backed by a balanced binary tree instead of a hashmap, which
// maintains ordering of keys.
//
// The zero-value is a valid empty map which supports lookups and deletes, but
// must be initialized prior to inserting any keys.
type Map[K, V any] struct {
	impl rbtree.Tree[*entry[K, V]]
}

// Entries are held by pointer so values can be replaced without touching the
// tree, keys are never modified after insertion.
type entry[K, V any] struct {
	key   K
	value V
}

// NewMap instantiates a new map using the given comparison function to order
// the keys.
func NewMap[K, V any](cmp func(K, K) int) *Map[K, V] {
	m := new(Map[K, V])
	m.Init(cmp)
	return m
}

// Init initializes (or re-initializes) the map. The comparison function passed
// as argument will be used to order the keys.
//
// Init must be called prior to inserting keys in the map, otherwise inserts
// will panic.
//
// Complexity: O(n)
func (m *Map[K, V]) Init(cmp func(K, K) int) {
	m.impl.Init(func(a, b *entry[K, V]) int { return cmp(a.key, b.key) })
}

// Len returns the number of entries currently held in the map.
//
// Complexity: O(1)
func (m *Map[K, V]) Len() int { return m.impl.Len() }

// Range calls f for each entry of the map. The keys and values are presented in
// ascending order according to the comparison function installed on the map.
//
// Complexity: O(N)
func (m *Map[K, V]) Range(f func(K, V) bool) {
	for it := m.impl.Begin(); !it.End(); it = it.Next() {
		if e := it.Value(); !f(e.key, e.value) {
			break
		}
	}
}

// Insert inserts a new entry in the map, or replaces the value if the key
// already existed. The method returns the previous value associated with the
// key or the zero-value if the key did not exist, and a boolean indicating
// whether the value was replaced.
//
// The map must have been initialized by a call to NewMap or Init or the call
// to Insert will panic.
//
// Complexity: O(log n)
func (m *Map[K, V]) Insert(key K, value V) (previous V, replaced bool) {
	it, inserted := m.impl.Insert(&entry[K, V]{key: key, value: value}, true)
	if !inserted {
		e := it.Value()
		previous, replaced = e.value, true
		e.value = value
	}
	return previous, replaced
}

// Min returns the entry with the smallest key in the map.
//
// Complexity: O(log n)
func (m *Map[K, V]) Min() (key K, value V, found bool) {
	return entryOf(m.impl.Begin())
}

// Max returns the entry with the largest key in the map.
//
// Complexity: O(log n)
func (m *Map[K, V]) Max() (key K, value V, found bool) {
	return entryOf(m.impl.Last())
}

// Lookup returns the value associated with the given key in the map, and a
// boolean value indicating whether the key was found in the map.
//
// Complexity: O(log n)
func (m *Map[K, V]) Lookup(key K) (value V, found bool) {
	_, value, found = entryOf(m.find(key))
	return value, found
}

// Search returns the entry found in the map where the key was less or equal to
// the one passed as argument.
//
// Complexity: O(log n)
func (m *Map[K, V]) Search(key K) (matchKey K, matchValue V, found bool) {
	return entryOf(m.impl.Floor(&entry[K, V]{key: key}))
}

// Delete deletes the given key from the map. If the key does not exist,
// the map is not modified. The method returns the value removed from the map
// and a boolean indicating whether the key was found.
//
// Complexity: O(log n)
func (m *Map[K, V]) Delete(key K) (value V, deleted bool) {
	it := m.find(key)
	if !it.End() {
		value, deleted = it.Value().value, true
		m.impl.Erase(it)
	}
	return value, deleted
}

// Clear removes all entries from the map.
//
// Complexity: O(n)
func (m *Map[K, V]) Clear() { m.impl.Clear() }

// Clone returns a copy of the map. Values are copied by assignment.
//
// Complexity: O(n)
func (m *Map[K, V]) Clone() *Map[K, V] {
	clone := m.impl.CloneFunc(func(e *entry[K, V]) *entry[K, V] {
		return &entry[K, V]{key: e.key, value: e.value}
	})
	c := new(Map[K, V])
	c.impl.Move(clone)
	return c
}

func (m *Map[K, V]) find(key K) rbtree.Iterator[*entry[K, V]] {
	return m.impl.Find(&entry[K, V]{key: key})
}

func entryOf[K, V any](it rbtree.Iterator[*entry[K, V]]) (key K, value V, found bool) {
	if !it.End() {
		e := it.Value()
		key, value, found = e.key, e.value, true
	}
	return key, value, found
}
