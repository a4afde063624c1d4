// Package pairs implements the immutable association with unique keys used
// by validators that branch on map contents.
//
// Iteration order is insertion order, fixed once and documented here:
// Keys and Values enumerate entries in the order their keys first appeared,
// and the two sequences are index-aligned. Validators that branch on this
// order therefore produce identical results on every evaluator
// implementation. Insert and Delete are persistent: they return a new
// mapping and leave the receiver untouched.
package pairs

import "github.com/covenantnet/prelude/pkg/option"

// Pair is a single key/value association.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// Mapping is an immutable association with unique keys and stable
// insertion-order iteration. The zero value is an empty mapping.
type Mapping[K comparable, V any] struct {
	keys   []K
	values []V
}

// New returns an empty mapping.
func New[K comparable, V any]() Mapping[K, V] {
	return Mapping[K, V]{}
}

// FromPairs builds a mapping from a pair sequence. Duplicate keys follow a
// last-write-wins policy: the value of the final occurrence is kept, at the
// position where the key first appeared.
func FromPairs[K comparable, V any](ps []Pair[K, V]) Mapping[K, V] {
	m := Mapping[K, V]{}
	for _, p := range ps {
		m = m.Insert(p.Key, p.Value)
	}
	return m
}

// Get returns the value associated with the key, or None.
func (m Mapping[K, V]) Get(key K) option.Option[V] {
	for i, k := range m.keys {
		if k == key {
			return option.Some(m.values[i])
		}
	}
	return option.None[V]()
}

// Has reports whether the key is present.
func (m Mapping[K, V]) Has(key K) bool {
	for _, k := range m.keys {
		if k == key {
			return true
		}
	}
	return false
}

// Insert returns a new mapping with the association added. An existing key
// keeps its original insertion position and gets the new value; the
// receiver is never modified.
func (m Mapping[K, V]) Insert(key K, value V) Mapping[K, V] {
	keys := make([]K, len(m.keys), len(m.keys)+1)
	values := make([]V, len(m.values), len(m.values)+1)
	copy(keys, m.keys)
	copy(values, m.values)

	for i, k := range keys {
		if k == key {
			values[i] = value
			return Mapping[K, V]{keys: keys, values: values}
		}
	}
	return Mapping[K, V]{keys: append(keys, key), values: append(values, value)}
}

// Delete returns a new mapping without the key. Deleting an absent key
// returns an equal mapping; it is not an error.
func (m Mapping[K, V]) Delete(key K) Mapping[K, V] {
	keys := make([]K, 0, len(m.keys))
	values := make([]V, 0, len(m.values))
	for i, k := range m.keys {
		if k == key {
			continue
		}
		keys = append(keys, k)
		values = append(values, m.values[i])
	}
	return Mapping[K, V]{keys: keys, values: values}
}

// Keys returns the keys in insertion order as a fresh sequence.
func (m Mapping[K, V]) Keys() []K {
	out := make([]K, len(m.keys))
	copy(out, m.keys)
	return out
}

// Values returns the values as a fresh sequence, index-aligned with Keys:
// Values()[i] is the value associated with Keys()[i].
func (m Mapping[K, V]) Values() []V {
	out := make([]V, len(m.values))
	copy(out, m.values)
	return out
}

// Pairs returns the associations in insertion order as a fresh sequence.
func (m Mapping[K, V]) Pairs() []Pair[K, V] {
	out := make([]Pair[K, V], len(m.keys))
	for i := range m.keys {
		out[i] = Pair[K, V]{Key: m.keys[i], Value: m.values[i]}
	}
	return out
}

// Size returns the number of associations.
func (m Mapping[K, V]) Size() int {
	return len(m.keys)
}
