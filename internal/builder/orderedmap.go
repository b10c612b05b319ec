// =============================================================================
// CSV to NDO Converter - Insertion-Ordered Map
// =============================================================================
//
// Go's built-in map does not preserve insertion order, but the generated
// document must list entities in the order their rows first appear in the
// input tables. This small generic map keeps that guarantee explicit:
//
//   - Iteration follows first-insertion order of the keys.
//   - Overwriting an existing key updates the value in place and keeps the
//     key's original position. For duplicate-name rows this means the last
//     row's values win while the entity stays at its first row's position.
//
// =============================================================================

package builder

// orderedMap is a string-keyed map that preserves first-insertion order.
type orderedMap[V any] struct {
	keys []string
	vals map[string]V
}

// newOrderedMap creates an empty orderedMap.
func newOrderedMap[V any]() *orderedMap[V] {
	return &orderedMap[V]{
		vals: make(map[string]V),
	}
}

// Set inserts or overwrites the value for key.
// A new key is appended to the iteration order; an existing key keeps its
// original position.
func (m *orderedMap[V]) Set(key string, value V) {
	if _, exists := m.vals[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.vals[key] = value
}

// Get returns the value for key and whether the key is present.
func (m *orderedMap[V]) Get(key string) (V, bool) {
	value, ok := m.vals[key]
	return value, ok
}

// Has reports whether the key is present.
func (m *orderedMap[V]) Has(key string) bool {
	_, ok := m.vals[key]
	return ok
}

// Keys returns the keys in first-insertion order.
// The returned slice is the map's own backing slice; callers must not
// mutate it.
func (m *orderedMap[V]) Keys() []string {
	return m.keys
}

// Len returns the number of keys.
func (m *orderedMap[V]) Len() int {
	return len(m.keys)
}
