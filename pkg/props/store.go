// Package props implements the path-addressable property storage that backs
// every node in a UI-description tree.
//
// A Store maps string keys to values, where a value is a scalar, a nested
// mapping (map[string]any), or a sequence ([]any). Dot-separated keys address
// nested mappings and create intermediate levels on demand:
//
//	s := props.NewStore()
//	s.Set("style.fontSize", 16)
//	s.Get("style", nil) // map[string]any{"fontSize": 16}
//
// Writes with a nil or empty-string value are silently skipped; use Unset to
// remove a key. Setting a top-level mapping onto an existing mapping performs
// a shallow merge instead of a replacement.
package props

import (
	"sort"
	"strings"
)

// Store is a path-addressable key/value bag.
//
// A Store is not safe for concurrent use; callers sharing one across
// goroutines must synchronize externally.
type Store struct {
	values map[string]any
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{values: make(map[string]any)}
}

// Set stores value under key.
//
// A nil or empty-string value is skipped entirely, leaving any existing value
// untouched. A key containing dots walks (and creates) intermediate mappings;
// an existing non-mapping value at an intermediate segment is discarded and
// replaced by an empty mapping. A dot-free key whose existing and incoming
// values are both mappings is shallow-merged, with incoming keys winning.
func (s *Store) Set(key string, value any) {
	if key == "" || isEmptyValue(value) {
		return
	}
	if strings.Contains(key, ".") {
		s.setPath(key, value)
		return
	}
	if existing, ok := s.values[key].(map[string]any); ok {
		if incoming, ok := value.(map[string]any); ok {
			for k, v := range incoming {
				existing[k] = v
			}
			return
		}
	}
	s.values[key] = value
}

func (s *Store) setPath(key string, value any) {
	segments := strings.Split(key, ".")
	current := s.values
	for _, segment := range segments[:len(segments)-1] {
		next, ok := current[segment].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[segment] = next
		}
		current = next
	}
	current[segments[len(segments)-1]] = value
}

// Get returns the value stored at the (possibly dotted) key, or def when any
// path segment is absent.
func (s *Store) Get(key string, def any) any {
	segments := strings.Split(key, ".")
	current := s.values
	for i, segment := range segments {
		value, ok := current[segment]
		if !ok {
			return def
		}
		if i == len(segments)-1 {
			return value
		}
		current, ok = value.(map[string]any)
		if !ok {
			return def
		}
	}
	return def
}

// Has reports whether the (possibly dotted) key is present.
func (s *Store) Has(key string) bool {
	sentinel := &struct{}{}
	return s.Get(key, sentinel) != any(sentinel)
}

// Unset removes the value at the (possibly dotted) key, if present. Emptied
// intermediate mappings are kept.
func (s *Store) Unset(key string) {
	segments := strings.Split(key, ".")
	current := s.values
	for _, segment := range segments[:len(segments)-1] {
		next, ok := current[segment].(map[string]any)
		if !ok {
			return
		}
		current = next
	}
	delete(current, segments[len(segments)-1])
}

// GetAll returns the backing mapping. The result is shared with the Store,
// not a copy; serialization overlays it verbatim.
func (s *Store) GetAll() map[string]any {
	return s.values
}

// SetAll applies Set for every key of the mapping, so the skip-empty and
// merge rules hold uniformly. Keys are applied in sorted order to keep
// overlapping dotted and plain paths deterministic.
func (s *Store) SetAll(values map[string]any) {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		s.Set(key, values[key])
	}
}

// Len returns the number of top-level keys.
func (s *Store) Len() int {
	return len(s.values)
}

// Clone returns a Store sharing no storage with the receiver. Nested mappings
// and sequences are copied recursively; scalars and opaque references are
// copied by value.
func (s *Store) Clone() *Store {
	return &Store{values: cloneMap(s.values)}
}

func cloneMap(values map[string]any) map[string]any {
	out := make(map[string]any, len(values))
	for key, value := range values {
		out[key] = cloneValue(value)
	}
	return out
}

func cloneValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		return cloneMap(v)
	case []any:
		out := make([]any, len(v))
		for i, elem := range v {
			out[i] = cloneValue(elem)
		}
		return out
	default:
		return v
	}
}

// isEmptyValue implements the skip-empty write policy: nil and the empty
// string are never stored.
func isEmptyValue(value any) bool {
	if value == nil {
		return true
	}
	if s, ok := value.(string); ok {
		return s == ""
	}
	return false
}
