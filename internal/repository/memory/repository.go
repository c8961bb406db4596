package memory

import (
	"errors"
	"slices"
)

// ErrAlreadyExists возвращается AddUnique, когда ключ уже занят
var ErrAlreadyExists = errors.New("already exists")

// store упорядоченное хранилище на основе map.
// Порядок ключей нужен только для отображения, поиск идет по map.
type store[V any] struct {
	keys  []string
	items map[string]V
}

func newStore[V any]() store[V] {
	return store[V]{items: make(map[string]V)}
}

func (s *store[V]) get(key string) (V, bool) {
	v, ok := s.items[key]
	return v, ok
}

// set сохраняет значение, существующий ключ сохраняет свою позицию
func (s *store[V]) set(key string, v V) {
	if _, exists := s.items[key]; !exists {
		s.keys = append(s.keys, key)
	}
	s.items[key] = v
}

func (s *store[V]) remove(key string) bool {
	if _, exists := s.items[key]; !exists {
		return false
	}
	delete(s.items, key)
	s.keys = slices.DeleteFunc(s.keys, func(k string) bool { return k == key })
	return true
}

// rekey переносит значение со старого ключа на новый за один шаг.
// Значение под новым ключом, если оно было, перезаписывается.
func (s *store[V]) rekey(oldKey, newKey string, v V) {
	if oldKey != newKey {
		s.remove(newKey)
		delete(s.items, oldKey)
		if i := slices.Index(s.keys, oldKey); i >= 0 {
			s.keys[i] = newKey
		}
	}
	s.items[newKey] = v
}

// filter оставляет только значения, для которых keep возвращает true
func (s *store[V]) filter(keep func(V) bool) int {
	removed := 0
	kept := s.keys[:0]
	for _, key := range s.keys {
		if keep(s.items[key]) {
			kept = append(kept, key)
			continue
		}
		delete(s.items, key)
		removed++
	}
	s.keys = kept
	return removed
}

func (s *store[V]) values() []V {
	out := make([]V, 0, len(s.keys))
	for _, key := range s.keys {
		out = append(out, s.items[key])
	}
	return out
}

func (s *store[V]) len() int { return len(s.keys) }
