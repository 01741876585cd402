package ecs

// Removable is implemented by every component store so the World can strip
// an entity from all stores when it is destroyed.
type Removable interface {
	Remove(id EntityID)
}

// Store is a dense table of one component type keyed by entity.
// Components live contiguously in insertion order; removal swaps the last
// element into the hole. Pointers returned by Get or passed to Each stay
// valid until the next Set of a new entity or Remove on this store.
type Store[T any] struct {
	slots map[uint32]int // entity index -> dense position
	ids   []EntityID
	data  []T
}

// NewStore creates an empty store.
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		slots: make(map[uint32]int, 32),
		ids:   make([]EntityID, 0, 32),
		data:  make([]T, 0, 32),
	}
}

// Set inserts or replaces the component for id.
func (s *Store[T]) Set(id EntityID, v T) {
	if pos, ok := s.slots[id.Index()]; ok {
		s.ids[pos] = id
		s.data[pos] = v
		return
	}
	s.slots[id.Index()] = len(s.data)
	s.ids = append(s.ids, id)
	s.data = append(s.data, v)
}

// Get returns the component for id. A stale handle whose slot was reused
// by another entity does not match.
func (s *Store[T]) Get(id EntityID) (*T, bool) {
	pos, ok := s.slots[id.Index()]
	if !ok || s.ids[pos] != id {
		return nil, false
	}
	return &s.data[pos], true
}

// Has reports whether id carries this component.
func (s *Store[T]) Has(id EntityID) bool {
	_, ok := s.Get(id)
	return ok
}

// Remove deletes the component for id, if present.
func (s *Store[T]) Remove(id EntityID) {
	pos, ok := s.slots[id.Index()]
	if !ok || s.ids[pos] != id {
		return
	}
	last := len(s.data) - 1
	if pos != last {
		s.ids[pos] = s.ids[last]
		s.data[pos] = s.data[last]
		s.slots[s.ids[pos].Index()] = pos
	}
	var zero T
	s.data[last] = zero
	s.ids = s.ids[:last]
	s.data = s.data[:last]
	delete(s.slots, id.Index())
}

// Len returns the number of entities carrying this component.
func (s *Store[T]) Len() int { return len(s.data) }

// Entities returns a copy of the ids in this store.
func (s *Store[T]) Entities() []EntityID {
	out := make([]EntityID, len(s.ids))
	copy(out, s.ids)
	return out
}

// Clear drops every component.
func (s *Store[T]) Clear() {
	clear(s.slots)
	clear(s.data)
	s.ids = s.ids[:0]
	s.data = s.data[:0]
}
