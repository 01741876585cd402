package ecs

// World owns the entity pool, the registered component stores and a
// deferred destruction queue. Destroy only queues; Flush applies the queue.
// Systems therefore never see an entity vanish while they iterate.
type World struct {
	pool         *EntityPool
	stores       []Removable
	destroyQueue []EntityID
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{
		pool:         NewEntityPool(),
		stores:       make([]Removable, 0, 8),
		destroyQueue: make([]EntityID, 0, 16),
	}
}

// Register adds a store to the set stripped on destroy.
func (w *World) Register(s Removable) {
	w.stores = append(w.stores, s)
}

// Create reserves a new entity.
func (w *World) Create() EntityID {
	return w.pool.Create()
}

// Alive reports whether id refers to a live entity.
func (w *World) Alive(id EntityID) bool {
	return w.pool.Alive(id)
}

// Len returns the number of live entities, including ones queued for
// destruction.
func (w *World) Len() int {
	return w.pool.Len()
}

// Destroy queues id for removal at the next Flush. Destroying a dead or
// already queued entity is a no-op.
func (w *World) Destroy(id EntityID) {
	if !w.pool.Alive(id) {
		return
	}
	for _, q := range w.destroyQueue {
		if q == id {
			return
		}
	}
	w.destroyQueue = append(w.destroyQueue, id)
}

// Pending returns the number of entities queued for destruction.
func (w *World) Pending() int {
	return len(w.destroyQueue)
}

// Flush destroys all queued entities and strips their components.
// It returns how many entities were removed.
func (w *World) Flush() int {
	n := 0
	for _, id := range w.destroyQueue {
		if !w.pool.Destroy(id) {
			continue
		}
		for _, s := range w.stores {
			s.Remove(id)
		}
		n++
	}
	w.destroyQueue = w.destroyQueue[:0]
	return n
}

// Attach sets a component on a live entity. Attaching to a dead handle is
// ignored and reports false.
func Attach[T any](w *World, s *Store[T], id EntityID, v T) bool {
	if !w.pool.Alive(id) {
		return false
	}
	s.Set(id, v)
	return true
}
