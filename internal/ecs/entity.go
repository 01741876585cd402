// Package ecs provides the entity store used by the simulation.
// Entities are generation-checked indices into an arena, so a handle that
// outlives its entity never aliases a newer one that reused the slot.
package ecs

// EntityID packs a 32-bit slot index in the low bits and a 32-bit generation
// in the high bits. The zero value never refers to a live entity.
type EntityID uint64

// NewEntityID builds an EntityID from its parts.
func NewEntityID(index, generation uint32) EntityID {
	return EntityID(uint64(generation)<<32 | uint64(index))
}

// Index returns the arena slot of the entity.
func (id EntityID) Index() uint32 { return uint32(id) }

// Generation returns the generation the handle was issued with.
func (id EntityID) Generation() uint32 { return uint32(id >> 32) }

// IsZero reports whether id is the null handle.
func (id EntityID) IsZero() bool { return id == 0 }

// EntityPool allocates entity handles with a free list of recycled slots.
// Generations start at 1 so that no live handle is ever zero.
type EntityPool struct {
	generations []uint32
	freeList    []uint32
	alive       int
}

// NewEntityPool creates an empty pool.
func NewEntityPool() *EntityPool {
	return &EntityPool{
		generations: make([]uint32, 0, 64),
		freeList:    make([]uint32, 0, 16),
	}
}

// Create returns a fresh handle, reusing a freed slot when one is available.
func (p *EntityPool) Create() EntityID {
	p.alive++
	if n := len(p.freeList); n > 0 {
		idx := p.freeList[n-1]
		p.freeList = p.freeList[:n-1]
		return NewEntityID(idx, p.generations[idx])
	}
	idx := uint32(len(p.generations))
	p.generations = append(p.generations, 1)
	return NewEntityID(idx, 1)
}

// Alive reports whether id still refers to a live entity.
func (p *EntityPool) Alive(id EntityID) bool {
	idx := id.Index()
	if int(idx) >= len(p.generations) {
		return false
	}
	return p.generations[idx] == id.Generation()
}

// Destroy invalidates id. Stale or unknown handles are ignored.
func (p *EntityPool) Destroy(id EntityID) bool {
	if !p.Alive(id) {
		return false
	}
	idx := id.Index()
	p.generations[idx]++
	if p.generations[idx] == 0 {
		// wrapped; skip the reserved zero generation
		p.generations[idx] = 1
	}
	p.freeList = append(p.freeList, idx)
	p.alive--
	return true
}

// Len returns the number of live entities.
func (p *EntityPool) Len() int { return p.alive }
