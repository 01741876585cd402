package ecs

import "testing"

type pos struct{ X, Y float64 }
type tag struct{}

func newTestWorld() (*World, *Store[pos], *Store[tag]) {
	w := NewWorld()
	ps := NewStore[pos]()
	ts := NewStore[tag]()
	w.Register(ps)
	w.Register(ts)
	return w, ps, ts
}

func TestEntityIDParts(t *testing.T) {
	id := NewEntityID(7, 3)
	if id.Index() != 7 {
		t.Errorf("Index() = %d, expected 7", id.Index())
	}
	if id.Generation() != 3 {
		t.Errorf("Generation() = %d, expected 3", id.Generation())
	}
	if id.IsZero() {
		t.Error("non-zero id reported as zero")
	}
	if !EntityID(0).IsZero() {
		t.Error("zero id should report IsZero")
	}
}

func TestPoolReusesSlotWithNewGeneration(t *testing.T) {
	p := NewEntityPool()

	a := p.Create()
	if a.IsZero() {
		t.Fatal("first handle must not be zero")
	}
	if !p.Destroy(a) {
		t.Fatal("Destroy of live handle should succeed")
	}

	b := p.Create()
	if b.Index() != a.Index() {
		t.Errorf("expected slot reuse, got index %d vs %d", b.Index(), a.Index())
	}
	if b.Generation() == a.Generation() {
		t.Error("reused slot must bump generation")
	}
	if p.Alive(a) {
		t.Error("stale handle reported alive")
	}
	if !p.Alive(b) {
		t.Error("fresh handle reported dead")
	}
	if p.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", p.Len())
	}
}

func TestDestroyIsIdempotent(t *testing.T) {
	w, ps, _ := newTestWorld()

	id := w.Create()
	Attach(w, ps, id, pos{1, 2})

	w.Destroy(id)
	w.Destroy(id)
	if w.Pending() != 1 {
		t.Errorf("Pending() = %d, expected 1 (duplicates collapse)", w.Pending())
	}
	if n := w.Flush(); n != 1 {
		t.Errorf("Flush() removed %d, expected 1", n)
	}

	// Destroying a dead handle is a no-op, not a panic.
	w.Destroy(id)
	if w.Pending() != 0 {
		t.Error("dead handle should not be queued")
	}
	if n := w.Flush(); n != 0 {
		t.Errorf("Flush() removed %d, expected 0", n)
	}
	if ps.Has(id) {
		t.Error("components should be stripped on destroy")
	}
}

func TestDestroyIsDeferredUntilFlush(t *testing.T) {
	w, ps, _ := newTestWorld()

	for i := 0; i < 5; i++ {
		id := w.Create()
		Attach(w, ps, id, pos{X: float64(i)})
	}

	visited := 0
	Each(ps, func(id EntityID, _ *pos) {
		w.Destroy(id)
		visited++
	})
	if visited != 5 {
		t.Errorf("visited %d entities, expected 5", visited)
	}
	if ps.Len() != 5 {
		t.Errorf("store shrank mid-tick: Len() = %d", ps.Len())
	}

	w.Flush()
	if ps.Len() != 0 {
		t.Errorf("Len() after flush = %d, expected 0", ps.Len())
	}
	if w.Len() != 0 {
		t.Errorf("World.Len() = %d, expected 0", w.Len())
	}
}

func TestAttachToDeadEntityIgnored(t *testing.T) {
	w, ps, _ := newTestWorld()
	id := w.Create()
	w.Destroy(id)
	w.Flush()

	if Attach(w, ps, id, pos{}) {
		t.Error("Attach to dead entity should report false")
	}
	if ps.Len() != 0 {
		t.Error("dead entity must not gain components")
	}
}

func TestStaleHandleDoesNotSeeNewComponent(t *testing.T) {
	w, ps, _ := newTestWorld()
	old := w.Create()
	Attach(w, ps, old, pos{1, 1})
	w.Destroy(old)
	w.Flush()

	fresh := w.Create()
	Attach(w, ps, fresh, pos{9, 9})

	if _, ok := ps.Get(old); ok {
		t.Error("stale handle resolved to reused slot")
	}
	p, ok := ps.Get(fresh)
	if !ok || p.X != 9 {
		t.Errorf("fresh handle lookup failed: %v %v", p, ok)
	}
}

func TestStoreRemoveKeepsOthers(t *testing.T) {
	s := NewStore[pos]()
	ids := []EntityID{NewEntityID(0, 1), NewEntityID(1, 1), NewEntityID(2, 1)}
	for i, id := range ids {
		s.Set(id, pos{X: float64(i)})
	}

	s.Remove(ids[0])

	if s.Len() != 2 {
		t.Fatalf("Len() = %d, expected 2", s.Len())
	}
	for i, id := range ids[1:] {
		p, ok := s.Get(id)
		if !ok {
			t.Fatalf("entity %d lost after unrelated remove", i+1)
		}
		if p.X != float64(i+1) {
			t.Errorf("entity %d has X=%f, expected %d", i+1, p.X, i+1)
		}
	}

	s.Clear()
	if s.Len() != 0 || s.Has(ids[1]) {
		t.Error("Clear should drop everything")
	}
}

func TestEach2OnlyMatchesBoth(t *testing.T) {
	w, ps, ts := newTestWorld()

	both := w.Create()
	Attach(w, ps, both, pos{})
	Attach(w, ts, both, tag{})

	onlyPos := w.Create()
	Attach(w, ps, onlyPos, pos{})

	onlyTag := w.Create()
	Attach(w, ts, onlyTag, tag{})

	var seen []EntityID
	Each2(ps, ts, func(id EntityID, _ *pos, _ *tag) {
		seen = append(seen, id)
	})
	if len(seen) != 1 || seen[0] != both {
		t.Errorf("Each2 visited %v, expected only %v", seen, both)
	}

	seen = seen[:0]
	Each2(ts, ps, func(id EntityID, _ *tag, _ *pos) {
		seen = append(seen, id)
	})
	if len(seen) != 1 || seen[0] != both {
		t.Errorf("Each2 (reversed) visited %v, expected only %v", seen, both)
	}
}

func TestEach3AndFirst(t *testing.T) {
	w, ps, ts := newTestWorld()
	vs := NewStore[float64]()
	w.Register(vs)

	if _, ok := First(ts); ok {
		t.Error("First on empty store should report false")
	}

	a := w.Create()
	Attach(w, ps, a, pos{})
	Attach(w, ts, a, tag{})
	Attach(w, vs, a, 1.5)

	b := w.Create()
	Attach(w, ps, b, pos{})
	Attach(w, vs, b, 2.5)

	count := 0
	Each3(ts, ps, vs, func(id EntityID, _ *tag, p *pos, v *float64) {
		count++
		p.X = *v
	})
	if count != 1 {
		t.Errorf("Each3 visited %d, expected 1", count)
	}
	if p, _ := ps.Get(a); p.X != 1.5 {
		t.Errorf("mutation through Each3 lost: X=%f", p.X)
	}

	first, ok := First(ts)
	if !ok || first != a {
		t.Errorf("First() = %v, %v; expected %v", first, ok, a)
	}
}

func TestAnyStopsAtFirstMatch(t *testing.T) {
	w, ps, _ := newTestWorld()
	for i := 0; i < 4; i++ {
		Attach(w, ps, w.Create(), pos{X: float64(i)})
	}

	calls := 0
	found := Any(ps, func(_ EntityID, p *pos) bool {
		calls++
		return p.X == 1
	})
	if !found {
		t.Error("Any should find X == 1")
	}
	if calls != 2 {
		t.Errorf("Any made %d calls, expected 2", calls)
	}

	if Any(ps, func(_ EntityID, p *pos) bool { return p.X > 10 }) {
		t.Error("Any reported a match that does not exist")
	}
}
