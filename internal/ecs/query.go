package ecs

// Each visits every entity in s. Entities added to s during the walk are
// not visited.
func Each[A any](s *Store[A], fn func(EntityID, *A)) {
	n := len(s.ids)
	for i := 0; i < n; i++ {
		fn(s.ids[i], &s.data[i])
	}
}

// Each2 visits entities carrying both A and B, walking the smaller store.
func Each2[A, B any](sa *Store[A], sb *Store[B], fn func(EntityID, *A, *B)) {
	if sa.Len() <= sb.Len() {
		n := len(sa.ids)
		for i := 0; i < n; i++ {
			id := sa.ids[i]
			if b, ok := sb.Get(id); ok {
				fn(id, &sa.data[i], b)
			}
		}
		return
	}
	n := len(sb.ids)
	for i := 0; i < n; i++ {
		id := sb.ids[i]
		if a, ok := sa.Get(id); ok {
			fn(id, a, &sb.data[i])
		}
	}
}

// Each3 visits entities carrying A, B and C. The walk is driven by sa;
// pass the most selective store first.
func Each3[A, B, C any](sa *Store[A], sb *Store[B], sc *Store[C], fn func(EntityID, *A, *B, *C)) {
	n := len(sa.ids)
	for i := 0; i < n; i++ {
		id := sa.ids[i]
		b, ok := sb.Get(id)
		if !ok {
			continue
		}
		c, ok := sc.Get(id)
		if !ok {
			continue
		}
		fn(id, &sa.data[i], b, c)
	}
}

// First returns the first entity in s, if any. Used for singleton
// components such as the actor marker.
func First[A any](s *Store[A]) (EntityID, bool) {
	if len(s.ids) == 0 {
		return 0, false
	}
	return s.ids[0], true
}

// Any walks s until pred returns true and reports whether it did.
func Any[A any](s *Store[A], pred func(EntityID, *A) bool) bool {
	n := len(s.ids)
	for i := 0; i < n; i++ {
		if pred(s.ids[i], &s.data[i]) {
			return true
		}
	}
	return false
}
