package seq

// Clone drains the remaining tail into an in-memory cache shared by the
// original and the clone, then rebinds the original to a fresh cursor over
// that cache so it stays fully usable. Both then yield the identical
// remaining tail independently.
//
// This is the one place laziness is deliberately broken: cloning an
// infinite chain does not terminate.
func (s *Seq[T]) Clone() *Seq[T] {
	return s.CloneMany(1)[0]
}

// CloneMany is Clone with k independent cursors over one shared cache.
func (s *Seq[T]) CloneMany(k int) []*Seq[T] {
	if k < 0 {
		k = 0
	}
	// Next drains the peek buffer first, so a pending peeked value ends
	// up in the cache like any other.
	var cache []T
	for {
		v, ok := s.Next()
		if !ok {
			break
		}
		cache = append(cache, v)
	}

	// The cache is immutable from here on; every cursor holds only its
	// own position into it.
	s.cur = &sliceCursor[T]{items: cache}
	s.buffered = false

	clones := make([]*Seq[T], k)
	for i := range clones {
		clones[i] = From[T](&sliceCursor[T]{items: cache})
	}
	return clones
}
