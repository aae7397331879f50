package usecase

import "sync"

// sequence numbers load requests so that only the latest one may render.
// Responses may settle in any order; an older one is dropped.
type sequence struct {
	mu     sync.Mutex
	latest uint64
}

func (s *sequence) next() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest++
	return s.latest
}

// commit runs apply only if id is still the latest issued number.
// apply runs under the lock so a newer load cannot interleave with it.
func (s *sequence) commit(id uint64, apply func()) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id != s.latest {
		return false
	}
	apply()
	return true
}

// invalidate makes every outstanding id stale
func (s *sequence) invalidate() {
	s.mu.Lock()
	s.latest++
	s.mu.Unlock()
}
