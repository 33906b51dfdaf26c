package cache

// Sweep exposes the periodic expiry scan for deterministic tests.
func (s *Store) Sweep() {
	s.sweep()
}
