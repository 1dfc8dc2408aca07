package note

// Find returns a copy of the note with the given id, if it exists.
func (s *Store) Find(id uint64) (Note, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	found, ok := s.notes[id]
	return found, ok
}
