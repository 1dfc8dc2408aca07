package note

// Update applies the non-nil patch fields in place and refreshes
// UpdatedAt. Id and CreatedAt never change. Reports false when the id is
// unknown.
func (s *Store) Update(id uint64, patch Patch) (Note, bool) {
	n := now()

	s.mu.Lock()
	defer s.mu.Unlock()

	found, ok := s.notes[id]
	if !ok {
		return Note{}, false
	}

	if patch.Title != nil {
		found.Title = *patch.Title
	}
	if patch.Content != nil {
		found.Content = *patch.Content
	}
	found.UpdatedAt = n

	s.notes[id] = found
	return found, true
}
