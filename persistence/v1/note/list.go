package note

// List returns up to limit notes in insertion order starting at offset,
// plus the size of the full collection. Offsets past the end yield an
// empty page, not an error.
func (s *Store) List(limit, offset int) ([]Note, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := len(s.order)
	if offset >= total {
		return []Note{}, total
	}

	end := offset + limit
	if end > total {
		end = total
	}

	page := make([]Note, 0, end-offset)
	for _, id := range s.order[offset:end] {
		page = append(page, s.notes[id])
	}
	return page, total
}
