package note

// Insert appends a new note to the collection and assigns the next id.
// Both timestamps are set to the same instant.
func (s *Store) Insert(newN NewNote) Note {
	n := now()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	created := Note{
		Id:        s.seq,
		Title:     newN.Title,
		Content:   newN.Content,
		UpdatedAt: n,
		CreatedAt: n,
	}
	s.notes[created.Id] = created
	s.order = append(s.order, created.Id)

	return created
}
