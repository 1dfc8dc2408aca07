package note

import "strings"

// Search scans the collection in insertion order and returns the notes
// whose title or content contains q, ignoring case. Linear scan, there is
// no index.
func (s *Store) Search(q string) []Note {
	q = strings.ToLower(q)

	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := []Note{}
	for _, id := range s.order {
		found := s.notes[id]
		if strings.Contains(strings.ToLower(found.Title), q) ||
			strings.Contains(strings.ToLower(found.Content), q) {
			matches = append(matches, found)
		}
	}
	return matches
}
