package note

import (
	"context"
	"strings"

	"github.com/borealbadger/notes-api/persistence/v1/note"
)

// Search returns the notes whose title or content contains q as a
// case-insensitive substring, in insertion order. A blank q is rejected.
func Search(ctx context.Context, s *note.Store, q string) ([]Note, error) {
	if strings.TrimSpace(q) == "" {
		return nil, ErrBlankQuery
	}

	found := s.Search(q)

	matches := make([]Note, 0, len(found))
	for _, f := range found {
		matches = append(matches, Note(f))
	}
	return matches, nil
}
