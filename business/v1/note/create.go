package note

import (
	"context"
	"strings"

	"github.com/borealbadger/notes-api/persistence/v1/note"
)

// Create validates and stores a new note. The title is trimmed and must
// not be blank; nothing is stored when validation fails.
func Create(ctx context.Context, s *note.Store, newN NewNote) (Note, error) {
	title := strings.TrimSpace(newN.Title)
	if title == "" {
		return Note{}, ErrBlankTitle
	}

	created := s.Insert(note.NewNote{
		Title:   title,
		Content: newN.Content,
	})
	return Note(created), nil
}
