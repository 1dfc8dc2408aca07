package note

import (
	"context"

	"github.com/borealbadger/notes-api/persistence/v1/note"
)

func Find(ctx context.Context, s *note.Store, id uint64) (Note, error) {
	found, ok := s.Find(id)
	if !ok {
		return Note{}, ErrNotFound
	}
	return Note(found), nil
}
