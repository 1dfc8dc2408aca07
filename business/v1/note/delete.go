package note

import (
	"context"

	"github.com/borealbadger/notes-api/persistence/v1/note"
)

// Delete removes the note permanently. There is no tombstone, the id is
// simply unknown afterwards.
func Delete(ctx context.Context, s *note.Store, id uint64) error {
	if !s.Delete(id) {
		return ErrNotFound
	}
	return nil
}
