package note

import (
	"context"
	"strings"

	"github.com/borealbadger/notes-api/persistence/v1/note"
)

// Patch applies only the supplied fields. A patch with neither field is
// rejected, as is a supplied title that is blank after trimming. The note
// is left untouched on any failure.
func Patch(ctx context.Context, s *note.Store, id uint64, patch NotePatch) (Note, error) {
	if patch.Title == nil && patch.Content == nil {
		return Note{}, ErrEmptyPatch
	}
	if patch.Title != nil {
		trimmed := strings.TrimSpace(*patch.Title)
		if trimmed == "" {
			return Note{}, ErrBlankTitle
		}
		patch.Title = &trimmed
	}

	updated, ok := s.Update(id, note.Patch{
		Title:   patch.Title,
		Content: patch.Content,
	})
	if !ok {
		return Note{}, ErrNotFound
	}
	return Note(updated), nil
}
