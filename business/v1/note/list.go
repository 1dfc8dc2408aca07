package note

import (
	"context"

	"github.com/borealbadger/notes-api/persistence/v1/note"
	"github.com/borealbadger/notes-api/sys"
)

// List returns a page of the insertion-ordered collection. The limit must
// be within [1, Configs.Notes.MaxLimit] and the offset non-negative.
func List(ctx context.Context, s *note.Store, limit, offset int) (Page, error) {
	if limit < 1 || limit > sys.Configs.Notes.MaxLimit {
		return Page{}, validationErrorf("limit must be between 1 and %d", sys.Configs.Notes.MaxLimit)
	}
	if offset < 0 {
		return Page{}, validationErrorf("offset must not be negative")
	}

	found, total := s.List(limit, offset)

	items := make([]Note, 0, len(found))
	for _, f := range found {
		items = append(items, Note(f))
	}

	return Page{
		Items:  items,
		Count:  len(items),
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}, nil
}
