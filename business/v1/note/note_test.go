package note

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	store "github.com/borealbadger/notes-api/persistence/v1/note"
	"github.com/borealbadger/notes-api/sys"
)

func TestMain(m *testing.M) {
	sys.Configs.Notes.DefaultLimit = 10
	sys.Configs.Notes.MaxLimit = 100
	os.Exit(m.Run())
}

func TestCreateTrimsTitle(t *testing.T) {
	s := store.NewStore()

	created, err := Create(context.Background(), s, NewNote{Title: "  padded  ", Content: "x"})
	require.NoError(t, err)
	require.Equal(t, "padded", created.Title)
	require.True(t, created.CreatedAt.Equal(created.UpdatedAt))

	found, err := Find(context.Background(), s, created.Id)
	require.NoError(t, err)
	require.Equal(t, created, found)
}

func TestCreateRejectsBlankTitle(t *testing.T) {
	s := store.NewStore()

	for _, title := range []string{"", "   ", "\t\n"} {
		_, err := Create(context.Background(), s, NewNote{Title: title})
		require.ErrorIs(t, err, ErrBlankTitle)
		require.True(t, IsValidation(err))
	}

	// nothing was stored
	page, err := List(context.Background(), s, 10, 0)
	require.NoError(t, err)
	require.Zero(t, page.Total)
}

func TestListValidatesPagination(t *testing.T) {
	s := store.NewStore()

	for _, tc := range []struct{ limit, offset int }{
		{0, 0},
		{-1, 0},
		{101, 0},
		{10, -1},
	} {
		_, err := List(context.Background(), s, tc.limit, tc.offset)
		require.True(t, IsValidation(err), "limit=%d offset=%d", tc.limit, tc.offset)
	}
}

func TestListEnvelope(t *testing.T) {
	s := store.NewStore()
	for _, title := range []string{"a", "b", "c"} {
		_, err := Create(context.Background(), s, NewNote{Title: title})
		require.NoError(t, err)
	}

	page, err := List(context.Background(), s, 2, 1)
	require.NoError(t, err)
	require.Equal(t, 2, page.Count)
	require.Equal(t, 3, page.Total)
	require.Equal(t, 2, page.Limit)
	require.Equal(t, 1, page.Offset)
	require.Equal(t, "b", page.Items[0].Title)
	require.Equal(t, "c", page.Items[1].Title)
}

func TestFindUnknown(t *testing.T) {
	s := store.NewStore()

	_, err := Find(context.Background(), s, 999)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestPatchRejectsEmptyPatch(t *testing.T) {
	s := store.NewStore()
	created, err := Create(context.Background(), s, NewNote{Title: "before", Content: "before"})
	require.NoError(t, err)

	_, err = Patch(context.Background(), s, created.Id, NotePatch{})
	require.ErrorIs(t, err, ErrEmptyPatch)
	require.True(t, IsValidation(err))

	// untouched
	found, err := Find(context.Background(), s, created.Id)
	require.NoError(t, err)
	require.Equal(t, created, found)
}

func TestPatchRejectsBlankTitle(t *testing.T) {
	s := store.NewStore()
	created, err := Create(context.Background(), s, NewNote{Title: "before"})
	require.NoError(t, err)

	blank := "   "
	_, err = Patch(context.Background(), s, created.Id, NotePatch{Title: &blank})
	require.ErrorIs(t, err, ErrBlankTitle)

	found, err := Find(context.Background(), s, created.Id)
	require.NoError(t, err)
	require.Equal(t, "before", found.Title)
}

func TestPatchContentOnlyKeepsTitle(t *testing.T) {
	s := store.NewStore()
	created, err := Create(context.Background(), s, NewNote{Title: "keep", Content: "old"})
	require.NoError(t, err)

	content := "new"
	updated, err := Patch(context.Background(), s, created.Id, NotePatch{Content: &content})
	require.NoError(t, err)
	require.Equal(t, "keep", updated.Title)
	require.Equal(t, "new", updated.Content)
	require.False(t, updated.UpdatedAt.Before(updated.CreatedAt))
}

func TestPatchTrimsTitle(t *testing.T) {
	s := store.NewStore()
	created, err := Create(context.Background(), s, NewNote{Title: "before"})
	require.NoError(t, err)

	title := "  after  "
	updated, err := Patch(context.Background(), s, created.Id, NotePatch{Title: &title})
	require.NoError(t, err)
	require.Equal(t, "after", updated.Title)
}

func TestPatchUnknown(t *testing.T) {
	s := store.NewStore()

	title := "nope"
	_, err := Patch(context.Background(), s, 999, NotePatch{Title: &title})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDelete(t *testing.T) {
	s := store.NewStore()
	created, err := Create(context.Background(), s, NewNote{Title: "gone soon"})
	require.NoError(t, err)

	require.NoError(t, Delete(context.Background(), s, created.Id))

	_, err = Find(context.Background(), s, created.Id)
	require.ErrorIs(t, err, ErrNotFound)

	err = Delete(context.Background(), s, created.Id)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSearchRejectsBlankQuery(t *testing.T) {
	s := store.NewStore()

	for _, q := range []string{"", "   "} {
		_, err := Search(context.Background(), s, q)
		require.ErrorIs(t, err, ErrBlankQuery)
		require.True(t, IsValidation(err))
	}
}

func TestSearchMatchesTitleAndContent(t *testing.T) {
	s := store.NewStore()
	_, err := Create(context.Background(), s, NewNote{Title: "Groceries", Content: "milk, eggs"})
	require.NoError(t, err)
	_, err = Create(context.Background(), s, NewNote{Title: "Work", Content: "finish report"})
	require.NoError(t, err)

	matches, err := Search(context.Background(), s, "MILK")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	require.Equal(t, "Groceries", matches[0].Title)

	matches, err = Search(context.Background(), s, "zzz")
	require.NoError(t, err)
	require.Empty(t, matches)
}

func TestValidationClassification(t *testing.T) {
	require.False(t, IsValidation(nil))
	require.False(t, IsValidation(ErrNotFound))
	require.False(t, IsValidation(errors.New("boom")))
	require.True(t, IsValidation(ErrBlankTitle))
	require.True(t, IsValidation(validationErrorf("limit must be between 1 and %d", 100)))
}
