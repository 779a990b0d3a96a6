package blogstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore(NewMemoryStorage())
	require.NoError(t, s.Hydrate())
	return s
}

func TestCleanContentStripsMarkup(t *testing.T) {
	in := `<p style="color: red">Hello&nbsp;world</p>


<div>Second   paragraph</div>`

	got := CleanContent(in)

	assert.NotContains(t, got, "<")
	assert.NotContains(t, got, "style=")
	assert.NotContains(t, got, "&nbsp;")
	assert.Contains(t, got, "Hello world")
	assert.Contains(t, got, "Second   paragraph")
}

func TestCleanContentIsIdempotent(t *testing.T) {
	inputs := []string{
		`<h1 style='font-size:40px'>Title</h1><p>Body&nbsp;text</p>`,
		"plain text, nothing to do",
		"lots\n\n\n\n\nof\n\n\n\nblank lines",
		"",
		"  padded  ",
		// Tag removal splices these into a fresh style attr / entity.
		`a style<b>="x"`,
		`a&nbsp;style="color:red" b`,
		`&nb<i></i>sp;`,
	}

	for _, in := range inputs {
		once := CleanContent(in)
		twice := CleanContent(once)
		assert.Equal(t, once, twice, "input %q", in)
	}
}

func TestCleanContentStripsReassembledMarkup(t *testing.T) {
	// Stripping <b> leaves ` style="color:red"`, which must be stripped too.
	got := CleanContent(`Intro style<b>="color:red"</b> done`)

	assert.NotContains(t, got, "style=")
	assert.Equal(t, "Intro done", got)
}

func TestHydrateSeedsDefaults(t *testing.T) {
	s := newTestStore(t)

	assert.True(t, s.HasHydrated())
	assert.Contains(t, s.Categories(), UncategorizedName)
	assert.NotEmpty(t, s.Posts())
}

func TestHydrateIsIdempotent(t *testing.T) {
	s := newTestStore(t)

	_, err := s.AddPost(StorePost{Title: "New", Content: "body"})
	require.NoError(t, err)
	before := len(s.Posts())

	require.NoError(t, s.Hydrate())
	assert.Len(t, s.Posts(), before)
}

func TestHydrateLoadsPersistedState(t *testing.T) {
	storage := NewMemoryStorage()

	s1 := NewStore(storage)
	require.NoError(t, s1.Hydrate())
	added, err := s1.AddPost(StorePost{Title: "Persisted", Content: "body"})
	require.NoError(t, err)

	s2 := NewStore(storage)
	require.NoError(t, s2.Hydrate())
	got, err := s2.GetPost(added.ID)
	require.NoError(t, err)
	assert.Equal(t, "Persisted", got.Title)
}

func TestAddPostAssignsIDAndDateAndCleans(t *testing.T) {
	s := newTestStore(t)

	added, err := s.AddPost(StorePost{
		Title:   "With markup",
		Content: `<p style="margin:0">Hi&nbsp;there</p>`,
	})
	require.NoError(t, err)

	assert.NotZero(t, added.ID)
	assert.NotEmpty(t, added.PostDate)
	assert.Equal(t, UncategorizedName, added.Category)
	assert.Equal(t, "Hi there", added.Content)

	// Newest post comes first.
	assert.Equal(t, added.ID, s.Posts()[0].ID)
}

func TestUpdatePostUnknownID(t *testing.T) {
	s := newTestStore(t)

	_, err := s.UpdatePost(StorePost{ID: 424242, Title: "nope", Content: "x"})
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestDeletePost(t *testing.T) {
	s := newTestStore(t)

	added, err := s.AddPost(StorePost{Title: "Short lived", Content: "x"})
	require.NoError(t, err)

	require.NoError(t, s.DeletePost(added.ID))
	_, err = s.GetPost(added.ID)
	assert.ErrorIs(t, err, ErrPostNotFound)

	assert.ErrorIs(t, s.DeletePost(added.ID), ErrPostNotFound)
}

func TestDeleteCategoryReassignsPosts(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.AddCategory("Seasonal"))
	added, err := s.AddPost(StorePost{Title: "Spring colors", Content: "x", Category: "Seasonal"})
	require.NoError(t, err)

	require.NoError(t, s.DeleteCategory("Seasonal"))

	assert.NotContains(t, s.Categories(), "Seasonal")
	got, err := s.GetPost(added.ID)
	require.NoError(t, err)
	assert.Equal(t, UncategorizedName, got.Category)
}

func TestDeleteUncategorizedIsRejected(t *testing.T) {
	s := newTestStore(t)

	assert.Error(t, s.DeleteCategory(UncategorizedName))
	assert.Contains(t, s.Categories(), UncategorizedName)
}

func TestAddCategoryIsDeduplicated(t *testing.T) {
	s := newTestStore(t)

	before := len(s.Categories())
	require.NoError(t, s.AddCategory("Painting Tips"))
	assert.Len(t, s.Categories(), before)
}
