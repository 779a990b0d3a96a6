package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paintpro-backend/internal/domains/blog"
	"paintpro-backend/internal/shared/apperror"
)

func newRepo(t *testing.T) blog.Repository {
	t.Helper()
	return NewFileRepository(t.TempDir())
}

func TestListEmptyReturnsNoPosts(t *testing.T) {
	repo := newRepo(t)

	posts, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestCreateAssignsIDAndPrepends(t *testing.T) {
	repo := newRepo(t)

	first, err := repo.Create(context.Background(), &blog.Post{Title: "First", Content: "a", PostDate: "2024-01-01"})
	require.NoError(t, err)
	assert.NotZero(t, first.ID)

	// Millisecond IDs must differ between posts.
	time.Sleep(2 * time.Millisecond)

	second, err := repo.Create(context.Background(), &blog.Post{Title: "Second", Content: "b", PostDate: "2024-01-02"})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	posts, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "Second", posts[0].Title)
	assert.Equal(t, "First", posts[1].Title)
}

func TestGetByIDUnknownIs404(t *testing.T) {
	repo := newRepo(t)

	_, err := repo.GetByID(context.Background(), 12345)
	assert.True(t, apperror.IsNotFound(err))
}

func TestUpdateReplacesPostAndKeepsCreatedAt(t *testing.T) {
	repo := newRepo(t)

	created, err := repo.Create(context.Background(), &blog.Post{Title: "Before", Content: "x", PostDate: "2024-01-01"})
	require.NoError(t, err)

	updated, err := repo.Update(context.Background(), &blog.Post{
		ID:       created.ID,
		Title:    "After",
		Content:  "y",
		PostDate: "2024-01-01",
	})
	require.NoError(t, err)
	assert.Equal(t, "After", updated.Title)
	assert.Equal(t, created.CreatedAt.Unix(), updated.CreatedAt.Unix())

	got, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "After", got.Title)
}

func TestUpdateUnknownIs404(t *testing.T) {
	repo := newRepo(t)

	_, err := repo.Update(context.Background(), &blog.Post{ID: 987, Title: "x", Content: "y"})
	assert.True(t, apperror.IsNotFound(err))
}

func TestDeleteRemovesPost(t *testing.T) {
	repo := newRepo(t)

	created, err := repo.Create(context.Background(), &blog.Post{Title: "Gone soon", Content: "x"})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(context.Background(), created.ID))

	_, err = repo.GetByID(context.Background(), created.ID)
	assert.True(t, apperror.IsNotFound(err))

	err = repo.Delete(context.Background(), created.ID)
	assert.True(t, apperror.IsNotFound(err))
}
