package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paintpro-backend/internal/domains/clients"
	"paintpro-backend/internal/shared/apperror"
)

func seededRepo(t *testing.T) clients.Repository {
	t.Helper()
	repo := NewFileRepository(t.TempDir())

	_, err := repo.SaveVersion(context.Background(), "Our Clients", []clients.ItemInput{
		{Src: "/a.png", Alt: "Client A"},
		{Src: "/b.png", Alt: "Client B"},
		{Src: "/c.png", Alt: "Client C"},
	})
	require.NoError(t, err)
	return repo
}

func displayOrders(section *clients.Section) []int {
	orders := make([]int, len(section.Clients))
	for i, item := range section.Clients {
		orders[i] = item.DisplayOrder
	}
	return orders
}

func TestSaveVersionAssignsContiguousOrders(t *testing.T) {
	repo := seededRepo(t)

	section, err := repo.GetLatest(context.Background())
	require.NoError(t, err)

	require.Len(t, section.Clients, 3)
	assert.Equal(t, []int{0, 1, 2}, displayOrders(section))
	assert.Equal(t, "Client A", section.Clients[0].Alt)
	assert.Equal(t, "Client C", section.Clients[2].Alt)
}

func TestGetLatestEmptyDirIsNotFound(t *testing.T) {
	repo := NewFileRepository(t.TempDir())

	_, err := repo.GetLatest(context.Background())
	assert.True(t, apperror.IsNotFound(err))
}

func TestAddItemAppendsAtEnd(t *testing.T) {
	repo := seededRepo(t)

	section, err := repo.AddItem(context.Background(), clients.ItemInput{Src: "/d.png", Alt: "Client D"})
	require.NoError(t, err)

	require.Len(t, section.Clients, 4)
	assert.Equal(t, "Client D", section.Clients[3].Alt)
	assert.Equal(t, 3, section.Clients[3].DisplayOrder)
}

func TestAddItemCreatesSectionWithDefaultHeading(t *testing.T) {
	repo := NewFileRepository(t.TempDir())

	section, err := repo.AddItem(context.Background(), clients.ItemInput{Src: "/a.png", Alt: "Client A"})
	require.NoError(t, err)

	assert.Equal(t, clients.DefaultHeading, section.Heading)
	require.Len(t, section.Clients, 1)
	assert.Equal(t, 0, section.Clients[0].DisplayOrder)
}

func TestDeleteItemRenumbersSurvivors(t *testing.T) {
	repo := seededRepo(t)

	section, err := repo.GetLatest(context.Background())
	require.NoError(t, err)
	middle := section.Clients[1].ID

	require.NoError(t, repo.DeleteItem(context.Background(), middle))

	section, err = repo.GetLatest(context.Background())
	require.NoError(t, err)
	require.Len(t, section.Clients, 2)
	assert.Equal(t, []int{0, 1}, displayOrders(section))
	assert.Equal(t, "Client A", section.Clients[0].Alt)
	assert.Equal(t, "Client C", section.Clients[1].Alt)
}

func TestDeleteUnknownItemIsNotFound(t *testing.T) {
	repo := seededRepo(t)

	err := repo.DeleteItem(context.Background(), 9999)
	assert.True(t, apperror.IsNotFound(err))
}

func TestDeleteLastItemRemovesSection(t *testing.T) {
	repo := NewFileRepository(t.TempDir())

	section, err := repo.AddItem(context.Background(), clients.ItemInput{Src: "/a.png", Alt: "Only"})
	require.NoError(t, err)

	require.NoError(t, repo.DeleteItem(context.Background(), section.Clients[0].ID))

	_, err = repo.GetLatest(context.Background())
	assert.True(t, apperror.IsNotFound(err))
}

func TestReorderFollowsIDPositions(t *testing.T) {
	repo := seededRepo(t)

	section, err := repo.GetLatest(context.Background())
	require.NoError(t, err)
	ids := []int64{section.Clients[2].ID, section.Clients[0].ID, section.Clients[1].ID}

	section, err = repo.Reorder(context.Background(), ids)
	require.NoError(t, err)

	assert.Equal(t, "Client C", section.Clients[0].Alt)
	assert.Equal(t, "Client A", section.Clients[1].Alt)
	assert.Equal(t, "Client B", section.Clients[2].Alt)
	assert.Equal(t, []int{0, 1, 2}, displayOrders(section))
}

func TestReorderUnknownIDsAreSkipped(t *testing.T) {
	repo := seededRepo(t)

	before, err := repo.GetLatest(context.Background())
	require.NoError(t, err)

	after, err := repo.Reorder(context.Background(), []int64{424242})
	require.NoError(t, err)

	require.Len(t, after.Clients, len(before.Clients))
	for i := range before.Clients {
		assert.Equal(t, before.Clients[i].ID, after.Clients[i].ID)
	}
}
