package repository

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paintpro-backend/internal/domains/clients"
)

// Opt-in integration tests: set TEST_DATABASE_URL to a scratch database to run
// them. The src length CHECK exists only here, to force a child insert failure
// mid-transaction.
const testSchema = `
DROP TABLE IF EXISTS client_items;
DROP TABLE IF EXISTS client_sections;
CREATE TABLE client_sections (
    id         BIGSERIAL PRIMARY KEY,
    heading    TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE TABLE client_items (
    id            BIGSERIAL PRIMARY KEY,
    section_id    BIGINT NOT NULL REFERENCES client_sections(id),
    src           TEXT NOT NULL CHECK (char_length(src) <= 128),
    alt           TEXT NOT NULL,
    display_order INT NOT NULL
);`

func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	pool, err := pgxpool.New(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(context.Background(), testSchema)
	require.NoError(t, err)
	return pool
}

func TestSaveVersionRollsBackParentOnChildFailure(t *testing.T) {
	pool := testPool(t)
	repo := NewPostgresRepository(pool)
	ctx := context.Background()

	_, err := repo.SaveVersion(ctx, "Our Clients", []clients.ItemInput{
		{Src: "/a.png", Alt: "Client A"},
	})
	require.NoError(t, err)

	// Second child violates the length CHECK, so the whole version must
	// roll back, parent row included.
	_, err = repo.SaveVersion(ctx, "Broken Version", []clients.ItemInput{
		{Src: "/b.png", Alt: "Client B"},
		{Src: "/" + strings.Repeat("x", 200), Alt: "Client C"},
	})
	require.Error(t, err)

	section, err := repo.GetLatest(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Our Clients", section.Heading)
	require.Len(t, section.Clients, 1)
	assert.Equal(t, "Client A", section.Clients[0].Alt)

	var sections int
	require.NoError(t, pool.QueryRow(ctx, `SELECT COUNT(*) FROM client_sections`).Scan(&sections))
	assert.Equal(t, 1, sections)

	var orphans int
	require.NoError(t, pool.QueryRow(ctx, `SELECT COUNT(*) FROM client_items WHERE alt IN ('Client B', 'Client C')`).Scan(&orphans))
	assert.Zero(t, orphans)
}

func TestSaveVersionChildFailureOnFirstVersionLeavesNothing(t *testing.T) {
	pool := testPool(t)
	repo := NewPostgresRepository(pool)
	ctx := context.Background()

	_, err := repo.SaveVersion(ctx, "Broken Version", []clients.ItemInput{
		{Src: "/" + strings.Repeat("x", 200), Alt: "Client A"},
	})
	require.Error(t, err)

	_, err = repo.GetLatest(ctx)
	require.Error(t, err)

	var sections int
	require.NoError(t, pool.QueryRow(ctx, `SELECT COUNT(*) FROM client_sections`).Scan(&sections))
	assert.Zero(t, sections)
}
