package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"paintpro-backend/internal/domains/clients"
	"paintpro-backend/internal/shared/apperror"
	"paintpro-backend/pkg/database"
)

// Schema:
//
//	CREATE TABLE client_sections (
//	    id         BIGSERIAL PRIMARY KEY,
//	    heading    TEXT NOT NULL,
//	    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
//	);
//	CREATE TABLE client_items (
//	    id            BIGSERIAL PRIMARY KEY,
//	    section_id    BIGINT NOT NULL REFERENCES client_sections(id),
//	    src           TEXT NOT NULL,
//	    alt           TEXT NOT NULL,
//	    display_order INT NOT NULL
//	);
//
// Updates insert a new parent row plus child rows; superseded versions stay
// behind as append-only history.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) clients.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) GetLatest(ctx context.Context) (*clients.Section, error) {
	query := `
    SELECT id, heading, created_at
    FROM client_sections
    ORDER BY created_at DESC, id DESC
    LIMIT 1
  `

	var section clients.Section
	err := r.pool.QueryRow(ctx, query).Scan(&section.ID, &section.Heading, &section.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NotFound("no clients content found")
		}
		return nil, apperror.Persistence("failed to read clients section", err)
	}

	items, err := r.itemsFor(ctx, section.ID)
	if err != nil {
		return nil, err
	}
	section.Clients = items

	return &section, nil
}

func (r *postgresRepository) itemsFor(ctx context.Context, sectionID int64) ([]clients.Item, error) {
	query := `
    SELECT id, src, alt, display_order
    FROM client_items
    WHERE section_id = $1
    ORDER BY display_order ASC
  `

	rows, err := r.pool.Query(ctx, query, sectionID)
	if err != nil {
		return nil, apperror.Persistence("failed to list client items", err)
	}
	defer rows.Close()

	items := []clients.Item{}
	for rows.Next() {
		var item clients.Item
		if err := rows.Scan(&item.ID, &item.Src, &item.Alt, &item.DisplayOrder); err != nil {
			return nil, apperror.Persistence("failed to scan client item", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.Persistence("error iterating client items", err)
	}

	return items, nil
}

func (r *postgresRepository) SaveVersion(ctx context.Context, heading string, items []clients.ItemInput) (*clients.Section, error) {
	err := database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		var sectionID int64
		if err := tx.QueryRow(ctx,
			`INSERT INTO client_sections (heading) VALUES ($1) RETURNING id`,
			heading,
		).Scan(&sectionID); err != nil {
			return fmt.Errorf("failed to insert clients section: %w", err)
		}

		for i, item := range items {
			if _, err := tx.Exec(ctx,
				`INSERT INTO client_items (section_id, src, alt, display_order) VALUES ($1, $2, $3, $4)`,
				sectionID, item.Src, item.Alt, i,
			); err != nil {
				return fmt.Errorf("failed to insert client item %d: %w", i, err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, apperror.Persistence("failed to save clients section", err)
	}

	// Confirmation read: the caller gets exactly what a subsequent GET sees.
	return r.GetLatest(ctx)
}

func (r *postgresRepository) AddItem(ctx context.Context, item clients.ItemInput) (*clients.Section, error) {
	err := database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		var sectionID int64
		err := tx.QueryRow(ctx,
			`SELECT id FROM client_sections ORDER BY created_at DESC, id DESC LIMIT 1`,
		).Scan(&sectionID)
		if errors.Is(err, pgx.ErrNoRows) {
			if err := tx.QueryRow(ctx,
				`INSERT INTO client_sections (heading) VALUES ($1) RETURNING id`,
				clients.DefaultHeading,
			).Scan(&sectionID); err != nil {
				return fmt.Errorf("failed to create clients section: %w", err)
			}
		} else if err != nil {
			return fmt.Errorf("failed to find clients section: %w", err)
		}

		var count int
		if err := tx.QueryRow(ctx,
			`SELECT COUNT(*) FROM client_items WHERE section_id = $1`, sectionID,
		).Scan(&count); err != nil {
			return fmt.Errorf("failed to count client items: %w", err)
		}

		if _, err := tx.Exec(ctx,
			`INSERT INTO client_items (section_id, src, alt, display_order) VALUES ($1, $2, $3, $4)`,
			sectionID, item.Src, item.Alt, count,
		); err != nil {
			return fmt.Errorf("failed to insert client item: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, apperror.Persistence("failed to add client item", err)
	}

	return r.GetLatest(ctx)
}

func (r *postgresRepository) DeleteItem(ctx context.Context, id int64) error {
	notFound := false

	err := database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		var sectionID int64
		err := tx.QueryRow(ctx,
			`SELECT id FROM client_sections ORDER BY created_at DESC, id DESC LIMIT 1`,
		).Scan(&sectionID)
		if errors.Is(err, pgx.ErrNoRows) {
			notFound = true
			return nil
		} else if err != nil {
			return fmt.Errorf("failed to find clients section: %w", err)
		}

		result, err := tx.Exec(ctx,
			`DELETE FROM client_items WHERE section_id = $1 AND id = $2`, sectionID, id)
		if err != nil {
			return fmt.Errorf("failed to delete client item: %w", err)
		}
		if result.RowsAffected() == 0 {
			notFound = true
			return nil
		}

		// Renumber survivors so display_order stays contiguous from 0.
		rows, err := tx.Query(ctx,
			`SELECT id FROM client_items WHERE section_id = $1 ORDER BY display_order ASC`, sectionID)
		if err != nil {
			return fmt.Errorf("failed to list remaining items: %w", err)
		}
		var remaining []int64
		for rows.Next() {
			var itemID int64
			if err := rows.Scan(&itemID); err != nil {
				rows.Close()
				return fmt.Errorf("failed to scan remaining item: %w", err)
			}
			remaining = append(remaining, itemID)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return fmt.Errorf("error iterating remaining items: %w", err)
		}

		for i, itemID := range remaining {
			if _, err := tx.Exec(ctx,
				`UPDATE client_items SET display_order = $1 WHERE id = $2`, i, itemID); err != nil {
				return fmt.Errorf("failed to renumber item: %w", err)
			}
		}

		// Last item gone: the parent goes too.
		if len(remaining) == 0 {
			if _, err := tx.Exec(ctx,
				`DELETE FROM client_sections WHERE id = $1`, sectionID); err != nil {
				return fmt.Errorf("failed to delete empty clients section: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return apperror.Persistence("failed to delete client item", err)
	}
	if notFound {
		return apperror.NotFound(fmt.Sprintf("client item %d not found", id))
	}

	return nil
}

func (r *postgresRepository) Reorder(ctx context.Context, ids []int64) (*clients.Section, error) {
	err := database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		var sectionID int64
		err := tx.QueryRow(ctx,
			`SELECT id FROM client_sections ORDER BY created_at DESC, id DESC LIMIT 1`,
		).Scan(&sectionID)
		if errors.Is(err, pgx.ErrNoRows) {
			return apperror.NotFound("no clients content found")
		} else if err != nil {
			return fmt.Errorf("failed to find clients section: %w", err)
		}

		// Ids not present in the section are silently skipped; ids omitted
		// from the request keep their old display_order.
		for i, id := range ids {
			if _, err := tx.Exec(ctx,
				`UPDATE client_items SET display_order = $1 WHERE section_id = $2 AND id = $3`,
				i, sectionID, id,
			); err != nil {
				return fmt.Errorf("failed to reorder item %d: %w", id, err)
			}
		}

		return nil
	})
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, err
		}
		return nil, apperror.Persistence("failed to reorder client items", err)
	}

	return r.GetLatest(ctx)
}
