package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"paintpro-backend/internal/domains/services"
	"paintpro-backend/internal/shared/apperror"
	"paintpro-backend/pkg/database"
)

// Schema:
//
//	CREATE TABLE service_sections (
//	    id         BIGSERIAL PRIMARY KEY,
//	    heading    TEXT NOT NULL,
//	    subheading TEXT NOT NULL DEFAULT '',
//	    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
//	);
//	CREATE TABLE service_items (
//	    id            BIGSERIAL PRIMARY KEY,
//	    section_id    BIGINT NOT NULL REFERENCES service_sections(id),
//	    title         TEXT NOT NULL,
//	    description   TEXT NOT NULL,
//	    image_url     TEXT NOT NULL DEFAULT '',
//	    display_order INT NOT NULL
//	);
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) services.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) GetLatest(ctx context.Context) (*services.Section, error) {
	query := `
    SELECT id, heading, subheading, created_at
    FROM service_sections
    ORDER BY created_at DESC, id DESC
    LIMIT 1
  `

	var section services.Section
	err := r.pool.QueryRow(ctx, query).Scan(&section.ID, &section.Heading, &section.Subheading, &section.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NotFound("no services content found")
		}
		return nil, apperror.Persistence("failed to read services section", err)
	}

	items, err := r.itemsFor(ctx, section.ID)
	if err != nil {
		return nil, err
	}
	section.Services = items

	return &section, nil
}

func (r *postgresRepository) itemsFor(ctx context.Context, sectionID int64) ([]services.Item, error) {
	query := `
    SELECT id, title, description, image_url, display_order
    FROM service_items
    WHERE section_id = $1
    ORDER BY display_order ASC
  `

	rows, err := r.pool.Query(ctx, query, sectionID)
	if err != nil {
		return nil, apperror.Persistence("failed to list service items", err)
	}
	defer rows.Close()

	items := []services.Item{}
	for rows.Next() {
		var item services.Item
		if err := rows.Scan(&item.ID, &item.Title, &item.Description, &item.ImageURL, &item.DisplayOrder); err != nil {
			return nil, apperror.Persistence("failed to scan service item", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.Persistence("error iterating service items", err)
	}

	return items, nil
}

func (r *postgresRepository) SaveVersion(ctx context.Context, heading, subheading string, items []services.ItemInput) (*services.Section, error) {
	err := database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		var sectionID int64
		if err := tx.QueryRow(ctx,
			`INSERT INTO service_sections (heading, subheading) VALUES ($1, $2) RETURNING id`,
			heading, subheading,
		).Scan(&sectionID); err != nil {
			return fmt.Errorf("failed to insert services section: %w", err)
		}

		for i, item := range items {
			if _, err := tx.Exec(ctx,
				`INSERT INTO service_items (section_id, title, description, image_url, display_order) VALUES ($1, $2, $3, $4, $5)`,
				sectionID, item.Title, item.Description, item.ImageURL, i,
			); err != nil {
				return fmt.Errorf("failed to insert service item %d: %w", i, err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, apperror.Persistence("failed to save services section", err)
	}

	return r.GetLatest(ctx)
}

func (r *postgresRepository) AddItem(ctx context.Context, item services.ItemInput) (*services.Section, error) {
	err := database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		var sectionID int64
		err := tx.QueryRow(ctx,
			`SELECT id FROM service_sections ORDER BY created_at DESC, id DESC LIMIT 1`,
		).Scan(&sectionID)
		if errors.Is(err, pgx.ErrNoRows) {
			if err := tx.QueryRow(ctx,
				`INSERT INTO service_sections (heading) VALUES ($1) RETURNING id`,
				services.DefaultHeading,
			).Scan(&sectionID); err != nil {
				return fmt.Errorf("failed to create services section: %w", err)
			}
		} else if err != nil {
			return fmt.Errorf("failed to find services section: %w", err)
		}

		var count int
		if err := tx.QueryRow(ctx,
			`SELECT COUNT(*) FROM service_items WHERE section_id = $1`, sectionID,
		).Scan(&count); err != nil {
			return fmt.Errorf("failed to count service items: %w", err)
		}

		if _, err := tx.Exec(ctx,
			`INSERT INTO service_items (section_id, title, description, image_url, display_order) VALUES ($1, $2, $3, $4, $5)`,
			sectionID, item.Title, item.Description, item.ImageURL, count,
		); err != nil {
			return fmt.Errorf("failed to insert service item: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, apperror.Persistence("failed to add service item", err)
	}

	return r.GetLatest(ctx)
}

func (r *postgresRepository) DeleteItem(ctx context.Context, id int64) error {
	notFound := false

	err := database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		var sectionID int64
		err := tx.QueryRow(ctx,
			`SELECT id FROM service_sections ORDER BY created_at DESC, id DESC LIMIT 1`,
		).Scan(&sectionID)
		if errors.Is(err, pgx.ErrNoRows) {
			notFound = true
			return nil
		} else if err != nil {
			return fmt.Errorf("failed to find services section: %w", err)
		}

		result, err := tx.Exec(ctx,
			`DELETE FROM service_items WHERE section_id = $1 AND id = $2`, sectionID, id)
		if err != nil {
			return fmt.Errorf("failed to delete service item: %w", err)
		}
		if result.RowsAffected() == 0 {
			notFound = true
			return nil
		}

		rows, err := tx.Query(ctx,
			`SELECT id FROM service_items WHERE section_id = $1 ORDER BY display_order ASC`, sectionID)
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
				`UPDATE service_items SET display_order = $1 WHERE id = $2`, i, itemID); err != nil {
				return fmt.Errorf("failed to renumber item: %w", err)
			}
		}

		if len(remaining) == 0 {
			if _, err := tx.Exec(ctx,
				`DELETE FROM service_sections WHERE id = $1`, sectionID); err != nil {
				return fmt.Errorf("failed to delete empty services section: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return apperror.Persistence("failed to delete service item", err)
	}
	if notFound {
		return apperror.NotFound(fmt.Sprintf("service item %d not found", id))
	}

	return nil
}

func (r *postgresRepository) Reorder(ctx context.Context, ids []int64) (*services.Section, error) {
	err := database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		var sectionID int64
		err := tx.QueryRow(ctx,
			`SELECT id FROM service_sections ORDER BY created_at DESC, id DESC LIMIT 1`,
		).Scan(&sectionID)
		if errors.Is(err, pgx.ErrNoRows) {
			return apperror.NotFound("no services content found")
		} else if err != nil {
			return fmt.Errorf("failed to find services section: %w", err)
		}

		for i, id := range ids {
			if _, err := tx.Exec(ctx,
				`UPDATE service_items SET display_order = $1 WHERE section_id = $2 AND id = $3`,
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
		return nil, apperror.Persistence("failed to reorder service items", err)
	}

	return r.GetLatest(ctx)
}
