package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"paintpro-backend/internal/domains/projects"
	"paintpro-backend/internal/shared/apperror"
	"paintpro-backend/pkg/database"
)

// Schema:
//
//	CREATE TABLE project_sections (
//	    id          BIGSERIAL PRIMARY KEY,
//	    heading     TEXT NOT NULL,
//	    description TEXT NOT NULL DEFAULT '',
//	    created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
//	);
//	CREATE TABLE project_items (
//	    id            BIGSERIAL PRIMARY KEY,
//	    section_id    BIGINT NOT NULL REFERENCES project_sections(id),
//	    title         TEXT NOT NULL,
//	    location      TEXT NOT NULL DEFAULT '',
//	    image_url     TEXT NOT NULL,
//	    display_order INT NOT NULL
//	);
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) projects.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) GetLatest(ctx context.Context) (*projects.Section, error) {
	query := `
    SELECT id, heading, description, created_at
    FROM project_sections
    ORDER BY created_at DESC, id DESC
    LIMIT 1
  `

	var section projects.Section
	err := r.pool.QueryRow(ctx, query).Scan(&section.ID, &section.Heading, &section.Description, &section.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NotFound("no projects content found")
		}
		return nil, apperror.Persistence("failed to read projects section", err)
	}

	items, err := r.itemsFor(ctx, section.ID)
	if err != nil {
		return nil, err
	}
	section.Projects = items

	return &section, nil
}

func (r *postgresRepository) itemsFor(ctx context.Context, sectionID int64) ([]projects.Item, error) {
	query := `
    SELECT id, title, location, image_url, display_order
    FROM project_items
    WHERE section_id = $1
    ORDER BY display_order ASC
  `

	rows, err := r.pool.Query(ctx, query, sectionID)
	if err != nil {
		return nil, apperror.Persistence("failed to list project items", err)
	}
	defer rows.Close()

	items := []projects.Item{}
	for rows.Next() {
		var item projects.Item
		if err := rows.Scan(&item.ID, &item.Title, &item.Location, &item.ImageURL, &item.DisplayOrder); err != nil {
			return nil, apperror.Persistence("failed to scan project item", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.Persistence("error iterating project items", err)
	}

	return items, nil
}

func (r *postgresRepository) SaveVersion(ctx context.Context, heading, description string, items []projects.ItemInput) (*projects.Section, error) {
	err := database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		var sectionID int64
		if err := tx.QueryRow(ctx,
			`INSERT INTO project_sections (heading, description) VALUES ($1, $2) RETURNING id`,
			heading, description,
		).Scan(&sectionID); err != nil {
			return fmt.Errorf("failed to insert projects section: %w", err)
		}

		for i, item := range items {
			if _, err := tx.Exec(ctx,
				`INSERT INTO project_items (section_id, title, location, image_url, display_order) VALUES ($1, $2, $3, $4, $5)`,
				sectionID, item.Title, item.Location, item.ImageURL, i,
			); err != nil {
				return fmt.Errorf("failed to insert project item %d: %w", i, err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, apperror.Persistence("failed to save projects section", err)
	}

	return r.GetLatest(ctx)
}

func (r *postgresRepository) AddItem(ctx context.Context, item projects.ItemInput) (*projects.Section, error) {
	err := database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		var sectionID int64
		err := tx.QueryRow(ctx,
			`SELECT id FROM project_sections ORDER BY created_at DESC, id DESC LIMIT 1`,
		).Scan(&sectionID)
		if errors.Is(err, pgx.ErrNoRows) {
			if err := tx.QueryRow(ctx,
				`INSERT INTO project_sections (heading) VALUES ($1) RETURNING id`,
				projects.DefaultHeading,
			).Scan(&sectionID); err != nil {
				return fmt.Errorf("failed to create projects section: %w", err)
			}
		} else if err != nil {
			return fmt.Errorf("failed to find projects section: %w", err)
		}

		var count int
		if err := tx.QueryRow(ctx,
			`SELECT COUNT(*) FROM project_items WHERE section_id = $1`, sectionID,
		).Scan(&count); err != nil {
			return fmt.Errorf("failed to count project items: %w", err)
		}

		if _, err := tx.Exec(ctx,
			`INSERT INTO project_items (section_id, title, location, image_url, display_order) VALUES ($1, $2, $3, $4, $5)`,
			sectionID, item.Title, item.Location, item.ImageURL, count,
		); err != nil {
			return fmt.Errorf("failed to insert project item: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, apperror.Persistence("failed to add project item", err)
	}

	return r.GetLatest(ctx)
}

func (r *postgresRepository) DeleteItem(ctx context.Context, id int64) error {
	notFound := false

	err := database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		var sectionID int64
		err := tx.QueryRow(ctx,
			`SELECT id FROM project_sections ORDER BY created_at DESC, id DESC LIMIT 1`,
		).Scan(&sectionID)
		if errors.Is(err, pgx.ErrNoRows) {
			notFound = true
			return nil
		} else if err != nil {
			return fmt.Errorf("failed to find projects section: %w", err)
		}

		result, err := tx.Exec(ctx,
			`DELETE FROM project_items WHERE section_id = $1 AND id = $2`, sectionID, id)
		if err != nil {
			return fmt.Errorf("failed to delete project item: %w", err)
		}
		if result.RowsAffected() == 0 {
			notFound = true
			return nil
		}

		rows, err := tx.Query(ctx,
			`SELECT id FROM project_items WHERE section_id = $1 ORDER BY display_order ASC`, sectionID)
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
				`UPDATE project_items SET display_order = $1 WHERE id = $2`, i, itemID); err != nil {
				return fmt.Errorf("failed to renumber item: %w", err)
			}
		}

		if len(remaining) == 0 {
			if _, err := tx.Exec(ctx,
				`DELETE FROM project_sections WHERE id = $1`, sectionID); err != nil {
				return fmt.Errorf("failed to delete empty projects section: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return apperror.Persistence("failed to delete project item", err)
	}
	if notFound {
		return apperror.NotFound(fmt.Sprintf("project item %d not found", id))
	}

	return nil
}

func (r *postgresRepository) Reorder(ctx context.Context, ids []int64) (*projects.Section, error) {
	err := database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		var sectionID int64
		err := tx.QueryRow(ctx,
			`SELECT id FROM project_sections ORDER BY created_at DESC, id DESC LIMIT 1`,
		).Scan(&sectionID)
		if errors.Is(err, pgx.ErrNoRows) {
			return apperror.NotFound("no projects content found")
		} else if err != nil {
			return fmt.Errorf("failed to find projects section: %w", err)
		}

		for i, id := range ids {
			if _, err := tx.Exec(ctx,
				`UPDATE project_items SET display_order = $1 WHERE section_id = $2 AND id = $3`,
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
		return nil, apperror.Persistence("failed to reorder project items", err)
	}

	return r.GetLatest(ctx)
}
