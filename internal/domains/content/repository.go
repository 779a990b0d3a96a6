package content

import (
	"context"
	"encoding/json"
)

// Repository persists simple section versions.
// Two implementations exist (Postgres tables, flat JSON files); callers cannot
// tell them apart. Selected by config at container build time.
type Repository interface {
	// GetLatest returns the current (most recently written) version of a
	// section, or apperror.NotFound when the section has never been written.
	GetLatest(ctx context.Context, key SectionKey) (*Record, error)

	// SaveVersion appends a new version and returns the freshly re-read
	// current record as confirmation. Prior versions are never touched.
	SaveVersion(ctx context.Context, key SectionKey, payload json.RawMessage) (*Record, error)
}
