package content

import (
	"context"
)

// Service is the per-section read/update contract used by handlers and the
// public pages.
type Service interface {
	// Get returns the current content of a section.
	Get(ctx context.Context, key SectionKey) (*Record, error)

	// Update validates the raw payload against the section's schema, appends
	// a new version, and returns the freshly read record. Validation runs
	// before any write.
	Update(ctx context.Context, key SectionKey, payload []byte) (*Record, error)
}
