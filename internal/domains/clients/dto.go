package clients

import (
	"context"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Section is the current clients aggregate: a heading plus the ordered logo
// strip. Items carry an explicit displayOrder, contiguous from 0.
type Section struct {
	ID        int64     `json:"id"`
	Heading   string    `json:"heading"`
	Clients   []Item    `json:"clients"`
	CreatedAt time.Time `json:"createdAt"`
}

type Item struct {
	ID           int64  `json:"id"`
	Src          string `json:"src"`
	Alt          string `json:"alt"`
	DisplayOrder int    `json:"displayOrder"`
}

// UpdateRequest replaces the whole section (PUT /api/clients).
type UpdateRequest struct {
	Heading string      `json:"heading"`
	Clients []ItemInput `json:"clients"`
}

type ItemInput struct {
	Src string `json:"src"`
	Alt string `json:"alt"`
}

func (r UpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Heading, validation.Required.Error("heading is required")),
		validation.Field(&r.Clients),
	)
}

func (i ItemInput) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Src, validation.Required.Error("client src is required")),
		validation.Field(&i.Alt, validation.Required.Error("client alt is required")),
	)
}

// ReorderRequest overwrites displayOrder for every listed id, in array order
// (PATCH /api/clients). Unknown ids are silent no-ops; omitted ids keep their
// old order. Current behavior, not a guarantee.
type ReorderRequest struct {
	ClientIDs []int64 `json:"clientIds"`
}

func (r ReorderRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ClientIDs, validation.Required.Error("clientIds is required")),
	)
}

// Repository persists client section versions. Postgres and file-backed
// implementations share this contract.
type Repository interface {
	// GetLatest returns the current section with items ordered by
	// displayOrder, or apperror.NotFound when none exists.
	GetLatest(ctx context.Context) (*Section, error)

	// SaveVersion appends a new section version with one child row per input
	// item, displayOrder equal to the array index, then re-reads it.
	// All-or-nothing: a failed child insert rolls back the parent.
	SaveVersion(ctx context.Context, heading string, items []ItemInput) (*Section, error)

	// AddItem appends one item to the current version, creating the section
	// with the default heading when none exists.
	AddItem(ctx context.Context, item ItemInput) (*Section, error)

	// DeleteItem removes one item and renumbers the survivors to a contiguous
	// 0..N-2 in their original relative order. Deleting the last item deletes
	// the parent section. apperror.NotFound for unknown ids.
	DeleteItem(ctx context.Context, id int64) error

	// Reorder sets displayOrder by position for every id in ids.
	Reorder(ctx context.Context, ids []int64) (*Section, error)
}

// Service is the clients content contract used by handlers and public pages.
type Service interface {
	Get(ctx context.Context) (*Section, error)
	Update(ctx context.Context, req *UpdateRequest) (*Section, error)
	Add(ctx context.Context, item *ItemInput) (*Section, error)
	Delete(ctx context.Context, id int64) error
	Reorder(ctx context.Context, req *ReorderRequest) (*Section, error)
}

// DefaultHeading is used when an item is added before the section exists.
const DefaultHeading = "Our Clients"

// DefaultSection is the built-in content used by the seed command and public
// pages when nothing has been written yet.
func DefaultSection() *UpdateRequest {
	return &UpdateRequest{
		Heading: DefaultHeading,
		Clients: []ItemInput{
			{Src: "/static/media/clients/harborview.png", Alt: "Harborview Property Group"},
			{Src: "/static/media/clients/cascade.png", Alt: "Cascade Builders"},
			{Src: "/static/media/clients/rosecity.png", Alt: "Rose City Realty"},
		},
	}
}
