package projects

import (
	"context"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Section is the current projects aggregate: heading, intro copy, and the
// ordered project gallery.
type Section struct {
	ID          int64     `json:"id"`
	Heading     string    `json:"heading"`
	Description string    `json:"description"`
	Projects    []Item    `json:"projects"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Item struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	Location     string `json:"location"`
	ImageURL     string `json:"imageUrl"`
	DisplayOrder int    `json:"displayOrder"`
}

type UpdateRequest struct {
	Heading     string      `json:"heading"`
	Description string      `json:"description"`
	Projects    []ItemInput `json:"projects"`
}

type ItemInput struct {
	Title    string `json:"title"`
	Location string `json:"location"`
	ImageURL string `json:"imageUrl"`
}

func (r UpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Heading, validation.Required.Error("heading is required")),
		validation.Field(&r.Projects),
	)
}

func (i ItemInput) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Title, validation.Required.Error("project title is required")),
		validation.Field(&i.ImageURL, validation.Required.Error("project imageUrl is required")),
	)
}

type ReorderRequest struct {
	ProjectIDs []int64 `json:"projectIds"`
}

func (r ReorderRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ProjectIDs, validation.Required.Error("projectIds is required")),
	)
}

type Repository interface {
	GetLatest(ctx context.Context) (*Section, error)
	SaveVersion(ctx context.Context, heading, description string, items []ItemInput) (*Section, error)
	AddItem(ctx context.Context, item ItemInput) (*Section, error)
	DeleteItem(ctx context.Context, id int64) error
	Reorder(ctx context.Context, ids []int64) (*Section, error)
}

type Service interface {
	Get(ctx context.Context) (*Section, error)
	Update(ctx context.Context, req *UpdateRequest) (*Section, error)
	Add(ctx context.Context, item *ItemInput) (*Section, error)
	Delete(ctx context.Context, id int64) error
	Reorder(ctx context.Context, req *ReorderRequest) (*Section, error)
}

const DefaultHeading = "Recent Projects"

func DefaultSection() *UpdateRequest {
	return &UpdateRequest{
		Heading:     DefaultHeading,
		Description: "A few of the homes and businesses we have transformed lately.",
		Projects: []ItemInput{
			{Title: "Craftsman Exterior Repaint", Location: "Irvington", ImageURL: "/static/media/projects/craftsman.jpg"},
			{Title: "Downtown Office Interior", Location: "Pearl District", ImageURL: "/static/media/projects/office.jpg"},
			{Title: "Lakefront Cabin Stain", Location: "Lake Oswego", ImageURL: "/static/media/projects/cabin.jpg"},
		},
	}
}
