package services

import (
	"context"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Section is the current services aggregate: heading, subheading, and the
// ordered list of offered services.
type Section struct {
	ID         int64     `json:"id"`
	Heading    string    `json:"heading"`
	Subheading string    `json:"subheading"`
	Services   []Item    `json:"services"`
	CreatedAt  time.Time `json:"createdAt"`
}

type Item struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	ImageURL     string `json:"imageUrl"`
	DisplayOrder int    `json:"displayOrder"`
}

type UpdateRequest struct {
	Heading    string      `json:"heading"`
	Subheading string      `json:"subheading"`
	Services   []ItemInput `json:"services"`
}

type ItemInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

func (r UpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Heading, validation.Required.Error("heading is required")),
		validation.Field(&r.Services),
	)
}

func (i ItemInput) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Title, validation.Required.Error("service title is required")),
		validation.Field(&i.Description, validation.Required.Error("service description is required")),
	)
}

type ReorderRequest struct {
	ServiceIDs []int64 `json:"serviceIds"`
}

func (r ReorderRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ServiceIDs, validation.Required.Error("serviceIds is required")),
	)
}

type Repository interface {
	GetLatest(ctx context.Context) (*Section, error)
	SaveVersion(ctx context.Context, heading, subheading string, items []ItemInput) (*Section, error)
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

const DefaultHeading = "What We Do"

func DefaultSection() *UpdateRequest {
	return &UpdateRequest{
		Heading:    DefaultHeading,
		Subheading: "Full-service painting for every surface, inside and out.",
		Services: []ItemInput{
			{Title: "Interior Painting", Description: "Walls, ceilings, trim, and cabinets with dust-free prep.", ImageURL: "/static/media/services/interior.jpg"},
			{Title: "Exterior Painting", Description: "Pressure washing, scraping, priming, and two finish coats.", ImageURL: "/static/media/services/exterior.jpg"},
			{Title: "Commercial", Description: "Offices, retail, and multi-family, scheduled around your business.", ImageURL: "/static/media/services/commercial.jpg"},
			{Title: "Deck & Fence Staining", Description: "Stain and seal to protect wood through every season.", ImageURL: "/static/media/services/deck.jpg"},
		},
	}
}
