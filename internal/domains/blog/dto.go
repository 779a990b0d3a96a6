package blog

import (
	"context"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Post is a published blog entry. PostDate is the human-facing date string
// shown on the site; CreatedAt orders versions in storage.
type Post struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	Excerpt   string    `json:"excerpt"`
	Content   string    `json:"content"`
	ImageURL  string    `json:"imageUrl"`
	PostDate  string    `json:"postDate"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreateRequest struct {
	Title    string `json:"title"`
	Category string `json:"category"`
	Excerpt  string `json:"excerpt"`
	Content  string `json:"content"`
	ImageURL string `json:"imageUrl"`
	PostDate string `json:"postDate"`
}

func (r CreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required.Error("title is required")),
		validation.Field(&r.Content, validation.Required.Error("content is required")),
	)
}

type UpdateRequest struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Excerpt  string `json:"excerpt"`
	Content  string `json:"content"`
	ImageURL string `json:"imageUrl"`
	PostDate string `json:"postDate"`
}

func (r UpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ID, validation.Required.Error("id is required")),
		validation.Field(&r.Title, validation.Required.Error("title is required")),
		validation.Field(&r.Content, validation.Required.Error("content is required")),
	)
}

type Repository interface {
	List(ctx context.Context) ([]Post, error)
	GetByID(ctx context.Context, id int64) (*Post, error)
	Create(ctx context.Context, post *Post) (*Post, error)
	Update(ctx context.Context, post *Post) (*Post, error)
	Delete(ctx context.Context, id int64) error
}

type Service interface {
	List(ctx context.Context) ([]Post, error)
	Get(ctx context.Context, id int64) (*Post, error)
	Create(ctx context.Context, req *CreateRequest) (*Post, error)
	Update(ctx context.Context, req *UpdateRequest) (*Post, error)
	Delete(ctx context.Context, id int64) error
}
