package video

import (
	"context"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type Video struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	VideoDate string    `json:"videoDate"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreateRequest struct {
	Name      string `json:"name"`
	VideoDate string `json:"videoDate"`
	URL       string `json:"url"`
}

func (r CreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required.Error("name is required")),
		validation.Field(&r.URL, validation.Required.Error("url is required")),
	)
}

type Repository interface {
	List(ctx context.Context) ([]Video, error)
	GetByID(ctx context.Context, id int64) (*Video, error)
	Create(ctx context.Context, v *Video) (*Video, error)
	Delete(ctx context.Context, id int64) error
}

type Service interface {
	List(ctx context.Context) ([]Video, error)
	Get(ctx context.Context, id int64) (*Video, error)
	Create(ctx context.Context, req *CreateRequest) (*Video, error)
	Delete(ctx context.Context, id int64) error
}
