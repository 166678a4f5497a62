package requesttype

import "context"

type Repository interface {
	Save(ctx context.Context, rt *RequestType) error
	FindByID(ctx context.Context, id uint) (*RequestType, error)
	FindByName(ctx context.Context, name string) (*RequestType, error)
	List(ctx context.Context) ([]*RequestType, error)
}
