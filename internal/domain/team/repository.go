package team

import "context"

type Repository interface {
	Save(ctx context.Context, t *Team) error
	FindByID(ctx context.Context, id uint) (*Team, error)
	FindByName(ctx context.Context, name string) (*Team, error)
	List(ctx context.Context) ([]*Team, error)
}
