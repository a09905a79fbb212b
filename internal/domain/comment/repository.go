package comment

import "context"

type Repository interface {
	Create(ctx context.Context, c *Comment) error
	GetByID(ctx context.Context, id uint) (*Comment, error)
	// GetByIDWithAuthor preloads the author for display-name resolution.
	GetByIDWithAuthor(ctx context.Context, id uint) (*Comment, error)
	Delete(ctx context.Context, id uint) error
}
