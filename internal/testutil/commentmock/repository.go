package commentmock

import (
	"context"

	"gorm.io/gorm"

	domain "wayfarer-backend/internal/domain/comment"
)

// Repo is a function-backed mock satisfying comment.Repository.
type Repo struct {
	CreateFn            func(ctx context.Context, c *domain.Comment) error
	GetByIDFn           func(ctx context.Context, id uint) (*domain.Comment, error)
	GetByIDWithAuthorFn func(ctx context.Context, id uint) (*domain.Comment, error)
	DeleteFn            func(ctx context.Context, id uint) error
}

func (m *Repo) Create(ctx context.Context, c *domain.Comment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint) (*domain.Comment, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) GetByIDWithAuthor(ctx context.Context, id uint) (*domain.Comment, error) {
	if m.GetByIDWithAuthorFn != nil {
		return m.GetByIDWithAuthorFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) Delete(ctx context.Context, id uint) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}
