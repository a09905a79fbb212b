package usermock

import (
	"context"

	"gorm.io/gorm"

	domain "wayfarer-backend/internal/domain/user"
)

// Repo is a function-backed mock satisfying user.Repository.
type Repo struct {
	GetByIDFn    func(ctx context.Context, id uint) (*domain.User, error)
	GetByEmailFn func(ctx context.Context, email string) (*domain.User, error)
}

func (m *Repo) GetByID(ctx context.Context, id uint) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return nil, gorm.ErrRecordNotFound
}
