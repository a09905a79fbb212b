package mysql

import (
	"context"

	"gorm.io/gorm"

	userDomain "wayfarer-backend/internal/domain/user"
)

type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

func (r *UserRepository) GetByID(ctx context.Context, id uint) (*userDomain.User, error) {
	var out userDomain.User
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, res.Error
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*userDomain.User, error) {
	var out userDomain.User
	res := r.db.WithContext(ctx).Where("email = ?", email).First(&out)
	return &out, res.Error
}
