package mysql

import (
	"context"

	"gorm.io/gorm"

	commentDomain "wayfarer-backend/internal/domain/comment"
)

type CommentRepository struct{ db *gorm.DB }

func NewCommentRepository(db *gorm.DB) *CommentRepository { return &CommentRepository{db: db} }

func (r *CommentRepository) Create(ctx context.Context, c *commentDomain.Comment) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CommentRepository) GetByID(ctx context.Context, id uint) (*commentDomain.Comment, error) {
	var out commentDomain.Comment
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, res.Error
}

func (r *CommentRepository) GetByIDWithAuthor(ctx context.Context, id uint) (*commentDomain.Comment, error) {
	var out commentDomain.Comment
	res := r.db.WithContext(ctx).Preload("Author").First(&out, id)
	return &out, res.Error
}

func (r *CommentRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&commentDomain.Comment{}, id).Error
}
