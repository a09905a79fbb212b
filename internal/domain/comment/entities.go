package comment

import (
	"time"

	"gorm.io/gorm"

	"wayfarer-backend/internal/domain/user"
)

type Comment struct {
	ID        uint           `gorm:"primaryKey;column:id" json:"id"`
	RequestID uint           `gorm:"column:request_id;index;not null" json:"requestId"`
	UserID    uint           `gorm:"column:user_id;index;not null" json:"userId"`
	Body      string         `gorm:"type:text;not null" json:"comment"`
	Author    *user.User     `gorm:"foreignKey:UserID" json:"-"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Comment) TableName() string { return "comments" }
