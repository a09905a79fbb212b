package user

import (
	"time"

	"gorm.io/gorm"
)

// Role values mirror the seeded roles table of the original schema.
const (
	RoleSuperAdmin    = "super_admin"
	RoleCompanyAdmin  = "company_admin"
	RoleSupplierAdmin = "supplier_admin"
	RoleManager       = "manager"
	RoleStaff         = "staff"
)

type User struct {
	ID            uint           `gorm:"primaryKey;column:id" json:"id"`
	FirstName     string         `gorm:"size:60" json:"firstName"`
	LastName      string         `gorm:"size:60" json:"lastName"`
	Email         string         `gorm:"size:120;uniqueIndex" json:"email"`
	Role          string         `gorm:"size:30;default:'staff'" json:"role"`
	Gender        string         `gorm:"size:10" json:"gender,omitempty"`
	LineManagerID *uint          `gorm:"column:line_manager_id" json:"lineManagerId,omitempty"`
	PassportNo    string         `gorm:"size:30" json:"passportNo,omitempty"`
	EmailNotify   bool           `gorm:"default:true" json:"emailNotify"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string { return "users" }

// FullName is the display name used in notification messages.
func (u *User) FullName() string { return u.FirstName + " " + u.LastName }

// ProfileComplete reports whether the user may act as a trip requester.
func (u *User) ProfileComplete() bool {
	return u.Gender != "" && u.LineManagerID != nil && u.PassportNo != ""
}
