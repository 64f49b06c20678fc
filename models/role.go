package models

import "time"

const UserRoleTable = "lib_user_roles"

type Role string

const (
	RoleUser      Role = "USER"
	RoleLibrarian Role = "LIBRARIAN"
)

// UserRole 每个用户只写一次，之后不再改
type UserRole struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	UserID    int64     `gorm:"uniqueIndex;not null" json:"userId"`
	Role      Role      `gorm:"size:20;not null" json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func (UserRole) TableName() string { return UserRoleTable }
