package models

import "time"

const UserTable = "lib_users"

// User 由 seed/管理员创建，核心流程只读
// UserID 是对外的数字 id，也是请求头里带的那个
type User struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	UserID    int64     `gorm:"uniqueIndex;not null" json:"userId"`
	FirstName string    `gorm:"size:255;not null" json:"firstName"`
	LastName  string    `gorm:"size:255;not null" json:"lastName"`
	Email     string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (User) TableName() string { return UserTable }
