package db

import (
	"Gin_postgres_redis_library_api/models"
	"context"
	"errors"

	"gorm.io/gorm"
)

// Roles

// FindUserRole 不存在返回 (nil, nil)：没有角色是正常状态
func (r *Repo) FindUserRole(ctx context.Context, userID int64) (*models.UserRole, error) {
	var ur models.UserRole
	err := r.DB.WithContext(ctx).First(&ur, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ur, nil
}

// CreateUserRole relies on the unique index on user_id to catch the
// duplicate-key race; the raw error is returned to the caller.
func (r *Repo) CreateUserRole(ctx context.Context, ur *models.UserRole) error {
	return r.DB.WithContext(ctx).Create(ur).Error
}
