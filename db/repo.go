package db

import (
	"Gin_postgres_redis_library_api/models"
	"context"
	"errors"

	"gorm.io/gorm"
)

// Repo 是被动存储：查、建、改、删，不带业务规则
type Repo struct{ DB *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{DB: db} }

// Users（只读目录，seed 之外不写）

// FindUserByUserID looks a user up by the external numeric id. A missing
// user is (nil, nil), not an error.
func (r *Repo) FindUserByUserID(ctx context.Context, userID int64) (*models.User, error) {
	var u models.User
	err := r.DB.WithContext(ctx).First(&u, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// CreateUser is only exercised by the seed tool.
func (r *Repo) CreateUser(ctx context.Context, u *models.User) error {
	return r.DB.WithContext(ctx).Create(u).Error
}
