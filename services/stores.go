package services

import (
	"context"

	"Gin_postgres_redis_library_api/models"
)

// 窄接口：db.Repo 全部满足；测试用内存假件
// find 类方法的约定：不存在返回 (nil, nil)，error 只表示存储故障

type UserStore interface {
	FindUserByUserID(ctx context.Context, userID int64) (*models.User, error)
}

type RoleStore interface {
	FindUserRole(ctx context.Context, userID int64) (*models.UserRole, error)
	CreateUserRole(ctx context.Context, ur *models.UserRole) error
}

type BookStore interface {
	CreateBook(ctx context.Context, b *models.Book) error
	ListBooks(ctx context.Context) ([]models.Book, error)
	FindBookByID(ctx context.Context, id string) (*models.Book, error)
	FindAvailableByISBN(ctx context.Context, isbn string) (*models.Book, error)
	UpdateBookStatus(ctx context.Context, id string, status models.BookStatus) error
	DeleteBook(ctx context.Context, id string) error
}

type CheckoutStore interface {
	CreateCheckout(ctx context.Context, c *models.BookCheckout) error
	SaveCheckout(ctx context.Context, c *models.BookCheckout) error
	DeleteCheckout(ctx context.Context, id string) error
	FindOpenCheckout(ctx context.Context, userID int64, bookID string) (*models.BookCheckout, error)
	ListActiveCheckouts(ctx context.Context, userID int64) ([]models.CheckoutWithBook, error)
	ListOverdueCheckouts(ctx context.Context, userID int64) ([]models.CheckoutWithBook, error)
}

// RoleCache is optional; a nil cache just means every lookup hits the store.
type RoleCache interface {
	Get(ctx context.Context, userID int64) (models.Role, bool)
	Set(ctx context.Context, userID int64, role models.Role)
}
