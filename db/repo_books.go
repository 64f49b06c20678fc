package db

import (
	"Gin_postgres_redis_library_api/models"
	"context"
	"errors"

	"gorm.io/gorm"
)

// Books

func (r *Repo) CreateBook(ctx context.Context, b *models.Book) error {
	return r.DB.WithContext(ctx).Create(b).Error
}

func (r *Repo) ListBooks(ctx context.Context) ([]models.Book, error) {
	var books []models.Book
	err := r.DB.WithContext(ctx).Order("created_at DESC").Find(&books).Error
	return books, err
}

func (r *Repo) FindBookByID(ctx context.Context, id string) (*models.Book, error) {
	var b models.Book
	err := r.DB.WithContext(ctx).First(&b, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// FindAvailableByISBN returns the first AVAILABLE copy for the isbn, or
// (nil, nil) when there is none — whether the isbn is unknown or all loaned.
func (r *Repo) FindAvailableByISBN(ctx context.Context, isbn string) (*models.Book, error) {
	var b models.Book
	err := r.DB.WithContext(ctx).
		First(&b, "isbn = ? AND status = ?", isbn, models.BookAvailable).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *Repo) UpdateBookStatus(ctx context.Context, id string, status models.BookStatus) error {
	return r.DB.WithContext(ctx).Model(&models.Book{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *Repo) DeleteBook(ctx context.Context, id string) error {
	return r.DB.WithContext(ctx).Delete(&models.Book{ID: id}).Error
}
