package db

import (
	"Gin_postgres_redis_library_api/models"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// Checkouts（账本）

func (r *Repo) CreateCheckout(ctx context.Context, c *models.BookCheckout) error {
	return r.DB.WithContext(ctx).Create(c).Error
}

func (r *Repo) SaveCheckout(ctx context.Context, c *models.BookCheckout) error {
	return r.DB.WithContext(ctx).Save(c).Error
}

func (r *Repo) DeleteCheckout(ctx context.Context, id string) error {
	return r.DB.WithContext(ctx).Delete(&models.BookCheckout{ID: id}).Error
}

// FindOpenCheckout 找 (user, book) 当前未归还的那条；没有返回 (nil, nil)
func (r *Repo) FindOpenCheckout(ctx context.Context, userID int64, bookID string) (*models.BookCheckout, error) {
	var c models.BookCheckout
	err := r.DB.WithContext(ctx).
		First(&c, "user_id = ? AND book_id = ? AND status = ?", userID, bookID, models.CheckoutLoaned).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListActiveCheckouts returns the user's LOANED checkouts joined with their
// books. The join is an explicit two-step fetch: checkouts first, then the
// referenced books in one IN query.
func (r *Repo) ListActiveCheckouts(ctx context.Context, userID int64) ([]models.CheckoutWithBook, error) {
	var checkouts []models.BookCheckout
	err := r.DB.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, models.CheckoutLoaned).
		Order("created_at DESC").
		Find(&checkouts).Error
	if err != nil {
		return nil, err
	}
	return r.joinBooks(ctx, checkouts)
}

// ListOverdueCheckouts is ListActiveCheckouts with the dueDate filter pushed
// down to the store (strictly before now).
func (r *Repo) ListOverdueCheckouts(ctx context.Context, userID int64) ([]models.CheckoutWithBook, error) {
	var checkouts []models.BookCheckout
	err := r.DB.WithContext(ctx).
		Where("user_id = ? AND status = ? AND due_date < ?", userID, models.CheckoutLoaned, time.Now()).
		Order("due_date ASC").
		Find(&checkouts).Error
	if err != nil {
		return nil, err
	}
	return r.joinBooks(ctx, checkouts)
}

func (r *Repo) joinBooks(ctx context.Context, checkouts []models.BookCheckout) ([]models.CheckoutWithBook, error) {
	rows := make([]models.CheckoutWithBook, 0, len(checkouts))
	if len(checkouts) == 0 {
		return rows, nil
	}

	ids := make([]string, 0, len(checkouts))
	for _, c := range checkouts {
		ids = append(ids, c.BookID)
	}
	var books []models.Book
	if err := r.DB.WithContext(ctx).Where("id IN ?", ids).Find(&books).Error; err != nil {
		return nil, err
	}
	byID := make(map[string]*models.Book, len(books))
	for i := range books {
		byID[books[i].ID] = &books[i]
	}

	for _, c := range checkouts {
		rows = append(rows, models.CheckoutWithBook{BookCheckout: c, Book: byID[c.BookID]})
	}
	return rows, nil
}
