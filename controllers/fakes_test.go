package controllers

import (
	"context"
	"time"

	"Gin_postgres_redis_library_api/models"
)

// 控制器测试自己的内存假件，约定与 db.Repo 一致

type memUsers struct{ users map[int64]*models.User }

func (m *memUsers) FindUserByUserID(_ context.Context, id int64) (*models.User, error) {
	return m.users[id], nil
}

type memRoles struct{ roles map[int64]*models.UserRole }

func (m *memRoles) FindUserRole(_ context.Context, userID int64) (*models.UserRole, error) {
	return m.roles[userID], nil
}

func (m *memRoles) CreateUserRole(_ context.Context, ur *models.UserRole) error {
	m.roles[ur.UserID] = ur
	return nil
}

type memBooks struct {
	books     map[string]*models.Book
	updateErr error
}

func (m *memBooks) CreateBook(_ context.Context, b *models.Book) error {
	cp := *b
	m.books[b.ID] = &cp
	return nil
}

func (m *memBooks) ListBooks(_ context.Context) ([]models.Book, error) {
	out := make([]models.Book, 0, len(m.books))
	for _, b := range m.books {
		out = append(out, *b)
	}
	return out, nil
}

func (m *memBooks) FindBookByID(_ context.Context, id string) (*models.Book, error) {
	b, ok := m.books[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (m *memBooks) FindAvailableByISBN(_ context.Context, isbn string) (*models.Book, error) {
	for _, b := range m.books {
		if b.ISBN == isbn && b.Status == models.BookAvailable {
			cp := *b
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memBooks) UpdateBookStatus(_ context.Context, id string, status models.BookStatus) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	if b, ok := m.books[id]; ok {
		b.Status = status
	}
	return nil
}

func (m *memBooks) DeleteBook(_ context.Context, id string) error {
	delete(m.books, id)
	return nil
}

type memCheckouts struct {
	records map[string]*models.BookCheckout
	books   *memBooks
}

func (m *memCheckouts) CreateCheckout(_ context.Context, c *models.BookCheckout) error {
	cp := *c
	m.records[c.ID] = &cp
	return nil
}

func (m *memCheckouts) SaveCheckout(_ context.Context, c *models.BookCheckout) error {
	cp := *c
	m.records[c.ID] = &cp
	return nil
}

func (m *memCheckouts) DeleteCheckout(_ context.Context, id string) error {
	delete(m.records, id)
	return nil
}

func (m *memCheckouts) FindOpenCheckout(_ context.Context, userID int64, bookID string) (*models.BookCheckout, error) {
	for _, c := range m.records {
		if c.UserID == userID && c.BookID == bookID && c.Status == models.CheckoutLoaned {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memCheckouts) ListActiveCheckouts(_ context.Context, userID int64) ([]models.CheckoutWithBook, error) {
	rows := make([]models.CheckoutWithBook, 0)
	for _, c := range m.records {
		if c.UserID != userID || c.Status != models.CheckoutLoaned {
			continue
		}
		row := models.CheckoutWithBook{BookCheckout: *c}
		if b, ok := m.books.books[c.BookID]; ok {
			cp := *b
			row.Book = &cp
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (m *memCheckouts) ListOverdueCheckouts(ctx context.Context, userID int64) ([]models.CheckoutWithBook, error) {
	active, _ := m.ListActiveCheckouts(ctx, userID)
	rows := make([]models.CheckoutWithBook, 0)
	for _, c := range active {
		if c.DueDate.Before(time.Now()) {
			rows = append(rows, c)
		}
	}
	return rows, nil
}
