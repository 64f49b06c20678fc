package services

import (
	"context"
	"time"

	"Gin_postgres_redis_library_api/models"
)

// 内存假件：行为贴着 db.Repo 的约定（find 不存在 → (nil, nil)）

type fakeUsers struct{ users map[int64]*models.User }

func (f *fakeUsers) FindUserByUserID(_ context.Context, id int64) (*models.User, error) {
	return f.users[id], nil
}

type fakeRoleStore struct {
	roles     map[int64]*models.UserRole
	createErr error
	findCalls int
}

func (f *fakeRoleStore) FindUserRole(_ context.Context, userID int64) (*models.UserRole, error) {
	f.findCalls++
	return f.roles[userID], nil
}

func (f *fakeRoleStore) CreateUserRole(_ context.Context, ur *models.UserRole) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.roles[ur.UserID] = ur
	return nil
}

type fakeRoleCache struct{ entries map[int64]models.Role }

func (f *fakeRoleCache) Get(_ context.Context, userID int64) (models.Role, bool) {
	role, ok := f.entries[userID]
	return role, ok
}

func (f *fakeRoleCache) Set(_ context.Context, userID int64, role models.Role) {
	f.entries[userID] = role
}

type fakeBooks struct {
	books     map[string]*models.Book
	updateErr error
	deleteErr error
	// stale, when set, is always returned by FindAvailableByISBN — simulates
	// two requests reading the catalog before either has written it.
	stale *models.Book
}

func (f *fakeBooks) CreateBook(_ context.Context, b *models.Book) error {
	cp := *b
	f.books[b.ID] = &cp
	return nil
}

func (f *fakeBooks) ListBooks(_ context.Context) ([]models.Book, error) {
	out := make([]models.Book, 0, len(f.books))
	for _, b := range f.books {
		out = append(out, *b)
	}
	return out, nil
}

func (f *fakeBooks) FindBookByID(_ context.Context, id string) (*models.Book, error) {
	b, ok := f.books[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (f *fakeBooks) FindAvailableByISBN(_ context.Context, isbn string) (*models.Book, error) {
	if f.stale != nil {
		cp := *f.stale
		return &cp, nil
	}
	for _, b := range f.books {
		if b.ISBN == isbn && b.Status == models.BookAvailable {
			cp := *b
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeBooks) UpdateBookStatus(_ context.Context, id string, status models.BookStatus) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if b, ok := f.books[id]; ok {
		b.Status = status
	}
	return nil
}

func (f *fakeBooks) DeleteBook(_ context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.books, id)
	return nil
}

type fakeCheckouts struct {
	records   map[string]*models.BookCheckout
	books     *fakeBooks
	createErr error
	saveErr   error
	saveCalls int
}

func (f *fakeCheckouts) CreateCheckout(_ context.Context, c *models.BookCheckout) error {
	if f.createErr != nil {
		return f.createErr
	}
	cp := *c
	f.records[c.ID] = &cp
	return nil
}

func (f *fakeCheckouts) SaveCheckout(_ context.Context, c *models.BookCheckout) error {
	f.saveCalls++
	if f.saveErr != nil {
		return f.saveErr
	}
	cp := *c
	f.records[c.ID] = &cp
	return nil
}

func (f *fakeCheckouts) DeleteCheckout(_ context.Context, id string) error {
	delete(f.records, id)
	return nil
}

func (f *fakeCheckouts) FindOpenCheckout(_ context.Context, userID int64, bookID string) (*models.BookCheckout, error) {
	for _, c := range f.records {
		if c.UserID == userID && c.BookID == bookID && c.Status == models.CheckoutLoaned {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeCheckouts) ListActiveCheckouts(_ context.Context, userID int64) ([]models.CheckoutWithBook, error) {
	rows := make([]models.CheckoutWithBook, 0)
	for _, c := range f.records {
		if c.UserID != userID || c.Status != models.CheckoutLoaned {
			continue
		}
		row := models.CheckoutWithBook{BookCheckout: *c}
		if f.books != nil {
			if b, ok := f.books.books[c.BookID]; ok {
				cp := *b
				row.Book = &cp
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (f *fakeCheckouts) ListOverdueCheckouts(ctx context.Context, userID int64) ([]models.CheckoutWithBook, error) {
	active, _ := f.ListActiveCheckouts(ctx, userID)
	rows := make([]models.CheckoutWithBook, 0)
	for _, c := range active {
		if c.DueDate.Before(time.Now()) {
			rows = append(rows, c)
		}
	}
	return rows, nil
}

func (f *fakeCheckouts) loaned() []*models.BookCheckout {
	var out []*models.BookCheckout
	for _, c := range f.records {
		if c.Status == models.CheckoutLoaned {
			out = append(out, c)
		}
	}
	return out
}
