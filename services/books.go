package services

import (
	"context"
	"log"
	"time"

	"Gin_postgres_redis_library_api/models"

	"github.com/google/uuid"
)

// Config 借阅参数，外部注入，不在这里读环境变量
type Config struct {
	CheckoutPeriodDays int
	MaxCheckouts       int
}

// BookService owns every Book.status and BookCheckout.status transition.
// The stores underneath it are passive; all ordering and compensation logic
// lives here.
type BookService struct {
	users     UserStore
	books     BookStore
	checkouts CheckoutStore
	cfg       Config

	now func() time.Time // 测试时可替换
}

func NewBookService(users UserStore, books BookStore, checkouts CheckoutStore, cfg Config) *BookService {
	return &BookService{users: users, books: books, checkouts: checkouts, cfg: cfg, now: time.Now}
}

// Create registers a new book as AVAILABLE. ISBN shape is validated at the
// HTTP boundary, not here.
func (s *BookService) Create(ctx context.Context, b *models.Book) error {
	log.Printf("books: creating book with isbn %s", b.ISBN)
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	b.Status = models.BookAvailable
	return s.books.CreateBook(ctx, b)
}

func (s *BookService) FindAll(ctx context.Context) ([]models.Book, error) {
	return s.books.ListBooks(ctx)
}

func (s *BookService) FindOne(ctx context.Context, id string) (*models.Book, error) {
	return s.books.FindBookByID(ctx, id)
}

// Remove deletes a book. A loaned book cannot be deleted; the status is
// re-read right before the delete to narrow the window against a concurrent
// checkout.
func (s *BookService) Remove(ctx context.Context, id string) error {
	log.Printf("books: deleting book %s", id)
	book, err := s.books.FindBookByID(ctx, id)
	if err != nil {
		log.Printf("books: loading book %s: %v", id, err)
		return ErrUnknown
	}
	if book == nil {
		return ErrBookNotFound
	}
	if book.Status != models.BookAvailable {
		return ErrBookCheckedOut
	}
	if err := s.books.DeleteBook(ctx, id); err != nil {
		log.Printf("books: deleting book %s: %v", id, err)
		return ErrUnknown
	}
	return nil
}

func (s *BookService) ActiveCheckouts(ctx context.Context, userID int64) ([]models.CheckoutWithBook, error) {
	return s.checkouts.ListActiveCheckouts(ctx, userID)
}

func (s *BookService) OverdueCheckouts(ctx context.Context, userID int64) ([]models.CheckoutWithBook, error) {
	return s.checkouts.ListOverdueCheckouts(ctx, userID)
}

func filterOverdue(checkouts []models.CheckoutWithBook, now time.Time) []models.CheckoutWithBook {
	var overdue []models.CheckoutWithBook
	for _, c := range checkouts {
		if c.DueDate.Before(now) {
			overdue = append(overdue, c)
		}
	}
	return overdue
}

// Checkout finds an AVAILABLE copy of the isbn and loans it to the user.
// Checks run in strict order: user, overdue hold, checkout limit,
// availability. The ledger record is created before the book status flips to
// LOANED; if that status update fails the record is deleted again
// (compensation) and the caller gets ErrUnknown. The two writes are
// deliberately not a transaction.
func (s *BookService) Checkout(ctx context.Context, isbn string, userID int64) (*models.BookCheckout, error) {
	user, err := s.users.FindUserByUserID(ctx, userID)
	if err != nil {
		log.Printf("checkout: loading user %d: %v", userID, err)
		return nil, ErrUnknown
	}
	if user == nil {
		log.Printf("checkout: user %d not found", userID)
		return nil, ErrUserNotFound
	}

	active, err := s.checkouts.ListActiveCheckouts(ctx, userID)
	if err != nil {
		log.Printf("checkout: loading active checkouts for user %d: %v", userID, err)
		return nil, ErrUnknown
	}
	now := s.now()
	// 逾期先于数量上限：两个都踩的用户先被告知逾期
	if overdue := filterOverdue(active, now); len(overdue) > 0 {
		log.Printf("checkout: user %d has overdue books", userID)
		return nil, ErrOverdueBooks
	}
	if len(active) >= s.cfg.MaxCheckouts {
		log.Printf("checkout: user %d has too many checkouts", userID)
		return nil, ErrTooManyCheckouts
	}

	book, err := s.books.FindAvailableByISBN(ctx, isbn)
	if err != nil {
		log.Printf("checkout: finding available book %s: %v", isbn, err)
		return nil, ErrUnknown
	}
	if book == nil {
		// 不存在的 isbn 和全部借出的 isbn 故意给同一个答案
		log.Printf("checkout: book %s not available", isbn)
		return nil, ErrBookNotFound
	}

	checkout := &models.BookCheckout{
		ID:      uuid.NewString(),
		UserID:  userID,
		BookID:  book.ID,
		DueDate: now.AddDate(0, 0, s.cfg.CheckoutPeriodDays),
		Status:  models.CheckoutLoaned,
	}
	if err := s.checkouts.CreateCheckout(ctx, checkout); err != nil {
		log.Printf("checkout: creating checkout record: %v", err)
		return nil, ErrUnknown
	}
	if err := s.books.UpdateBookStatus(ctx, book.ID, models.BookLoaned); err != nil {
		log.Printf("checkout: updating book status: %v", err)
		if derr := s.checkouts.DeleteCheckout(ctx, checkout.ID); derr != nil {
			log.Printf("checkout: compensating delete of checkout %s: %v", checkout.ID, derr)
		}
		return nil, ErrUnknown
	}
	log.Printf("checkout: book %s checked out to user %d, due %s",
		book.ID, userID, checkout.DueDate.Format(time.RFC3339))
	return checkout, nil
}

// Return marks the user's open checkout for the book as returned and frees
// the book: ledger first here too, but optimistically. A failed book update
// reverts the checkout back to LOANED (second persist) before reporting
// ErrUnknown.
func (s *BookService) Return(ctx context.Context, bookID string, userID int64) (*models.BookCheckout, error) {
	checkout, err := s.checkouts.FindOpenCheckout(ctx, userID, bookID)
	if err != nil {
		log.Printf("return: loading checkout for book %s user %d: %v", bookID, userID, err)
		return nil, ErrUnknown
	}
	if checkout == nil {
		log.Printf("return: no checkout found for book %s and user %d", bookID, userID)
		return nil, ErrNoCheckoutFound
	}

	checkout.Status = models.CheckoutReturned
	if err := s.checkouts.SaveCheckout(ctx, checkout); err != nil {
		log.Printf("return: saving checkout %s: %v", checkout.ID, err)
		return nil, ErrUnknown
	}
	if err := s.books.UpdateBookStatus(ctx, bookID, models.BookAvailable); err != nil {
		log.Printf("return: updating book status: %v", err)
		checkout.Status = models.CheckoutLoaned
		if serr := s.checkouts.SaveCheckout(ctx, checkout); serr != nil {
			log.Printf("return: reverting checkout %s: %v", checkout.ID, serr)
		}
		return nil, ErrUnknown
	}
	log.Printf("return: book %s returned by user %d", bookID, userID)
	return checkout, nil
}
