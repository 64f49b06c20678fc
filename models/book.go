package models

import "time"

const (
	BookTable     = "lib_books"
	CheckoutTable = "lib_checkouts"
)

type BookStatus string

const (
	BookAvailable BookStatus = "AVAILABLE"
	BookLoaned    BookStatus = "LOANED"
)

type CheckoutStatus string

const (
	CheckoutLoaned   CheckoutStatus = "LOANED"
	CheckoutReturned CheckoutStatus = "RETURNED"
)

type Book struct {
	ID          string     `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	Author      string     `gorm:"size:255;not null" json:"author"`
	ISBN        string     `gorm:"size:13;uniqueIndex;not null" json:"isbn"`
	Genre       string     `gorm:"size:100" json:"genre,omitempty"`
	PublishDate *time.Time `json:"publishDate,omitempty"`
	Status      BookStatus `gorm:"size:20;not null;default:'AVAILABLE'" json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// BookCheckout 的 status 和 Book 的 status 只有借还引擎会写；
// 单本不重复借出靠 Book.status 把关，账本上没有唯一约束
type BookCheckout struct {
	ID        string         `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    int64          `gorm:"index:idx_lib_checkouts_user_status;not null" json:"userId"`
	BookID    string         `gorm:"type:uuid;index:idx_lib_checkouts_book_status;not null" json:"bookId"`
	DueDate   time.Time      `gorm:"not null" json:"dueDate"`
	Status    CheckoutStatus `gorm:"size:20;not null;index:idx_lib_checkouts_user_status;index:idx_lib_checkouts_book_status" json:"status"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// CheckoutWithBook is the materialized checkout->book join returned by the
// ledger queries.
type CheckoutWithBook struct {
	BookCheckout
	Book *Book `json:"book,omitempty"`
}

func (Book) TableName() string         { return BookTable }
func (BookCheckout) TableName() string { return CheckoutTable }
