// controllers/books_controller.go
package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"Gin_postgres_redis_library_api/app"
	"Gin_postgres_redis_library_api/metrics"
	"Gin_postgres_redis_library_api/models"
	"Gin_postgres_redis_library_api/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookController struct{ *Srv }

func NewBookController(s *Srv) *BookController { return &BookController{Srv: s} }

// validBookID reports whether id has the shape of our uuid keys.
func validBookID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

type createBookReq struct {
	Title       string     `json:"title" binding:"required"`
	Author      string     `json:"author" binding:"required"`
	ISBN        string     `json:"isbn" binding:"required,min=10,max=13"`
	Genre       string     `json:"genre"`
	PublishDate *time.Time `json:"publishDate"`
}

// 馆员创建一本书
func (bc *BookController) CreateBook(c *gin.Context) {
	var in createBookReq
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusUnprocessableEntity, app.H{"error": err.Error()})
		return
	}
	book := &models.Book{
		Title:       in.Title,
		Author:      in.Author,
		ISBN:        in.ISBN,
		Genre:       in.Genre,
		PublishDate: in.PublishDate,
	}
	if err := bc.Books.Create(c.Request.Context(), book); err != nil {
		log.Printf("books: creating book: %v", err)
		c.JSON(http.StatusInternalServerError, app.H{"error": genericServerError})
		return
	}
	c.JSON(http.StatusCreated, book)
}

// 列表
func (bc *BookController) ListBooks(c *gin.Context) {
	books, err := bc.Books.FindAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": genericServerError})
		return
	}
	c.JSON(http.StatusOK, books)
}

func (bc *BookController) GetBook(c *gin.Context) {
	id := c.Param("id")
	if !validBookID(id) {
		c.JSON(http.StatusUnprocessableEntity, app.H{"error": "book id is not valid"})
		return
	}
	book, err := bc.Books.FindOne(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": genericServerError})
		return
	}
	if book == nil {
		c.JSON(http.StatusNotFound, app.H{"error": "book not found"})
		return
	}
	c.JSON(http.StatusOK, book)
}

func (bc *BookController) DeleteBook(c *gin.Context) {
	id := c.Param("id")
	if !validBookID(id) {
		c.JSON(http.StatusUnprocessableEntity, app.H{"error": "book id is not valid"})
		return
	}
	err := bc.Books.Remove(c.Request.Context(), id)
	switch {
	case err == nil:
		c.Status(http.StatusNoContent)
	case errors.Is(err, services.ErrBookNotFound):
		c.JSON(http.StatusNotFound, app.H{"error": err.Error()})
	case errors.Is(err, services.ErrBookCheckedOut):
		c.JSON(http.StatusConflict, app.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, app.H{"error": genericServerError})
	}
}

type checkoutReq struct {
	// body 而不是路径参数，以后好扩展
	ISBN string `json:"isbn" binding:"required,min=10,max=13"`
}

// 借出：调用方的 id 来自请求头
func (bc *BookController) Checkout(c *gin.Context) {
	var in checkoutReq
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusUnprocessableEntity, app.H{"error": err.Error()})
		return
	}
	checkout, err := bc.Books.Checkout(c.Request.Context(), in.ISBN, app.CallerID(c))
	switch {
	case err == nil:
		metrics.CheckoutsTotal.WithLabelValues("ok").Inc()
		c.JSON(http.StatusCreated, checkout)
	case errors.Is(err, services.ErrUserNotFound), errors.Is(err, services.ErrBookNotFound):
		metrics.CheckoutsTotal.WithLabelValues("not_found").Inc()
		c.JSON(http.StatusNotFound, app.H{"error": err.Error()})
	case errors.Is(err, services.ErrCheckedOut),
		errors.Is(err, services.ErrTooManyCheckouts),
		errors.Is(err, services.ErrOverdueBooks):
		metrics.CheckoutsTotal.WithLabelValues("conflict").Inc()
		c.JSON(http.StatusConflict, app.H{"error": err.Error()})
	default:
		metrics.CheckoutsTotal.WithLabelValues("error").Inc()
		c.JSON(http.StatusInternalServerError, app.H{"error": genericServerError})
	}
}

// 归还：:id 是书的 id
func (bc *BookController) ReturnBook(c *gin.Context) {
	bookID := c.Param("id")
	log.Printf("books: returning book %s", bookID)
	if !validBookID(bookID) {
		c.JSON(http.StatusUnprocessableEntity, app.H{"error": "book id is not valid"})
		return
	}
	_, err := bc.Books.Return(c.Request.Context(), bookID, app.CallerID(c))
	switch {
	case err == nil:
		metrics.ReturnsTotal.WithLabelValues("ok").Inc()
		c.Status(http.StatusNoContent)
	case errors.Is(err, services.ErrNoCheckoutFound):
		metrics.ReturnsTotal.WithLabelValues("not_found").Inc()
		c.JSON(http.StatusNotFound, app.H{"error": err.Error()})
	default:
		metrics.ReturnsTotal.WithLabelValues("error").Inc()
		c.JSON(http.StatusInternalServerError, app.H{"error": genericServerError})
	}
}

// 馆员：查某个用户的逾期借阅 ?user=<id>
func (bc *BookController) ListOverdue(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Query("user"), 10, 64)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, app.H{"error": "user must be an integer"})
		return
	}
	rows, err := bc.Books.OverdueCheckouts(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": genericServerError})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// 用户：自己手上未归还的借阅
func (bc *BookController) ListActive(c *gin.Context) {
	rows, err := bc.Books.ActiveCheckouts(c.Request.Context(), app.CallerID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": genericServerError})
		return
	}
	c.JSON(http.StatusOK, rows)
}
