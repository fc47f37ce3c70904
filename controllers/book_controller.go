package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/the1kimko/book-rental-management-system/app"
	"github.com/the1kimko/book-rental-management-system/service"
	"github.com/the1kimko/book-rental-management-system/store"
)

type BookController struct {
	books *service.BookService
}

func NewBookController(books *service.BookService) *BookController {
	return &BookController{books: books}
}

func (bc *BookController) CreateBook(c *gin.Context) {
	var in struct {
		Title  string  `json:"title" binding:"required"`
		Author string  `json:"author" binding:"required"`
		Copies *int    `json:"copies"`
		Genre  *string `json:"genre"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	// Omitted copies defaults to a single copy; an explicit value, zero
	// included, goes to the service as-is.
	copies := 1
	if in.Copies != nil {
		copies = *in.Copies
	}
	b, err := bc.books.Create(c.Request.Context(), in.Title, in.Author, copies, in.Genre)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

func (bc *BookController) DeleteBook(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := bc.books.Delete(c.Request.Context(), id); err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"ok": true})
}

// ListBooks supports ?available=1 and ?sort=genre|author.
func (bc *BookController) ListBooks(c *gin.Context) {
	q := store.BookQuery{
		AvailableOnly: c.Query("available") == "1",
		Sort:          store.BookSort(c.Query("sort")),
	}
	if q.Sort != store.SortNone && q.Sort != store.SortGenre && q.Sort != store.SortAuthor {
		c.JSON(http.StatusBadRequest, app.H{"error": "sort must be genre or author"})
		return
	}
	books, err := bc.books.List(c.Request.Context(), q)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"books": books})
}

func (bc *BookController) SearchBooks(c *gin.Context) {
	books, err := bc.books.Search(c.Request.Context(), c.Query("title"), c.Query("author"))
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"books": books})
}
