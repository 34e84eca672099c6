package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/shelfshare/apps/lending-api/internal/library"
	"github.com/snnyvrz/shelfshare/apps/lending-api/internal/model"
	"github.com/snnyvrz/shelfshare/apps/lending-api/internal/retry"
	"github.com/snnyvrz/shelfshare/apps/lending-api/internal/validation"
)

type BookHandler struct {
	catalog CatalogService
	retry   retryPolicy
}

func NewBookHandler(catalog CatalogService, opts ...retry.Option) *BookHandler {
	return &BookHandler{catalog: catalog, retry: opts}
}

func (h *BookHandler) RegisterRoutes(r *gin.RouterGroup) {
	books := r.Group("/books")
	{
		books.GET("", h.ListBooks)
		books.POST("", h.CreateBook)
		books.GET("/:id", h.GetBookByID)
		books.PUT("/:id", h.UpdateBook)
		books.DELETE("/:id", h.DeleteBook)
		books.GET("/borrowed/titles", h.ListBorrowedTitles)
		books.GET("/borrowed/titles/counts", h.BorrowedTitleCounts)
	}
}

// CreateBook godoc
// @Summary      Create or merge a book
// @Description  Adds a book. If a book with the same title and author exists, its amount is increased instead.
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        payload  body      BookRequest                true  "Book to create"
// @Success      201      {object}  BookResponse
// @Failure      400      {object}  validation.ErrorResponse   "Validation error"
// @Failure      503      {object}  validation.ErrorResponse   "Storage unavailable"
// @Failure      500      {object}  validation.ErrorResponse   "Internal server error"
// @Router       /books [post]
func (h *BookHandler) CreateBook(c *gin.Context) {
	var req BookRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	in := library.BookInput{Title: req.Title, Author: req.Author, Amount: req.Amount}

	var book *model.Book
	err := h.retry.write(c.Request.Context(), func(ctx context.Context) error {
		var err error
		book, err = h.catalog.CreateOrMergeBook(ctx, in)
		return err
	})
	if err != nil {
		writeServiceError(c, err, "BOOK_CREATE_FAILED", "failed to create book")
		return
	}

	c.JSON(http.StatusCreated, toBookResponse(*book))
}

// ListBooks godoc
// @Summary      List books
// @Description  Get all books with their current borrowers
// @Tags         books
// @Produce      json
// @Success      200  {object}  ListBooksResponse
// @Failure      503  {object}  validation.ErrorResponse   "Storage unavailable"
// @Failure      500  {object}  validation.ErrorResponse   "Internal server error"
// @Router       /books [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	var books []model.Book
	err := h.retry.read(c.Request.Context(), func(ctx context.Context) error {
		var err error
		books, err = h.catalog.ListBooks(ctx)
		return err
	})
	if err != nil {
		writeServiceError(c, err, "BOOK_LIST_FAILED", "failed to fetch books")
		return
	}

	c.JSON(http.StatusOK, toListBooksResponse(books))
}

// GetBookByID godoc
// @Summary      Get a book by ID
// @Description  Get a single book and its borrowers by UUID
// @Tags         books
// @Produce      json
// @Param        id   path      string  true  "Book ID (UUID)"
// @Success      200  {object}  BookResponse
// @Failure      400  {object}  validation.ErrorResponse   "Invalid ID"
// @Failure      404  {object}  validation.ErrorResponse   "Book not found"
// @Failure      500  {object}  validation.ErrorResponse   "Internal server error"
// @Router       /books/{id} [get]
func (h *BookHandler) GetBookByID(c *gin.Context) {
	bookID, ok := parseIDParam(c, "INVALID_BOOK_ID", "invalid book id")
	if !ok {
		return
	}

	var book *model.Book
	err := h.retry.read(c.Request.Context(), func(ctx context.Context) error {
		var err error
		book, err = h.catalog.GetBook(ctx, bookID)
		return err
	})
	if err != nil {
		writeServiceError(c, err, "BOOK_FETCH_FAILED", "failed to fetch book")
		return
	}

	c.JSON(http.StatusOK, toBookResponse(*book))
}

// UpdateBook godoc
// @Summary      Update a book
// @Description  Replace title, author and amount of a book. Borrowers are not changed.
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        id       path      string             true  "Book ID (UUID)"
// @Param        payload  body      BookRequest        true  "New book fields"
// @Success      200      {object}  BookResponse
// @Failure      400      {object}  validation.ErrorResponse   "Invalid ID or payload"
// @Failure      404      {object}  validation.ErrorResponse   "Book not found"
// @Failure      409      {object}  validation.ErrorResponse   "Another book has this title and author"
// @Failure      500      {object}  validation.ErrorResponse   "Internal server error"
// @Router       /books/{id} [put]
func (h *BookHandler) UpdateBook(c *gin.Context) {
	bookID, ok := parseIDParam(c, "INVALID_BOOK_ID", "invalid book id")
	if !ok {
		return
	}

	var req BookRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	in := library.BookInput{Title: req.Title, Author: req.Author, Amount: req.Amount}

	var book *model.Book
	err := h.retry.write(c.Request.Context(), func(ctx context.Context) error {
		var err error
		book, err = h.catalog.UpdateBook(ctx, bookID, in)
		return err
	})
	if err != nil {
		writeServiceError(c, err, "BOOK_UPDATE_FAILED", "failed to update book")
		return
	}

	c.JSON(http.StatusOK, toBookResponse(*book))
}

// DeleteBook godoc
// @Summary      Delete a book
// @Description  Delete a book nobody is borrowing
// @Tags         books
// @Produce      json
// @Param        id   path      string  true  "Book ID (UUID)"
// @Success      204  {string}  string  "No content"
// @Failure      400  {object}  validation.ErrorResponse   "Invalid ID"
// @Failure      404  {object}  validation.ErrorResponse   "Book not found"
// @Failure      409  {object}  validation.ErrorResponse   "Book is still borrowed"
// @Failure      500  {object}  validation.ErrorResponse   "Internal server error"
// @Router       /books/{id} [delete]
func (h *BookHandler) DeleteBook(c *gin.Context) {
	bookID, ok := parseIDParam(c, "INVALID_BOOK_ID", "invalid book id")
	if !ok {
		return
	}

	err := h.retry.write(c.Request.Context(), func(ctx context.Context) error {
		return h.catalog.DeleteBook(ctx, bookID)
	})
	if err != nil {
		writeServiceError(c, err, "BOOK_DELETE_FAILED", "failed to delete book")
		return
	}

	c.Status(http.StatusNoContent)
}

// ListBorrowedTitles godoc
// @Summary      Borrowed titles
// @Description  Titles of books that at least one member is borrowing, each listed once
// @Tags         books
// @Produce      json
// @Success      200  {object}  TitlesResponse
// @Failure      500  {object}  validation.ErrorResponse   "Internal server error"
// @Router       /books/borrowed/titles [get]
func (h *BookHandler) ListBorrowedTitles(c *gin.Context) {
	var titles []string
	err := h.retry.read(c.Request.Context(), func(ctx context.Context) error {
		var err error
		titles, err = h.catalog.DistinctBorrowedTitles(ctx)
		return err
	})
	if err != nil {
		writeServiceError(c, err, "BORROWED_TITLES_FAILED", "failed to fetch borrowed titles")
		return
	}

	if titles == nil {
		titles = []string{}
	}
	c.JSON(http.StatusOK, TitlesResponse{Data: titles})
}

// BorrowedTitleCounts godoc
// @Summary      Borrowed title counts
// @Description  Number of borrowers per borrowed title, grouped across books sharing a title
// @Tags         books
// @Produce      json
// @Success      200  {object}  TitleCountsResponse
// @Failure      500  {object}  validation.ErrorResponse   "Internal server error"
// @Router       /books/borrowed/titles/counts [get]
func (h *BookHandler) BorrowedTitleCounts(c *gin.Context) {
	var counts map[string]int64
	err := h.retry.read(c.Request.Context(), func(ctx context.Context) error {
		var err error
		counts, err = h.catalog.BorrowedTitleCounts(ctx)
		return err
	})
	if err != nil {
		writeServiceError(c, err, "BORROWED_TITLE_COUNTS_FAILED", "failed to fetch borrowed title counts")
		return
	}

	if counts == nil {
		counts = map[string]int64{}
	}
	c.JSON(http.StatusOK, TitleCountsResponse{Data: counts})
}
