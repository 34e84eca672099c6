package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/shelfshare/apps/lending-api/internal/model"
	"github.com/snnyvrz/shelfshare/apps/lending-api/internal/retry"
	"github.com/snnyvrz/shelfshare/apps/lending-api/internal/validation"
)

type LendingHandler struct {
	lending LendingService
	retry   retryPolicy
}

func NewLendingHandler(lending LendingService, opts ...retry.Option) *LendingHandler {
	return &LendingHandler{lending: lending, retry: opts}
}

func (h *LendingHandler) RegisterRoutes(r *gin.RouterGroup) {
	books := r.Group("/books")
	{
		books.POST("/borrow", h.Borrow)
		books.POST("/return", h.Return)
		books.GET("/borrowed", h.BorrowedByMember)
	}
}

// Borrow godoc
// @Summary      Borrow a book
// @Description  Give one copy of a book to a member
// @Tags         lending
// @Accept       json
// @Produce      json
// @Param        payload  body      LoanRequest                true  "Member and book"
// @Success      201      {object}  LoanResponse
// @Failure      400      {object}  validation.ErrorResponse   "Validation error"
// @Failure      404      {object}  validation.ErrorResponse   "Member or book not found"
// @Failure      409      {object}  validation.ErrorResponse   "Not available, already borrowed or borrow limit reached"
// @Failure      503      {object}  validation.ErrorResponse   "Storage unavailable"
// @Failure      500      {object}  validation.ErrorResponse   "Internal server error"
// @Router       /books/borrow [post]
func (h *LendingHandler) Borrow(c *gin.Context) {
	var req LoanRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	var loan *model.Loan
	err := h.retry.write(c.Request.Context(), func(ctx context.Context) error {
		var err error
		loan, err = h.lending.Borrow(ctx, req.MemberID, req.BookID)
		return err
	})
	if err != nil {
		writeServiceError(c, err, "BORROW_FAILED", "failed to borrow book")
		return
	}

	c.JSON(http.StatusCreated, toLoanResponse(*loan))
}

// Return godoc
// @Summary      Return a book
// @Description  Take back a member's copy of a book
// @Tags         lending
// @Accept       json
// @Produce      json
// @Param        payload  body      LoanRequest                true  "Member and book"
// @Success      204      {string}  string  "No content"
// @Failure      400      {object}  validation.ErrorResponse   "Validation error"
// @Failure      404      {object}  validation.ErrorResponse   "Member or book not found"
// @Failure      409      {object}  validation.ErrorResponse   "Member is not borrowing this book"
// @Failure      500      {object}  validation.ErrorResponse   "Internal server error"
// @Router       /books/return [post]
func (h *LendingHandler) Return(c *gin.Context) {
	var req LoanRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	err := h.retry.write(c.Request.Context(), func(ctx context.Context) error {
		return h.lending.Return(ctx, req.MemberID, req.BookID)
	})
	if err != nil {
		writeServiceError(c, err, "RETURN_FAILED", "failed to return book")
		return
	}

	c.Status(http.StatusNoContent)
}

// BorrowedByMember godoc
// @Summary      Books borrowed by a member
// @Description  Books held by the member with exactly this name. Names are not unique; the earliest enrolled member is used.
// @Tags         lending
// @Produce      json
// @Param        member  query     string  true  "Member name"
// @Success      200     {object}  ListBookSummariesResponse
// @Failure      400     {object}  validation.ErrorResponse   "Missing member name"
// @Failure      404     {object}  validation.ErrorResponse   "Member not found"
// @Failure      500     {object}  validation.ErrorResponse   "Internal server error"
// @Router       /books/borrowed [get]
func (h *LendingHandler) BorrowedByMember(c *gin.Context) {
	name := strings.TrimSpace(c.Query("member"))
	if name == "" {
		writeError(c, http.StatusBadRequest,
			"MISSING_MEMBER_NAME",
			"query parameter member is required",
		)
		return
	}

	var books []model.Book
	err := h.retry.read(c.Request.Context(), func(ctx context.Context) error {
		var err error
		books, err = h.lending.BooksBorrowedBy(ctx, name)
		return err
	})
	if err != nil {
		writeServiceError(c, err, "BORROWED_BOOKS_FAILED", "failed to fetch borrowed books")
		return
	}

	c.JSON(http.StatusOK, ListBookSummariesResponse{Data: toBookSummaries(books)})
}
