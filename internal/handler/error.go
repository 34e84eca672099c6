package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/shelfshare/apps/lending-api/internal/library"
	"github.com/snnyvrz/shelfshare/apps/lending-api/internal/middleware"
	"github.com/snnyvrz/shelfshare/apps/lending-api/internal/validation"
)

var errorCodes = []struct {
	err  error
	code string
}{
	{library.ErrBookNotFound, "BOOK_NOT_FOUND"},
	{library.ErrMemberNotFound, "MEMBER_NOT_FOUND"},
	{library.ErrBookNotAvailable, "BOOK_NOT_AVAILABLE"},
	{library.ErrBorrowLimitExceeded, "BORROW_LIMIT_EXCEEDED"},
	{library.ErrBookAlreadyBorrowed, "BOOK_ALREADY_BORROWED"},
	{library.ErrBookNotBorrowedByMember, "BOOK_NOT_BORROWED_BY_MEMBER"},
	{library.ErrBookNotReturned, "BOOK_NOT_RETURNED"},
	{library.ErrMemberHasBorrowedBooks, "MEMBER_HAS_BORROWED_BOOKS"},
	{library.ErrBookAlreadyExists, "BOOK_ALREADY_EXISTS"},
	{library.ErrInvalidBook, "INVALID_BOOK"},
	{library.ErrInvalidMember, "INVALID_MEMBER"},
}

var kindStatus = map[library.Kind]int{
	library.KindNotFound:    http.StatusNotFound,
	library.KindConflict:    http.StatusConflict,
	library.KindInvalid:     http.StatusBadRequest,
	library.KindUnavailable: http.StatusServiceUnavailable,
	library.KindInternal:    http.StatusInternalServerError,
}

func writeError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, validation.ErrorResponse{
		Code:    code,
		Message: message,
		Errors:  nil,
	})
}

// writeServiceError maps an engine error onto its status and code. Internal
// errors are logged and answered with failCode/failMessage so store details
// stay out of the response.
func writeServiceError(c *gin.Context, err error, failCode, failMessage string) {
	kind := library.KindOf(err)
	status := kindStatus[kind]

	switch kind {
	case library.KindInternal:
		log.Printf("request_id=%s %s %s: %s: %v",
			middleware.RequestIDFrom(c.Request.Context()),
			c.Request.Method, c.FullPath(), failCode, err)
		writeError(c, status, failCode, failMessage)
		return

	case library.KindUnavailable:
		log.Printf("request_id=%s %s %s: store unavailable: %v",
			middleware.RequestIDFrom(c.Request.Context()),
			c.Request.Method, c.FullPath(), err)
		writeError(c, status, "STORE_UNAVAILABLE", "storage is temporarily unavailable, try again")
		return
	}

	code := failCode
	for _, ec := range errorCodes {
		if errors.Is(err, ec.err) {
			code = ec.code
			break
		}
	}

	writeError(c, status, code, err.Error())
}
