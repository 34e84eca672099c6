package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/shelfshare/apps/lending-api/internal/retry"
)

// RegisterAPI mounts the book, lending and member routes on api.
func RegisterAPI(api *gin.RouterGroup, catalog CatalogService, lending LendingService, opts ...retry.Option) {
	NewBookHandler(catalog, opts...).RegisterRoutes(api)
	NewLendingHandler(lending, opts...).RegisterRoutes(api)
	NewMemberHandler(lending, opts...).RegisterRoutes(api)
}
