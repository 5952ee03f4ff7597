// Package apierr defines the error envelope returned by every route.
// All failures serialize as {"error_kind": ..., "message": ...} so clients
// can branch on the kind without parsing messages.
package apierr

import "github.com/gin-gonic/gin"

const (
	KindUnauthorized = "unauthorized"
	KindForbidden    = "forbidden"
	KindInvalidID    = "invalid_id"
	KindInvalidInput = "invalid_input"
	KindNotFound     = "not_found"
	KindStoreError   = "store_error"
)

// JSON writes the error envelope with the given status.
func JSON(c *gin.Context, status int, kind, message string) {
	c.JSON(status, gin.H{"error_kind": kind, "message": message})
}

// Abort writes the error envelope and stops the handler chain. Used by
// middleware.
func Abort(c *gin.Context, status int, kind, message string) {
	c.AbortWithStatusJSON(status, gin.H{"error_kind": kind, "message": message})
}
