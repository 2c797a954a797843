package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"murmur/internal/apperror"
)

// writeError maps a service error to an HTTP status. Only the message of
// the normalized error crosses the boundary; causes stay server-side.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case apperror.IsValidation(err):
		status = http.StatusBadRequest
	case apperror.IsUnauthenticated(err):
		status = http.StatusUnauthorized
	case apperror.IsUnauthorized(err):
		status = http.StatusUnauthorized
	case apperror.IsConflict(err):
		status = http.StatusConflict
	case apperror.IsNotFound(err):
		status = http.StatusNotFound
	case apperror.IsRestoreWindowExpired(err):
		// Surfaced as a server error rather than a 404: the row exists,
		// the window has just lapsed.
		status = http.StatusInternalServerError
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
