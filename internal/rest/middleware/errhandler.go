package middleware

import (
	ierr "github.com/rentdesk/rentdesk/internal/errors"
	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last error attached to the gin context as the
// standard error envelope
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			c.JSON(ierr.HTTPStatusFromErr(err), ierr.NewErrorResponse(err))
		}
	}
}
