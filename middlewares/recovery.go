// Catches panics and returns a 500 envelope without crashing the server.

package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Thammasok/user-api/models"
)

// Recovery turns a panic in any downstream handler into a 500 response
// instead of a dropped connection.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().
					Interface("panic", r).
					Str("path", c.Request.URL.Path).
					Msg("panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					models.Error("Internal server error"))
			}
		}()
		c.Next()
	}
}
