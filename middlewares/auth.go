// Pluggable bearer-token gate sitting in front of the API routes.

package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Thammasok/user-api/auth"
	"github.com/Thammasok/user-api/models"
)

// CtxSubjectKey is where BearerAuth stores the verified principal.
const CtxSubjectKey = "auth_subject"

const unauthorizedMsg = "Unauthorized - Missing or invalid token"

// BearerAuth guards a route group with "Authorization: Bearer <token>".
// The credential check itself is delegated to the injected verifier, so
// swapping the stub for a real one is a wiring change only. A rejection
// short-circuits with 401 before any handler runs.
func BearerAuth(verifier auth.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.Error(unauthorizedMsg))
			return
		}

		subject, err := verifier.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.Error(unauthorizedMsg))
			return
		}

		c.Set(CtxSubjectKey, subject)
		c.Next()
	}
}
