package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio/internal/app"
)

const denyBody = "Could not verify your access level for that URL.\n" +
	"You have to login with proper credentials"

// AdminBasicAuth gates a route behind the shared admin credential. The
// challenge is issued before the protected handler runs.
func AdminBasicAuth(auth *app.AuthService, realm string) gin.HandlerFunc {
	return func(c *gin.Context) {
		username, password, ok := c.Request.BasicAuth()
		if !ok || !auth.Verify(username, password) {
			c.Header("WWW-Authenticate", fmt.Sprintf("Basic realm=%q", realm))
			c.String(http.StatusUnauthorized, denyBody)
			c.Abort()
			return
		}
		c.Next()
	}
}
