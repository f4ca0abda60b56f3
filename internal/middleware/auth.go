package middleware

import (
	"net/http"

	"training-portal/internal/models"
	"training-portal/internal/session"

	"github.com/gin-gonic/gin"
)

const (
	LoginPath = "/login.html"

	ReasonUnauthenticated = "unauthenticated"
	ReasonUnauthorized    = "unauthorized"
)

// RequireRole sends visitors without a session, or with a role outside
// roles, back to the login page with a reason code.
//
// This is a navigation aid, not access control: the session record is
// held by the client and the pages carry no data worth protecting.
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	roleSet := map[models.Role]struct{}{}
	for _, r := range roles {
		roleSet[r] = struct{}{}
	}

	return func(c *gin.Context) {
		user, ok := session.FromContext(c).Get()
		if !ok {
			c.Redirect(http.StatusFound, LoginPath+"?reason="+ReasonUnauthenticated)
			c.Abort()
			return
		}

		if _, ok := roleSet[user.Role]; !ok {
			c.Redirect(http.StatusFound, LoginPath+"?reason="+ReasonUnauthorized)
			c.Abort()
			return
		}
		c.Next()
	}
}
