package middleware

import (
	"training-portal/internal/models"
	"training-portal/internal/session"

	"github.com/gin-gonic/gin"
)

const currentUserKey = "CurrentUser"

// InjectUser puts the session user (if any) into the gin context so that
// every page can show it in the header.
func InjectUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if user, ok := session.FromContext(c).Get(); ok {
			c.Set(currentUserKey, user)
		}
		c.Next()
	}
}

// CurrentUser returns the user InjectUser found for this request.
func CurrentUser(c *gin.Context) (models.User, bool) {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return models.User{}, false
	}
	u, ok := v.(models.User)
	return u, ok
}

// ForgetUser drops the injected user, e.g. once the session was cleared.
func ForgetUser(c *gin.Context) {
	delete(c.Keys, currentUserKey)
}
