package handlers

import (
	"training-portal/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/csrf"
)

const (
	flashAlert = "alert"
	flashPrint = "print"
)

// render wraps c.HTML and passes the header data every page needs:
// the current user, queued alerts and the CSRF field.
func render(c *gin.Context, status int, tmpl string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	data["CurrentUserDisplay"] = ""
	if u, ok := middleware.CurrentUser(c); ok {
		data["CurrentUser"] = u
		data["CurrentUserDisplay"] = u.DisplayName()
	}

	store := sessionStore(c)
	data["alerts"] = store.Flashes(flashAlert)
	data["print"] = len(store.Flashes(flashPrint)) > 0
	data["csrfField"] = csrf.TemplateField(c.Request)

	c.HTML(status, tmpl, data)
}
