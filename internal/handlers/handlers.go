package handlers

import (
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"training-portal/internal/pages"
	"training-portal/internal/session"
	"training-portal/internal/terms"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	deck          *terms.Deck
	redirectDelay time.Duration
}

func New(deck *terms.Deck, redirectDelay time.Duration) *Handler {
	return &Handler{deck: deck, redirectDelay: redirectDelay}
}

func sessionStore(c *gin.Context) *session.Store {
	return session.FromContext(c)
}

// IndexPage sends "/" to the employee dashboard; its guard takes it from there.
func (h *Handler) IndexPage(c *gin.Context) {
	c.Redirect(http.StatusFound, "/index.html")
}

// ShowPage renders a static page.
func (h *Handler) ShowPage(p pages.Page) gin.HandlerFunc {
	return func(c *gin.Context) {
		render(c, http.StatusOK, p.File, gin.H{"page": p})
	}
}

// backPath is where to send the user after an in-page action: the referring
// page when it is on this site, "/" otherwise.
func backPath(c *gin.Context) string {
	ref := c.Request.Referer()
	if ref == "" {
		return "/"
	}
	u, err := url.Parse(ref)
	if err != nil {
		return "/"
	}
	if u.Host != "" && u.Host != c.Request.Host {
		return "/"
	}
	if !strings.HasPrefix(u.Path, "/") || strings.HasPrefix(u.Path, "//") {
		return "/"
	}
	if u.RawQuery != "" {
		return u.Path + "?" + u.RawQuery
	}
	return u.Path
}

// refreshSeconds rounds d up to whole seconds for the Refresh header.
func refreshSeconds(d time.Duration) int {
	return int(math.Ceil(d.Seconds()))
}
