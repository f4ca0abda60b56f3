package server

import (
	"net/http"
	"net/url"
	"regexp"
	"testing"

	"training-portal/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tokenField = regexp.MustCompile(`name="csrf_token" value="([^"]+)"`)

func newCSRFClient(t *testing.T) *client {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := testConfig()
	cfg.CSRFEnabled = true

	r, err := NewRouter(cfg)
	require.NoError(t, err)
	return &client{t: t, h: NewHandler(cfg, r), cookies: map[string]*http.Cookie{}}
}

func TestNewHandlerWithoutCSRF(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig()
	r, err := NewRouter(cfg)
	require.NoError(t, err)

	assert.Same(t, r, NewHandler(cfg, r))
}

func TestCSRFRejectsPostWithoutToken(t *testing.T) {
	c := newCSRFClient(t)
	c.get("/login.html")

	demo := models.DemoUsers[models.RoleHR]
	w := c.post("/login.html", url.Values{
		"email":        {demo.Email},
		"password":     {demo.Password},
		"role":         {"hr"},
		"accept_terms": {"on"},
	}, "")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, c.hasSession())
}

func TestCSRFAcceptsPostWithToken(t *testing.T) {
	c := newCSRFClient(t)
	page := c.get("/login.html")
	require.Equal(t, http.StatusOK, page.Code)

	m := tokenField.FindStringSubmatch(page.Body.String())
	require.Len(t, m, 2, "login form must carry a csrf field")

	demo := models.DemoUsers[models.RoleHR]
	w := c.post("/login.html", url.Values{
		"email":        {demo.Email},
		"password":     {demo.Password},
		"role":         {"hr"},
		"accept_terms": {"on"},
		"csrf_token":   {m[1]},
	}, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1; url=/hr-dashboard.html", w.Header().Get("Refresh"))
	assert.True(t, c.hasSession())
}
