package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"training-portal/internal/middleware"
	"training-portal/internal/models"
	"training-portal/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildTestApp serves /login-as/:role to create a session and /protected
// behind RequireRole(allowed...).
func buildTestApp(allowed ...models.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(session.Middleware(session.NewCookieStore("middleware-test", false)))
	r.Use(middleware.InjectUser())

	r.POST("/login-as/:role", func(c *gin.Context) {
		_ = session.FromContext(c).Set(models.DemoUsers[models.Role(c.Param("role"))])
		c.Status(http.StatusNoContent)
	})
	r.GET("/protected", middleware.RequireRole(allowed...), func(c *gin.Context) {
		u, _ := middleware.CurrentUser(c)
		c.String(http.StatusOK, u.DisplayName())
	})
	return r
}

// cookieFor logs in as role and returns the session cookie.
func cookieFor(t *testing.T, r *gin.Engine, role models.Role) *http.Cookie {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login-as/"+string(role), nil))
	for _, c := range w.Result().Cookies() {
		if c.Name == session.CookieName {
			return c
		}
	}
	require.FailNow(t, "no session cookie")
	return nil
}

func get(r *gin.Engine, c *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if c != nil {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireRoleWithoutSession(t *testing.T) {
	r := buildTestApp(models.RoleManager)

	w := get(r, nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login.html?reason=unauthenticated", w.Header().Get("Location"))
}

func TestRequireRoleWrongRole(t *testing.T) {
	r := buildTestApp(models.RoleManager, models.RoleHR)

	w := get(r, cookieFor(t, r, models.RoleEmployee))
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login.html?reason=unauthorized", w.Header().Get("Location"))
}

func TestRequireRoleAllowed(t *testing.T) {
	r := buildTestApp(models.RoleManager, models.RoleHR)

	for _, role := range []models.Role{models.RoleManager, models.RoleHR} {
		w := get(r, cookieFor(t, r, role))
		assert.Equal(t, http.StatusOK, w.Code, role)
		assert.Equal(t, models.DemoUsers[role].DisplayName(), w.Body.String())
	}
}

func TestRequireRoleEmptySetRejectsEveryone(t *testing.T) {
	r := buildTestApp()

	w := get(r, cookieFor(t, r, models.RoleHR))
	assert.Equal(t, "/login.html?reason=unauthorized", w.Header().Get("Location"))
}

func TestRequestLoggerSetsRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RequestLogger())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	generated := w.Header().Get(middleware.RequestIDHeader)
	assert.Len(t, generated, 36)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(middleware.RequestIDHeader, "5f0c1c8e-8a0f-4a53-9d8e-6f1b2f0a7e11")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "5f0c1c8e-8a0f-4a53-9d8e-6f1b2f0a7e11", w.Header().Get(middleware.RequestIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(middleware.RequestIDHeader, "not-a-uuid")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.NotEqual(t, "not-a-uuid", w.Header().Get(middleware.RequestIDHeader))
}
