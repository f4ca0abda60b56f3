package server

import (
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"training-portal/internal/actions"
	"training-portal/internal/config"
	"training-portal/internal/handlers"
	"training-portal/internal/middleware"
	"training-portal/internal/pages"
	"training-portal/internal/session"
	"training-portal/internal/terms"
	"training-portal/web"

	"github.com/gin-gonic/gin"
)

// actionURL lets templates link to an action by identifier; a typo fails
// the render instead of producing a dead button.
func actionURL(id string) (string, error) {
	if _, ok := actions.Parse(id); !ok {
		return "", fmt.Errorf("unknown action %q", id)
	}
	return "/actions/" + id, nil
}

func pageURL(id string) (string, error) {
	p, ok := pages.Lookup(pages.ID(id))
	if !ok {
		return "", fmt.Errorf("unknown page %q", id)
	}
	return p.Path(), nil
}

func loadTemplates() (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"actionURL": actionURL,
		"pageURL":   pageURL,
	}).ParseFS(web.Files, "templates/*.html")
}

func NewRouter(cfg *config.Config) (*gin.Engine, error) {
	tmpl, err := loadTemplates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	deck, err := terms.Load(web.Terms, "terms")
	if err != nil {
		return nil, fmt.Errorf("load terms: %w", err)
	}
	static, err := fs.Sub(web.Files, "static")
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger())

	r.SetHTMLTemplate(tmpl)
	r.StaticFS("/static", http.FS(static))

	r.Use(session.Middleware(session.NewCookieStore(cfg.SessionSecret, cfg.SecureCookies)))
	r.Use(middleware.InjectUser())

	h := handlers.New(deck, cfg.LoginRedirectDelay)

	r.GET("/", h.IndexPage)

	// every page: guard chain from the page table, then the page itself
	for _, p := range pages.All() {
		switch p.Kind {
		case pages.KindLogin:
			r.GET(p.Path(), h.ShowLogin)
			r.POST(p.Path(), h.Login)
		case pages.KindTerms:
			r.GET(p.Path(), h.ShowTerms(p))
		default:
			chain := append(pages.Bootstrap(p.ID), h.ShowPage(p))
			r.GET(p.Path(), chain...)
		}
	}

	r.GET("/actions/:action", h.Action)
	r.POST("/actions/:action", h.Action)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r, nil
}
