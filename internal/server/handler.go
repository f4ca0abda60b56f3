package server

import (
	"net/http"

	"training-portal/internal/config"
	"training-portal/internal/logger"
	"training-portal/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/csrf"
	"go.uber.org/zap"
)

const csrfFieldName = "csrf_token"

// NewHandler puts CSRF protection in front of the router when enabled.
func NewHandler(cfg *config.Config, r *gin.Engine) http.Handler {
	if !cfg.CSRFEnabled {
		return r
	}

	protect := csrf.Protect(
		session.DeriveKey(cfg.SessionSecret, "csrf"),
		csrf.Secure(cfg.SecureCookies),
		csrf.Path("/"),
		csrf.FieldName(csrfFieldName),
		csrf.ErrorHandler(http.HandlerFunc(csrfFailure)),
	)(r)

	if cfg.SecureCookies {
		return protect
	}
	// plain HTTP (local runs): skip the TLS-only referer checks
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		protect.ServeHTTP(w, csrf.PlaintextHTTPRequest(req))
	})
}

func csrfFailure(w http.ResponseWriter, r *http.Request) {
	logger.Logger.Warn("csrf check failed",
		zap.String("path", r.URL.Path),
		zap.Error(csrf.FailureReason(r)),
	)
	http.Error(w, "forbidden - invalid CSRF token", http.StatusForbidden)
}
