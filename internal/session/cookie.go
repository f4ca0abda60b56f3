package session

import (
	"crypto/sha256"
	"io"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/hkdf"
)

// the record has no expiry of its own; keep the cookie as long as browsers allow
const maxAge = 400 * 24 * 60 * 60

// DeriveKey expands secret into a 32-byte key bound to purpose, so one
// SESSION_SECRET can feed cookie signing, cookie encryption and CSRF.
func DeriveKey(secret, purpose string) []byte {
	key := make([]byte, 32)
	kdf := hkdf.New(sha256.New, []byte(secret), nil, []byte(purpose))
	// hkdf over sha256 can produce up to 255*32 bytes, 32 never fails
	if _, err := io.ReadFull(kdf, key); err != nil {
		panic(err)
	}
	return key
}

// NewCookieStore keeps sessions signed and encrypted in the browser.
func NewCookieStore(secret string, secure bool) sessions.Store {
	store := cookie.NewStore(
		DeriveKey(secret, "tp_session auth"),
		DeriveKey(secret, "tp_session encryption"),
	)
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		Secure:   secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return store
}

// Middleware attaches the session to every request.
func Middleware(store sessions.Store) gin.HandlerFunc {
	return sessions.Sessions(CookieName, store)
}
