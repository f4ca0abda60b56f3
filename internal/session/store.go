// Package session keeps the logged-in demo user inside the client-held
// cookie session. It is the only code that touches the session key.
package session

import (
	"encoding/json"
	"errors"
	"fmt"

	"training-portal/internal/logger"
	"training-portal/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// CookieName is the name of the cookie gin-contrib/sessions writes.
	CookieName = "tp_session"
	// UserKey is the single key the serialized user lives under.
	UserKey = "tp_user"
)

var errInvalidRole = errors.New("role has no landing page")

// Store is the per-request session context. Handlers get one with
// FromContext and pass it on instead of reaching for the cookie directly.
type Store struct {
	sess sessions.Session
}

func New(sess sessions.Session) *Store {
	return &Store{sess: sess}
}

// FromContext wraps the session attached by the sessions middleware.
func FromContext(c *gin.Context) *Store {
	return New(sessions.Default(c))
}

// Set serializes user and stores it under UserKey.
func (s *Store) Set(user models.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode session user: %w", err)
	}
	s.sess.Set(UserKey, string(raw))
	if err := s.sess.Save(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Get returns the stored user. Corrupt data is reported and treated
// exactly like a missing session.
func (s *Store) Get() (models.User, bool) {
	val := s.sess.Get(UserKey)
	if val == nil {
		return models.User{}, false
	}

	user, err := decode(val)
	if err != nil {
		logger.Logger.Warn("failed to parse session", zap.Error(err))
		return models.User{}, false
	}
	return user, true
}

// Clear removes UserKey. Clearing an empty session is fine.
func (s *Store) Clear() error {
	s.sess.Delete(UserKey)
	if err := s.sess.Save(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// AddFlash queues a one-shot message for the next rendered page.
func (s *Store) AddFlash(msg string, key string) error {
	s.sess.AddFlash(msg, key)
	return s.sess.Save()
}

// Flashes pops all messages queued under key.
func (s *Store) Flashes(key string) []string {
	raw := s.sess.Flashes(key)
	if len(raw) == 0 {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, f := range raw {
		if msg, ok := f.(string); ok {
			out = append(out, msg)
		}
	}
	if err := s.sess.Save(); err != nil {
		logger.Logger.Warn("failed to save session after reading flashes", zap.Error(err))
	}
	return out
}

func decode(val interface{}) (models.User, error) {
	raw, ok := val.(string)
	if !ok {
		return models.User{}, fmt.Errorf("unexpected session value of type %T", val)
	}

	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return models.User{}, err
	}
	if !user.Role.Valid() {
		return models.User{}, fmt.Errorf("%w: %q", errInvalidRole, user.Role)
	}
	return user, nil
}
