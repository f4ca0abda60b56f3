package handlers

import (
	"net/http"

	"training-portal/internal/actions"
	"training-portal/internal/database"
	"training-portal/internal/logger"
	"training-portal/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Action runs a prototype button action. Buttons post here and plain links
// point here, so nothing ever navigates to "#".
func (h *Handler) Action(c *gin.Context) {
	id := c.Param("action")
	back := backPath(c)

	a, ok := actions.Parse(id)
	if !ok {
		logger.Logger.Info("no handler implemented for action", zap.String("action", id))
		c.Redirect(http.StatusFound, back)
		return
	}

	out := actions.Dispatch(a, actions.Input{Reflection: c.PostForm("reflection")})

	user, _ := middleware.CurrentUser(c)
	database.CreateAuditLog(user.Email, user.Role, "action:"+a.String(), out.Message)

	store := sessionStore(c)
	switch out.Kind {
	case actions.KindLogout:
		if err := store.Clear(); err != nil {
			logger.Logger.Error("failed to clear session", zap.Error(err))
			c.String(http.StatusInternalServerError, "could not log out")
			return
		}
		c.Redirect(http.StatusFound, middleware.LoginPath)

	case actions.KindNavigate:
		c.Redirect(http.StatusFound, "/"+out.Location)

	case actions.KindAlert:
		if err := store.AddFlash(out.Message, flashAlert); err != nil {
			logger.Logger.Warn("failed to queue alert", zap.String("action", id), zap.Error(err))
		}
		if out.Print {
			if err := store.AddFlash("1", flashPrint); err != nil {
				logger.Logger.Warn("failed to queue print", zap.Error(err))
			}
		}
		c.Redirect(http.StatusFound, back)

	default:
		logger.Logger.Error("action produced no outcome", zap.String("action", id))
		c.Redirect(http.StatusFound, back)
	}
}
