package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"training-portal/internal/auth"
	"training-portal/internal/database"
	"training-portal/internal/logger"
	"training-portal/internal/middleware"
	"training-portal/internal/models"
	"training-portal/internal/pages"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var reasonMessages = map[string]string{
	middleware.ReasonUnauthenticated: "Please log in to continue.",
	middleware.ReasonUnauthorized:    "You do not have access to that area with this role.",
}

var roleLabels = map[models.Role]string{
	models.RoleEmployee: "Employee",
	models.RoleManager:  "Manager",
	models.RoleHR:       "HR",
}

type roleCard struct {
	Role   models.Role
	Label  string
	Active bool
}

type loginView struct {
	SelectedRole models.Role
	FormTitle    string
	Cards        []roleCard
	Email        string
	Message      string
	Success      bool

	RedirectTo      string
	RedirectDelayMs int64
}

func newLoginView(selected models.Role) *loginView {
	v := &loginView{SelectedRole: selected, FormTitle: selected.Title()}
	for _, r := range models.Roles {
		v.Cards = append(v.Cards, roleCard{Role: r, Label: roleLabels[r], Active: r == selected})
	}
	return v
}

func renderLogin(c *gin.Context, status int, view *loginView) {
	p, _ := pages.Lookup(pages.Login)
	render(c, status, p.File, gin.H{"page": p, "login": view})
}

// ShowLogin starts clean every time: any existing session is dropped.
func (h *Handler) ShowLogin(c *gin.Context) {
	if err := sessionStore(c).Clear(); err != nil {
		logger.Logger.Error("failed to clear session", zap.Error(err))
	}
	middleware.ForgetUser(c)

	selected := models.RoleEmployee
	if r := strings.TrimSpace(c.Query("role")); r != "" {
		selected = models.Role(r)
	}

	view := newLoginView(selected)
	view.Message = reasonMessages[c.Query("reason")]

	renderLogin(c, http.StatusOK, view)
}

type loginForm struct {
	Email       string `form:"email"`
	Password    string `form:"password"`
	Role        string `form:"role"`
	AcceptTerms string `form:"accept_terms"` // checkbox: present when ticked
}

func (h *Handler) Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		view := newLoginView(models.Role(form.Role))
		view.Message = "Invalid form data."
		renderLogin(c, http.StatusBadRequest, view)
		return
	}

	role := models.Role(form.Role)
	view := newLoginView(role)
	view.Email = strings.TrimSpace(form.Email)

	user, err := auth.Authenticate(auth.Attempt{
		Email:         form.Email,
		Password:      form.Password,
		Role:          role,
		TermsAccepted: form.AcceptTerms != "",
	})
	if err != nil {
		logger.Logger.Info("login rejected", zap.String("role", form.Role), zap.Error(err))
		database.CreateAuditLog(view.Email, role, "login_failed", err.Error())

		view.Message = auth.Message(err)
		renderLogin(c, http.StatusBadRequest, view)
		return
	}

	if err := sessionStore(c).Set(user); err != nil {
		logger.Logger.Error("failed to save session", zap.Error(err))
		view.Message = "Could not start your session. Please try again."
		renderLogin(c, http.StatusInternalServerError, view)
		return
	}
	database.CreateAuditLog(user.Email, user.Role, "login", "")

	target := "/" + models.LandingPage(user.Role)
	view.Success = true
	view.Message = "Login successful. Redirecting..."
	view.RedirectTo = target
	view.RedirectDelayMs = h.redirectDelay.Milliseconds()

	c.Header("Refresh", fmt.Sprintf("%d; url=%s", refreshSeconds(h.redirectDelay), target))
	renderLogin(c, http.StatusOK, view)
}
