// Package pages is the table of static pages and what each one needs
// when it is loaded.
package pages

import (
	"training-portal/internal/middleware"
	"training-portal/internal/models"

	"github.com/gin-gonic/gin"
)

type ID string

const (
	Login             ID = "login"
	EmployeeDashboard ID = "employee-dashboard"
	ManagerDashboard  ID = "manager-dashboard"
	HRDashboard       ID = "hr-dashboard"
	ScenarioTraining  ID = "scenario-training"
	ScenarioResults   ID = "scenario-results"
	SettingsPrivacy   ID = "settings-privacy"
	Terms             ID = "terms"
	CultureReport     ID = "culture-report"
)

type Kind int

const (
	KindPublic Kind = iota
	KindLogin
	KindGuarded
	KindTerms
)

type Page struct {
	ID      ID
	File    string // served at "/" + File; also the template name
	Title   string
	Kind    Kind
	Allowed []models.Role // KindGuarded only
}

// Path is the URL the page is served at.
func (p Page) Path() string {
	return "/" + p.File
}

var all = []Page{
	{ID: Login, File: "login.html", Title: "Log in", Kind: KindLogin},
	{ID: EmployeeDashboard, File: "index.html", Title: "My training", Kind: KindGuarded,
		Allowed: []models.Role{models.RoleEmployee}},
	{ID: ManagerDashboard, File: "manager-dashboard.html", Title: "Team overview", Kind: KindGuarded,
		Allowed: []models.Role{models.RoleManager}},
	{ID: HRDashboard, File: "hr-dashboard.html", Title: "HR overview", Kind: KindGuarded,
		Allowed: []models.Role{models.RoleHR}},
	// employees run scenarios in this prototype
	{ID: ScenarioTraining, File: "scenario-training.html", Title: "Scenario training", Kind: KindGuarded,
		Allowed: []models.Role{models.RoleEmployee}},
	{ID: ScenarioResults, File: "scenario-results.html", Title: "Scenario results", Kind: KindGuarded,
		Allowed: []models.Role{models.RoleEmployee}},
	{ID: SettingsPrivacy, File: "settings-privacy.html", Title: "Settings & privacy", Kind: KindGuarded,
		Allowed: []models.Role{models.RoleEmployee, models.RoleManager, models.RoleHR}},
	{ID: Terms, File: "terms.html", Title: "Terms & Conditions", Kind: KindTerms},
	{ID: CultureReport, File: "culture-report.html", Title: "Culture report", Kind: KindGuarded,
		Allowed: []models.Role{models.RoleManager, models.RoleHR}},
}

// All returns every known page.
func All() []Page {
	out := make([]Page, len(all))
	copy(out, all)
	return out
}

func Lookup(id ID) (Page, bool) {
	for _, p := range all {
		if p.ID == id {
			return p, true
		}
	}
	return Page{}, false
}

// Bootstrap returns the handlers that must run before page id renders.
// Only guarded pages get any; unknown ids get none.
func Bootstrap(id ID) []gin.HandlerFunc {
	p, ok := Lookup(id)
	if !ok || p.Kind != KindGuarded {
		return nil
	}
	return []gin.HandlerFunc{middleware.RequireRole(p.Allowed...)}
}
