package models

// demo accounts, one per role. never mutated.
var DemoUsers = map[Role]User{
	RoleEmployee: {
		Email:    "employee@demo.com",
		Password: "employee123",
		Name:     "John Doe",
		Role:     RoleEmployee,
	},
	RoleManager: {
		Email:    "manager@demo.com",
		Password: "manager123",
		Name:     "Alicia Patel",
		Role:     RoleManager,
	},
	RoleHR: {
		Email:    "hr@demo.com",
		Password: "hr123",
		Name:     "Sara Ahmed",
		Role:     RoleHR,
	},
}

// landing page per role
var RoleRoutes = map[Role]string{
	RoleEmployee: "index.html",
	RoleManager:  "manager-dashboard.html",
	RoleHR:       "hr-dashboard.html",
}

const DefaultLanding = "index.html"

// LandingPage returns the page a freshly logged in user of role r goes to.
func LandingPage(r Role) string {
	if p, ok := RoleRoutes[r]; ok {
		return p
	}
	return DefaultLanding
}

// Valid reports whether r has a configured landing page.
func (r Role) Valid() bool {
	_, ok := RoleRoutes[r]
	return ok
}
