package models

// NavItem is a single navigation entry.
type NavItem struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

// Permissions is the navigation and action set granted to a role.
type Permissions struct {
	Role                 Role      `json:"role"`
	HomePath             string    `json:"homePath"` // landing page after login
	NavItems             []NavItem `json:"navItems"`
	CanBookAppointment   bool      `json:"canBookAppointment"`
	CanCancelAppointment bool      `json:"canCancelAppointment"`
	CanViewAppointments  bool      `json:"canViewAppointments"`
	CanManageUsers       bool      `json:"canManageUsers"`
	CanManageBlog        bool      `json:"canManageBlog"`
}
