// Package policy decides what each role may see and do.
package policy

import "letsheal/models"

var guestNav = []models.NavItem{
	{Label: "Home", Path: "/"},
	{Label: "About Us", Path: "/about"},
	{Label: "Therapy", Path: "/services/therapy"},
	{Label: "Blog", Path: "/blog-posts"},
	{Label: "Assessments", Path: "/services/assessments"},
	{Label: "Find Therapist", Path: "/findtherapist"},
	{Label: "Sign Up", Path: "/signup"},
	{Label: "Login", Path: "/login"},
}

var customerNav = []models.NavItem{
	{Label: "Dashboard", Path: "/user-dashboard"},
	{Label: "Find Therapist", Path: "/findtherapist"},
	{Label: "Blog", Path: "/blog-posts"},
	{Label: "Assessments", Path: "/assessments"},
	{Label: "Appointments", Path: "/upcoming-appointments"},
	{Label: "Help", Path: "/help"},
	{Label: "Chat", Path: "/chat"},
	{Label: "Profile", Path: "/user-profile"},
	{Label: "Settings", Path: "/customer/settings"},
}

var therapistNav = []models.NavItem{
	{Label: "Dashboard", Path: "/therapist-dashboard"},
	{Label: "Appointments", Path: "/current-appointment"},
	{Label: "Blog", Path: "/blog-posts"},
	{Label: "Chat", Path: "/chat"},
	{Label: "Profile", Path: "/therapistprofileown"},
}

var adminNav = []models.NavItem{
	{Label: "Dashboard", Path: "/admin-dashboard"},
	{Label: "Therapist Requests", Path: "/therapist-requests"},
	{Label: "Customers", Path: "/admin-customers"},
	{Label: "Therapists", Path: "/admin-therapist"},
	{Label: "Hospitals", Path: "/admin-hospitals"},
	{Label: "Quiz", Path: "/admin-quiz"},
}

// PermittedActions returns the navigation and capabilities for role. It is total:
// any value outside the known roles gets guest permissions.
func PermittedActions(role models.Role) models.Permissions {
	switch role {
	case models.RoleCustomer:
		return models.Permissions{
			Role:                 role,
			HomePath:             "/user-dashboard",
			NavItems:             clone(customerNav),
			CanBookAppointment:   true,
			CanCancelAppointment: true,
			CanViewAppointments:  true,
		}
	case models.RoleTherapist:
		return models.Permissions{
			Role:                role,
			HomePath:            "/therapist-dashboard",
			NavItems:            clone(therapistNav),
			CanViewAppointments: true,
			CanManageBlog:       true,
		}
	case models.RoleAdmin:
		return models.Permissions{
			Role:           role,
			HomePath:       "/admin-dashboard",
			NavItems:       clone(adminNav),
			CanManageUsers: true,
			CanManageBlog:  true,
		}
	default:
		return models.Permissions{
			Role:     models.RoleGuest,
			HomePath: "/",
			NavItems: clone(guestNav),
		}
	}
}

func clone(items []models.NavItem) []models.NavItem {
	return append([]models.NavItem(nil), items...)
}
