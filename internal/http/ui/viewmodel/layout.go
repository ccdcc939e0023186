package viewmodel

import domainauth "github.com/target/leave-ui/internal/domain/auth"

// User represents the authenticated user context exposed to templates.
type User struct {
	Name       string
	Email      string
	Role       domainauth.Role
	RoleLabel  string
	Department string
}

// NavItem is one entry of the sidebar navigation.
type NavItem struct {
	Label string
	Href  string
	Page  string
}

// Layout captures shared chrome metadata (titles, navigation state, auth flags).
type Layout struct {
	Title           string
	PageTitle       string
	CurrentPage     string
	CSRFToken       string
	IsAuthenticated bool
	User            *User
	Nav             []NavItem
}

// Page identifiers shared by navigation and the content template lookup.
const (
	PageDashboard          = "dashboard"
	PageApply              = "apply"
	PageBalance            = "balance"
	PageRequests           = "requests"
	PageManagerPending     = "manager-pending"
	PageManagerHistory     = "manager-history"
	PageAdminUsers         = "admin-users"
	PageAdminUserForm      = "admin-user-form"
	PageAdminLeaveTypes    = "admin-leave-types"
	PageAdminLeaveTypeForm = "admin-leave-type-form"
	PageAdminHolidays      = "admin-holidays"
	PageAdminHolidayForm   = "admin-holiday-form"
	PageLogin              = "login"
)

// NavFor returns the navigation entries a role may use, dashboard first.
func NavFor(role domainauth.Role) []NavItem {
	nav := []NavItem{{Label: "Dashboard", Href: "/", Page: PageDashboard}}
	switch role {
	case domainauth.RoleEmployee:
		nav = append(nav,
			NavItem{Label: "Apply Leave", Href: "/apply", Page: PageApply},
			NavItem{Label: "Leave Balance", Href: "/balance", Page: PageBalance},
			NavItem{Label: "My Requests", Href: "/requests", Page: PageRequests},
		)
	case domainauth.RoleManager:
		nav = append(nav,
			NavItem{Label: "Pending Approvals", Href: "/manager/pending", Page: PageManagerPending},
			NavItem{Label: "Request History", Href: "/manager/history", Page: PageManagerHistory},
		)
	case domainauth.RoleAdmin:
		nav = append(nav,
			NavItem{Label: "Users", Href: "/admin/users", Page: PageAdminUsers},
			NavItem{Label: "Leave Types", Href: "/admin/leave-types", Page: PageAdminLeaveTypes},
			NavItem{Label: "Holidays", Href: "/admin/holidays", Page: PageAdminHolidays},
		)
	}
	return nav
}

// IsActive reports whether the nav item belongs to the current page, including its form pages.
func (n NavItem) IsActive(current string) bool {
	return current == n.Page || current == trimPlural(n.Page)+"-form"
}

func trimPlural(page string) string {
	if len(page) > 1 && page[len(page)-1] == 's' {
		return page[:len(page)-1]
	}
	return page
}
