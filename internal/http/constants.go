package httpx

import "github.com/target/leave-ui/internal/http/ui/viewmodel"

// Page identifiers, aliased from viewmodel so handlers and navigation agree.
const (
	PageDashboard          = viewmodel.PageDashboard
	PageApply              = viewmodel.PageApply
	PageBalance            = viewmodel.PageBalance
	PageRequests           = viewmodel.PageRequests
	PageManagerPending     = viewmodel.PageManagerPending
	PageManagerHistory     = viewmodel.PageManagerHistory
	PageAdminUsers         = viewmodel.PageAdminUsers
	PageAdminUserForm      = viewmodel.PageAdminUserForm
	PageAdminLeaveTypes    = viewmodel.PageAdminLeaveTypes
	PageAdminLeaveTypeForm = viewmodel.PageAdminLeaveTypeForm
	PageAdminHolidays      = viewmodel.PageAdminHolidays
	PageAdminHolidayForm   = viewmodel.PageAdminHolidayForm
	PageLogin              = viewmodel.PageLogin
)

// Template paths used for loading templates in tests and production.
const (
	TemplatePathFromRoot = "frontend/templates"       // From project root
	TemplatePathFromTest = "../../frontend/templates" // From internal/http test files
	staticPathFromRoot   = "frontend/static"
)

// FormMode represents the mode of a form (create or edit).
type FormMode string

const (
	// FormModeEdit indicates the form is in edit mode.
	FormModeEdit FormMode = "edit"
	// FormModeCreate indicates the form is in create mode.
	FormModeCreate FormMode = "create"
)

// Fallback messages shown when the backend gives no usable message.
const (
	msgLoginFailed        = "Login failed. Please try again."
	msgSubmitFailed       = "Failed to submit leave request"
	msgLoadBalances       = "Failed to load leave balances."
	msgLoadRequests       = "Failed to load leave requests."
	msgLoadLeaveTypes     = "Failed to load leave types."
	msgLoadDashboard      = "Some dashboard data could not be loaded."
	msgLoadUsers          = "Failed to load users."
	msgLoadHolidays       = "Failed to load holidays."
	msgReviewFailed       = "Failed to update the leave request."
	msgCancelFailed       = "Failed to cancel the leave request."
	msgSaveFailed         = "Failed to save changes."
	msgDeleteFailed       = "Failed to delete."
	msgFixBelow           = "Please fix the errors below."
	msgTooManyLogins      = "Too many login attempts. Please wait a minute and try again."
	msgRequestSubmitted   = "Leave request submitted successfully!"
	msgServiceUnavailable = "The service is temporarily unavailable. Please try again."
)

//nolint:gochecknoglobals // static read-only lookup for templates
var contentTemplates = map[string]string{
	PageDashboard:          "dashboard-content",
	PageApply:              "apply-content",
	PageBalance:            "balance-content",
	PageRequests:           "requests-content",
	PageManagerPending:     "manager-pending-content",
	PageManagerHistory:     "manager-history-content",
	PageAdminUsers:         "admin-users-content",
	PageAdminUserForm:      "admin-user-form-content",
	PageAdminLeaveTypes:    "admin-leave-types-content",
	PageAdminLeaveTypeForm: "admin-leave-type-form-content",
	PageAdminHolidays:      "admin-holidays-content",
	PageAdminHolidayForm:   "admin-holiday-form-content",
	PageLogin:              "login-content",
}

// ContentTemplateFor returns the content template name for a page, defaulting to the dashboard.
func ContentTemplateFor(page string) string {
	if name, ok := contentTemplates[page]; ok {
		return name
	}
	return "dashboard-content"
}
