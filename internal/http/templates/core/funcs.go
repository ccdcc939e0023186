package core

import (
	"bytes"
	"errors"
	"html/template"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	domainauth "github.com/target/leave-ui/internal/domain/auth"
	"github.com/target/leave-ui/internal/domain/leave"
	"github.com/target/leave-ui/internal/domain/model"
	"github.com/target/leave-ui/internal/http/uiutil"
)

// Deps holds optional dependencies for constructing the core template func map.
type Deps struct {
	Template           **template.Template
	ContentTemplateFor func(string) string
}

var titleTag = language.English

// Funcs returns a template.FuncMap containing helpers that are broadly useful across templates.
func Funcs(deps Deps) template.FuncMap {
	funcs := template.FuncMap{
		"sectionTmpl":   deps.ContentTemplateFor,
		"formatDate":    uiutil.FormatFriendlyDate,
		"isoDate":       func(d model.Date) string { return d.String() },
		"friendlyTime":  friendlyTime,
		"days":          uiutil.Days,
		"truncateText":  uiutil.TruncateWithEllipsis,
		"titleCase":     TitleCase,
		"statusLabel":   StatusLabel,
		"statusClass":   StatusClass,
		"balanceStatus": leave.ClassifyBalance,
		"balanceClass":  BalanceClass,
		"balanceLabel":  BalanceLabel,
		"usage":         leave.UsagePercent,
		"roleLabel":     func(r domainauth.Role) string { return r.Label() },
		"deref":         deref,
		"add":           func(a, b int) int { return a + b },
		"sub":           func(a, b int) int { return a - b },
		"contains":      strings.Contains,
		"eqRole":        func(a domainauth.Role, b string) bool { return string(a) == b },
		"eqStatus":      func(a model.RequestStatus, b string) bool { return string(a) == b },
		"dict":          dict,
	}

	addRenderFuncs(funcs, deps)
	return funcs
}

func addRenderFuncs(funcs template.FuncMap, deps Deps) {
	funcs["renderSection"] = func(page string, data any) (template.HTML, error) {
		if deps.Template == nil || *deps.Template == nil {
			return "", errors.New("template not initialized")
		}
		var buf bytes.Buffer
		if err := (*deps.Template).ExecuteTemplate(&buf, deps.ContentTemplateFor(page), data); err != nil {
			return "", err
		}
		// #nosec G203 - rendered by our own html/template set; values were escaped during execution.
		return template.HTML(buf.String()), nil
	}
}

// TitleCase upper-cases the first letter of each word ("pending" -> "Pending").
func TitleCase(s string) string {
	return cases.Title(titleTag).String(strings.ReplaceAll(s, "_", " "))
}

// StatusLabel is the display label of a request status.
func StatusLabel(s model.RequestStatus) string {
	return TitleCase(string(s))
}

// StatusClass maps a request status to its badge class.
func StatusClass(s model.RequestStatus) string {
	switch s {
	case model.StatusApproved:
		return "badge-success"
	case model.StatusRejected:
		return "badge-danger"
	case model.StatusPending:
		return "badge-warning"
	default:
		return "badge-light"
	}
}

// BalanceClass maps remaining days to the balance card's badge class.
func BalanceClass(remaining int) string {
	switch leave.ClassifyBalance(remaining) {
	case leave.BalanceExhausted:
		return "badge-danger"
	case leave.BalanceLow:
		return "badge-warning"
	default:
		return "badge-success"
	}
}

// BalanceLabel is the badge text for remaining days.
func BalanceLabel(remaining int) string {
	switch leave.ClassifyBalance(remaining) {
	case leave.BalanceExhausted:
		return "Exhausted"
	case leave.BalanceLow:
		return "Low Balance"
	default:
		return "Available"
	}
}

func friendlyTime(ts any) string {
	switch v := ts.(type) {
	case time.Time:
		return uiutil.FormatFriendlyDateTime(v)
	case *time.Time:
		if v != nil {
			return uiutil.FormatFriendlyDateTime(*v)
		}
	}
	return ""
}

// dict builds a map from alternating key/value arguments so partials can take
// more than one value.
func dict(kv ...any) (map[string]any, error) {
	if len(kv)%2 != 0 {
		return nil, errors.New("dict requires an even number of arguments")
	}
	m := make(map[string]any, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			return nil, errors.New("dict keys must be strings")
		}
		m[key] = kv[i+1]
	}
	return m, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
