package uiutil

import (
	"strconv"
	"strings"
	"time"

	"github.com/target/leave-ui/internal/domain/model"
)

const (
	FriendlyDateLayout     = "Jan 2, 2006"
	FriendlyDateTimeLayout = "Jan 2, 2006 3:04 PM"
)

// FormatFriendlyDate renders a calendar date; the zero date renders as "".
func FormatFriendlyDate(d model.Date) string {
	return d.Format(FriendlyDateLayout)
}

// FormatFriendlyDateTime returns a consistent, user-friendly local timestamp representation.
func FormatFriendlyDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format(FriendlyDateTimeLayout)
}

// Days renders a day count with the right plural, e.g. "1 day", "3 days".
func Days(n int) string {
	if n == 1 || n == -1 {
		return strconv.Itoa(n) + " day"
	}
	return strconv.Itoa(n) + " days"
}

// TruncateWithEllipsis shortens text to the provided rune limit and appends an ellipsis when truncated.
func TruncateWithEllipsis(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	if limit <= 1 {
		return "…"
	}
	return strings.TrimSpace(string(runes[:limit-1])) + "…"
}
