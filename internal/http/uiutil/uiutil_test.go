package uiutil

import (
	"testing"
	"time"

	"github.com/target/leave-ui/internal/domain/model"
)

func TestFormatFriendlyDate(t *testing.T) {
	if got := FormatFriendlyDate(model.NewDate(2024, time.March, 5)); got != "Mar 5, 2024" {
		t.Errorf("FormatFriendlyDate() = %q", got)
	}
	if got := FormatFriendlyDate(model.Date{}); got != "" {
		t.Errorf("FormatFriendlyDate(zero) = %q, want empty", got)
	}
}

func TestDays(t *testing.T) {
	tests := map[int]string{0: "0 days", 1: "1 day", 2: "2 days", 14: "14 days"}
	for n, want := range tests {
		if got := Days(n); got != want {
			t.Errorf("Days(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestTruncateWithEllipsis(t *testing.T) {
	if got := TruncateWithEllipsis("short", 10); got != "short" {
		t.Errorf("got %q", got)
	}
	if got := TruncateWithEllipsis("a rather long reason", 8); got != "a rathe…" {
		t.Errorf("got %q", got)
	}
	if got := TruncateWithEllipsis("abc", 1); got != "…" {
		t.Errorf("got %q", got)
	}
}
