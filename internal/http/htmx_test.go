package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHTMX_RequestDetection(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/x", nil)
	r.Header.Set("Hx-Request", "true")
	r.Header.Set("Hx-Boosted", "true")
	if !IsHTMX(r) {
		t.Fatal("expected IsHTMX true")
	}
	if !IsBoosted(r) {
		t.Fatal("expected IsBoosted true")
	}
	if WantsPartial(r) {
		t.Fatal("boosted navigation should get the full page")
	}

	r2 := httptest.NewRequest(http.MethodGet, "/x", nil)
	if IsHTMX(r2) || IsBoosted(r2) || WantsPartial(r2) {
		t.Fatal("expected defaults to false")
	}
}

func TestHTMX_SetHXTrigger(t *testing.T) {
	rr := httptest.NewRecorder()
	SetHXTrigger(rr, "saved", map[string]any{"id": "123"})

	var payload map[string]map[string]string
	if err := json.Unmarshal([]byte(rr.Header().Get("Hx-Trigger")), &payload); err != nil {
		t.Fatalf("unmarshal trigger: %v", err)
	}
	if payload["saved"]["id"] != "123" {
		t.Fatalf("unexpected trigger payload: %v", payload)
	}

	rr2 := httptest.NewRecorder()
	SetHXTrigger(rr2, "refresh", nil)
	if got := rr2.Header().Get("Hx-Trigger"); got != `{"refresh":true}` {
		t.Fatalf("Hx-Trigger = %q", got)
	}
}

func TestRedirect(t *testing.T) {
	t.Run("plain request gets 303", func(t *testing.T) {
		rr := httptest.NewRecorder()
		redirect(rr, httptest.NewRequest(http.MethodPost, "/x", nil), "/requests")
		if rr.Code != http.StatusSeeOther || rr.Header().Get("Location") != "/requests" {
			t.Fatalf("got %d %q", rr.Code, rr.Header().Get("Location"))
		}
	})

	t.Run("htmx request gets Hx-Redirect", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/x", nil)
		r.Header.Set("Hx-Request", "true")
		redirect(rr, r, "/login")
		if rr.Code != http.StatusNoContent || rr.Header().Get("Hx-Redirect") != "/login" {
			t.Fatalf("got %d %q", rr.Code, rr.Header().Get("Hx-Redirect"))
		}
	})
}

func TestTriggerToast(t *testing.T) {
	rr := httptest.NewRecorder()
	triggerToast(rr, "  ", "success")
	if rr.Header().Get("Hx-Trigger") != "" {
		t.Fatal("blank message should not trigger a toast")
	}
	triggerToast(rr, "Saved", "success")
	if rr.Header().Get("Hx-Trigger") == "" {
		t.Fatal("expected toast trigger")
	}
}

func TestHTMX_SetHXTrigger_MergesEvents(t *testing.T) {
	rr := httptest.NewRecorder()
	triggerToast(rr, "Leave request cancelled.", "success")
	SetHXTrigger(rr, "nav:activate", map[string]string{"path": "/requests"})

	var payload map[string]map[string]string
	if err := json.Unmarshal([]byte(rr.Header().Get("Hx-Trigger")), &payload); err != nil {
		t.Fatalf("unmarshal trigger: %v", err)
	}
	if payload["showToast"]["message"] != "Leave request cancelled." {
		t.Fatalf("toast lost: %v", payload)
	}
	if payload["nav:activate"]["path"] != "/requests" {
		t.Fatalf("nav event missing: %v", payload)
	}
}
