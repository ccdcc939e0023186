package httpx

import (
	"net/http"
	"strings"
	"time"

	domainauth "github.com/target/leave-ui/internal/domain/auth"
)

// DefaultSessionCookieName names the cookie carrying the session id.
const DefaultSessionCookieName = "session_id"

// CookieConfig controls the attributes of cookies set by the server.
type CookieConfig struct {
	Name   string
	Domain string
	// Secure forces the Secure attribute; otherwise it follows the request scheme.
	Secure bool
}

func (c CookieConfig) name() string {
	if c.Name == "" {
		return DefaultSessionCookieName
	}
	return c.Name
}

func (c CookieConfig) secure(r *http.Request) bool {
	return c.Secure || r.TLS != nil || isForwardedHTTPS(r)
}

// sessionID reads the session id cookie, or "".
func (c CookieConfig) sessionID(r *http.Request) string {
	cookie, err := r.Cookie(c.name())
	if err != nil {
		return ""
	}
	return cookie.Value
}

// setSession writes the session cookie based on the session's expiry.
func (c CookieConfig) setSession(w http.ResponseWriter, r *http.Request, s *domainauth.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.name(),
		Value:    s.ID,
		Path:     "/",
		Domain:   c.Domain,
		HttpOnly: true,
		Secure:   c.secure(r),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   max(int(time.Until(s.ExpiresAt).Seconds()), 1),
	})
}

// clearSession expires the session cookie, mirroring the attributes used to set it.
func (c CookieConfig) clearSession(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.name(),
		Value:    "",
		Path:     "/",
		Domain:   c.Domain,
		HttpOnly: true,
		Secure:   c.secure(r),
		MaxAge:   -1,
		Expires:  time.Unix(0, 0).UTC(),
		SameSite: http.SameSiteLaxMode,
	})
}

// isForwardedHTTPS checks if the request was forwarded over HTTPS.
// Handles comma-separated values in X-Forwarded-Proto header.
func isForwardedHTTPS(r *http.Request) bool {
	for _, proto := range strings.Split(r.Header.Get("X-Forwarded-Proto"), ",") {
		if strings.EqualFold(strings.TrimSpace(proto), "https") {
			return true
		}
	}
	return false
}
