// Package flash provides one-time web notices persisted across redirects.
package flash

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/manishyadav/portfolio/internal/services/web/platform/requestmeta"
)

// CookieName is the cookie carrying the pending notice.
const CookieName = "portfolio_flash"

// maxAge bounds how long an unread notice survives.
const maxAge = 60

// Kind classifies notice presentation.
type Kind string

const (
	KindSuccess Kind = "success"
	KindInfo    Kind = "info"
	KindWarning Kind = "warning"
	KindError   Kind = "error"
)

// Notice references one localized message.
type Notice struct {
	Kind Kind   `json:"kind"`
	Key  string `json:"key"`
}

// Success creates a success notice for key.
func Success(key string) Notice { return Notice{Kind: KindSuccess, Key: key} }

// Warning creates a warning notice for key.
func Warning(key string) Notice { return Notice{Kind: KindWarning, Key: key} }

// Error creates an error notice for key.
func Error(key string) Notice { return Notice{Kind: KindError, Key: key} }

// Store reads and writes the flash cookie.
type Store struct {
	Policy requestmeta.SchemePolicy
}

// Write stores notice for the next page render. Invalid notices are dropped.
func (s Store) Write(w http.ResponseWriter, r *http.Request, notice Notice) {
	if w == nil {
		return
	}
	normalized, ok := normalize(notice)
	if !ok {
		return
	}
	payload, err := json.Marshal(normalized)
	if err != nil {
		return
	}
	http.SetCookie(w, s.cookie(r, base64.RawURLEncoding.EncodeToString(payload), maxAge))
}

// ReadAndClear returns the pending notice, if any, and expires the cookie.
func (s Store) ReadAndClear(w http.ResponseWriter, r *http.Request) (Notice, bool) {
	if r == nil {
		return Notice{}, false
	}
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return Notice{}, false
	}
	if w != nil {
		http.SetCookie(w, s.cookie(r, "", -1))
	}
	return decode(cookie.Value)
}

func (s Store) cookie(r *http.Request, value string, age int) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   age,
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPS(r, s.Policy),
		SameSite: http.SameSiteLaxMode,
	}
}

func decode(raw string) (Notice, bool) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return Notice{}, false
	}
	decoded, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return Notice{}, false
	}
	var notice Notice
	if err := json.Unmarshal(decoded, &notice); err != nil {
		return Notice{}, false
	}
	return normalize(notice)
}

func normalize(notice Notice) (Notice, bool) {
	notice.Key = strings.TrimSpace(notice.Key)
	if notice.Key == "" {
		return Notice{}, false
	}
	notice.Kind = Kind(strings.ToLower(strings.TrimSpace(string(notice.Kind))))
	switch notice.Kind {
	case KindSuccess, KindInfo, KindWarning, KindError:
		return notice, true
	default:
		return Notice{}, false
	}
}
