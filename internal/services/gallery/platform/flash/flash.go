// Package flash provides one-time gallery notices persisted across the
// redirect that follows an action dispatch.
package flash

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/louisbranch/uikit/internal/services/gallery/platform/httpx"
	"github.com/louisbranch/uikit/internal/ui/banner"
)

// CookieName is the cookie carrying the pending notice.
const CookieName = "uikit_flash"

// Kind classifies flash notice presentation.
type Kind string

const (
	KindSuccess Kind = "success"
	KindInfo    Kind = "info"
	KindWarning Kind = "warning"
	KindError   Kind = "error"
)

// Notice stores one flash message reference.
type Notice struct {
	Kind Kind   `json:"kind"`
	Key  string `json:"key"`
}

// Status maps the notice kind onto a banner status.
func (n Notice) Status() banner.Status {
	switch n.Kind {
	case KindSuccess:
		return banner.StatusSuccess
	case KindWarning:
		return banner.StatusWarning
	case KindError:
		return banner.StatusCritical
	default:
		return banner.StatusInfo
	}
}

// Write stores a flash notice cookie for the next page render.
func Write(w http.ResponseWriter, r *http.Request, notice Notice) {
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
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    base64.RawURLEncoding.EncodeToString(payload),
		Path:     "/",
		HttpOnly: true,
		Secure:   httpx.IsHTTPS(r),
		SameSite: http.SameSiteLaxMode,
	})
}

// ReadAndClear reads the pending notice and expires its cookie.
func ReadAndClear(w http.ResponseWriter, r *http.Request) (Notice, bool) {
	if r == nil {
		return Notice{}, false
	}
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie == nil {
		return Notice{}, false
	}
	if w != nil {
		Clear(w, r)
	}
	raw, err := base64.RawURLEncoding.DecodeString(strings.TrimSpace(cookie.Value))
	if err != nil {
		return Notice{}, false
	}
	var notice Notice
	if err := json.Unmarshal(raw, &notice); err != nil {
		return Notice{}, false
	}
	return normalize(notice)
}

// Clear expires the flash cookie.
func Clear(w http.ResponseWriter, r *http.Request) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   httpx.IsHTTPS(r),
		SameSite: http.SameSiteLaxMode,
	})
}

func normalize(notice Notice) (Notice, bool) {
	notice.Key = strings.TrimSpace(notice.Key)
	if notice.Key == "" {
		return Notice{}, false
	}
	switch notice.Kind {
	case KindSuccess, KindInfo, KindWarning, KindError:
	default:
		notice.Kind = KindInfo
	}
	return notice, true
}
