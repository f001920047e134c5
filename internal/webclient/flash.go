package webclient

import (
	"net/http"
	"net/url"
	"strings"

	"adipo-server/internal/view"
)

const flashCookie = "flash"

// redirectWithToast stores a one-shot toast and redirects. The next GET
// pops it; a new toast replaces any pending one, matching the one-visible
// toast rule.
func redirectWithToast(w http.ResponseWriter, r *http.Request, to, kind, message string) {
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    url.QueryEscape(kind + "|" + message),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, to, http.StatusSeeOther)
}

// popFlash reads and clears the pending toast, if any.
func popFlash(w http.ResponseWriter, r *http.Request) *view.Toast {
	ck, err := r.Cookie(flashCookie)
	if err != nil || ck.Value == "" {
		return nil
	}
	http.SetCookie(w, &http.Cookie{Name: flashCookie, Value: "", Path: "/", MaxAge: -1})
	raw, err := url.QueryUnescape(ck.Value)
	if err != nil {
		return nil
	}
	kind, message, ok := strings.Cut(raw, "|")
	if !ok || message == "" {
		return nil
	}
	switch kind {
	case view.ToastSuccess, view.ToastError, view.ToastInfo, view.ToastWarning:
	default:
		kind = view.ToastInfo
	}
	return &view.Toast{Kind: kind, Message: message}
}
