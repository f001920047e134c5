// Package view renders the client UI: a closed set of named views over an
// in-memory mirror of the catalog. Rendering is a pure function of State;
// there is no retained widget tree to mutate.
package view

import (
	"time"

	"adipo-server/internal/model"
)

// View names one screen state of the client UI.
type View string

const (
	ViewHome          View = "home"
	ViewDocumentaries View = "documentaries"
	ViewSubscribe     View = "subscribe"
	ViewDonate        View = "donate"
	ViewComments      View = "comments"
	ViewContact       View = "contact"
	ViewAdmin         View = "admin"
	ViewLogin         View = "login"
	ViewRegister      View = "register"
)

var allViews = map[View]struct{}{
	ViewHome: {}, ViewDocumentaries: {}, ViewSubscribe: {}, ViewDonate: {},
	ViewComments: {}, ViewContact: {}, ViewAdmin: {}, ViewLogin: {}, ViewRegister: {},
}

// Parse maps a raw string to a View; unknown names land on home.
func Parse(s string) (View, bool) {
	v := View(s)
	if _, ok := allViews[v]; ok {
		return v, true
	}
	return ViewHome, false
}

// Toast kinds.
const (
	ToastSuccess = "success"
	ToastError   = "error"
	ToastInfo    = "info"
	ToastWarning = "warning"
)

// Toast is a transient notification. At most one is visible at a time;
// a new one replaces whatever is showing. AutoDismiss is how long the
// client keeps it before clearing.
type Toast struct {
	Kind    string
	Message string
}

// AutoDismiss is the toast lifetime before it clears itself.
const AutoDismiss = 5 * time.Second

// State is everything a render needs. It mirrors remote data best-effort;
// Degraded marks that the mirror came from fallback data rather than the
// server.
type State struct {
	View          View
	UserLoggedIn  bool
	AdminLoggedIn bool
	Documentaries []model.Documentary
	Comments      []model.Comment
	Category      string // documentaries grid filter; empty means all
	Degraded      bool
	Toast         *Toast
}

// publicViews need no login.
var publicViews = map[View]struct{}{
	ViewHome: {}, ViewLogin: {}, ViewRegister: {},
}

// Resolve applies the guard logic: anonymous visitors are sent to login
// for any non-public view. The admin view is not redirected here; its
// template shows the admin login form until an admin token is present.
func (s State) Resolve() View {
	if !s.UserLoggedIn {
		if _, ok := publicViews[s.View]; !ok && s.View != ViewAdmin {
			return ViewLogin
		}
	}
	return s.View
}

// FilteredDocumentaries applies the category filter for the grid.
func (s State) FilteredDocumentaries() []model.Documentary {
	if s.Category == "" {
		return s.Documentaries
	}
	out := make([]model.Documentary, 0, len(s.Documentaries))
	for _, d := range s.Documentaries {
		if d.Category == s.Category {
			out = append(out, d)
		}
	}
	return out
}

// TotalDownloads sums the mirrored counters for the stats banner.
func (s State) TotalDownloads() int64 {
	var sum int64
	for _, d := range s.Documentaries {
		sum += d.Downloads
	}
	return sum
}
