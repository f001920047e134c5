// Package webclient is the server-rendered client: it resolves the
// current view from the URL, mirrors catalog data through the API
// gateway, and re-renders the whole page on every navigation.
package webclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"adipo-server/internal/model"
	"adipo-server/internal/view"
	"adipo-server/pkg/apiclient"
	"adipo-server/pkg/urlcheck"
)

// initialLoadBudget bounds the first data fetch; whichever of data or
// deadline wins decides whether real or fallback content paints.
const initialLoadBudget = 5 * time.Second

type App struct {
	api      *apiclient.Client
	renderer *view.Renderer
	policy   urlcheck.Policy
}

func New(apiBaseURL string) (*App, error) {
	r, err := view.NewRenderer()
	if err != nil {
		return nil, err
	}
	return &App{
		api:      apiclient.New(apiBaseURL, apiclient.NewMemoryTokens(), apiclient.DefaultTimeout),
		renderer: r,
		policy:   urlcheck.Default(),
	}, nil
}

func (a *App) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/home", http.StatusFound)
	})
	mux.HandleFunc("GET /{view}", a.handleView)

	mux.HandleFunc("POST /login", a.handleLogin)
	mux.HandleFunc("POST /register", a.handleRegister)
	mux.HandleFunc("POST /logout", a.handleLogout)
	mux.HandleFunc("POST /admin-login", a.handleAdminLogin)
	mux.HandleFunc("POST /admin-logout", a.handleAdminLogout)
	mux.HandleFunc("POST /comment", a.handleComment)
	mux.HandleFunc("POST /documentary", a.handleCreateDocumentary)
	mux.HandleFunc("POST /delete/{id}", a.handleDelete)
	mux.HandleFunc("POST /edit/{id}", a.handleEdit)
	mux.HandleFunc("POST /download/{id}", a.handleDownload)
	mux.HandleFunc("POST /contact", a.handleContact)
	mux.HandleFunc("POST /subscribe", a.handleSubscribe)

	return mux
}

// client binds the gateway to this request's cookies.
func (a *App) client(w http.ResponseWriter, r *http.Request) (*apiclient.Client, *cookieTokens) {
	ct := newCookieTokens(w, r)
	return a.api.WithTokens(ct), ct
}

func (a *App) handleView(w http.ResponseWriter, r *http.Request) {
	v, _ := view.Parse(r.PathValue("view"))
	client, ct := a.client(w, r)

	state := view.State{
		View:          v,
		UserLoggedIn:  ct.UserToken() != "",
		AdminLoggedIn: ct.AdminToken() != "",
		Category:      r.URL.Query().Get("category"),
		Toast:         popFlash(w, r),
	}

	// Only fetch what the resolved view paints.
	resolved := state.Resolve()
	needsDocs := resolved == view.ViewHome || resolved == view.ViewDocumentaries || resolved == view.ViewAdmin
	needsComments := resolved == view.ViewComments
	if needsDocs || needsComments {
		ctx, cancel := context.WithTimeout(r.Context(), initialLoadBudget)
		defer cancel()
		g, gctx := errgroup.WithContext(ctx)
		var docs apiclient.Result[[]model.Documentary]
		var comments apiclient.Result[[]model.Comment]
		if needsDocs {
			g.Go(func() error { docs = client.Documentaries(gctx); return nil })
		}
		if needsComments {
			g.Go(func() error { comments = client.Comments(gctx); return nil })
		}
		_ = g.Wait()
		state.Documentaries = docs.Value
		state.Comments = comments.Value
		state.Degraded = docs.Status == apiclient.Degraded || comments.Status == apiclient.Degraded
	}

	page, err := a.renderer.Render(state)
	if err != nil {
		log.Error().Err(err).Str("view", string(v)).Msg("render failed")
		http.Error(w, "render error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(page)
}

func (a *App) handleLogin(w http.ResponseWriter, r *http.Request) {
	client, _ := a.client(w, r)
	email := r.FormValue("email")
	password := r.FormValue("password")
	if email == "" || password == "" {
		redirectWithToast(w, r, "/login", view.ToastError, "Please fill in all fields")
		return
	}
	res := client.UserLogin(r.Context(), email, password)
	if res.Status != apiclient.Ok {
		redirectWithToast(w, r, "/login", view.ToastError, "Invalid email or password")
		return
	}
	redirectWithToast(w, r, "/home", view.ToastSuccess, "Login successful! Welcome back.")
}

func (a *App) handleRegister(w http.ResponseWriter, r *http.Request) {
	client, _ := a.client(w, r)
	name := r.FormValue("name")
	email := r.FormValue("email")
	password := r.FormValue("password")
	confirm := r.FormValue("confirm")
	if name == "" || email == "" || password == "" {
		redirectWithToast(w, r, "/register", view.ToastError, "Please fill in all fields")
		return
	}
	if password != confirm {
		redirectWithToast(w, r, "/register", view.ToastError, "Passwords do not match")
		return
	}
	res := client.Register(r.Context(), name, email, password)
	if res.Status != apiclient.Ok {
		redirectWithToast(w, r, "/register", view.ToastError, "Registration failed. Please try again.")
		return
	}
	redirectWithToast(w, r, "/home", view.ToastSuccess, "Registration successful! Welcome to Adipo Documentaries.")
}

func (a *App) handleLogout(w http.ResponseWriter, r *http.Request) {
	ct := newCookieTokens(w, r)
	ct.write(userTokenCookie, "", -1)
	redirectWithToast(w, r, "/home", view.ToastInfo, "Logged out successfully")
}

func (a *App) handleAdminLogin(w http.ResponseWriter, r *http.Request) {
	client, _ := a.client(w, r)
	username := r.FormValue("username")
	password := r.FormValue("password")
	if username == "" || password == "" {
		redirectWithToast(w, r, "/admin", view.ToastError, "Please fill in all fields")
		return
	}
	res := client.AdminLogin(r.Context(), username, password)
	if res.Status != apiclient.Ok {
		redirectWithToast(w, r, "/admin", view.ToastError, "Invalid admin credentials")
		return
	}
	redirectWithToast(w, r, "/admin", view.ToastSuccess, "Admin login successful!")
}

func (a *App) handleAdminLogout(w http.ResponseWriter, r *http.Request) {
	ct := newCookieTokens(w, r)
	ct.write(adminTokenCookie, "", -1)
	redirectWithToast(w, r, "/home", view.ToastInfo, "Admin logged out")
}

func (a *App) handleComment(w http.ResponseWriter, r *http.Request) {
	client, ct := a.client(w, r)
	if ct.UserToken() == "" {
		redirectWithToast(w, r, "/login", view.ToastWarning, "Please login to post comments")
		return
	}
	req := apiclient.CreateCommentRequest{
		Author: r.FormValue("author"),
		Email:  r.FormValue("email"),
		Text:   r.FormValue("text"),
	}
	if req.Author == "" || req.Email == "" || req.Text == "" {
		redirectWithToast(w, r, "/comments", view.ToastError, "Please fill in all fields")
		return
	}
	res := client.CreateComment(r.Context(), req)
	if res.Status == apiclient.Failed {
		redirectWithToast(w, r, "/comments", view.ToastError, "Comment could not be posted")
		return
	}
	redirectWithToast(w, r, "/comments", view.ToastSuccess, "Comment posted successfully!")
}

func (a *App) handleCreateDocumentary(w http.ResponseWriter, r *http.Request) {
	client, ct := a.client(w, r)
	if ct.AdminToken() == "" {
		redirectWithToast(w, r, "/admin", view.ToastError, "Admin access required")
		return
	}
	req := apiclient.CreateDocumentaryRequest{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Category:    r.FormValue("category"),
		ImageURL:    r.FormValue("image_url"),
	}
	if v := r.FormValue("video_url"); v != "" {
		req.VideoURL = &v
	}
	if v := r.FormValue("pdf_url"); v != "" {
		req.PDFURL = &v
	}
	if v := r.FormValue("duration"); v != "" {
		req.Duration = &v
	}
	if req.Title == "" || req.Description == "" || req.Category == "" || req.ImageURL == "" {
		redirectWithToast(w, r, "/admin", view.ToastError, "Please fill all required fields")
		return
	}
	if !a.policy.Image.Valid(req.ImageURL) {
		redirectWithToast(w, r, "/admin", view.ToastError, "Please enter a valid image URL (jpg, png, gif, etc.)")
		return
	}
	if req.VideoURL != nil && !a.policy.Video.Valid(*req.VideoURL) {
		redirectWithToast(w, r, "/admin", view.ToastError, "Please enter a valid YouTube, Vimeo, or direct video URL")
		return
	}
	if req.PDFURL != nil && !a.policy.PDF.Valid(*req.PDFURL) {
		redirectWithToast(w, r, "/admin", view.ToastError, "Please enter a valid PDF URL")
		return
	}
	res := client.CreateDocumentary(r.Context(), req)
	if res.Status == apiclient.Failed {
		redirectWithToast(w, r, "/admin", view.ToastError, "Failed to add documentary")
		return
	}
	redirectWithToast(w, r, "/admin", view.ToastSuccess, "Documentary added successfully!")
}

func (a *App) handleDelete(w http.ResponseWriter, r *http.Request) {
	client, ct := a.client(w, r)
	if ct.AdminToken() == "" {
		redirectWithToast(w, r, "/admin", view.ToastError, "Admin access required")
		return
	}
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		redirectWithToast(w, r, "/admin", view.ToastError, "Invalid documentary id")
		return
	}
	res := client.DeleteDocumentary(r.Context(), id)
	if res.Status == apiclient.Failed {
		redirectWithToast(w, r, "/admin", view.ToastError, "Failed to delete documentary")
		return
	}
	redirectWithToast(w, r, "/admin", view.ToastSuccess, "Documentary deleted successfully")
}

func (a *App) handleEdit(w http.ResponseWriter, r *http.Request) {
	redirectWithToast(w, r, "/admin", view.ToastInfo, "Edit feature coming soon")
}

func (a *App) handleDownload(w http.ResponseWriter, r *http.Request) {
	client, ct := a.client(w, r)
	if ct.UserToken() == "" {
		redirectWithToast(w, r, "/login", view.ToastWarning, "Please login to download documentaries")
		return
	}
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		redirectWithToast(w, r, "/documentaries", view.ToastError, "Invalid documentary id")
		return
	}
	_ = client.TrackDownload(r.Context(), id)
	// Even a degraded track still starts the local download experience.
	redirectWithToast(w, r, backTo(r, "/documentaries"), view.ToastSuccess, "Download started!")
}

func (a *App) handleContact(w http.ResponseWriter, r *http.Request) {
	// No backend endpoint; acknowledge and move on.
	redirectWithToast(w, r, "/contact", view.ToastSuccess, "Message sent! We will get back to you soon.")
}

func (a *App) handleSubscribe(w http.ResponseWriter, r *http.Request) {
	if r.FormValue("email") == "" {
		redirectWithToast(w, r, "/subscribe", view.ToastError, "Please enter your email")
		return
	}
	redirectWithToast(w, r, "/subscribe", view.ToastSuccess, "Subscribed! Watch your inbox.")
}

// backTo prefers the referring view for post-action redirects.
func backTo(r *http.Request, fallback string) string {
	ref := r.Header.Get("Referer")
	if ref == "" {
		return fallback
	}
	u, err := url.Parse(ref)
	if err != nil || !strings.HasPrefix(u.Path, "/") {
		return fallback
	}
	return u.Path
}
