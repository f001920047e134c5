package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"adipo-server/internal/model"
	"adipo-server/internal/repos"
	"adipo-server/internal/routes"
	"adipo-server/internal/server"
	pkgauth "adipo-server/pkg/auth"
	"adipo-server/pkg/cache"
	"adipo-server/pkg/signer"
)

// fakeCatalog is an in-memory DocumentaryStore/CommentStore/UserStore.
type fakeCatalog struct {
	mu     sync.Mutex
	nextID int64
	docs   []model.Documentary
	cmts   []model.Comment

	admin model.AdminUser
	users map[string]model.User
}

func newFakeCatalog(t *testing.T) *fakeCatalog {
	t.Helper()
	hash, err := pkgauth.HashPassword("admin123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	return &fakeCatalog{
		nextID: 1,
		admin:  model.AdminUser{ID: 1, Username: "admin", PasswordHash: hash},
		users:  make(map[string]model.User),
	}
}

func (f *fakeCatalog) ListPage(_ context.Context, cursorAdded *time.Time, cursorID *int64, limit int32) ([]model.Documentary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]model.Documentary, 0, len(f.docs))
	// newest first, strictly after the cursor position
	for i := len(f.docs) - 1; i >= 0 && len(out) < int(limit); i-- {
		d := f.docs[i]
		if cursorAdded != nil && cursorID != nil {
			before := d.DateAdded.Before(*cursorAdded) ||
				(d.DateAdded.Equal(*cursorAdded) && d.ID < *cursorID)
			if !before {
				continue
			}
		}
		out = append(out, d)
	}
	return out, nil
}

func (f *fakeCatalog) Create(_ context.Context, p repos.CreateDocumentaryParams) (model.Documentary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rating := 4.0
	if p.Rating != nil {
		rating = *p.Rating
	}
	d := model.Documentary{
		ID: f.nextID, Title: p.Title, Description: p.Description,
		Category: p.Category, ImageURL: p.ImageURL, VideoURL: p.VideoURL,
		PDFURL: p.PDFURL, Rating: rating, Duration: p.Duration,
		// distinct, increasing timestamps so keyset ordering is stable
		DateAdded: time.Unix(1_700_000_000+f.nextID, 0).UTC(),
	}
	f.nextID++
	f.docs = append(f.docs, d)
	return d, nil
}

func (f *fakeCatalog) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, d := range f.docs {
		if d.ID == id {
			f.docs = append(f.docs[:i], f.docs[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeCatalog) IncrementDownloads(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.docs {
		if f.docs[i].ID == id {
			f.docs[i].Downloads++
			break
		}
	}
	return nil
}

func (f *fakeCatalog) Count(context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.docs)), nil
}

func (f *fakeCatalog) ListPageComments(_ context.Context, status string, _ *time.Time, _ *int64, limit int32) ([]model.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]model.Comment, 0, len(f.cmts))
	for i := len(f.cmts) - 1; i >= 0 && len(out) < int(limit); i-- {
		if f.cmts[i].Status == status {
			out = append(out, f.cmts[i])
		}
	}
	return out, nil
}

func (f *fakeCatalog) CreateComment(_ context.Context, p repos.CreateCommentParams) (model.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c := model.Comment{
		ID: f.nextID, Author: p.Author, Email: p.Email, Text: p.Text,
		Status: p.Status, DocumentaryID: p.DocumentaryID, DateAdded: time.Now().UTC(),
	}
	f.nextID++
	f.cmts = append(f.cmts, c)
	return c, nil
}

func (f *fakeCatalog) GetAdmin(_ context.Context, username string) (model.AdminUser, error) {
	if username != f.admin.Username {
		return model.AdminUser{}, repos.ErrNotFound
	}
	return f.admin, nil
}

func (f *fakeCatalog) GetUserByEmail(_ context.Context, email string) (model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[email]
	if !ok {
		return model.User{}, repos.ErrNotFound
	}
	return u, nil
}

func (f *fakeCatalog) CreateUser(_ context.Context, name, email, hash string) (model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[email]; ok {
		return model.User{}, repos.ErrDuplicateEmail
	}
	u := model.User{ID: f.nextID, Name: name, Email: email, PasswordHash: hash, DateAdded: time.Now().UTC()}
	f.nextID++
	f.users[email] = u
	return u, nil
}

// commentStore adapts the differently-named comment methods to the
// routes.CommentStore interface.
type commentStore struct{ *fakeCatalog }

func (c commentStore) ListPage(ctx context.Context, status string, a *time.Time, id *int64, limit int32) ([]model.Comment, error) {
	return c.ListPageComments(ctx, status, a, id, limit)
}
func (c commentStore) Create(ctx context.Context, p repos.CreateCommentParams) (model.Comment, error) {
	return c.CreateComment(ctx, p)
}

func newTestServer(t *testing.T) (*fakeCatalog, http.Handler, *pkgauth.Tokens) {
	t.Helper()
	fc := newFakeCatalog(t)
	tokens := pkgauth.NewTokens([]byte("test-secret"), time.Hour)
	d := routes.Deps{
		Documentaries: fc,
		Comments:      commentStore{fc},
		Users:         fc,
		Cache:         cache.NewInMemory(),
		Cursors:       signer.NewHMAC([]byte("test-secret")),
		Tokens:        tokens,
		MaxUploadSize: 1 << 20,
		Env:           "test",
		StartedAt:     time.Now(),
	}
	return fc, server.New(d, t.TempDir(), nil).Router(), tokens
}

func doJSON(t *testing.T, h http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rd *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		rd = bytes.NewReader(b)
	} else {
		rd = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	_, h, _ := newTestServer(t)
	w := doJSON(t, h, http.MethodGet, "/health", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected application/json, got %s", ct)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["status"] != "ok" || body["environment"] != "test" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func adminToken(t *testing.T, h http.Handler) string {
	t.Helper()
	w := doJSON(t, h, http.MethodPost, "/api/admin/login", "",
		map[string]string{"username": "admin", "password": "admin123"})
	if w.Code != http.StatusOK {
		t.Fatalf("admin login: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("empty token")
	}
	return resp.Token
}

func TestAdminLoginWrongPassword(t *testing.T) {
	_, h, _ := newTestServer(t)
	w := doJSON(t, h, http.MethodPost, "/api/admin/login", "",
		map[string]string{"username": "admin", "password": "nope"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if strings.Contains(w.Body.String(), `"token"`) {
		t.Fatal("no token should be issued on bad credentials")
	}
}

func TestAdminLoginMissingFields(t *testing.T) {
	_, h, _ := newTestServer(t)
	w := doJSON(t, h, http.MethodPost, "/api/admin/login", "",
		map[string]string{"username": "admin"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestCreateDocumentaryRequiresToken(t *testing.T) {
	fc, h, _ := newTestServer(t)
	payload := map[string]any{
		"title": "T", "description": "D", "category": "nature",
		"image_url": "https://images.unsplash.com/x.jpg",
	}
	if w := doJSON(t, h, http.MethodPost, "/api/documentaries", "", payload); w.Code != http.StatusUnauthorized {
		t.Fatalf("no token: expected 401, got %d", w.Code)
	}
	if w := doJSON(t, h, http.MethodPost, "/api/documentaries", "garbage", payload); w.Code != http.StatusUnauthorized {
		t.Fatalf("bad token: expected 401, got %d", w.Code)
	}
	if len(fc.docs) != 0 {
		t.Fatalf("rejected request must not create records, have %d", len(fc.docs))
	}
}

func TestUserTokenCannotCreateDocumentary(t *testing.T) {
	_, h, tokens := newTestServer(t)
	userTok, err := tokens.Issue("user@example.com", pkgauth.RoleUser, time.Now())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	w := doJSON(t, h, http.MethodPost, "/api/documentaries", userTok, map[string]any{
		"title": "T", "description": "D", "category": "nature",
		"image_url": "https://images.unsplash.com/x.jpg",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for user-role token, got %d", w.Code)
	}
}

func TestCreateDocumentaryValidation(t *testing.T) {
	_, h, _ := newTestServer(t)
	tok := adminToken(t, h)
	for _, missing := range []string{"title", "description", "category", "image_url"} {
		payload := map[string]any{
			"title": "T", "description": "D", "category": "nature",
			"image_url": "https://images.unsplash.com/x.jpg",
		}
		delete(payload, missing)
		w := doJSON(t, h, http.MethodPost, "/api/documentaries", tok, payload)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("missing %s: expected 400, got %d", missing, w.Code)
		}
	}
}

func TestEndToEndAdminScenario(t *testing.T) {
	_, h, _ := newTestServer(t)
	tok := adminToken(t, h)

	w := doJSON(t, h, http.MethodPost, "/api/documentaries", tok, map[string]any{
		"title": "T", "description": "D", "category": "nature",
		"image_url": "https://images.unsplash.com/x.jpg",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("create: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var created model.Documentary
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("created record must carry an assigned id")
	}

	w = doJSON(t, h, http.MethodGet, "/api/documentaries", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", w.Code)
	}
	var list []model.Documentary
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list) != 1 || list[0].Title != "T" || list[0].Downloads != 0 {
		t.Fatalf("unexpected list: %+v", list)
	}
	// image URL round-trips unchanged
	if list[0].ImageURL != "https://images.unsplash.com/x.jpg" {
		t.Fatalf("image url transformed: %s", list[0].ImageURL)
	}
}

func TestListDocumentariesCursorChain(t *testing.T) {
	_, h, _ := newTestServer(t)
	tok := adminToken(t, h)
	for _, title := range []string{"First", "Second", "Third"} {
		w := doJSON(t, h, http.MethodPost, "/api/documentaries", tok, map[string]any{
			"title": title, "description": "D", "category": "nature",
			"image_url": "https://images.unsplash.com/x.jpg",
		})
		if w.Code != http.StatusOK {
			t.Fatalf("create %s: expected 200, got %d", title, w.Code)
		}
	}

	w := doJSON(t, h, http.MethodGet, "/api/documentaries?limit=2", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("first page: expected 200, got %d", w.Code)
	}
	if got := w.Header().Get("X-Total-Count"); got != "3" {
		t.Fatalf("X-Total-Count = %q, want 3", got)
	}
	next := w.Header().Get("X-Next-Cursor")
	if next == "" {
		t.Fatal("full page must carry a next cursor")
	}
	var page1 []model.Documentary
	if err := json.Unmarshal(w.Body.Bytes(), &page1); err != nil {
		t.Fatalf("decode page 1: %v", err)
	}
	if len(page1) != 2 || page1[0].Title != "Third" || page1[1].Title != "Second" {
		t.Fatalf("unexpected page 1: %+v", page1)
	}

	// the identical request served from cache replays the same headers
	w = doJSON(t, h, http.MethodGet, "/api/documentaries?limit=2", "", nil)
	if got := w.Header().Get("X-Total-Count"); got != "3" {
		t.Fatalf("cached X-Total-Count = %q, want 3", got)
	}
	if got := w.Header().Get("X-Next-Cursor"); got != next {
		t.Fatalf("cached X-Next-Cursor = %q, want %q", got, next)
	}

	w = doJSON(t, h, http.MethodGet, "/api/documentaries?limit=2&cursor="+url.QueryEscape(next), "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("second page: expected 200, got %d", w.Code)
	}
	var page2 []model.Documentary
	if err := json.Unmarshal(w.Body.Bytes(), &page2); err != nil {
		t.Fatalf("decode page 2: %v", err)
	}
	if len(page2) != 1 || page2[0].Title != "First" {
		t.Fatalf("unexpected page 2: %+v", page2)
	}
	if got := w.Header().Get("X-Next-Cursor"); got != "" {
		t.Fatalf("short final page must not carry a cursor, got %q", got)
	}

	w = doJSON(t, h, http.MethodGet, "/api/documentaries?cursor=garbage", "", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("garbage cursor: expected 400, got %d", w.Code)
	}
}

func TestListDocumentariesEmptyIsOK(t *testing.T) {
	_, h, _ := newTestServer(t)
	w := doJSON(t, h, http.MethodGet, "/api/documentaries", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := strings.TrimSpace(w.Body.String()); got != "[]" {
		t.Fatalf("expected empty array, got %q", got)
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	fc, h, _ := newTestServer(t)
	tok := adminToken(t, h)
	doJSON(t, h, http.MethodPost, "/api/documentaries", tok, map[string]any{
		"title": "T", "description": "D", "category": "nature",
		"image_url": "https://images.unsplash.com/x.jpg",
	})

	if w := doJSON(t, h, http.MethodDelete, "/api/documentaries/1", tok, nil); w.Code != http.StatusOK {
		t.Fatalf("first delete: expected 200, got %d", w.Code)
	}
	if len(fc.docs) != 0 {
		t.Fatalf("record should be gone, have %d", len(fc.docs))
	}
	if w := doJSON(t, h, http.MethodDelete, "/api/documentaries/1", tok, nil); w.Code != http.StatusOK {
		t.Fatalf("second delete: expected 200, got %d", w.Code)
	}
	// unknown id is also a success
	if w := doJSON(t, h, http.MethodDelete, "/api/documentaries/424242", tok, nil); w.Code != http.StatusOK {
		t.Fatalf("unknown id delete: expected 200, got %d", w.Code)
	}
	if w := doJSON(t, h, http.MethodDelete, "/api/documentaries/1", "", nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated delete: expected 401, got %d", w.Code)
	}
}

func TestDownloadIncrement(t *testing.T) {
	fc, h, _ := newTestServer(t)
	tok := adminToken(t, h)
	doJSON(t, h, http.MethodPost, "/api/documentaries", tok, map[string]any{
		"title": "T", "description": "D", "category": "nature",
		"image_url": "https://images.unsplash.com/x.jpg",
	})

	const n = 25
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			doJSON(t, h, http.MethodPost, "/api/documentaries/1/download", "", nil)
		}()
	}
	wg.Wait()
	if got := fc.docs[0].Downloads; got != n {
		t.Fatalf("expected %d downloads, got %d", n, got)
	}
	// missing id is a silent no-op
	if w := doJSON(t, h, http.MethodPost, "/api/documentaries/999/download", "", nil); w.Code != http.StatusOK {
		t.Fatalf("missing id download: expected 200, got %d", w.Code)
	}
}

func TestComments(t *testing.T) {
	_, h, _ := newTestServer(t)

	w := doJSON(t, h, http.MethodPost, "/api/comments", "", map[string]any{
		"author": "Sarah Johnson", "email": "sarah@example.com", "text": "Loved it!",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("create: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var created model.Comment
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.Status != model.StatusApproved {
		t.Fatalf("new comments default to approved, got %s", created.Status)
	}

	w = doJSON(t, h, http.MethodGet, "/api/comments", "", nil)
	var list []model.Comment
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list) != 1 || list[0].Author != "Sarah Johnson" {
		t.Fatalf("unexpected list: %+v", list)
	}

	for _, missing := range []string{"author", "email", "text"} {
		payload := map[string]any{"author": "A", "email": "a@example.com", "text": "T"}
		delete(payload, missing)
		if w := doJSON(t, h, http.MethodPost, "/api/comments", "", payload); w.Code != http.StatusBadRequest {
			t.Fatalf("missing %s: expected 400, got %d", missing, w.Code)
		}
	}
}

func TestUserRegisterAndLogin(t *testing.T) {
	_, h, _ := newTestServer(t)

	w := doJSON(t, h, http.MethodPost, "/api/user/register", "", map[string]string{
		"name": "Demo User", "email": "user@example.com", "password": "password123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("register: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	// duplicate email conflicts
	w = doJSON(t, h, http.MethodPost, "/api/user/register", "", map[string]string{
		"name": "Demo User", "email": "user@example.com", "password": "password123",
	})
	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate register: expected 409, got %d", w.Code)
	}

	w = doJSON(t, h, http.MethodPost, "/api/user/login", "", map[string]string{
		"email": "user@example.com", "password": "password123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d", w.Code)
	}
	w = doJSON(t, h, http.MethodPost, "/api/user/login", "", map[string]string{
		"email": "user@example.com", "password": "wrong",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("wrong password: expected 401, got %d", w.Code)
	}
}

func TestCorrelationIDHeader(t *testing.T) {
	_, h, _ := newTestServer(t)
	w := doJSON(t, h, http.MethodGet, "/health", "", nil)
	if w.Header().Get("X-Correlation-Id") == "" {
		t.Fatal("expected a correlation id on the response")
	}
}
