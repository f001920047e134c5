package webclient

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"adipo-server/internal/view"
)

func TestFlashRoundTrip(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/login", nil)
	redirectWithToast(w, r, "/home", view.ToastSuccess, "Login successful! Welcome back.")

	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/home" {
		t.Fatalf("expected redirect to /home, got %s", loc)
	}

	// Follow-up GET carries the cookie back; the toast pops once.
	res := w.Result()
	next := httptest.NewRequest(http.MethodGet, "/home", nil)
	for _, ck := range res.Cookies() {
		next.AddCookie(ck)
	}
	w2 := httptest.NewRecorder()
	toast := popFlash(w2, next)
	if toast == nil {
		t.Fatal("expected a pending toast")
	}
	if toast.Kind != view.ToastSuccess || toast.Message != "Login successful! Welcome back." {
		t.Fatalf("unexpected toast: %+v", toast)
	}

	// popFlash clears the cookie so the toast shows exactly once.
	cleared := false
	for _, ck := range w2.Result().Cookies() {
		if ck.Name == flashCookie && ck.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatal("flash cookie must be cleared after popping")
	}
}

func TestPopFlashAbsent(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/home", nil)
	if toast := popFlash(w, r); toast != nil {
		t.Fatalf("expected no toast, got %+v", toast)
	}
}

func TestPopFlashUnknownKindBecomesInfo(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/home", nil)
	r.AddCookie(&http.Cookie{Name: flashCookie, Value: "shout%7Chello"})
	toast := popFlash(httptest.NewRecorder(), r)
	if toast == nil || toast.Kind != view.ToastInfo || toast.Message != "hello" {
		t.Fatalf("unexpected toast: %+v", toast)
	}
}

func TestBackTo(t *testing.T) {
	tests := []struct {
		referer string
		want    string
	}{
		{"", "/documentaries"},
		{"http://localhost:3000/home", "/home"},
		{"http://localhost:3000/documentaries?category=nature", "/documentaries"},
		{"::bad::", "/documentaries"},
	}
	for _, tt := range tests {
		r := httptest.NewRequest(http.MethodPost, "/download/1", nil)
		if tt.referer != "" {
			r.Header.Set("Referer", tt.referer)
		}
		if got := backTo(r, "/documentaries"); got != tt.want {
			t.Errorf("backTo(referer=%q) = %s, want %s", tt.referer, got, tt.want)
		}
	}
}
