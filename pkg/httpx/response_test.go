package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func writeInternal(t *testing.T) map[string]any {
	t.Helper()
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/documentaries", nil)
	WriteError(w, r, Internal("failed to list documentaries", errors.New("pool exhausted")))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	var body struct {
		Error map[string]any `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return body.Error
}

func TestWriteErrorVerboseDetail(t *testing.T) {
	SetVerboseErrors(true)
	defer SetVerboseErrors(false)

	e := writeInternal(t)
	if e["message"] != "failed to list documentaries" {
		t.Fatalf("unexpected message: %v", e["message"])
	}
	if e["detail"] != "pool exhausted" {
		t.Fatalf("development mode must surface the underlying error, got %v", e["detail"])
	}
}

func TestWriteErrorProductionHidesDetail(t *testing.T) {
	SetVerboseErrors(false)

	e := writeInternal(t)
	if e["message"] != "failed to list documentaries" {
		t.Fatalf("unexpected message: %v", e["message"])
	}
	if _, ok := e["detail"]; ok {
		t.Fatal("production mode must not leak the underlying error")
	}
}
