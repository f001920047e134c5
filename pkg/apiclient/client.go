// Package apiclient is the client-side gateway to the catalog API: it
// attaches the right bearer token per endpoint family, bounds every call
// with a timeout, and degrades to local data instead of blocking the UI
// when the server is unreachable.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"adipo-server/internal/model"
)

const DefaultTimeout = 5 * time.Second

type Client struct {
	BaseURL string
	HTTP    *http.Client
	Tokens  TokenStore

	now func() time.Time
}

func New(baseURL string, tokens TokenStore, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: timeout},
		Tokens:  tokens,
		now:     time.Now,
	}
}

// WithTokens returns a shallow copy bound to a different token store.
// Useful when tokens are per-request (e.g. cookie-backed).
func (c *Client) WithTokens(tokens TokenStore) *Client {
	cp := *c
	cp.Tokens = tokens
	return &cp
}

type apiError struct {
	Status  int
	Code    string
	Message string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("api %d %s: %s", e.Status, e.Code, e.Message)
}

// do runs one JSON round trip. asAdmin picks which token to attach.
func (c *Client) do(ctx context.Context, method, path string, body any, asAdmin bool, out any) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, rd)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if asAdmin {
		if t := c.Tokens.AdminToken(); t != "" {
			req.Header.Set("Authorization", "Bearer "+t)
		}
	} else if t := c.Tokens.UserToken(); t != "" {
		req.Header.Set("Authorization", "Bearer "+t)
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		var envelope struct {
			Error struct {
				Code    string `json:"code"`
				Message string `json:"message"`
			} `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&envelope)
		return &apiError{Status: resp.StatusCode, Code: envelope.Error.Code, Message: envelope.Error.Message}
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Documentaries lists the catalog. On failure the built-in sample set is
// returned as a Degraded result so first paint never blocks on the network.
func (c *Client) Documentaries(ctx context.Context) Result[[]model.Documentary] {
	var docs []model.Documentary
	if err := c.do(ctx, http.MethodGet, "/api/documentaries", nil, false, &docs); err != nil {
		return degraded(SampleDocumentaries(), err)
	}
	return okResult(docs)
}

// Comments lists approved comments, degrading to the sample set.
func (c *Client) Comments(ctx context.Context) Result[[]model.Comment] {
	var comments []model.Comment
	if err := c.do(ctx, http.MethodGet, "/api/comments", nil, false, &comments); err != nil {
		return degraded(SampleComments(), err)
	}
	return okResult(comments)
}

type CreateDocumentaryRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	ImageURL    string   `json:"image_url"`
	VideoURL    *string  `json:"video_url,omitempty"`
	PDFURL      *string  `json:"pdf_url,omitempty"`
	Rating      *float64 `json:"rating,omitempty"`
	Duration    *string  `json:"duration,omitempty"`
}

// CreateDocumentary posts a new catalog entry. On network failure the
// entry is synthesized locally and flagged Degraded; a 4xx from the server
// is an honest Failed.
func (c *Client) CreateDocumentary(ctx context.Context, req CreateDocumentaryRequest) Result[model.Documentary] {
	var doc model.Documentary
	err := c.do(ctx, http.MethodPost, "/api/documentaries", req, true, &doc)
	if err == nil {
		return okResult(doc)
	}
	if isServerRejection(err) {
		return failed[model.Documentary](err)
	}
	local := model.Documentary{
		ID:          c.now().UnixMilli(),
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		VideoURL:    req.VideoURL,
		PDFURL:      req.PDFURL,
		Rating:      4.0,
		Duration:    req.Duration,
		DateAdded:   c.now().UTC(),
	}
	if req.Rating != nil {
		local.Rating = *req.Rating
	}
	return degraded(local, err)
}

func (c *Client) DeleteDocumentary(ctx context.Context, id int64) Result[struct{}] {
	err := c.do(ctx, http.MethodDelete, "/api/documentaries/"+strconv.FormatInt(id, 10), nil, true, nil)
	if err == nil {
		return okResult(struct{}{})
	}
	if isServerRejection(err) {
		return failed[struct{}](err)
	}
	return degraded(struct{}{}, err)
}

// TrackDownload bumps the server-side counter; callers apply the
// optimistic local bump themselves.
func (c *Client) TrackDownload(ctx context.Context, id int64) Result[struct{}] {
	err := c.do(ctx, http.MethodPost, "/api/documentaries/"+strconv.FormatInt(id, 10)+"/download", nil, false, nil)
	if err == nil {
		return okResult(struct{}{})
	}
	return degraded(struct{}{}, err)
}

type CreateCommentRequest struct {
	Author        string `json:"author"`
	Email         string `json:"email"`
	Text          string `json:"text"`
	DocumentaryID *int64 `json:"documentary_id,omitempty"`
}

func (c *Client) CreateComment(ctx context.Context, req CreateCommentRequest) Result[model.Comment] {
	var out model.Comment
	err := c.do(ctx, http.MethodPost, "/api/comments", req, false, &out)
	if err == nil {
		return okResult(out)
	}
	if isServerRejection(err) {
		return failed[model.Comment](err)
	}
	local := model.Comment{
		ID:            c.now().UnixMilli(),
		Author:        req.Author,
		Email:         req.Email,
		Text:          req.Text,
		Status:        model.StatusApproved,
		DocumentaryID: req.DocumentaryID,
		DateAdded:     c.now().UTC(),
	}
	return degraded(local, err)
}

// Session is the shape all three login-family endpoints return.
type Session struct {
	Token   string         `json:"token"`
	User    map[string]any `json:"user"`
	Message string         `json:"message"`
}

// AdminLogin authenticates the operator and stores the admin token.
// Logins never degrade; a failure is a failure.
func (c *Client) AdminLogin(ctx context.Context, username, password string) Result[Session] {
	var s Session
	err := c.do(ctx, http.MethodPost, "/api/admin/login",
		map[string]string{"username": username, "password": password}, false, &s)
	if err != nil {
		return failed[Session](err)
	}
	c.Tokens.SetAdminToken(s.Token)
	return okResult(s)
}

func (c *Client) UserLogin(ctx context.Context, email, password string) Result[Session] {
	var s Session
	err := c.do(ctx, http.MethodPost, "/api/user/login",
		map[string]string{"email": email, "password": password}, false, &s)
	if err != nil {
		return failed[Session](err)
	}
	c.Tokens.SetUserToken(s.Token)
	return okResult(s)
}

func (c *Client) Register(ctx context.Context, name, email, password string) Result[Session] {
	var s Session
	err := c.do(ctx, http.MethodPost, "/api/user/register",
		map[string]string{"name": name, "email": email, "password": password}, false, &s)
	if err != nil {
		return failed[Session](err)
	}
	c.Tokens.SetUserToken(s.Token)
	return okResult(s)
}

// isServerRejection distinguishes a reachable server saying no (4xx) from
// the network being down; only the latter is worth degrading over.
func isServerRejection(err error) bool {
	ae, ok := err.(*apiError)
	return ok && ae.Status >= 400 && ae.Status < 500
}
