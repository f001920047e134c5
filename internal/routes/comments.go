package routes

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"adipo-server/internal/model"
	"adipo-server/internal/repos"
	pkghttpx "adipo-server/pkg/httpx"
)

const commentsCachePrefix = "comments:"

// CommentsList handles GET /api/comments. Visitors see approved comments;
// an explicit ?status= widens or narrows the listing.
func CommentsList(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		status := r.URL.Query().Get("status")
		if status == "" {
			status = model.StatusApproved
		}
		if status != model.StatusApproved && status != model.StatusPending {
			pkghttpx.WriteError(w, r, pkghttpx.BadRequest("invalid status", nil))
			return
		}
		cursorAdded, cursorID, limit, herr := parseListQuery(d, r)
		if herr != nil {
			pkghttpx.WriteError(w, r, herr)
			return
		}
		cursor := r.URL.Query().Get("cursor")
		cacheKey := commentsCachePrefix + status + ":cursor:" + cursor + ":limit:" + strconv.Itoa(int(limit))
		if cached, ok := d.Cache.Get(ctx, cacheKey); ok {
			var page listPage
			if err := json.Unmarshal([]byte(cached), &page); err == nil {
				writeListPage(w, page)
				return
			}
		}
		items, err := d.Comments.ListPage(ctx, status, cursorAdded, cursorID, limit)
		if err != nil {
			pkghttpx.WriteError(w, r, pkghttpx.Internal("failed to list comments", err))
			return
		}
		var page listPage
		if len(items) == int(limit) {
			last := items[len(items)-1]
			page.Next = d.Cursors.EncodeListCursor(last.DateAdded, last.ID)
		}
		page.Body, _ = json.Marshal(items)
		if enc, err := json.Marshal(page); err == nil {
			_ = d.Cache.Set(ctx, cacheKey, string(enc), 2*time.Minute)
		}
		writeListPage(w, page)
	}
}

type createCommentReq struct {
	Author        string `json:"author" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Text          string `json:"text" validate:"required"`
	DocumentaryID *int64 `json:"documentary_id"`
}

// CommentCreate handles POST /api/comments. Open to any visitor; new
// comments enter as approved (see DESIGN.md on the moderation default).
func CommentCreate(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		var req createCommentReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			pkghttpx.WriteError(w, r, pkghttpx.BadRequest("invalid json", err))
			return
		}
		if err := validate.Struct(req); err != nil {
			pkghttpx.WriteError(w, r, pkghttpx.Validation("author, email, and text are required", fieldErrors(err)))
			return
		}
		c, err := d.Comments.Create(ctx, repos.CreateCommentParams{
			Author:        req.Author,
			Email:         req.Email,
			Text:          req.Text,
			Status:        model.StatusApproved,
			DocumentaryID: req.DocumentaryID,
		})
		if err != nil {
			pkghttpx.WriteError(w, r, pkghttpx.Internal("failed to create comment", err))
			return
		}
		_ = d.Cache.DeletePrefix(ctx, commentsCachePrefix)
		pkghttpx.WriteJSON(w, http.StatusOK, c)
	}
}
