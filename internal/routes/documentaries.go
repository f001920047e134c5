package routes

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"strconv"
	"time"

	"adipo-server/internal/repos"
	pkghttpx "adipo-server/pkg/httpx"
	pkguploads "adipo-server/pkg/uploads"
)

const documentariesCachePrefix = "documentaries:"

// DocumentariesList handles GET /api/documentaries.
// Responds with a bare array, newest first; pagination metadata rides the
// X-Total-Count and X-Next-Cursor headers so the body contract stays flat.
func DocumentariesList(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		cursorAdded, cursorID, limit, herr := parseListQuery(d, r)
		if herr != nil {
			pkghttpx.WriteError(w, r, herr)
			return
		}
		cursor := r.URL.Query().Get("cursor")
		cacheKey := documentariesCachePrefix + "cursor:" + cursor + ":limit:" + strconv.Itoa(int(limit))
		if cached, ok := d.Cache.Get(ctx, cacheKey); ok {
			var page listPage
			if err := json.Unmarshal([]byte(cached), &page); err == nil {
				writeListPage(w, page)
				return
			}
		}
		items, err := d.Documentaries.ListPage(ctx, cursorAdded, cursorID, limit)
		if err != nil {
			pkghttpx.WriteError(w, r, pkghttpx.Internal("failed to list documentaries", err))
			return
		}
		total, err := d.Documentaries.Count(ctx)
		if err != nil {
			pkghttpx.WriteError(w, r, pkghttpx.Internal("failed to count documentaries", err))
			return
		}
		page := listPage{Total: &total}
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

type createDocumentaryReq struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Category    string   `json:"category" validate:"required"`
	ImageURL    string   `json:"image_url" validate:"required"`
	VideoURL    *string  `json:"video_url"`
	PDFURL      *string  `json:"pdf_url"`
	Rating      *float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
	Duration    *string  `json:"duration"`
}

// DocumentaryCreate handles POST /api/documentaries (admin only).
// Accepts either a JSON body with an image_url or a multipart form where
// the image (and optionally a video) arrive as files.
func DocumentaryCreate(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		var req createDocumentaryReq

		mt, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if mt == "multipart/form-data" {
			r.Body = http.MaxBytesReader(w, r.Body, d.MaxUploadSize)
			if err := r.ParseMultipartForm(d.MaxUploadSize); err != nil {
				var mbe *http.MaxBytesError
				if errors.As(err, &mbe) {
					pkghttpx.WriteError(w, r, pkghttpx.TooLarge("upload exceeds size limit", err))
					return
				}
				pkghttpx.WriteError(w, r, pkghttpx.BadRequest("invalid multipart form", err))
				return
			}
			req.Title = r.FormValue("title")
			req.Description = r.FormValue("description")
			req.Category = r.FormValue("category")
			req.ImageURL = r.FormValue("image_url")
			if v := r.FormValue("video_url"); v != "" {
				req.VideoURL = &v
			}
			if v := r.FormValue("duration"); v != "" {
				req.Duration = &v
			}
			if v := r.FormValue("rating"); v != "" {
				f, err := strconv.ParseFloat(v, 64)
				if err != nil {
					pkghttpx.WriteError(w, r, pkghttpx.BadRequest("invalid rating", err))
					return
				}
				req.Rating = &f
			}
			if fhs := r.MultipartForm.File["image"]; len(fhs) > 0 {
				name, err := d.Uploads.Save(fhs[0])
				if err != nil {
					writeUploadError(w, r, err)
					return
				}
				req.ImageURL = "/uploads/" + name
			}
			if fhs := r.MultipartForm.File["video"]; len(fhs) > 0 {
				name, err := d.Uploads.Save(fhs[0])
				if err != nil {
					writeUploadError(w, r, err)
					return
				}
				u := "/uploads/" + name
				req.VideoURL = &u
			}
		} else {
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				pkghttpx.WriteError(w, r, pkghttpx.BadRequest("invalid json", err))
				return
			}
		}

		if err := validate.Struct(req); err != nil {
			pkghttpx.WriteError(w, r, pkghttpx.Validation("title, description, category, and image URL are required", fieldErrors(err)))
			return
		}

		doc, err := d.Documentaries.Create(ctx, repos.CreateDocumentaryParams{
			Title:       req.Title,
			Description: req.Description,
			Category:    req.Category,
			ImageURL:    req.ImageURL,
			VideoURL:    req.VideoURL,
			PDFURL:      req.PDFURL,
			Rating:      req.Rating,
			Duration:    req.Duration,
		})
		if err != nil {
			pkghttpx.WriteError(w, r, pkghttpx.Internal("failed to create documentary", err))
			return
		}
		_ = d.Cache.DeletePrefix(ctx, documentariesCachePrefix)
		pkghttpx.WriteJSON(w, http.StatusOK, doc)
	}
}

// DocumentaryDelete handles DELETE /api/documentaries/{id} (admin only).
// Deleting an absent id succeeds; the operation is idempotent.
func DocumentaryDelete(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
		if err != nil {
			pkghttpx.WriteError(w, r, pkghttpx.BadRequest("invalid id", err))
			return
		}
		if err := d.Documentaries.Delete(ctx, id); err != nil {
			pkghttpx.WriteError(w, r, pkghttpx.Internal("failed to delete documentary", err))
			return
		}
		_ = d.Cache.DeletePrefix(ctx, documentariesCachePrefix)
		pkghttpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "Documentary deleted successfully"})
	}
}

// DocumentaryDownload handles POST /api/documentaries/{id}/download.
// The increment is one UPDATE statement, so concurrent downloads of the
// same record never lose counts. Missing ids are a silent no-op.
func DocumentaryDownload(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
		if err != nil {
			pkghttpx.WriteError(w, r, pkghttpx.BadRequest("invalid id", err))
			return
		}
		if err := d.Documentaries.IncrementDownloads(ctx, id); err != nil {
			pkghttpx.WriteError(w, r, pkghttpx.Internal("failed to track download", err))
			return
		}
		_ = d.Cache.DeletePrefix(ctx, documentariesCachePrefix)
		pkghttpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "Download tracked successfully"})
	}
}

func writeUploadError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, pkguploads.ErrUnsupportedType) {
		pkghttpx.WriteError(w, r, pkghttpx.BadRequest("unsupported media type", err))
		return
	}
	pkghttpx.WriteError(w, r, pkghttpx.Internal("failed to store upload", err))
}
