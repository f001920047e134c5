package routes

import (
	"errors"
	"net/http"

	pkghttpx "adipo-server/pkg/httpx"
)

// Upload handles POST /api/upload (admin only). Accepts a multipart form
// with an "image" or "video" part and returns the public URL of the
// stored file.
func Upload(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
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
		for _, field := range []string{"image", "video"} {
			if fhs := r.MultipartForm.File[field]; len(fhs) > 0 {
				name, err := d.Uploads.Save(fhs[0])
				if err != nil {
					writeUploadError(w, r, err)
					return
				}
				pkghttpx.WriteJSON(w, http.StatusOK, map[string]string{"url": "/uploads/" + name})
				return
			}
		}
		pkghttpx.WriteError(w, r, pkghttpx.BadRequest("missing image or video file", nil))
	}
}
