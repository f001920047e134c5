package routes

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	pkghttpx "adipo-server/pkg/httpx"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

// listPage is one rendered list response: the JSON body plus the
// pagination headers that must replay with it. It is what the cache
// stores, so a cache hit carries the same headers as the miss that
// produced it.
type listPage struct {
	Total *int64          `json:"total,omitempty"`
	Next  string          `json:"next,omitempty"`
	Body  json.RawMessage `json:"body"`
}

func writeListPage(w http.ResponseWriter, p listPage) {
	if p.Total != nil {
		w.Header().Set("X-Total-Count", strconv.FormatInt(*p.Total, 10))
	}
	if p.Next != "" {
		w.Header().Set("X-Next-Cursor", p.Next)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(p.Body)
}

// parseListQuery reads the optional cursor/limit pair shared by the two
// list endpoints. A missing cursor means "from the top".
func parseListQuery(d Deps, r *http.Request) (cursorAdded *time.Time, cursorID *int64, limit int32, herr *pkghttpx.HTTPError) {
	limitStr := r.URL.Query().Get("limit")
	if limitStr == "" {
		limitStr = strconv.Itoa(defaultPageSize)
	}
	lim64, err := strconv.ParseInt(limitStr, 10, 32)
	if err != nil || lim64 <= 0 || lim64 > maxPageSize {
		return nil, nil, 0, pkghttpx.BadRequest("invalid limit", err)
	}
	if cursor := r.URL.Query().Get("cursor"); cursor != "" {
		added, id, decErr := d.Cursors.DecodeListCursor(cursor)
		if decErr != nil {
			return nil, nil, 0, pkghttpx.BadRequest("invalid cursor", decErr)
		}
		cursorAdded = &added
		cursorID = &id
	}
	return cursorAdded, cursorID, int32(lim64), nil
}
