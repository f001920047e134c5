package view

import (
	"bytes"
	"html/template"
	"strings"

	"adipo-server/internal/model"
	"adipo-server/pkg/urlcheck"
)

// Renderer turns a State into a full HTML page. Safe for concurrent use
// once constructed.
type Renderer struct {
	tmpl   *template.Template
	policy urlcheck.Policy
}

func NewRenderer() (*Renderer, error) {
	r := &Renderer{policy: urlcheck.Default()}
	t := template.New("page").Funcs(template.FuncMap{
		"imageURL":   r.imageURL,
		"isFallback": r.isFallbackImage,
		"hasPDF":     r.hasPDF,
		"stars":      stars,
	})
	t, err := t.Parse(pageTemplate)
	if err != nil {
		return nil, err
	}
	r.tmpl = t
	return r, nil
}

// Render produces the page for the resolved view. Pure with respect to
// State: same input, same bytes.
func (r *Renderer) Render(s State) ([]byte, error) {
	s.View = s.Resolve()
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "page", s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// imageURL returns the entry's image when it passes the validation policy,
// else a generated placeholder keyed by id so cards stay stable.
func (r *Renderer) imageURL(d model.Documentary) string {
	if r.validImage(d.ImageURL) {
		return d.ImageURL
	}
	return urlcheck.PlaceholderImage(d.ID, d.Title)
}

func (r *Renderer) isFallbackImage(d model.Documentary) bool {
	return !r.validImage(d.ImageURL)
}

func (r *Renderer) validImage(url string) bool {
	// Files we stored ourselves are served from /uploads/ and trusted.
	if strings.HasPrefix(url, "/uploads/") {
		return true
	}
	return r.policy.Image.Valid(url)
}

func (r *Renderer) hasPDF(d model.Documentary) bool {
	return d.PDFURL != nil && *d.PDFURL != "" && r.policy.PDF.Valid(*d.PDFURL)
}

// stars renders the rating as a coarse five-slot bar, clamped to [0, 5].
func stars(rating float64) string {
	full := int(rating + 0.5)
	if full < 0 {
		full = 0
	}
	if full > 5 {
		full = 5
	}
	return strings.Repeat("★", full) + strings.Repeat("☆", 5-full)
}
