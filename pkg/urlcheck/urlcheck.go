// Package urlcheck holds the media-URL validation policy: per-kind
// extension patterns and hosting-domain allow-lists. Call sites take a
// Policy so the lists can grow without touching handlers or templates.
package urlcheck

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// Rule validates one kind of media URL.
type Rule struct {
	// Extensions matches the URL path suffix, e.g. `\.(jpe?g|png)$`.
	Extensions *regexp.Regexp
	// Domains are substring-matched hosting services.
	Domains []string
	// AllowDataURL accepts data: URLs with the given prefix, if non-empty.
	AllowDataURL string
	// Optional marks the whole field optional; empty input is valid.
	Optional bool
}

// Valid reports whether raw passes the rule.
func (r Rule) Valid(raw string) bool {
	if raw == "" {
		return r.Optional
	}
	if r.AllowDataURL != "" && strings.HasPrefix(raw, r.AllowDataURL) {
		return true
	}
	if u, err := url.Parse(raw); err == nil && r.Extensions != nil && r.Extensions.MatchString(strings.ToLower(u.Path)) {
		return true
	}
	for _, d := range r.Domains {
		if strings.Contains(raw, d) {
			return true
		}
	}
	return false
}

// Policy bundles the rules for the three media kinds a documentary links.
type Policy struct {
	Image Rule
	Video Rule
	PDF   Rule
}

// Default mirrors the allow-lists the original UI shipped with.
func Default() Policy {
	return Policy{
		Image: Rule{
			Extensions:   regexp.MustCompile(`\.(jpeg|jpg|png|gif|bmp|webp|svg)$`),
			AllowDataURL: "data:image/",
			Domains: []string{
				"unsplash.com", "images.unsplash.com",
				"picsum.photos", "via.placeholder.com",
				"imgbb.com", "i.ibb.co",
				"flickr.com", "staticflickr.com",
				"cloudinary.com", "res.cloudinary.com",
			},
		},
		Video: Rule{
			Optional:   true,
			Extensions: regexp.MustCompile(`\.(mp4|webm|ogg|mov)$`),
			Domains: []string{
				"youtube.com", "youtu.be", "vimeo.com", "dailymotion.com",
			},
		},
		PDF: Rule{
			Optional:   true,
			Extensions: regexp.MustCompile(`\.pdf$`),
			Domains: []string{
				"drive.google.com", "dropbox.com", "onedrive.live.com",
				"icloud.com", "docs.google.com",
			},
		},
	}
}

var placeholderColors = []string{"1a365d", "2d3748", "744210", "22543d", "702459"}

// PlaceholderImage synthesizes a stable fallback image URL for a catalog
// entry whose image URL failed validation. Color is keyed by id so cards
// keep their look across renders.
func PlaceholderImage(id int64, title string) string {
	color := placeholderColors[0]
	if id >= 0 {
		color = placeholderColors[id%int64(len(placeholderColors))]
	}
	return fmt.Sprintf("https://via.placeholder.com/500x300/%s/ffffff?text=%s", color, url.QueryEscape(title))
}
