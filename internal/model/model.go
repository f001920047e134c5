package model

import "time"

// Catalog categories offered by the UI. Membership is not enforced at the
// store level; any non-empty category is accepted on create.
const (
	CategoryNature     = "nature"
	CategorySociety    = "society"
	CategoryCulture    = "culture"
	CategoryHistory    = "history"
	CategoryScience    = "science"
	CategoryTechnology = "technology"
)

var KnownCategories = map[string]struct{}{
	CategoryNature:     {},
	CategorySociety:    {},
	CategoryCulture:    {},
	CategoryHistory:    {},
	CategoryScience:    {},
	CategoryTechnology: {},
}

// Comment moderation statuses.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
)

type Documentary struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	ImageURL    string    `json:"image_url"`
	VideoURL    *string   `json:"video_url,omitempty"`
	PDFURL      *string   `json:"pdf_url,omitempty"`
	Rating      float64   `json:"rating"`
	Downloads   int64     `json:"downloads"`
	Duration    *string   `json:"duration,omitempty"`
	DateAdded   time.Time `json:"date_added"`
}

type Comment struct {
	ID            int64     `json:"id"`
	Author        string    `json:"author"`
	Email         string    `json:"email"`
	Text          string    `json:"text"`
	Status        string    `json:"status"`
	DocumentaryID *int64    `json:"documentary_id,omitempty"`
	DateAdded     time.Time `json:"date_added"`
}

// AdminUser is the single seeded operator account.
type AdminUser struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}

type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	DateAdded    time.Time `json:"date_added"`
}
