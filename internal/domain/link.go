package domain

import "time"

// Link is a read-only copy of a link record owned by the backend,
// fetched per dashboard refresh.
type Link struct {
	ShortCode   string    `json:"short_code"`
	OriginalURL string    `json:"original_url"`
	Clicks      int64     `json:"clicks"`
	CreatedAt   time.Time `json:"created_at"`
}

// ShortLink is the result of creating a new short link.
type ShortLink struct {
	ShortURL    string `json:"short_url"`
	ShortCode   string `json:"short_code"`
	OriginalURL string `json:"original_url"`
}
