package domain

import "time"

// Gallery categories are fixed at seed time.
const (
	GalleryCategoryBeaches  = "beaches"
	GalleryCategoryCulture  = "culture"
	GalleryCategoryNature   = "nature"
	GalleryCategoryWildlife = "wildlife"
)

type GalleryImage struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	Category  string    `json:"category"`
	Title     string    `json:"title"`
	AltText   string    `json:"alt_text"`
	CreatedAt time.Time `json:"created_at"`
}
