package domain

import "time"

// TourCategory values are fixed at seed time.
const (
	TourCategoryWater    = "water"
	TourCategoryCultural = "cultural"
	TourCategoryNature   = "nature"
	TourCategorySafari   = "safari"
)

type Tour struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	Price       float64   `json:"price"`
	Duration    string    `json:"duration"`
	Category    string    `json:"category"`
	Features    []string  `json:"features"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
