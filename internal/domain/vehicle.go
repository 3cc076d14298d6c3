package domain

// Vehicle is a transfer vehicle class. Type doubles as the lookup key
// referenced by transfer bookings.
type Vehicle struct {
	ID          string   `json:"id"`
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Features    []string `json:"features"`
	Capacity    int      `json:"capacity"`
	Available   bool     `json:"available"`
}
