// Package seed prepares the schema and loads the catalog sample data.
// It is a startup collaborator, not part of the request path: the services
// behave identically against an already-seeded or empty store.
package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/zanzibar-explore/tours-backend/internal/domain"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS tours (
		id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		title text NOT NULL,
		description text NOT NULL,
		image text NOT NULL,
		price numeric NOT NULL,
		duration text NOT NULL,
		category text NOT NULL,
		features text[] NOT NULL DEFAULT '{}',
		created_at timestamptz NOT NULL DEFAULT now(),
		updated_at timestamptz NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS vehicles (
		id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		type text NOT NULL UNIQUE,
		description text NOT NULL,
		price numeric NOT NULL,
		features text[] NOT NULL DEFAULT '{}',
		capacity int NOT NULL,
		available boolean NOT NULL DEFAULT true
	)`,
	`CREATE TABLE IF NOT EXISTS bookings (
		id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		tour_id uuid NOT NULL,
		customer_name text NOT NULL,
		email text NOT NULL,
		phone text NOT NULL,
		booking_date date NOT NULL,
		guests int NOT NULL,
		special_requests text NOT NULL DEFAULT '',
		status text NOT NULL DEFAULT 'pending',
		created_at timestamptz NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS transfer_bookings (
		id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		customer_name text NOT NULL,
		email text NOT NULL,
		phone text NOT NULL,
		flight_number text NOT NULL,
		arrival_date date NOT NULL,
		arrival_time text NOT NULL,
		passengers int NOT NULL,
		vehicle_type text NOT NULL,
		destination text NOT NULL,
		special_requests text NOT NULL DEFAULT '',
		status text NOT NULL DEFAULT 'pending',
		created_at timestamptz NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS contacts (
		id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		name text NOT NULL,
		email text NOT NULL,
		phone text NOT NULL DEFAULT '',
		subject text NOT NULL,
		message text NOT NULL,
		status text NOT NULL DEFAULT 'new',
		created_at timestamptz NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS gallery_images (
		id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		url text NOT NULL,
		category text NOT NULL,
		title text NOT NULL,
		alt_text text NOT NULL,
		created_at timestamptz NOT NULL DEFAULT clock_timestamp()
	)`,
}

// Run creates missing tables and inserts the sample catalog, but only when
// the tours table is empty.
func Run(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}

	var count int
	if err := pool.QueryRow(ctx, `SELECT count(*) FROM tours`).Scan(&count); err != nil {
		return fmt.Errorf("count tours: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, t := range sampleTours {
		if _, err := pool.Exec(ctx, `INSERT INTO tours (title, description, image, price, duration, category, features) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			t.Title, t.Description, t.Image, t.Price, t.Duration, t.Category, t.Features); err != nil {
			return fmt.Errorf("seed tour %q: %w", t.Title, err)
		}
	}
	for _, v := range sampleVehicles {
		if _, err := pool.Exec(ctx, `INSERT INTO vehicles (type, description, price, features, capacity) VALUES ($1, $2, $3, $4, $5)`,
			v.Type, v.Description, v.Price, v.Features, v.Capacity); err != nil {
			return fmt.Errorf("seed vehicle %q: %w", v.Type, err)
		}
	}
	for _, img := range sampleGallery {
		if _, err := pool.Exec(ctx, `INSERT INTO gallery_images (url, category, title, alt_text) VALUES ($1, $2, $3, $4)`,
			img.URL, img.Category, img.Title, img.AltText); err != nil {
			return fmt.Errorf("seed gallery image %q: %w", img.Title, err)
		}
	}
	return nil
}

var sampleTours = []domain.Tour{
	{
		Title:       "Mnemba Island (Snorkeling & Dolphin Tour)",
		Description: "Enjoy a magical boat ride as you spot playful dolphins and snorkel in the crystal-clear waters near Mnemba, home to vibrant marine life.",
		Image:       "https://images.unsplash.com/photo-1597799119438-cbf326f268b9",
		Price:       85.0,
		Duration:    "Full Day",
		Category:    domain.TourCategoryWater,
		Features:    []string{"Dolphin watching", "Snorkeling equipment", "Lunch included", "Professional guide"},
	},
	{
		Title:       "Spice Farm Tour",
		Description: "Explore Zanzibar's aromatic spice farms, learn about the island's spice history, and taste fresh tropical fruits and spices right from the source.",
		Image:       "https://images.unsplash.com/photo-1641677371014-5d0691ab5c0a",
		Price:       35.0,
		Duration:    "Half Day",
		Category:    domain.TourCategoryCultural,
		Features:    []string{"Spice tasting", "Fruit sampling", "Traditional cooking demo", "Local guide"},
	},
	{
		Title:       "Nakupenda Tour",
		Description: "Relax on a stunning sandbank surrounded by turquoise waters, swim, sunbathe, and enjoy fresh seafood under the open sky.",
		Image:       "https://images.unsplash.com/photo-1619382749984-02521fd9fc43",
		Price:       65.0,
		Duration:    "Full Day",
		Category:    domain.TourCategoryWater,
		Features:    []string{"Sandbank visit", "Seafood lunch", "Swimming", "Snorkeling"},
	},
	{
		Title:       "Nungwi Village Tour",
		Description: "Discover local life in Nungwi, visit traditional dhow builders, meet the locals, and explore one of Zanzibar's most beautiful coastal villages.",
		Image:       "https://images.unsplash.com/photo-1621583628955-42fbc37bf424",
		Price:       45.0,
		Duration:    "Half Day",
		Category:    domain.TourCategoryCultural,
		Features:    []string{"Village walk", "Dhow building", "Local interaction", "Cultural insights"},
	},
	{
		Title:       "Sunset Cruise",
		Description: "Sail along the Indian Ocean in a traditional dhow as the sun sets, painting the sky with golden hues - a perfect romantic escape.",
		Image:       "https://images.unsplash.com/photo-1666778439853-540bae64fa9f",
		Price:       55.0,
		Duration:    "3 Hours",
		Category:    domain.TourCategoryWater,
		Features:    []string{"Traditional dhow", "Sunset viewing", "Light refreshments", "Romantic atmosphere"},
	},
	{
		Title:       "Safari Blue",
		Description: "A full-day adventure of island hopping, snorkeling, seafood feasting, and swimming in natural lagoons surrounded by coral reefs.",
		Image:       "https://images.pexels.com/photos/5858974/pexels-photo-5858974.jpeg",
		Price:       95.0,
		Duration:    "Full Day",
		Category:    domain.TourCategoryWater,
		Features:    []string{"Island hopping", "Snorkeling", "Seafood lunch", "Natural lagoons"},
	},
	{
		Title:       "Prison Island Tour",
		Description: "Visit the historic island once used to detain slaves, now home to giant tortoises and colonial ruins, just a short boat ride from Stone Town.",
		Image:       "https://images.unsplash.com/photo-1634646350436-e1448c1d4f63",
		Price:       40.0,
		Duration:    "Half Day",
		Category:    domain.TourCategoryCultural,
		Features:    []string{"Historical tour", "Giant tortoises", "Boat ride", "Colonial ruins"},
	},
	{
		Title:       "Stone Town Tour",
		Description: "Walk through the rich history of Zanzibar's old city, with its winding alleys, ancient buildings, slave market, and vibrant culture.",
		Image:       "https://images.unsplash.com/photo-1684514571318-64f1fca644af",
		Price:       30.0,
		Duration:    "Half Day",
		Category:    domain.TourCategoryCultural,
		Features:    []string{"Walking tour", "Historical sites", "Local guide", "Cultural immersion"},
	},
	{
		Title:       "Jozani Forest",
		Description: "Explore Zanzibar's only national park, home to the rare Red Colobus monkeys and a peaceful mangrove ecosystem.",
		Image:       "https://images.unsplash.com/photo-1695643875095-f5620748605d",
		Price:       25.0,
		Duration:    "Half Day",
		Category:    domain.TourCategoryNature,
		Features:    []string{"Red Colobus monkeys", "Nature walk", "Mangrove boardwalk", "Wildlife viewing"},
	},
	{
		Title:       "Sea Walk",
		Description: "Experience underwater walking with a helmet, enjoy the ocean floor and its marine life without needing to swim or dive.",
		Image:       "https://images.pexels.com/photos/5858974/pexels-photo-5858974.jpeg",
		Price:       75.0,
		Duration:    "2 Hours",
		Category:    domain.TourCategoryWater,
		Features:    []string{"Underwater walking", "Marine life viewing", "No swimming required", "Unique experience"},
	},
	{
		Title:       "Deep Sea Fishing",
		Description: "Join experienced crews for a thrilling fishing trip in the deep waters of the Indian Ocean, chasing tuna, marlin, and more.",
		Image:       "https://images.unsplash.com/flagged/photo-1564639566047-dc4a1b86a90f",
		Price:       120.0,
		Duration:    "Full Day",
		Category:    domain.TourCategoryWater,
		Features:    []string{"Deep sea fishing", "Professional crew", "Equipment included", "Fresh catch"},
	},
	{
		Title:       "Zoo and Parks",
		Description: "Get up close with local wildlife, from exotic birds to rare reptiles, in well-maintained, family-friendly parks and zoos.",
		Image:       "https://images.unsplash.com/photo-1502452302126-a987e1f3fea4",
		Price:       20.0,
		Duration:    "3 Hours",
		Category:    domain.TourCategoryNature,
		Features:    []string{"Wildlife viewing", "Family friendly", "Educational", "Photo opportunities"},
	},
	{
		Title:       "Safari Tour (Serengeti, Mikumi, Ngorongoro)",
		Description: "Extend your adventure to Tanzania's mainland and witness Africa's Big Five in the most iconic national parks in guided safari tours.",
		Image:       "https://images.unsplash.com/photo-1632751334597-b26a1435ac2d",
		Price:       350.0,
		Duration:    "3-5 Days",
		Category:    domain.TourCategorySafari,
		Features:    []string{"Big Five", "Professional guide", "Accommodation", "Multi-day adventure"},
	},
}

var sampleVehicles = []domain.Vehicle{
	{
		Type:        "Economy Car",
		Description: "Comfortable sedan for up to 3 passengers",
		Price:       25.0,
		Features:    []string{"Air Conditioning", "Professional Driver", "Meet & Greet"},
		Capacity:    3,
	},
	{
		Type:        "SUV",
		Description: "Spacious SUV for up to 6 passengers with luggage",
		Price:       35.0,
		Features:    []string{"Air Conditioning", "Professional Driver", "Meet & Greet", "Extra Luggage Space"},
		Capacity:    6,
	},
	{
		Type:        "Minivan",
		Description: "Perfect for groups up to 12 passengers",
		Price:       55.0,
		Features:    []string{"Air Conditioning", "Professional Driver", "Meet & Greet", "Group Friendly"},
		Capacity:    12,
	},
}

var sampleGallery = []domain.GalleryImage{
	{URL: "https://images.unsplash.com/photo-1634646350433-fe03ad698448", Category: domain.GalleryCategoryBeaches, Title: "Pristine Beach", AltText: "Beautiful beach with turquoise water"},
	{URL: "https://images.unsplash.com/photo-1621583628955-42fbc37bf424", Category: domain.GalleryCategoryBeaches, Title: "Beach Life", AltText: "People enjoying beach activities"},
	{URL: "https://images.unsplash.com/photo-1619382749984-02521fd9fc43", Category: domain.GalleryCategoryBeaches, Title: "Crystal Waters", AltText: "Crystal clear lagoon"},
	{URL: "https://images.unsplash.com/photo-1634646350436-e1448c1d4f63", Category: domain.GalleryCategoryBeaches, Title: "Resort View", AltText: "Aerial view of beach resort"},
	{URL: "https://images.unsplash.com/photo-1684514571318-64f1fca644af", Category: domain.GalleryCategoryCulture, Title: "Stone Town", AltText: "Historic Stone Town streets"},
	{URL: "https://images.unsplash.com/photo-1695643875095-f5620748605d", Category: domain.GalleryCategoryCulture, Title: "Market Scene", AltText: "Bustling local market"},
	{URL: "https://images.unsplash.com/photo-1502452302126-a987e1f3fea4", Category: domain.GalleryCategoryCulture, Title: "Aerial Stone Town", AltText: "Stone Town from above"},
	{URL: "https://images.unsplash.com/photo-1632751334597-b26a1435ac2d", Category: domain.GalleryCategoryCulture, Title: "Sunset Culture", AltText: "Cultural site at sunset"},
	{URL: "https://images.pexels.com/photos/5858974/pexels-photo-5858974.jpeg", Category: domain.GalleryCategoryNature, Title: "Marine Life", AltText: "Underwater marine life"},
	{URL: "https://images.unsplash.com/photo-1641677371014-5d0691ab5c0a", Category: domain.GalleryCategoryNature, Title: "Spices", AltText: "Colorful spices"},
	{URL: "https://images.pexels.com/photos/6280412/pexels-photo-6280412.jpeg", Category: domain.GalleryCategoryNature, Title: "Spice Drying", AltText: "Traditional spice drying process"},
	{URL: "https://images.unsplash.com/photo-1711802536786-149a0d0c5879", Category: domain.GalleryCategoryWildlife, Title: "Traditional Dhow", AltText: "Traditional dhow boat"},
	{URL: "https://images.unsplash.com/photo-1666778439853-540bae64fa9f", Category: domain.GalleryCategoryWildlife, Title: "Dhow at Sunset", AltText: "Dhow sailing at sunset"},
}
