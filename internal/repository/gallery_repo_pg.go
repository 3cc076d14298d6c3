package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/zanzibar-explore/tours-backend/internal/domain"
)

type GalleryRepository interface {
	List(ctx context.Context) ([]domain.GalleryImage, error)
	ListByCategory(ctx context.Context, category string) ([]domain.GalleryImage, error)
}

type PGGalleryRepository struct {
	db *pgxpool.Pool
}

func NewGalleryRepository(db *pgxpool.Pool) GalleryRepository {
	return &PGGalleryRepository{db: db}
}

const galleryColumns = `id, url, category, title, alt_text, created_at`

// List returns images in seed insertion order.
func (r *PGGalleryRepository) List(ctx context.Context) ([]domain.GalleryImage, error) {
	rows, err := r.db.Query(ctx, `SELECT `+galleryColumns+` FROM gallery_images ORDER BY created_at LIMIT $1`, listLimit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	images := make([]domain.GalleryImage, 0)
	for rows.Next() {
		var img domain.GalleryImage
		if err := rows.Scan(&img.ID, &img.URL, &img.Category, &img.Title, &img.AltText, &img.CreatedAt); err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return images, rows.Err()
}

func (r *PGGalleryRepository) ListByCategory(ctx context.Context, category string) ([]domain.GalleryImage, error) {
	rows, err := r.db.Query(ctx, `SELECT `+galleryColumns+` FROM gallery_images WHERE category=$1 ORDER BY created_at LIMIT $2`, category, listLimit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	images := make([]domain.GalleryImage, 0)
	for rows.Next() {
		var img domain.GalleryImage
		if err := rows.Scan(&img.ID, &img.URL, &img.Category, &img.Title, &img.AltText, &img.CreatedAt); err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return images, rows.Err()
}

var _ GalleryRepository = (*PGGalleryRepository)(nil)
