package gallery

import (
	"context"

	"github.com/zanzibar-explore/tours-backend/internal/domain"
	"github.com/zanzibar-explore/tours-backend/internal/repository"
)

type GalleryUseCase interface {
	Grouped(ctx context.Context) (map[string][]string, error)
	URLsByCategory(ctx context.Context, category string) ([]string, error)
	Images(ctx context.Context) ([]domain.GalleryImage, error)
}

type Cache interface {
	GetGallery(ctx context.Context) ([]domain.GalleryImage, error)
	SetGallery(ctx context.Context, images []domain.GalleryImage) error
}

type GalleryService struct {
	gallery repository.GalleryRepository
	cache   Cache
}

func NewGalleryService(gallery repository.GalleryRepository, cache Cache) *GalleryService {
	return &GalleryService{gallery: gallery, cache: cache}
}

// Grouped maps category to its image URLs, keeping the store's read order
// within each group.
func (s *GalleryService) Grouped(ctx context.Context) (map[string][]string, error) {
	images, err := s.Images(ctx)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]string)
	for _, img := range images {
		grouped[img.Category] = append(grouped[img.Category], img.URL)
	}
	return grouped, nil
}

func (s *GalleryService) URLsByCategory(ctx context.Context, category string) ([]string, error) {
	images, err := s.gallery.ListByCategory(ctx, category)
	if err != nil {
		return nil, err
	}

	urls := make([]string, 0, len(images))
	for _, img := range images {
		urls = append(urls, img.URL)
	}
	return urls, nil
}

func (s *GalleryService) Images(ctx context.Context) ([]domain.GalleryImage, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetGallery(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	images, err := s.gallery.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetGallery(ctx, images)
	}
	return images, nil
}

var _ GalleryUseCase = (*GalleryService)(nil)
