package tours

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/zanzibar-explore/tours-backend/internal/domain"
	"github.com/zanzibar-explore/tours-backend/internal/kafka"
	"github.com/zanzibar-explore/tours-backend/internal/repository"
)

type TourUseCase interface {
	List(ctx context.Context) ([]domain.Tour, error)
	GetByID(ctx context.Context, id string) (*domain.Tour, error)
	ListByCategory(ctx context.Context, category string) ([]domain.Tour, error)
	CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	GetBooking(ctx context.Context, id string) (*domain.Booking, error)
}

type Cache interface {
	GetTours(ctx context.Context) ([]domain.Tour, error)
	SetTours(ctx context.Context, tours []domain.Tour) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type TourService struct {
	tours       repository.TourRepository
	bookings    repository.BookingRepository
	cache       Cache
	producer    Producer
	eventsTopic string
}

type CreateBookingInput struct {
	TourID          string
	CustomerName    string
	Email           string
	Phone           string
	BookingDate     time.Time
	Guests          int
	SpecialRequests string
}

func (in CreateBookingInput) validate() error {
	if in.CustomerName == "" {
		return fmt.Errorf("%w: customer_name is required", domain.ErrValidation)
	}
	if !domain.ValidEmail(in.Email) {
		return fmt.Errorf("%w: invalid email address", domain.ErrValidation)
	}
	if in.Phone == "" {
		return fmt.Errorf("%w: phone is required", domain.ErrValidation)
	}
	if in.BookingDate.IsZero() {
		return fmt.Errorf("%w: booking_date is required", domain.ErrValidation)
	}
	if in.Guests <= 0 {
		return fmt.Errorf("%w: guests must be positive", domain.ErrValidation)
	}
	return nil
}

func NewTourService(
	tours repository.TourRepository,
	bookings repository.BookingRepository,
	cache Cache,
	producer Producer,
	eventsTopic string,
) *TourService {
	return &TourService{
		tours:       tours,
		bookings:    bookings,
		cache:       cache,
		producer:    producer,
		eventsTopic: eventsTopic,
	}
}

func (s *TourService) List(ctx context.Context) ([]domain.Tour, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetTours(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	tours, err := s.tours.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetTours(ctx, tours)
	}
	return tours, nil
}

func (s *TourService) GetByID(ctx context.Context, id string) (*domain.Tour, error) {
	return s.tours.GetByID(ctx, id)
}

func (s *TourService) ListByCategory(ctx context.Context, category string) ([]domain.Tour, error) {
	return s.tours.ListByCategory(ctx, category)
}

// CreateBooking verifies the referenced tour exists before persisting. The
// reference is checked at creation time only and the two steps are not
// atomic; catalog rows are immutable after seed, so the race is accepted.
func (s *TourService) CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	if _, err := s.tours.GetByID(ctx, input.TourID); err != nil {
		return nil, err
	}

	booking := &domain.Booking{
		TourID:          input.TourID,
		CustomerName:    input.CustomerName,
		Email:           input.Email,
		Phone:           input.Phone,
		BookingDate:     input.BookingDate,
		Guests:          input.Guests,
		SpecialRequests: input.SpecialRequests,
		Status:          domain.BookingStatusPending,
	}
	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, err
	}

	s.publish(ctx, "booking_created", booking.ID, booking.Email, string(booking.Status))
	return booking, nil
}

func (s *TourService) GetBooking(ctx context.Context, id string) (*domain.Booking, error) {
	return s.bookings.GetByID(ctx, id)
}

func (s *TourService) publish(ctx context.Context, eventType, id, email, status string) {
	if s.producer == nil || s.eventsTopic == "" {
		return
	}
	event := kafka.Event{
		Type:       eventType,
		EntityID:   id,
		Email:      email,
		Status:     status,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.producer.Publish(ctx, s.eventsTopic, id, event); err != nil {
		log.Printf("publish %s event for %s: %v", eventType, id, err)
	}
}

var _ TourUseCase = (*TourService)(nil)
