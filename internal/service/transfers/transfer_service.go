package transfers

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/zanzibar-explore/tours-backend/internal/domain"
	"github.com/zanzibar-explore/tours-backend/internal/kafka"
	"github.com/zanzibar-explore/tours-backend/internal/repository"
)

type TransferUseCase interface {
	ListVehicles(ctx context.Context) ([]domain.Vehicle, error)
	CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.TransferBooking, error)
	GetBooking(ctx context.Context, id string) (*domain.TransferBooking, error)
	ListBookings(ctx context.Context) ([]domain.TransferBooking, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

type Cache interface {
	GetVehicles(ctx context.Context) ([]domain.Vehicle, error)
	SetVehicles(ctx context.Context, vehicles []domain.Vehicle) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type TransferService struct {
	transfers   repository.TransferRepository
	vehicles    repository.VehicleRepository
	cache       Cache
	producer    Producer
	eventsTopic string
}

type CreateBookingInput struct {
	CustomerName    string
	Email           string
	Phone           string
	FlightNumber    string
	ArrivalDate     time.Time
	ArrivalTime     string
	Passengers      int
	VehicleType     string
	Destination     string
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
	if in.FlightNumber == "" {
		return fmt.Errorf("%w: flight_number is required", domain.ErrValidation)
	}
	if in.ArrivalDate.IsZero() {
		return fmt.Errorf("%w: arrival_date is required", domain.ErrValidation)
	}
	if _, err := time.Parse("15:04", in.ArrivalTime); err != nil {
		return fmt.Errorf("%w: arrival_time must be HH:MM", domain.ErrValidation)
	}
	if in.Passengers <= 0 {
		return fmt.Errorf("%w: passengers must be positive", domain.ErrValidation)
	}
	if in.Destination == "" {
		return fmt.Errorf("%w: destination is required", domain.ErrValidation)
	}
	return nil
}

func NewTransferService(
	transfers repository.TransferRepository,
	vehicles repository.VehicleRepository,
	cache Cache,
	producer Producer,
	eventsTopic string,
) *TransferService {
	return &TransferService{
		transfers:   transfers,
		vehicles:    vehicles,
		cache:       cache,
		producer:    producer,
		eventsTopic: eventsTopic,
	}
}

func (s *TransferService) ListVehicles(ctx context.Context) ([]domain.Vehicle, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetVehicles(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	vehicles, err := s.vehicles.ListAvailable(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetVehicles(ctx, vehicles)
	}
	return vehicles, nil
}

// CreateBooking resolves the vehicle type against available vehicles, then
// enforces capacity. Passengers equal to capacity is allowed; only strictly
// more is rejected.
func (s *TransferService) CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.TransferBooking, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	vehicle, err := s.vehicles.GetAvailableByType(ctx, input.VehicleType)
	if err != nil {
		return nil, err
	}
	if input.Passengers > vehicle.Capacity {
		return nil, fmt.Errorf("%w: maximum passengers %d", domain.ErrCapacityExceeded, vehicle.Capacity)
	}

	booking := &domain.TransferBooking{
		CustomerName:    input.CustomerName,
		Email:           input.Email,
		Phone:           input.Phone,
		FlightNumber:    input.FlightNumber,
		ArrivalDate:     input.ArrivalDate,
		ArrivalTime:     input.ArrivalTime,
		Passengers:      input.Passengers,
		VehicleType:     input.VehicleType,
		Destination:     input.Destination,
		SpecialRequests: input.SpecialRequests,
		Status:          domain.TransferStatusPending,
	}
	if err := s.transfers.Create(ctx, booking); err != nil {
		return nil, err
	}

	s.publish(ctx, "transfer_booking_created", booking.ID, booking.Email, string(booking.Status))
	return booking, nil
}

func (s *TransferService) GetBooking(ctx context.Context, id string) (*domain.TransferBooking, error) {
	return s.transfers.GetByID(ctx, id)
}

func (s *TransferService) ListBookings(ctx context.Context) ([]domain.TransferBooking, error) {
	return s.transfers.List(ctx)
}

// UpdateStatus applies a last-write-wins status set. Any member of the
// allowed set may follow any other, including itself.
func (s *TransferService) UpdateStatus(ctx context.Context, id, status string) error {
	if !domain.ValidTransferStatus(status) {
		return fmt.Errorf("%w: status must be one of: pending, confirmed, completed, cancelled", domain.ErrInvalidStatus)
	}

	if err := s.transfers.UpdateStatus(ctx, id, domain.TransferStatus(status)); err != nil {
		return err
	}

	s.publish(ctx, "transfer_status_updated", id, "", status)
	return nil
}

func (s *TransferService) publish(ctx context.Context, eventType, id, email, status string) {
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

var _ TransferUseCase = (*TransferService)(nil)
