package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/zanzibar-explore/tours-backend/internal/domain"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
}

type PGBookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) BookingRepository {
	return &PGBookingRepository{db: db}
}

const bookingColumns = `id, tour_id, customer_name, email, phone, booking_date, guests, special_requests, status, created_at`

// Create inserts the booking and overwrites it with the row as persisted, so
// the caller sees exactly what storage holds, id and timestamp included.
func (r *PGBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	row := r.db.QueryRow(ctx, `INSERT INTO bookings (tour_id, customer_name, email, phone, booking_date, guests, special_requests, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+bookingColumns,
		booking.TourID, booking.CustomerName, booking.Email, booking.Phone, booking.BookingDate, booking.Guests, booking.SpecialRequests, booking.Status)
	return scanBooking(row, booking)
}

func (r *PGBookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	uid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	row := r.db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id=$1`, uid)
	var b domain.Booking
	if err := scanBooking(row, &b); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("booking: %w", domain.ErrNotFound)
		}
		return nil, err
	}
	return &b, nil
}

func scanBooking(row pgx.Row, b *domain.Booking) error {
	return row.Scan(&b.ID, &b.TourID, &b.CustomerName, &b.Email, &b.Phone, &b.BookingDate, &b.Guests, &b.SpecialRequests, &b.Status, &b.CreatedAt)
}

var _ BookingRepository = (*PGBookingRepository)(nil)
