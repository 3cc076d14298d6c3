package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/zanzibar-explore/tours-backend/internal/domain"
)

type TransferRepository interface {
	Create(ctx context.Context, booking *domain.TransferBooking) error
	GetByID(ctx context.Context, id string) (*domain.TransferBooking, error)
	List(ctx context.Context) ([]domain.TransferBooking, error)
	UpdateStatus(ctx context.Context, id string, status domain.TransferStatus) error
}

type PGTransferRepository struct {
	db *pgxpool.Pool
}

func NewTransferRepository(db *pgxpool.Pool) TransferRepository {
	return &PGTransferRepository{db: db}
}

const transferColumns = `id, customer_name, email, phone, flight_number, arrival_date, arrival_time, passengers, vehicle_type, destination, special_requests, status, created_at`

func (r *PGTransferRepository) Create(ctx context.Context, booking *domain.TransferBooking) error {
	row := r.db.QueryRow(ctx, `INSERT INTO transfer_bookings (customer_name, email, phone, flight_number, arrival_date, arrival_time, passengers, vehicle_type, destination, special_requests, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING `+transferColumns,
		booking.CustomerName, booking.Email, booking.Phone, booking.FlightNumber, booking.ArrivalDate, booking.ArrivalTime,
		booking.Passengers, booking.VehicleType, booking.Destination, booking.SpecialRequests, booking.Status)
	return scanTransfer(row, booking)
}

func (r *PGTransferRepository) GetByID(ctx context.Context, id string) (*domain.TransferBooking, error) {
	uid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	row := r.db.QueryRow(ctx, `SELECT `+transferColumns+` FROM transfer_bookings WHERE id=$1`, uid)
	var b domain.TransferBooking
	if err := scanTransfer(row, &b); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("transfer booking: %w", domain.ErrNotFound)
		}
		return nil, err
	}
	return &b, nil
}

func (r *PGTransferRepository) List(ctx context.Context) ([]domain.TransferBooking, error) {
	rows, err := r.db.Query(ctx, `SELECT `+transferColumns+` FROM transfer_bookings ORDER BY created_at DESC LIMIT $1`, listLimit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]domain.TransferBooking, 0)
	for rows.Next() {
		var b domain.TransferBooking
		if err := scanTransfer(rows, &b); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

// UpdateStatus is an unconditional last-write-wins set. The allowed-status
// check happens in the service; repeating the same status is a no-op success.
func (r *PGTransferRepository) UpdateStatus(ctx context.Context, id string, status domain.TransferStatus) error {
	uid, err := parseID(id)
	if err != nil {
		return err
	}

	cmd, err := r.db.Exec(ctx, `UPDATE transfer_bookings SET status=$1 WHERE id=$2`, status, uid)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("transfer booking: %w", domain.ErrNotFound)
	}
	return nil
}

func scanTransfer(row pgx.Row, b *domain.TransferBooking) error {
	return row.Scan(&b.ID, &b.CustomerName, &b.Email, &b.Phone, &b.FlightNumber, &b.ArrivalDate, &b.ArrivalTime,
		&b.Passengers, &b.VehicleType, &b.Destination, &b.SpecialRequests, &b.Status, &b.CreatedAt)
}

var _ TransferRepository = (*PGTransferRepository)(nil)
