package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/zanzibar-explore/tours-backend/internal/domain"
)

type VehicleRepository interface {
	ListAvailable(ctx context.Context) ([]domain.Vehicle, error)
	GetAvailableByType(ctx context.Context, vehicleType string) (*domain.Vehicle, error)
}

type PGVehicleRepository struct {
	db *pgxpool.Pool
}

func NewVehicleRepository(db *pgxpool.Pool) VehicleRepository {
	return &PGVehicleRepository{db: db}
}

const vehicleColumns = `id, type, description, price, features, capacity, available`

func (r *PGVehicleRepository) ListAvailable(ctx context.Context) ([]domain.Vehicle, error) {
	rows, err := r.db.Query(ctx, `SELECT `+vehicleColumns+` FROM vehicles WHERE available ORDER BY capacity LIMIT $1`, listLimit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	vehicles := make([]domain.Vehicle, 0)
	for rows.Next() {
		var v domain.Vehicle
		if err := rows.Scan(&v.ID, &v.Type, &v.Description, &v.Price, &v.Features, &v.Capacity, &v.Available); err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, rows.Err()
}

// GetAvailableByType matches type case-sensitively. An unknown type and a
// known-but-unavailable type both come back as not found.
func (r *PGVehicleRepository) GetAvailableByType(ctx context.Context, vehicleType string) (*domain.Vehicle, error) {
	row := r.db.QueryRow(ctx, `SELECT `+vehicleColumns+` FROM vehicles WHERE type=$1 AND available`, vehicleType)
	var v domain.Vehicle
	if err := row.Scan(&v.ID, &v.Type, &v.Description, &v.Price, &v.Features, &v.Capacity, &v.Available); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("vehicle type: %w", domain.ErrNotFound)
		}
		return nil, err
	}
	return &v, nil
}

var _ VehicleRepository = (*PGVehicleRepository)(nil)
