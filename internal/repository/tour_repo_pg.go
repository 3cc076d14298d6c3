package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/zanzibar-explore/tours-backend/internal/domain"
)

type TourRepository interface {
	List(ctx context.Context) ([]domain.Tour, error)
	GetByID(ctx context.Context, id string) (*domain.Tour, error)
	ListByCategory(ctx context.Context, category string) ([]domain.Tour, error)
}

type PGTourRepository struct {
	db *pgxpool.Pool
}

func NewTourRepository(db *pgxpool.Pool) TourRepository {
	return &PGTourRepository{db: db}
}

const tourColumns = `id, title, description, image, price, duration, category, features, created_at, updated_at`

func (r *PGTourRepository) List(ctx context.Context) ([]domain.Tour, error) {
	rows, err := r.db.Query(ctx, `SELECT `+tourColumns+` FROM tours ORDER BY created_at LIMIT $1`, listLimit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTours(rows)
}

func (r *PGTourRepository) GetByID(ctx context.Context, id string) (*domain.Tour, error) {
	uid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	row := r.db.QueryRow(ctx, `SELECT `+tourColumns+` FROM tours WHERE id=$1`, uid)
	t, err := scanTour(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("tour: %w", domain.ErrNotFound)
		}
		return nil, err
	}
	return t, nil
}

func (r *PGTourRepository) ListByCategory(ctx context.Context, category string) ([]domain.Tour, error) {
	rows, err := r.db.Query(ctx, `SELECT `+tourColumns+` FROM tours WHERE category=$1 ORDER BY created_at LIMIT $2`, category, listLimit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTours(rows)
}

func scanTour(row pgx.Row) (*domain.Tour, error) {
	var t domain.Tour
	if err := row.Scan(&t.ID, &t.Title, &t.Description, &t.Image, &t.Price, &t.Duration, &t.Category, &t.Features, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}

func scanTours(rows pgx.Rows) ([]domain.Tour, error) {
	tours := make([]domain.Tour, 0)
	for rows.Next() {
		t, err := scanTour(rows)
		if err != nil {
			return nil, err
		}
		tours = append(tours, *t)
	}
	return tours, rows.Err()
}

var _ TourRepository = (*PGTourRepository)(nil)
