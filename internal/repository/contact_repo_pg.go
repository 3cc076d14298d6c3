package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/zanzibar-explore/tours-backend/internal/domain"
)

type ContactRepository interface {
	Create(ctx context.Context, contact *domain.Contact) error
	List(ctx context.Context) ([]domain.Contact, error)
	UpdateStatus(ctx context.Context, id string, status domain.ContactStatus) error
}

type PGContactRepository struct {
	db *pgxpool.Pool
}

func NewContactRepository(db *pgxpool.Pool) ContactRepository {
	return &PGContactRepository{db: db}
}

const contactColumns = `id, name, email, phone, subject, message, status, created_at`

func (r *PGContactRepository) Create(ctx context.Context, contact *domain.Contact) error {
	row := r.db.QueryRow(ctx, `INSERT INTO contacts (name, email, phone, subject, message, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+contactColumns,
		contact.Name, contact.Email, contact.Phone, contact.Subject, contact.Message, contact.Status)
	return scanContact(row, contact)
}

func (r *PGContactRepository) List(ctx context.Context) ([]domain.Contact, error) {
	rows, err := r.db.Query(ctx, `SELECT `+contactColumns+` FROM contacts ORDER BY created_at DESC LIMIT $1`, listLimit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	contacts := make([]domain.Contact, 0)
	for rows.Next() {
		var c domain.Contact
		if err := scanContact(rows, &c); err != nil {
			return nil, err
		}
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}

func (r *PGContactRepository) UpdateStatus(ctx context.Context, id string, status domain.ContactStatus) error {
	uid, err := parseID(id)
	if err != nil {
		return err
	}

	cmd, err := r.db.Exec(ctx, `UPDATE contacts SET status=$1 WHERE id=$2`, status, uid)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("contact: %w", domain.ErrNotFound)
	}
	return nil
}

func scanContact(row pgx.Row, c *domain.Contact) error {
	return row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Subject, &c.Message, &c.Status, &c.CreatedAt)
}

var _ ContactRepository = (*PGContactRepository)(nil)
