package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"github.com/vercel098/central-city-soccer/models"
)

var (
	ErrAdminNotFound       = errors.New("admin not found")
	ErrAdminNumberConflict = errors.New("admin number conflict")
)

type AdminRepository interface {
	Create(ctx context.Context, admin *models.Admin) error
	GetByAdminNumber(ctx context.Context, adminNumber string) (*models.Admin, error)
}

type postgresAdminRepository struct {
	db *sql.DB
}

func NewPostgresAdminRepository(db *sql.DB) AdminRepository {
	return &postgresAdminRepository{db: db}
}

func (r *postgresAdminRepository) Create(ctx context.Context, admin *models.Admin) error {
	query := `
		INSERT INTO admins (admin_number, password_hash)
		VALUES ($1, $2)
		RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		admin.AdminNumber,
		admin.PasswordHash,
	).Scan(&admin.ID)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23505" && pqErr.Constraint == "admins_admin_number_key" {
				return ErrAdminNumberConflict
			}
		}
		return err
	}
	return nil
}

func (r *postgresAdminRepository) GetByAdminNumber(ctx context.Context, adminNumber string) (*models.Admin, error) {
	query := `
		SELECT id, admin_number, password_hash
		FROM admins
		WHERE admin_number = $1`

	admin := &models.Admin{}
	err := r.db.QueryRowContext(ctx, query, adminNumber).Scan(
		&admin.ID,
		&admin.AdminNumber,
		&admin.PasswordHash,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}
	return admin, nil
}
