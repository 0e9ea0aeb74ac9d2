package database

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/lib/pq"
	"github.com/xavierca1/expo-visitors/internal/entity"
)

type EmployeeRepository struct {
	DB *sql.DB
}

func NewEmployeeRepository(db *sql.DB) *EmployeeRepository {
	return &EmployeeRepository{DB: db}
}

func (r *EmployeeRepository) Create(ctx context.Context, e *entity.Employee) error {
	query := `
		INSERT INTO users (id, full_name, email, phone, password_hash, role, company_id, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.DB.ExecContext(ctx, query,
		e.ID,
		e.FullName,
		e.Email,
		nullString(e.Phone),
		e.PasswordHash,
		e.Role,
		e.CompanyID,
		e.IsActive,
		e.CreatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return entity.ErrEmployeeEmailExists
		}
		log.Printf("Erro crítico no banco: %v", err)
		return err
	}

	return nil
}

func (r *EmployeeRepository) FindByID(ctx context.Context, id string) (*entity.Employee, error) {
	query := `
		SELECT id, full_name, email, phone, password_hash, role, company_id, is_active, created_at
		FROM users
		WHERE id = $1
	`

	return r.scanOne(r.DB.QueryRowContext(ctx, query, id))
}

func (r *EmployeeRepository) FindActiveByEmail(ctx context.Context, email string) (*entity.Employee, error) {
	query := `
		SELECT id, full_name, email, phone, password_hash, role, company_id, is_active, created_at
		FROM users
		WHERE email = $1 AND is_active = true
	`

	return r.scanOne(r.DB.QueryRowContext(ctx, query, email))
}

func (r *EmployeeRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *EmployeeRepository) scanOne(row *sql.Row) (*entity.Employee, error) {
	var e entity.Employee
	var phone sql.NullString

	err := row.Scan(
		&e.ID,
		&e.FullName,
		&e.Email,
		&phone,
		&e.PasswordHash,
		&e.Role,
		&e.CompanyID,
		&e.IsActive,
		&e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrEmployeeNotFound
		}
		return nil, err
	}

	e.Phone = phone.String
	return &e, nil
}
