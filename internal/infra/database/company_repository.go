package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/xavierca1/expo-visitors/internal/entity"
)

type CompanyRepository struct {
	DB *sql.DB
}

func NewCompanyRepository(db *sql.DB) *CompanyRepository {
	return &CompanyRepository{DB: db}
}

// FindActiveByCode valida o token de onboarding digitado no cadastro.
func (r *CompanyRepository) FindActiveByCode(ctx context.Context, code string) (*entity.Company, error) {
	query := `
		SELECT id, name, company_code, status
		FROM companies
		WHERE company_code = $1 AND status = $2
	`

	var c entity.Company
	err := r.DB.QueryRowContext(ctx, query, code, entity.CompanyStatusActive).Scan(
		&c.ID,
		&c.Name,
		&c.CompanyCode,
		&c.Status,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrInvalidCompanyCode
		}
		return nil, err
	}

	return &c, nil
}
