package database

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/lib/pq"
	"github.com/xavierca1/expo-visitors/internal/entity"
)

type VisitorRepository struct {
	DB *sql.DB
}

func NewVisitorRepository(db *sql.DB) *VisitorRepository {
	return &VisitorRepository{DB: db}
}

func (r *VisitorRepository) Create(ctx context.Context, v *entity.Visitor) error {
	query := `
		INSERT INTO visitors (id, full_name, email, phone, organization, designation, city, country, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.DB.ExecContext(ctx, query,
		v.ID,
		v.FullName,
		nullString(v.Email),
		v.Phone,
		nullString(v.Organization),
		nullString(v.Designation),
		nullString(v.City),
		nullString(v.Country),
		v.CreatedAt,
		v.UpdatedAt,
	)

	if err != nil {
		// A unique constraint do banco é a rede de segurança contra a corrida
		// read-then-write de dois registros concorrentes do mesmo telefone.
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			if pqErr.Constraint == "visitors_email_key" {
				return entity.ErrEmailAlreadyExists
			}
			return entity.ErrPhoneAlreadyExists
		}

		log.Printf("Erro crítico no banco: %v", err)
		return err
	}

	return nil
}

func (r *VisitorRepository) FindByPhone(ctx context.Context, phone string) (*entity.Visitor, error) {
	query := `
		SELECT id, full_name, email, phone, organization, designation, city, country, created_at, updated_at
		FROM visitors
		WHERE phone = $1
	`

	return r.scanOne(r.DB.QueryRowContext(ctx, query, phone))
}

func (r *VisitorRepository) FindByID(ctx context.Context, id string) (*entity.Visitor, error) {
	query := `
		SELECT id, full_name, email, phone, organization, designation, city, country, created_at, updated_at
		FROM visitors
		WHERE id = $1
	`

	return r.scanOne(r.DB.QueryRowContext(ctx, query, id))
}

func (r *VisitorRepository) ExistsByPhoneOrEmail(ctx context.Context, phone, email string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM visitors
			WHERE phone = $1 OR ($2 <> '' AND email = $2)
		)
	`

	var exists bool
	err := r.DB.QueryRowContext(ctx, query, phone, email).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *VisitorRepository) CountByPhone(ctx context.Context, phone string) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM visitors WHERE phone = $1`, phone).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// SearchByPhonePrefix reproduz a query de sugestões do app: match exato
// primeiro, depois prefixo, depois o resto, desempatando pelo telefone.
func (r *VisitorRepository) SearchByPhonePrefix(ctx context.Context, prefix string, limit int) ([]entity.PhoneSuggestion, error) {
	query := `
		SELECT phone, full_name
		FROM visitors
		WHERE phone LIKE $1
		ORDER BY
			CASE
				WHEN phone = $2 THEN 1
				WHEN phone LIKE $1 THEN 2
				ELSE 3
			END,
			phone
		LIMIT $3
	`

	rows, err := r.DB.QueryContext(ctx, query, prefix+"%", prefix, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var suggestions []entity.PhoneSuggestion
	for rows.Next() {
		var s entity.PhoneSuggestion
		var name sql.NullString
		if err := rows.Scan(&s.Phone, &name); err != nil {
			return nil, err
		}
		s.DisplayName = name.String
		suggestions = append(suggestions, s)
	}
	return suggestions, rows.Err()
}

// UpdateMerge faz merge campo a campo via COALESCE: valores vazios preservam
// o que já está no banco. Mantido para tooling interno; o registro pela API
// rejeita duplicados e nunca chega aqui.
func (r *VisitorRepository) UpdateMerge(ctx context.Context, v *entity.Visitor) error {
	query := `
		UPDATE visitors
		SET full_name    = COALESCE($1, full_name),
		    email        = COALESCE($2, email),
		    organization = COALESCE($3, organization),
		    designation  = COALESCE($4, designation),
		    city         = COALESCE($5, city),
		    country      = COALESCE($6, country),
		    updated_at   = NOW()
		WHERE phone = $7
	`

	_, err := r.DB.ExecContext(ctx, query,
		nullString(v.FullName),
		nullString(v.Email),
		nullString(v.Organization),
		nullString(v.Designation),
		nullString(v.City),
		nullString(v.Country),
		v.Phone,
	)
	return err
}

func (r *VisitorRepository) scanOne(row *sql.Row) (*entity.Visitor, error) {
	var v entity.Visitor
	var email, organization, designation, city, country sql.NullString

	err := row.Scan(
		&v.ID,
		&v.FullName,
		&email,
		&v.Phone,
		&organization,
		&designation,
		&city,
		&country,
		&v.CreatedAt,
		&v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrVisitorNotFound
		}
		return nil, err
	}

	v.Email = email.String
	v.Organization = organization.String
	v.Designation = designation.String
	v.City = city.String
	v.Country = country.String

	return &v, nil
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
