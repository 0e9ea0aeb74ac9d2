package database

import (
	"context"
	"database/sql"

	"github.com/xavierca1/expo-visitors/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO visitor_leads (id, company_id, visitor_id, employee_id, organization, designation, city, country, interests, notes, follow_up_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NULLIF($11, '')::date, $12)
	`

	_, err := r.DB.ExecContext(ctx, query,
		lead.ID,
		lead.CompanyID,
		lead.VisitorID,
		nullString(lead.EmployeeID),
		nullString(lead.Organization),
		nullString(lead.Designation),
		nullString(lead.City),
		nullString(lead.Country),
		nullString(lead.Interests),
		nullString(lead.Notes),
		lead.FollowUpDate,
		lead.CreatedAt,
	)
	return err
}

func (r *LeadRepository) FindByVisitorID(ctx context.Context, visitorID string) ([]*entity.Lead, error) {
	// to_char devolve a data exatamente como foi gravada (YYYY-MM-DD),
	// sem passar por time.Time e pelo fuso da sessão.
	query := `
		SELECT id, company_id, visitor_id, employee_id, organization, designation, city, country, interests, notes,
		       COALESCE(to_char(follow_up_date, 'YYYY-MM-DD'), ''), created_at
		FROM visitor_leads
		WHERE visitor_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.DB.QueryContext(ctx, query, visitorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leads []*entity.Lead
	for rows.Next() {
		lead := &entity.Lead{}
		var employeeID, organization, designation, city, country, interests, notes sql.NullString

		err := rows.Scan(
			&lead.ID,
			&lead.CompanyID,
			&lead.VisitorID,
			&employeeID,
			&organization,
			&designation,
			&city,
			&country,
			&interests,
			&notes,
			&lead.FollowUpDate,
			&lead.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		lead.EmployeeID = employeeID.String
		lead.Organization = organization.String
		lead.Designation = designation.String
		lead.City = city.String
		lead.Country = country.String
		lead.Interests = interests.String
		lead.Notes = notes.String

		leads = append(leads, lead)
	}
	return leads, rows.Err()
}
