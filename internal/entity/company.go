package entity

import (
	"context"
	"errors"
)

var ErrInvalidCompanyCode = errors.New("invalid company code")

const CompanyStatusActive = "active"

// Company é referenciada pelos employees e, transitivamente, pelos leads.
// O company_code é o token de onboarding distribuído para os funcionários.
type Company struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	CompanyCode string `json:"company_code"`
	Status      string `json:"status"`
}

type CompanyRepositoryInterface interface {
	FindActiveByCode(ctx context.Context, code string) (*Company, error)
}
