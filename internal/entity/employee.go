package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmployeeNotFound    = errors.New("employee not found")
	ErrEmployeeEmailExists = errors.New("user with this email already exists")
	ErrInvalidCredentials  = errors.New("invalid email or password")
)

const DefaultEmployeeRole = "employee"

// Employee é o usuário do app (tabela users no banco legado).
// Pertence a exatamente uma company.
type Employee struct {
	ID           string    `json:"id"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CompanyID    string    `json:"company_id"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewEmployee(fullName, email, phone, passwordHash, role, companyID string) (*Employee, error) {
	if role == "" {
		role = DefaultEmployeeRole
	}

	employee := &Employee{
		ID:           uuid.New().String(),
		FullName:     fullName,
		Email:        email,
		Phone:        phone,
		PasswordHash: passwordHash,
		Role:         role,
		CompanyID:    companyID,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}

	if err := employee.Validate(); err != nil {
		return nil, err
	}

	return employee, nil
}

func (e *Employee) Validate() error {
	if e.FullName == "" {
		return errors.New("full_name is required")
	}
	if e.Email == "" {
		return errors.New("email is required")
	}
	if e.PasswordHash == "" {
		return errors.New("password hash is required")
	}
	if e.CompanyID == "" {
		return errors.New("company_id is required")
	}
	return nil
}

type EmployeeRepositoryInterface interface {
	Create(ctx context.Context, e *Employee) error
	FindByID(ctx context.Context, id string) (*Employee, error)
	FindActiveByEmail(ctx context.Context, email string) (*Employee, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}
