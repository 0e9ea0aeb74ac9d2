package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	// IMPORTANTE: NÃO adicione imports de usecase ou infra aqui!
)

var (
	ErrVisitorNotFound    = errors.New("visitor not found")
	ErrPhoneAlreadyExists = errors.New("visitor with this phone already exists")
	ErrEmailAlreadyExists = errors.New("visitor with this email already exists")
)

// Entidade: Visitor
// Identidade primária é o telefone; email é chave secundária.
type Visitor struct {
	ID           string    `json:"id"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email,omitempty"`
	Phone        string    `json:"phone"`
	Organization string    `json:"organization,omitempty"`
	Designation  string    `json:"designation,omitempty"`
	City         string    `json:"city,omitempty"`
	Country      string    `json:"country,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Factory
func NewVisitor(fullName, email, phone, organization, designation, city, country string) (*Visitor, error) {
	visitor := &Visitor{
		ID:           uuid.New().String(),
		FullName:     fullName,
		Email:        email,
		Phone:        NormalizePhone(phone),
		Organization: organization,
		Designation:  designation,
		City:         city,
		Country:      country,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := visitor.Validate(); err != nil {
		return nil, err
	}

	return visitor, nil
}

func (v *Visitor) Validate() error {
	if v.FullName == "" {
		return errors.New("full_name is required")
	}
	if v.Phone == "" {
		return errors.New("phone is required")
	}
	return nil
}

type VisitorRepositoryInterface interface {
	Create(ctx context.Context, v *Visitor) error
	FindByPhone(ctx context.Context, phone string) (*Visitor, error)
	FindByID(ctx context.Context, id string) (*Visitor, error)
	ExistsByPhoneOrEmail(ctx context.Context, phone, email string) (bool, error)
	CountByPhone(ctx context.Context, phone string) (int, error)
	SearchByPhonePrefix(ctx context.Context, prefix string, limit int) ([]PhoneSuggestion, error)

	// UpdateMerge aplica merge via COALESCE (campos vazios preservam o valor
	// existente). Não é alcançável pelo fluxo de registro.
	UpdateMerge(ctx context.Context, v *Visitor) error
}
