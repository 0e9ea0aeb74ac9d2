package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Lead é um fato imutável: "este employee abordou este visitor em nome
// desta company com esta intenção". Nunca é atualizado nem deletado aqui.
// Vários leads podem apontar para o mesmo visitor (visita recorrente).
type Lead struct {
	ID           string  `json:"id"`
	CompanyID    *string `json:"company_id"` // null quando o employee não resolve
	VisitorID    string  `json:"visitor_id"`
	EmployeeID   string  `json:"employee_id"`
	Organization string  `json:"organization,omitempty"`
	Designation  string  `json:"designation,omitempty"`
	City         string  `json:"city,omitempty"`
	Country      string  `json:"country,omitempty"`

	// Interests é um vocabulário fechado (HOT/WARM/COLD) validado pela UI,
	// não pelo serviço.
	Interests string `json:"interests,omitempty"`
	Notes     string `json:"notes,omitempty"`

	// FollowUpDate trafega como string YYYY-MM-DD de ponta a ponta.
	// Nada de timezone aqui: é uma data de calendário, não um instante.
	FollowUpDate string    `json:"follow_up_date,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewLead(companyID *string, visitorID, employeeID string) *Lead {
	return &Lead{
		ID:         uuid.New().String(),
		CompanyID:  companyID,
		VisitorID:  visitorID,
		EmployeeID: employeeID,
		CreatedAt:  time.Now(),
	}
}

type LeadRepositoryInterface interface {
	Create(ctx context.Context, lead *Lead) error
	FindByVisitorID(ctx context.Context, visitorID string) ([]*Lead, error)
}
