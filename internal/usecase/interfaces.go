package usecase

import (
	"context"

	"github.com/xavierca1/expo-visitors/internal/infra/queue"
)

type RegisterVisitorInput struct {
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Organization string `json:"organization"`
	Designation  string `json:"designation"`
	City         string `json:"city"`
	Country      string `json:"country"`
	Interests    string `json:"interests"`
	Notes        string `json:"notes"`
	FollowUpDate string `json:"follow_up_date"`
	EmployeeID   string `json:"employee_id"`
}

type RegisterVisitorOutput struct {
	Message   string `json:"message"`
	VisitorID string `json:"visitor_id"`
	LeadID    string `json:"lead_id,omitempty"`

	// LeadWarning é o resultado da segunda fase: o lead é best-effort e a
	// falha dele nunca vira falha do registro do visitor, mas o chamador
	// e a telemetria ficam sabendo.
	LeadWarning string `json:"lead_warning,omitempty"`
}

type AttachLeadInput struct {
	VisitorID    string
	VisitorName  string
	VisitorPhone string
	EmployeeID   string
	Organization string
	Designation  string
	City         string
	Country      string
	Interests    string
	Notes        string
	FollowUpDate string
}

type RegisterEmployeeInput struct {
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Password    string `json:"password"`
	CompanyCode string `json:"company_code"`
	Role        string `json:"role"`
}

type QueueProducerInterface interface {
	PublishFollowUp(ctx context.Context, payload queue.FollowUpPayload) error
}

type LeadAttacherInterface interface {
	Execute(ctx context.Context, input AttachLeadInput) (string, error)
}
