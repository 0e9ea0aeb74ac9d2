package usecase

import (
	"context"
	"log"

	"github.com/xavierca1/expo-visitors/internal/entity"
	"github.com/xavierca1/expo-visitors/internal/infra/queue"
)

type AttachLeadUseCase struct {
	Employees entity.EmployeeRepositoryInterface
	Leads     entity.LeadRepositoryInterface
	Queue     QueueProducerInterface
}

func NewAttachLeadUseCase(
	employees entity.EmployeeRepositoryInterface,
	leads entity.LeadRepositoryInterface,
	queueProducer QueueProducerInterface,
) *AttachLeadUseCase {
	return &AttachLeadUseCase{
		Employees: employees,
		Leads:     leads,
		Queue:     queueProducer,
	}
}

// Execute grava o lead da visita. O company_id vem do cadastro do employee;
// se o employee não resolver, o lead sai com company_id nulo em vez de
// falhar a operação inteira.
func (uc *AttachLeadUseCase) Execute(ctx context.Context, input AttachLeadInput) (string, error) {
	var companyID *string
	var employee *entity.Employee

	if input.EmployeeID != "" {
		var err error
		employee, err = uc.Employees.FindByID(ctx, input.EmployeeID)
		if err != nil {
			log.Printf("⚠️ Employee %s não resolvido, lead seguirá sem company: %v", input.EmployeeID, err)
		} else {
			companyID = &employee.CompanyID
		}
	}

	lead := entity.NewLead(companyID, input.VisitorID, input.EmployeeID)
	lead.Organization = input.Organization
	lead.Designation = input.Designation
	lead.City = input.City
	lead.Country = input.Country
	lead.Interests = input.Interests
	lead.Notes = input.Notes
	lead.FollowUpDate = input.FollowUpDate

	if err := uc.Leads.Create(ctx, lead); err != nil {
		return "", err
	}

	// Lembrete de follow-up vai pra fila. Também best-effort: a mensagem
	// perdida não desfaz o lead já gravado.
	if uc.Queue != nil && lead.FollowUpDate != "" && employee != nil {
		payload := queue.FollowUpPayload{
			LeadID:        lead.ID,
			VisitorID:     lead.VisitorID,
			VisitorName:   input.VisitorName,
			VisitorPhone:  input.VisitorPhone,
			EmployeeID:    employee.ID,
			EmployeeName:  employee.FullName,
			EmployeeEmail: employee.Email,
			Interests:     lead.Interests,
			FollowUpDate:  lead.FollowUpDate,
		}
		if err := uc.Queue.PublishFollowUp(ctx, payload); err != nil {
			log.Printf("⚠️ Falha ao publicar lembrete de follow-up do lead %s: %v", lead.ID, err)
		}
	}

	return lead.ID, nil
}
