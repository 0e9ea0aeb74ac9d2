package usecase

import (
	"context"
	"errors"
	"log"

	"github.com/xavierca1/expo-visitors/internal/entity"
)

type RegisterVisitorUseCase struct {
	Visitors entity.VisitorRepositoryInterface
	Leads    LeadAttacherInterface
}

func NewRegisterVisitorUseCase(
	visitors entity.VisitorRepositoryInterface,
	leads LeadAttacherInterface,
) *RegisterVisitorUseCase {
	return &RegisterVisitorUseCase{
		Visitors: visitors,
		Leads:    leads,
	}
}

// Execute registra o visitor sob a política hard-reject: telefone ou email
// já cadastrado derruba a requisição com conflito, sem nenhum write.
// A política antiga de merge (COALESCE) não passa por aqui.
func (uc *RegisterVisitorUseCase) Execute(ctx context.Context, input RegisterVisitorInput) (*RegisterVisitorOutput, error) {
	validationErrors := ValidateRegisterVisitorInput(input)
	if len(validationErrors) > 0 {
		return nil, &DomainError{
			Code:    "VALIDATION_ERROR",
			Message: joinValidationErrors(validationErrors),
		}
	}

	phone := entity.NormalizePhone(input.Phone)

	// Pré-checagem de aplicação. A unique constraint do banco continua
	// por trás como rede de segurança para a corrida entre dois registros
	// concorrentes do mesmo telefone.
	exists, err := uc.Visitors.ExistsByPhoneOrEmail(ctx, phone, input.Email)
	if err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to check existing visitor: " + err.Error(),
		}
	}
	if exists {
		return nil, &ConflictError{
			Code:    "VISITOR_ALREADY_EXISTS",
			Message: "visitor with this phone or email already exists",
		}
	}

	visitor, err := entity.NewVisitor(
		input.FullName,
		input.Email,
		phone,
		input.Organization,
		input.Designation,
		input.City,
		input.Country,
	)
	if err != nil {
		return nil, &DomainError{
			Code:    "VALIDATION_ERROR",
			Message: err.Error(),
		}
	}

	if err := uc.Visitors.Create(ctx, visitor); err != nil {
		if errors.Is(err, entity.ErrPhoneAlreadyExists) || errors.Is(err, entity.ErrEmailAlreadyExists) {
			return nil, &ConflictError{
				Code:    "VISITOR_ALREADY_EXISTS",
				Message: err.Error(),
			}
		}
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to persist visitor: " + err.Error(),
		}
	}

	output := &RegisterVisitorOutput{
		Message:   "Visitor registered successfully",
		VisitorID: visitor.ID,
	}

	// Segunda fase, best-effort: a falha do lead nunca derruba nem desfaz
	// o registro do visitor. Loga, reporta como warning e segue.
	leadID, err := uc.Leads.Execute(ctx, AttachLeadInput{
		VisitorID:    visitor.ID,
		VisitorName:  visitor.FullName,
		VisitorPhone: visitor.Phone,
		EmployeeID:   input.EmployeeID,
		Organization: input.Organization,
		Designation:  input.Designation,
		City:         input.City,
		Country:      input.Country,
		Interests:    input.Interests,
		Notes:        input.Notes,
		FollowUpDate: input.FollowUpDate,
	})
	if err != nil {
		log.Printf("⚠️ Falha ao anexar lead para visitor %s: %v", visitor.ID, err)
		output.LeadWarning = "lead could not be recorded: " + err.Error()
		return output, nil
	}

	output.LeadID = leadID
	return output, nil
}
