package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/expo-visitors/internal/entity"
)

func validRegisterInput() RegisterVisitorInput {
	return RegisterVisitorInput{
		FullName:     "John Doe",
		Email:        "john@example.com",
		Phone:        "9876543210",
		Organization: "Tech Corp",
		Interests:    "HOT",
		FollowUpDate: "2025-03-15",
		EmployeeID:   "emp-1",
	}
}

func TestRegisterVisitorSuccess(t *testing.T) {
	visitors := new(MockVisitorRepository)
	leads := new(MockLeadAttacher)

	visitors.On("ExistsByPhoneOrEmail", mock.Anything, "9876543210", "john@example.com").Return(false, nil)
	visitors.On("Create", mock.Anything, mock.Anything).Return(nil)
	leads.On("Execute", mock.Anything, mock.Anything).Return("lead-1", nil)

	uc := NewRegisterVisitorUseCase(visitors, leads)
	output, err := uc.Execute(context.Background(), validRegisterInput())

	assert.NoError(t, err)
	assert.NotEmpty(t, output.VisitorID)
	assert.Equal(t, "lead-1", output.LeadID)
	assert.Empty(t, output.LeadWarning)
	visitors.AssertExpectations(t)
}

func TestRegisterVisitorRejectsDuplicatePhone(t *testing.T) {
	visitors := new(MockVisitorRepository)
	leads := new(MockLeadAttacher)

	visitors.On("ExistsByPhoneOrEmail", mock.Anything, "555", "").Return(true, nil)

	input := RegisterVisitorInput{FullName: "Second Name", Phone: "555", EmployeeID: "emp-1"}

	uc := NewRegisterVisitorUseCase(visitors, leads)
	output, err := uc.Execute(context.Background(), input)

	assert.Nil(t, output)
	assert.True(t, IsConflictError(err))

	// Nenhum write acontece na rejeição: o registro existente fica intacto.
	visitors.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	leads.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

// Dois registros concorrentes do mesmo telefone passam ambos pela
// pré-checagem; o segundo morre na unique constraint e tem que virar o
// mesmo conflito, não um 500.
func TestRegisterVisitorMapsConstraintViolationToConflict(t *testing.T) {
	visitors := new(MockVisitorRepository)
	leads := new(MockLeadAttacher)

	visitors.On("ExistsByPhoneOrEmail", mock.Anything, "555", "").Return(false, nil)
	visitors.On("Create", mock.Anything, mock.Anything).Return(entity.ErrPhoneAlreadyExists)

	uc := NewRegisterVisitorUseCase(visitors, leads)
	_, err := uc.Execute(context.Background(), RegisterVisitorInput{FullName: "A", Phone: "555"})

	assert.True(t, IsConflictError(err))
	leads.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestRegisterVisitorMissingPhone(t *testing.T) {
	visitors := new(MockVisitorRepository)
	leads := new(MockLeadAttacher)

	uc := NewRegisterVisitorUseCase(visitors, leads)
	_, err := uc.Execute(context.Background(), RegisterVisitorInput{FullName: "John Doe"})

	assert.True(t, IsDomainError(err))
	visitors.AssertNotCalled(t, "ExistsByPhoneOrEmail", mock.Anything, mock.Anything, mock.Anything)
	visitors.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// A falha do lead nunca derruba o registro do visitor: vira warning.
func TestRegisterVisitorLeadFailureBecomesWarning(t *testing.T) {
	visitors := new(MockVisitorRepository)
	leads := new(MockLeadAttacher)

	visitors.On("ExistsByPhoneOrEmail", mock.Anything, mock.Anything, mock.Anything).Return(false, nil)
	visitors.On("Create", mock.Anything, mock.Anything).Return(nil)
	leads.On("Execute", mock.Anything, mock.Anything).Return("", errors.New("insert failed"))

	uc := NewRegisterVisitorUseCase(visitors, leads)
	output, err := uc.Execute(context.Background(), validRegisterInput())

	assert.NoError(t, err)
	assert.NotEmpty(t, output.VisitorID)
	assert.Empty(t, output.LeadID)
	assert.Contains(t, output.LeadWarning, "lead could not be recorded")
}

func TestRegisterVisitorPreCheckOutageIsTechnical(t *testing.T) {
	visitors := new(MockVisitorRepository)
	leads := new(MockLeadAttacher)

	visitors.On("ExistsByPhoneOrEmail", mock.Anything, mock.Anything, mock.Anything).Return(false, errors.New("connection refused"))

	uc := NewRegisterVisitorUseCase(visitors, leads)
	_, err := uc.Execute(context.Background(), validRegisterInput())

	assert.True(t, IsTechnicalError(err))
}

// A data de follow-up atravessa o usecase exatamente como chegou.
func TestRegisterVisitorFollowUpDatePassesVerbatim(t *testing.T) {
	visitors := new(MockVisitorRepository)
	leads := new(MockLeadAttacher)

	visitors.On("ExistsByPhoneOrEmail", mock.Anything, mock.Anything, mock.Anything).Return(false, nil)
	visitors.On("Create", mock.Anything, mock.Anything).Return(nil)

	var captured AttachLeadInput
	leads.On("Execute", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		captured = args.Get(1).(AttachLeadInput)
	}).Return("lead-1", nil)

	uc := NewRegisterVisitorUseCase(visitors, leads)
	_, err := uc.Execute(context.Background(), validRegisterInput())

	assert.NoError(t, err)
	assert.Equal(t, "2025-03-15", captured.FollowUpDate)
}

func TestRegisterVisitorNormalizesPhone(t *testing.T) {
	visitors := new(MockVisitorRepository)
	leads := new(MockLeadAttacher)

	visitors.On("ExistsByPhoneOrEmail", mock.Anything, "11999999999", mock.Anything).Return(false, nil)

	var created *entity.Visitor
	visitors.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		created = args.Get(1).(*entity.Visitor)
	}).Return(nil)
	leads.On("Execute", mock.Anything, mock.Anything).Return("lead-1", nil)

	input := validRegisterInput()
	input.Phone = "(11) 99999-9999"

	uc := NewRegisterVisitorUseCase(visitors, leads)
	_, err := uc.Execute(context.Background(), input)

	assert.NoError(t, err)
	assert.Equal(t, "11999999999", created.Phone)
}
