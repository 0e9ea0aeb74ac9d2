package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/expo-visitors/internal/entity"
	"github.com/xavierca1/expo-visitors/internal/infra/queue"
)

type MockVisitorRepository struct {
	mock.Mock
}

func (m *MockVisitorRepository) Create(ctx context.Context, v *entity.Visitor) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVisitorRepository) FindByPhone(ctx context.Context, phone string) (*entity.Visitor, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Visitor), args.Error(1)
}

func (m *MockVisitorRepository) FindByID(ctx context.Context, id string) (*entity.Visitor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Visitor), args.Error(1)
}

func (m *MockVisitorRepository) ExistsByPhoneOrEmail(ctx context.Context, phone, email string) (bool, error) {
	args := m.Called(ctx, phone, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockVisitorRepository) CountByPhone(ctx context.Context, phone string) (int, error) {
	args := m.Called(ctx, phone)
	return args.Int(0), args.Error(1)
}

func (m *MockVisitorRepository) SearchByPhonePrefix(ctx context.Context, prefix string, limit int) ([]entity.PhoneSuggestion, error) {
	args := m.Called(ctx, prefix, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.PhoneSuggestion), args.Error(1)
}

func (m *MockVisitorRepository) UpdateMerge(ctx context.Context, v *entity.Visitor) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) FindByVisitorID(ctx context.Context, visitorID string) ([]*entity.Lead, error) {
	args := m.Called(ctx, visitorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Lead), args.Error(1)
}

type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) Create(ctx context.Context, e *entity.Employee) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEmployeeRepository) FindByID(ctx context.Context, id string) (*entity.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) FindActiveByEmail(ctx context.Context, email string) (*entity.Employee, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

type MockQueueProducer struct {
	mock.Mock
}

func (m *MockQueueProducer) PublishFollowUp(ctx context.Context, payload queue.FollowUpPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

type MockLeadAttacher struct {
	mock.Mock
}

func (m *MockLeadAttacher) Execute(ctx context.Context, input AttachLeadInput) (string, error) {
	args := m.Called(ctx, input)
	return args.String(0), args.Error(1)
}
