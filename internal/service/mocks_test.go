package service

import (
	"context"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/stretchr/testify/mock"

	"volunteer-portal-backend/internal/domain"
)

// MockTeamRequirementsRepo
type MockTeamRequirementsRepo struct {
	mock.Mock
}

func (m *MockTeamRequirementsRepo) List(ctx context.Context) ([]domain.TeamRequirements, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TeamRequirements), args.Error(1)
}
func (m *MockTeamRequirementsRepo) GetByKey(ctx context.Context, key domain.TeamKey) (*domain.TeamRequirements, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TeamRequirements), args.Error(1)
}
func (m *MockTeamRequirementsRepo) Upsert(ctx context.Context, req *domain.TeamRequirements) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
func (m *MockTeamRequirementsRepo) Delete(ctx context.Context, key domain.TeamKey) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

// MockDirectory
type MockDirectory struct {
	mock.Mock
}

func (m *MockDirectory) GetPerson(ctx context.Context, personID string) (*domain.PersonRecord, error) {
	args := m.Called(ctx, personID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PersonRecord), args.Error(1)
}
func (m *MockDirectory) ListPeopleByTeam(ctx context.Context, team domain.TeamKey) ([]domain.PersonRecord, error) {
	args := m.Called(ctx, team)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PersonRecord), args.Error(1)
}

// MockMailSender
type MockMailSender struct {
	mock.Mock
}

func (m *MockMailSender) SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rest.Response), args.Error(1)
}
