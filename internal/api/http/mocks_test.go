package http

import (
	"context"

	"github.com/stretchr/testify/mock"

	"volunteer-portal-backend/internal/domain"
	"volunteer-portal-backend/internal/service"
)

// MockOnboardingService
type MockOnboardingService struct {
	mock.Mock
}

func (m *MockOnboardingService) GetOnboarding(ctx context.Context, personID, team string) (*domain.Onboarding, error) {
	args := m.Called(ctx, personID, team)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Onboarding), args.Error(1)
}
func (m *MockOnboardingService) ListTeamRoster(ctx context.Context, team string) ([]domain.RosterEntry, error) {
	args := m.Called(ctx, team)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RosterEntry), args.Error(1)
}
func (m *MockOnboardingService) ListOnboardingPeople(ctx context.Context) ([]service.PersonEvaluation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.PersonEvaluation), args.Error(1)
}

// MockTeamRequirementsService
type MockTeamRequirementsService struct {
	mock.Mock
}

func (m *MockTeamRequirementsService) ListTeamRequirements(ctx context.Context) ([]domain.TeamRequirements, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TeamRequirements), args.Error(1)
}
func (m *MockTeamRequirementsService) GetTeamRequirements(ctx context.Context, team string) (*domain.TeamRequirements, error) {
	args := m.Called(ctx, team)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TeamRequirements), args.Error(1)
}
func (m *MockTeamRequirementsService) SaveTeamRequirements(ctx context.Context, req *domain.TeamRequirements) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
func (m *MockTeamRequirementsService) DeleteTeamRequirements(ctx context.Context, team string) error {
	args := m.Called(ctx, team)
	return args.Error(0)
}
