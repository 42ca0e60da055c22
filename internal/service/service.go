package service

import (
	"context"

	"volunteer-portal-backend/internal/domain"
	"volunteer-portal-backend/internal/onboarding"
)

type OnboardingService interface {
	// GetOnboarding evaluates a person across all their teams, or only the
	// given team when team is non-empty.
	GetOnboarding(ctx context.Context, personID, team string) (*domain.Onboarding, error)
	ListTeamRoster(ctx context.Context, team string) ([]domain.RosterEntry, error)
	// ListOnboardingPeople evaluates everyone on any configured team, once per person.
	ListOnboardingPeople(ctx context.Context) ([]PersonEvaluation, error)
}

type TeamRequirementsService interface {
	ListTeamRequirements(ctx context.Context) ([]domain.TeamRequirements, error)
	GetTeamRequirements(ctx context.Context, team string) (*domain.TeamRequirements, error)
	SaveTeamRequirements(ctx context.Context, req *domain.TeamRequirements) error
	DeleteTeamRequirements(ctx context.Context, team string) error
}

type EmailService interface {
	SendOnboardingReminder(ctx context.Context, email, name string, pending []domain.Step) error
	SendExpirationNotice(ctx context.Context, email, name string, expiring []onboarding.ExpiringCertification) error
}

// PersonEvaluation is one person's snapshot with the requirements of all
// their teams applied.
type PersonEvaluation struct {
	Snapshot domain.PersonFieldSnapshot
	Required domain.RequiredSteps
	Progress domain.Progress
}
