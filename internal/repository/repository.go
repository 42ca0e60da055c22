package repository

import (
	"context"

	"volunteer-portal-backend/internal/domain"
)

// TeamRequirementsRepository stores the per-team compliance configuration.
type TeamRequirementsRepository interface {
	List(ctx context.Context) ([]domain.TeamRequirements, error)
	GetByKey(ctx context.Context, key domain.TeamKey) (*domain.TeamRequirements, error)
	Upsert(ctx context.Context, req *domain.TeamRequirements) error
	Delete(ctx context.Context, key domain.TeamKey) error
}

// PersonDirectory is the upstream people-management API.
type PersonDirectory interface {
	GetPerson(ctx context.Context, personID string) (*domain.PersonRecord, error)
	ListPeopleByTeam(ctx context.Context, team domain.TeamKey) ([]domain.PersonRecord, error)
}
