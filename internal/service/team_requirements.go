package service

import (
	"context"
	"fmt"

	"volunteer-portal-backend/internal/domain"
	"volunteer-portal-backend/internal/logger"
	"volunteer-portal-backend/internal/onboarding"
	"volunteer-portal-backend/internal/repository"
)

type teamRequirementsService struct {
	repo  repository.TeamRequirementsRepository
	table *TeamTable
}

func NewTeamRequirementsService(repo repository.TeamRequirementsRepository, table *TeamTable) TeamRequirementsService {
	return &teamRequirementsService{
		repo:  repo,
		table: table,
	}
}

func (s *teamRequirementsService) ListTeamRequirements(ctx context.Context) ([]domain.TeamRequirements, error) {
	return s.repo.List(ctx)
}

func (s *teamRequirementsService) GetTeamRequirements(ctx context.Context, team string) (*domain.TeamRequirements, error) {
	key := onboarding.NormalizeTeamName(team)
	if key == "" {
		return nil, domain.ErrInvalidTeamKey
	}
	return s.repo.GetByKey(ctx, key)
}

func (s *teamRequirementsService) SaveTeamRequirements(ctx context.Context, req *domain.TeamRequirements) error {
	logger.EnterMethod("teamRequirementsService.SaveTeamRequirements", "team", req.TeamKey)

	label := string(req.TeamKey)
	key := onboarding.NormalizeTeamName(label)
	if key == "" {
		logger.ExitMethodWithError("teamRequirementsService.SaveTeamRequirements", domain.ErrInvalidTeamKey)
		return domain.ErrInvalidTeamKey
	}
	req.TeamKey = key
	if req.DisplayName == "" {
		req.DisplayName = label
	}
	// A higher covenant form includes the lower ones.
	if req.PublicPresence {
		req.MoralConduct = true
	}
	if req.MoralConduct {
		req.Covenant = true
	}

	if err := s.repo.Upsert(ctx, req); err != nil {
		logger.ExitMethodWithError("teamRequirementsService.SaveTeamRequirements", err)
		return fmt.Errorf("save team requirements: %w", err)
	}
	s.table.Invalidate()

	logger.Info("Team requirements saved", "team", key)
	logger.ExitMethod("teamRequirementsService.SaveTeamRequirements")
	return nil
}

func (s *teamRequirementsService) DeleteTeamRequirements(ctx context.Context, team string) error {
	key := onboarding.NormalizeTeamName(team)
	if key == "" {
		return domain.ErrInvalidTeamKey
	}
	if err := s.repo.Delete(ctx, key); err != nil {
		return err
	}
	s.table.Invalidate()
	logger.Info("Team requirements deleted", "team", key)
	return nil
}
