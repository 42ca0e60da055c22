package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"volunteer-portal-backend/internal/domain"
	"volunteer-portal-backend/internal/logger"
	"volunteer-portal-backend/internal/metrics"
	"volunteer-portal-backend/internal/onboarding"
	"volunteer-portal-backend/internal/repository"
)

type onboardingService struct {
	table     *TeamTable
	directory repository.PersonDirectory
	observer  metrics.Observer
	now       func() time.Time
}

// NewOnboardingService wires the evaluator to its inputs. now supplies the
// evaluation date; pass time.Now in production.
func NewOnboardingService(table *TeamTable, directory repository.PersonDirectory, observer metrics.Observer, now func() time.Time) OnboardingService {
	if observer == nil {
		observer = metrics.NopObserver{}
	}
	if now == nil {
		now = time.Now
	}
	return &onboardingService{
		table:     table,
		directory: directory,
		observer:  observer,
		now:       now,
	}
}

func (s *onboardingService) GetOnboarding(ctx context.Context, personID, team string) (*domain.Onboarding, error) {
	logger.EnterMethod("onboardingService.GetOnboarding", "person_id", personID, "team", team)
	start := time.Now()

	var selected domain.TeamKey
	if team != "" {
		selected = onboarding.NormalizeTeamName(team)
		if selected == "" {
			return nil, domain.ErrInvalidTeamKey
		}
	}

	person, err := s.directory.GetPerson(ctx, personID)
	if err != nil {
		s.observer.RecordDirectoryError("GetPerson")
		logger.ExitMethodWithError("onboardingService.GetOnboarding", err, "person_id", personID)
		return nil, fmt.Errorf("get person %s: %w", personID, err)
	}
	table, err := s.table.Table(ctx)
	if err != nil {
		logger.ExitMethodWithError("onboardingService.GetOnboarding", err, "person_id", personID)
		return nil, fmt.Errorf("load team requirements: %w", err)
	}

	snapshot := onboarding.BuildSnapshot(*person)
	keys := onboarding.TeamKeys(snapshot.ActiveTeams, snapshot.CompletedTeams)
	if selected != "" {
		keys = []domain.TeamKey{selected}
	}
	required := onboarding.ResolveKeys(table, keys)
	progress := onboarding.Evaluate(required, snapshot, s.now())
	s.observer.RecordEvaluation(time.Since(start), progress)

	logger.ExitMethod("onboardingService.GetOnboarding", "person_id", personID, "completed", progress.Completed, "total", progress.Total)
	return &domain.Onboarding{
		PersonID: snapshot.PersonID,
		Name:     snapshot.Name,
		Teams:    keys,
		Required: required,
		Progress: progress,
		Overall:  progress.Overall(),
	}, nil
}

func (s *onboardingService) ListTeamRoster(ctx context.Context, team string) ([]domain.RosterEntry, error) {
	logger.EnterMethod("onboardingService.ListTeamRoster", "team", team)

	key := onboarding.NormalizeTeamName(team)
	if key == "" {
		return nil, domain.ErrInvalidTeamKey
	}
	people, err := s.directory.ListPeopleByTeam(ctx, key)
	if err != nil {
		s.observer.RecordDirectoryError("ListPeopleByTeam")
		logger.ExitMethodWithError("onboardingService.ListTeamRoster", err, "team", key)
		return nil, fmt.Errorf("list people for team %s: %w", key, err)
	}
	table, err := s.table.Table(ctx)
	if err != nil {
		return nil, fmt.Errorf("load team requirements: %w", err)
	}

	required := onboarding.ResolveKeys(table, []domain.TeamKey{key})
	today := s.now()
	roster := make([]domain.RosterEntry, 0, len(people))
	for _, person := range people {
		snapshot := onboarding.BuildSnapshot(person)
		progress := onboarding.Evaluate(required, snapshot, today)
		roster = append(roster, domain.RosterEntry{
			PersonID:           snapshot.PersonID,
			Name:               snapshot.Name,
			Email:              snapshot.Email,
			Completed:          progress.Completed,
			Total:              progress.Total,
			Overall:            progress.Overall(),
			OnboardingComplete: containsKey(onboarding.TeamKeys(snapshot.CompletedTeams), key),
		})
	}
	sort.SliceStable(roster, func(i, j int) bool { return roster[i].Name < roster[j].Name })

	logger.ExitMethod("onboardingService.ListTeamRoster", "team", key, "people", len(roster))
	return roster, nil
}

func (s *onboardingService) ListOnboardingPeople(ctx context.Context) ([]PersonEvaluation, error) {
	table, err := s.table.Table(ctx)
	if err != nil {
		return nil, fmt.Errorf("load team requirements: %w", err)
	}

	keys := make([]domain.TeamKey, 0, len(table))
	for key := range table {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	today := s.now()
	seen := make(map[string]struct{})
	out := make([]PersonEvaluation, 0)
	for _, key := range keys {
		people, err := s.directory.ListPeopleByTeam(ctx, key)
		if err != nil {
			// One failing team should not stop the rest of the batch.
			s.observer.RecordDirectoryError("ListPeopleByTeam")
			logger.WarnContext(ctx, "Skipping team, directory lookup failed", "team", key, "error", err)
			continue
		}
		for _, person := range people {
			if _, ok := seen[person.ID]; ok {
				continue
			}
			seen[person.ID] = struct{}{}

			snapshot := onboarding.BuildSnapshot(person)
			required := onboarding.Resolve(table, snapshot.ActiveTeams, snapshot.CompletedTeams)
			out = append(out, PersonEvaluation{
				Snapshot: snapshot,
				Required: required,
				Progress: onboarding.Evaluate(required, snapshot, today),
			})
		}
	}
	return out, nil
}

func containsKey(keys []domain.TeamKey, key domain.TeamKey) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}
