package service

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"volunteer-portal-backend/internal/domain"
	"volunteer-portal-backend/internal/repository"
)

const teamTableCacheKey = "team_requirements"

// TeamTable serves the team requirements table to the evaluators, caching
// it for a short TTL. Writes through the admin service purge the cache.
type TeamTable struct {
	repo  repository.TeamRequirementsRepository
	cache *expirable.LRU[string, map[domain.TeamKey]domain.TeamRequirements]
}

func NewTeamTable(repo repository.TeamRequirementsRepository, size int, ttl time.Duration) *TeamTable {
	if size <= 0 {
		size = 1
	}
	return &TeamTable{
		repo:  repo,
		cache: expirable.NewLRU[string, map[domain.TeamKey]domain.TeamRequirements](size, nil, ttl),
	}
}

// Table returns the requirements keyed by team. The map must not be modified.
func (t *TeamTable) Table(ctx context.Context) (map[domain.TeamKey]domain.TeamRequirements, error) {
	if table, ok := t.cache.Get(teamTableCacheKey); ok {
		return table, nil
	}
	teams, err := t.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	table := make(map[domain.TeamKey]domain.TeamRequirements, len(teams))
	for _, team := range teams {
		table[team.TeamKey] = team
	}
	t.cache.Add(teamTableCacheKey, table)
	return table, nil
}

func (t *TeamTable) Invalidate() {
	t.cache.Purge()
}
