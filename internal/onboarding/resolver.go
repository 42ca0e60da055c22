package onboarding

import "volunteer-portal-backend/internal/domain"

// Resolve merges the requirements of every team a person is onboarding for or
// has completed. Labels are normalized before lookup and teams missing from
// the table contribute nothing.
func Resolve(table map[domain.TeamKey]domain.TeamRequirements, activeTeams, completedTeams []string) domain.RequiredSteps {
	return ResolveKeys(table, TeamKeys(activeTeams, completedTeams))
}

// ResolveTeam restricts the merge to a single team, for per-team views.
func ResolveTeam(table map[domain.TeamKey]domain.TeamRequirements, team string) domain.RequiredSteps {
	return Resolve(table, []string{team}, nil)
}

// ResolveKeys merges already normalized team keys.
func ResolveKeys(table map[domain.TeamKey]domain.TeamRequirements, keys []domain.TeamKey) domain.RequiredSteps {
	var required domain.RequiredSteps
	for _, key := range keys {
		team, ok := table[key]
		if !ok {
			continue
		}
		required = merge(required, team)
	}
	return required
}

func merge(r domain.RequiredSteps, t domain.TeamRequirements) domain.RequiredSteps {
	r.BackgroundCheck = r.BackgroundCheck || t.BackgroundCheck
	r.References = r.References || t.References
	r.Membership = r.Membership || t.Membership
	r.WelcomeToRCC = r.WelcomeToRCC || t.WelcomeToRCC
	r.ChildSafety = r.ChildSafety || t.ChildSafety
	r.MandatedReporter = r.MandatedReporter || t.MandatedReporter
	r.Discipleship = r.Discipleship || t.Discipleship
	r.Leadership = r.Leadership || t.Leadership
	r.LifeGroup = r.LifeGroup || t.LifeGroup
	if tier := t.CovenantTier(); tier > r.CovenantTier {
		r.CovenantTier = tier
	}
	// Every background check is preceded by the declaration form.
	r.Declaration = r.BackgroundCheck
	return r
}
