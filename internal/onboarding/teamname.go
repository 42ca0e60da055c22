package onboarding

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"volunteer-portal-backend/internal/domain"
)

// teamAliases maps historical team names to their current key. Keys are
// already normalized.
var teamAliases = map[domain.TeamKey]domain.TeamKey{
	"care-ministry":          "care",
	"kids-ministry":          "kids",
	"childrens-ministry":     "kids",
	"student-ministry":       "students",
	"youth":                  "students",
	"first-impressions-team": "first-impressions",
	"worship-team":           "worship",
}

// NormalizeTeamName turns a free-text team label into a TeamKey: Unicode
// compatibility fold, lowercase, whitespace runs collapsed to single dashes,
// then alias substitution. Unknown labels pass through normalized.
func NormalizeTeamName(label string) domain.TeamKey {
	s := strings.ToLower(norm.NFKC.String(label))
	key := domain.TeamKey(strings.Join(strings.Fields(s), "-"))
	if alias, ok := teamAliases[key]; ok {
		return alias
	}
	return key
}

// TeamKeys normalizes and de-duplicates labels from all given lists,
// preserving first-seen order and dropping empty labels.
func TeamKeys(lists ...[]string) []domain.TeamKey {
	seen := make(map[domain.TeamKey]struct{})
	keys := make([]domain.TeamKey, 0)
	for _, list := range lists {
		for _, label := range list {
			key := NormalizeTeamName(label)
			if key == "" {
				continue
			}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			keys = append(keys, key)
		}
	}
	return keys
}
