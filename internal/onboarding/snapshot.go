package onboarding

import (
	"strings"

	"volunteer-portal-backend/internal/domain"
)

// Names of the people directory's custom fields.
const (
	FieldActiveTeams    = "Onboarding Teams"
	FieldCompletedTeams = "Completed Teams"

	FieldDeclarationSubmitted  = "Declaration Submitted"
	FieldDeclarationReviewed   = "Declaration Reviewed"
	FieldReferencesSubmitted   = "References Submitted"
	FieldReferencesReviewed    = "References Reviewed"
	FieldMembershipSubmitted   = "Membership Submitted"
	FieldMembershipReviewed    = "Membership Completed"
	FieldWelcomeSubmitted      = "Welcome to RCC Registered"
	FieldWelcomeReviewed       = "Welcome to RCC Completed"
	FieldDiscipleshipSubmitted = "Discipleship Registered"
	FieldDiscipleshipReviewed  = "Discipleship Completed"
	FieldLeadershipSubmitted   = "Leadership Registered"
	FieldLeadershipReviewed    = "Leadership Completed"
	FieldLifeGroupSubmitted    = "Life Group Joined"
	FieldLifeGroupReviewed     = "Life Group Confirmed"

	FieldChildSafetySubmitted      = "Child Safety Submitted"
	FieldChildSafetyCompleted      = "Child Safety Last Completed"
	FieldMandatedReporterSubmitted = "Mandated Reporter Submitted"
	FieldMandatedReporterCompleted = "Mandated Reporter Last Completed"

	FieldCovenant       = "Covenant Signed"
	FieldMoralConduct   = "Moral Conduct Signed"
	FieldPublicPresence = "Public Presence Signed"
)

var truthyValues = map[string]bool{
	"true":      true,
	"yes":       true,
	"y":         true,
	"1":         true,
	"x":         true,
	"on":        true,
	"checked":   true,
	"complete":  true,
	"completed": true,
}

// fieldLookup resolves directory field values by definition name.
type fieldLookup map[string]any

func newFieldLookup(defs []domain.FieldDefinition, values []domain.FieldValue) fieldLookup {
	names := make(map[string]string, len(defs))
	for _, d := range defs {
		names[d.ID] = strings.ToLower(strings.TrimSpace(d.Name))
	}
	lookup := make(fieldLookup, len(values))
	for _, v := range values {
		name, ok := names[v.FieldDefinitionID]
		if !ok {
			continue
		}
		lookup[name] = v.Value
	}
	return lookup
}

func (l fieldLookup) value(name string) any {
	return l[strings.ToLower(name)]
}

func (l fieldLookup) bool(name string) bool {
	return ToBool(l.value(name))
}

func (l fieldLookup) twoPhase(submitted, reviewed string) domain.TwoPhaseField {
	return domain.TwoPhaseField{Submitted: l.bool(submitted), Reviewed: l.bool(reviewed)}
}

func (l fieldLookup) training(submitted, completed string) domain.TrainingField {
	return domain.TrainingField{Submitted: l.bool(submitted), LastCompleted: ParseDate(l.value(completed))}
}

// ToBool normalizes the loose truthy values the directory stores: booleans,
// "Yes"/"true"-like strings, non-zero numbers and dates all count as set.
func ToBool(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case float64:
		return v != 0
	case int:
		return v != 0
	case int64:
		return v != 0
	case string:
		s := strings.ToLower(strings.TrimSpace(v))
		if truthyValues[s] {
			return true
		}
		return ParseDate(s) != nil
	default:
		return ParseDate(value) != nil
	}
}

// BuildSnapshot converts a directory record into the typed snapshot the
// evaluator reads. Missing fields read as unset.
func BuildSnapshot(record domain.PersonRecord) domain.PersonFieldSnapshot {
	l := newFieldLookup(record.FieldDefinitions, record.FieldValues)
	return domain.PersonFieldSnapshot{
		PersonID:       record.ID,
		Name:           record.Name,
		Email:          record.Email,
		ActiveTeams:    ParseMultiSelect(l.value(FieldActiveTeams)),
		CompletedTeams: ParseMultiSelect(l.value(FieldCompletedTeams)),

		Declaration:  l.twoPhase(FieldDeclarationSubmitted, FieldDeclarationReviewed),
		References:   l.twoPhase(FieldReferencesSubmitted, FieldReferencesReviewed),
		Membership:   l.twoPhase(FieldMembershipSubmitted, FieldMembershipReviewed),
		WelcomeToRCC: l.twoPhase(FieldWelcomeSubmitted, FieldWelcomeReviewed),
		Discipleship: l.twoPhase(FieldDiscipleshipSubmitted, FieldDiscipleshipReviewed),
		Leadership:   l.twoPhase(FieldLeadershipSubmitted, FieldLeadershipReviewed),
		LifeGroup:    l.twoPhase(FieldLifeGroupSubmitted, FieldLifeGroupReviewed),

		ChildSafety:      l.training(FieldChildSafetySubmitted, FieldChildSafetyCompleted),
		MandatedReporter: l.training(FieldMandatedReporterSubmitted, FieldMandatedReporterCompleted),

		BackgroundCheck: LatestBackgroundCheck(record.BackgroundChecks),

		Covenant:       l.bool(FieldCovenant),
		MoralConduct:   l.bool(FieldMoralConduct),
		PublicPresence: l.bool(FieldPublicPresence),
	}
}

// LatestBackgroundCheck picks the most recently completed record. Dated
// records beat undated ones; otherwise the later record in the list wins.
func LatestBackgroundCheck(records []domain.RawBackgroundCheck) *domain.BackgroundCheckRecord {
	var latest *domain.BackgroundCheckRecord
	for _, raw := range records {
		rec := &domain.BackgroundCheckRecord{
			Status:      NormalizeBackgroundCheckStatus(raw.Status),
			CompletedAt: ParseDate(raw.CompletedAt),
			ExpiresOn:   ParseDate(raw.ExpiresOn),
		}
		switch {
		case latest == nil:
			latest = rec
		case rec.CompletedAt == nil:
			if latest.CompletedAt == nil {
				latest = rec
			}
		case latest.CompletedAt == nil || !rec.CompletedAt.Before(*latest.CompletedAt):
			latest = rec
		}
	}
	return latest
}

// NormalizeBackgroundCheckStatus lowercases a provider status and joins words
// with underscores. Unrecognized statuses are kept as-is.
func NormalizeBackgroundCheckStatus(status string) domain.BackgroundCheckStatus {
	s := strings.ToLower(strings.TrimSpace(status))
	s = strings.NewReplacer("-", " ", "_", " ").Replace(s)
	return domain.BackgroundCheckStatus(strings.Join(strings.Fields(s), "_"))
}

