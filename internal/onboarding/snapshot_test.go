package onboarding

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"volunteer-portal-backend/internal/domain"
)

func record(values map[string]any, checks ...domain.RawBackgroundCheck) domain.PersonRecord {
	r := domain.PersonRecord{ID: "p-1", Name: "Jordan Lee", Email: "jordan@example.com", BackgroundChecks: checks}
	i := 0
	for name, v := range values {
		id := string(rune('a' + i))
		r.FieldDefinitions = append(r.FieldDefinitions, domain.FieldDefinition{ID: id, Name: name})
		r.FieldValues = append(r.FieldValues, domain.FieldValue{FieldDefinitionID: id, Value: v})
		i++
	}
	return r
}

func TestBuildSnapshot(t *testing.T) {
	t.Run("Loose values", func(t *testing.T) {
		s := BuildSnapshot(record(map[string]any{
			FieldActiveTeams:               "Kids, Care Ministry",
			FieldCompletedTeams:            []any{"Parking"},
			"declaration submitted":        "Yes",
			FieldDeclarationReviewed:       "2024-02-01",
			FieldReferencesSubmitted:       true,
			FieldReferencesReviewed:        "No",
			FieldChildSafetySubmitted:      float64(1),
			FieldChildSafetyCompleted:      "03/10/2023",
			FieldMandatedReporterCompleted: "sometime last year",
			FieldCovenant:                  "true",
			FieldMoralConduct:              "",
			FieldPublicPresence:            nil,
		}))

		assert.Equal(t, "p-1", s.PersonID)
		assert.Equal(t, "Jordan Lee", s.Name)
		assert.Equal(t, []string{"Kids", "Care Ministry"}, s.ActiveTeams)
		assert.Equal(t, []string{"Parking"}, s.CompletedTeams)
		assert.Equal(t, domain.TwoPhaseField{Submitted: true, Reviewed: true}, s.Declaration)
		assert.Equal(t, domain.TwoPhaseField{Submitted: true}, s.References)
		assert.True(t, s.ChildSafety.Submitted)
		require.NotNil(t, s.ChildSafety.LastCompleted)
		assert.Equal(t, time.Date(2023, 3, 10, 0, 0, 0, 0, time.UTC), *s.ChildSafety.LastCompleted)
		assert.False(t, s.MandatedReporter.Submitted)
		assert.Nil(t, s.MandatedReporter.LastCompleted)
		assert.True(t, s.Covenant)
		assert.False(t, s.MoralConduct)
		assert.False(t, s.PublicPresence)
		assert.Nil(t, s.BackgroundCheck)
	})

	t.Run("Missing definitions", func(t *testing.T) {
		r := domain.PersonRecord{
			ID:          "p-2",
			FieldValues: []domain.FieldValue{{FieldDefinitionID: "gone", Value: "Yes"}},
		}
		s := BuildSnapshot(r)
		assert.Equal(t, "p-2", s.PersonID)
		assert.NotNil(t, s.ActiveTeams)
		assert.NotNil(t, s.CompletedTeams)
		assert.Empty(t, s.ActiveTeams)
		assert.Equal(t, domain.TwoPhaseField{}, s.Declaration)
	})
}

func TestLatestBackgroundCheck(t *testing.T) {
	t.Run("Most recent completion wins", func(t *testing.T) {
		rec := LatestBackgroundCheck([]domain.RawBackgroundCheck{
			{Status: "Complete Clear", CompletedAt: "2023-05-01", ExpiresOn: "2025-05-01"},
			{Status: "needs-review", CompletedAt: "2024-05-01"},
			{Status: "awaiting_applicant"},
		})
		require.NotNil(t, rec)
		assert.Equal(t, domain.BackgroundCheckNeedsReview, rec.Status)
		assert.Nil(t, rec.ExpiresOn)
	})

	t.Run("Undated records keep list order", func(t *testing.T) {
		rec := LatestBackgroundCheck([]domain.RawBackgroundCheck{
			{Status: "awaiting_applicant"},
			{Status: "report_processing"},
		})
		require.NotNil(t, rec)
		assert.Equal(t, domain.BackgroundCheckReportProcessing, rec.Status)
	})

	t.Run("No records", func(t *testing.T) {
		assert.Nil(t, LatestBackgroundCheck(nil))
	})
}

func TestNormalizeBackgroundCheckStatus(t *testing.T) {
	assert.Equal(t, domain.BackgroundCheckManualNotClear, NormalizeBackgroundCheckStatus(" Manual Not-Clear "))
	assert.Equal(t, domain.BackgroundCheckCompleteClear, NormalizeBackgroundCheckStatus("COMPLETE_CLEAR"))
	assert.Equal(t, domain.BackgroundCheckStatus("on_hold"), NormalizeBackgroundCheckStatus("On Hold"))
}

func TestToBool(t *testing.T) {
	for _, v := range []any{true, "Yes", "y", "TRUE", "1", "x", "Completed", float64(2), 1, "2024-01-01"} {
		assert.True(t, ToBool(v), "%v", v)
	}
	for _, v := range []any{nil, false, "No", "false", "0", "", float64(0), "maybe"} {
		assert.False(t, ToBool(v), "%v", v)
	}
}

func TestBuildSnapshot_EndToEnd(t *testing.T) {
	table := map[domain.TeamKey]domain.TeamRequirements{
		"care": {TeamKey: "care", BackgroundCheck: true, References: true},
	}
	s := BuildSnapshot(record(map[string]any{
		FieldActiveTeams:          "Care Ministry",
		FieldDeclarationSubmitted: "yes",
		FieldDeclarationReviewed:  "yes",
		FieldReferencesSubmitted:  "yes",
	}, domain.RawBackgroundCheck{Status: "manual_clear", CompletedAt: "2024-01-10"}))

	p := Evaluate(Resolve(table, s.ActiveTeams, s.CompletedTeams), s, today)
	assert.Equal(t, 3, p.Total)
	assert.Equal(t, 2, p.Completed)
}
