package onboarding

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"volunteer-portal-backend/internal/domain"
)

var today = time.Date(2024, 6, 15, 14, 30, 0, 0, time.UTC)

func daysAgo(n int) *time.Time {
	t := today.AddDate(0, 0, -n)
	return &t
}

func yearsAgo(years, extraDays int) *time.Time {
	t := today.AddDate(-years, 0, -extraDays)
	return &t
}

func categories(p domain.Progress) []domain.StepCategory {
	out := make([]domain.StepCategory, 0, len(p.Steps))
	for _, s := range p.Steps {
		out = append(out, s.Category)
	}
	return out
}

func statusOf(t *testing.T, p domain.Progress, c domain.StepCategory) domain.FieldStatus {
	t.Helper()
	s, ok := p.Step(c)
	require.True(t, ok, "missing step %s", c)
	return s.Status
}

func TestEvaluate_Scenario(t *testing.T) {
	required := Resolve(map[domain.TeamKey]domain.TeamRequirements{
		"greeters": {TeamKey: "greeters", BackgroundCheck: true, References: true},
	}, []string{"greeters"}, nil)
	snapshot := domain.PersonFieldSnapshot{
		Declaration:     domain.TwoPhaseField{Submitted: true, Reviewed: true},
		BackgroundCheck: &domain.BackgroundCheckRecord{Status: domain.BackgroundCheckManualClear},
		References:      domain.TwoPhaseField{Submitted: true},
	}

	p := Evaluate(required, snapshot, today)

	assert.Equal(t, []domain.StepCategory{domain.StepDeclaration, domain.StepBackgroundCheck, domain.StepReferences}, categories(p))
	assert.Equal(t, domain.FieldStatusComplete, p.Steps[0].Status)
	assert.Equal(t, domain.FieldStatusComplete, p.Steps[1].Status)
	assert.Equal(t, domain.FieldStatusPendingAdmin, p.Steps[2].Status)
	assert.Equal(t, 2, p.Completed)
	assert.Equal(t, 3, p.Total)
}

func TestEvaluate_NothingRequired(t *testing.T) {
	p := Evaluate(domain.RequiredSteps{}, domain.PersonFieldSnapshot{Covenant: true}, today)
	assert.Empty(t, p.Steps)
	assert.NotNil(t, p.Steps)
	assert.Equal(t, 0, p.Total)
	assert.Equal(t, 0, p.Completed)
	assert.Equal(t, domain.FieldStatusComplete, p.Overall())
}

func TestEvaluate_Idempotent(t *testing.T) {
	required := Resolve(testTable(), []string{"kids", "worship"}, nil)
	snapshot := domain.PersonFieldSnapshot{
		Declaration:     domain.TwoPhaseField{Submitted: true},
		BackgroundCheck: &domain.BackgroundCheckRecord{Status: domain.BackgroundCheckCompleteClear, ExpiresOn: daysAgo(-30)},
		ChildSafety:     domain.TrainingField{Submitted: true, LastCompleted: daysAgo(10)},
	}
	first := Evaluate(required, snapshot, today)
	second := Evaluate(required, snapshot, today)
	assert.Equal(t, first, second)
}

func TestEvaluate_DeclarationFollowsBackgroundCheck(t *testing.T) {
	with := Evaluate(domain.RequiredSteps{BackgroundCheck: true, Declaration: true}, domain.PersonFieldSnapshot{}, today)
	_, ok := with.Step(domain.StepDeclaration)
	assert.True(t, ok)
	assert.Equal(t, domain.StepDeclaration, with.Steps[0].Category)
	assert.Equal(t, domain.StepBackgroundCheck, with.Steps[1].Category)

	without := Evaluate(domain.RequiredSteps{References: true}, domain.PersonFieldSnapshot{}, today)
	_, ok = without.Step(domain.StepDeclaration)
	assert.False(t, ok)
}

func TestEvaluate_Declaration(t *testing.T) {
	required := domain.RequiredSteps{BackgroundCheck: true, Declaration: true}
	tests := []struct {
		name  string
		field domain.TwoPhaseField
		want  domain.FieldStatus
	}{
		{"Not submitted", domain.TwoPhaseField{}, domain.FieldStatusPendingUser},
		{"Submitted", domain.TwoPhaseField{Submitted: true}, domain.FieldStatusPendingAdmin},
		{"Reviewed", domain.TwoPhaseField{Submitted: true, Reviewed: true}, domain.FieldStatusComplete},
		{"Reviewed without submission flag", domain.TwoPhaseField{Reviewed: true}, domain.FieldStatusComplete},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Evaluate(required, domain.PersonFieldSnapshot{Declaration: tt.field}, today)
			assert.Equal(t, tt.want, statusOf(t, p, domain.StepDeclaration))
		})
	}
}

func TestEvaluate_BackgroundCheck(t *testing.T) {
	required := domain.RequiredSteps{BackgroundCheck: true, Declaration: true}
	rec := func(status domain.BackgroundCheckStatus, expires *time.Time) *domain.BackgroundCheckRecord {
		return &domain.BackgroundCheckRecord{Status: status, CompletedAt: daysAgo(100), ExpiresOn: expires}
	}
	tests := []struct {
		name       string
		record     *domain.BackgroundCheckRecord
		want       domain.FieldStatus
		notCleared bool
		link       bool
	}{
		{"No record", nil, domain.FieldStatusPendingUser, false, true},
		{"Awaiting applicant", rec(domain.BackgroundCheckAwaitingApplicant, nil), domain.FieldStatusPendingUser, false, true},
		{"Report processing", rec(domain.BackgroundCheckReportProcessing, nil), domain.FieldStatusPendingAdmin, false, false},
		{"Needs review", rec(domain.BackgroundCheckNeedsReview, nil), domain.FieldStatusPendingAdmin, false, false},
		{"Pending review", rec(domain.BackgroundCheckPendingReview, nil), domain.FieldStatusPendingAdmin, false, false},
		{"Manual clear without expiration", rec(domain.BackgroundCheckManualClear, nil), domain.FieldStatusComplete, false, false},
		{"Complete clear expiring today", rec(domain.BackgroundCheckCompleteClear, daysAgo(0)), domain.FieldStatusComplete, false, false},
		{"Complete clear expired yesterday", rec(domain.BackgroundCheckCompleteClear, daysAgo(1)), domain.FieldStatusPendingUser, false, true},
		{"Manual not clear", rec(domain.BackgroundCheckManualNotClear, nil), domain.FieldStatusPendingAdmin, true, false},
		{"Not clear", rec(domain.BackgroundCheckNotClear, nil), domain.FieldStatusPendingAdmin, true, false},
		{"Denied", rec(domain.BackgroundCheckDenied, nil), domain.FieldStatusPendingAdmin, true, false},
		{"Unknown status", rec("suspended_by_vendor", nil), domain.FieldStatusPendingAdmin, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Evaluate(required, domain.PersonFieldSnapshot{BackgroundCheck: tt.record}, today)
			step, ok := p.Step(domain.StepBackgroundCheck)
			require.True(t, ok)
			assert.Equal(t, tt.want, step.Status)
			assert.Equal(t, tt.notCleared, step.NotCleared)
			assert.Equal(t, tt.link, step.Link != "")
			if tt.record != nil {
				require.NotNil(t, step.BackgroundCheck)
				assert.Equal(t, tt.record.Status, step.BackgroundCheck.Status)
				assert.Equal(t, tt.record.CompletedAt, step.BackgroundCheck.Date)
			} else {
				assert.Nil(t, step.BackgroundCheck)
			}
		})
	}
}

func TestEvaluate_NotClearedCountsTowardTotal(t *testing.T) {
	required := domain.RequiredSteps{BackgroundCheck: true, Declaration: true}
	snapshot := domain.PersonFieldSnapshot{
		Declaration:     domain.TwoPhaseField{Submitted: true, Reviewed: true},
		BackgroundCheck: &domain.BackgroundCheckRecord{Status: domain.BackgroundCheckDenied},
	}
	p := Evaluate(required, snapshot, today)
	assert.Equal(t, 2, p.Total)
	assert.Equal(t, 1, p.Completed)
	step, _ := p.Step(domain.StepBackgroundCheck)
	assert.Equal(t, notClearedDescription, step.Description)
	assert.Equal(t, domain.FieldStatusPendingAdmin, p.Overall())
}

func TestEvaluate_Training(t *testing.T) {
	t.Run("Child safety boundary", func(t *testing.T) {
		required := domain.RequiredSteps{ChildSafety: true}
		exact := Evaluate(required, domain.PersonFieldSnapshot{ChildSafety: domain.TrainingField{Submitted: true, LastCompleted: yearsAgo(2, 0)}}, today)
		assert.Equal(t, domain.FieldStatusComplete, statusOf(t, exact, domain.StepChildSafety))

		older := Evaluate(required, domain.PersonFieldSnapshot{ChildSafety: domain.TrainingField{Submitted: true, LastCompleted: yearsAgo(2, 1)}}, today)
		assert.Equal(t, domain.FieldStatusPendingAdmin, statusOf(t, older, domain.StepChildSafety))
	})

	t.Run("Mandated reporter boundary", func(t *testing.T) {
		required := domain.RequiredSteps{MandatedReporter: true}
		exact := Evaluate(required, domain.PersonFieldSnapshot{MandatedReporter: domain.TrainingField{Submitted: true, LastCompleted: yearsAgo(1, 0)}}, today)
		assert.Equal(t, domain.FieldStatusComplete, statusOf(t, exact, domain.StepMandatedReporter))

		older := Evaluate(required, domain.PersonFieldSnapshot{MandatedReporter: domain.TrainingField{Submitted: true, LastCompleted: yearsAgo(1, 1)}}, today)
		assert.Equal(t, domain.FieldStatusPendingAdmin, statusOf(t, older, domain.StepMandatedReporter))
	})

	t.Run("Not submitted", func(t *testing.T) {
		p := Evaluate(domain.RequiredSteps{ChildSafety: true}, domain.PersonFieldSnapshot{}, today)
		assert.Equal(t, domain.FieldStatusPendingUser, statusOf(t, p, domain.StepChildSafety))
	})

	t.Run("Submitted without date", func(t *testing.T) {
		p := Evaluate(domain.RequiredSteps{ChildSafety: true}, domain.PersonFieldSnapshot{ChildSafety: domain.TrainingField{Submitted: true}}, today)
		assert.Equal(t, domain.FieldStatusPendingAdmin, statusOf(t, p, domain.StepChildSafety))
	})

	t.Run("Unparsable date reads as not yet valid", func(t *testing.T) {
		snapshot := domain.PersonFieldSnapshot{ChildSafety: domain.TrainingField{Submitted: true, LastCompleted: ParseDate("last spring")}}
		p := Evaluate(domain.RequiredSteps{ChildSafety: true}, snapshot, today)
		assert.Equal(t, domain.FieldStatusPendingAdmin, statusOf(t, p, domain.StepChildSafety))
	})
}

func TestEvaluate_Covenant(t *testing.T) {
	t.Run("Highest tier only", func(t *testing.T) {
		required := Resolve(map[domain.TeamKey]domain.TeamRequirements{
			"stage": {TeamKey: "stage", Covenant: true, PublicPresence: true},
		}, []string{"stage"}, nil)
		p := Evaluate(required, domain.PersonFieldSnapshot{Covenant: true}, today)

		assert.Equal(t, []domain.StepCategory{domain.StepPublicPresence}, categories(p))
		assert.Equal(t, domain.FieldStatusPendingUser, p.Steps[0].Status)

		p = Evaluate(required, domain.PersonFieldSnapshot{PublicPresence: true}, today)
		assert.Equal(t, domain.FieldStatusComplete, p.Steps[0].Status)
	})

	t.Run("Each tier checks its own flag", func(t *testing.T) {
		tests := []struct {
			tier     domain.CovenantTier
			category domain.StepCategory
			signed   domain.PersonFieldSnapshot
		}{
			{domain.CovenantTierCovenant, domain.StepCovenant, domain.PersonFieldSnapshot{Covenant: true}},
			{domain.CovenantTierMoralConduct, domain.StepMoralConduct, domain.PersonFieldSnapshot{MoralConduct: true}},
			{domain.CovenantTierPublicPresence, domain.StepPublicPresence, domain.PersonFieldSnapshot{PublicPresence: true}},
		}
		for _, tt := range tests {
			p := Evaluate(domain.RequiredSteps{CovenantTier: tt.tier}, tt.signed, today)
			require.Len(t, p.Steps, 1)
			assert.Equal(t, tt.category, p.Steps[0].Category)
			assert.Equal(t, domain.FieldStatusComplete, p.Steps[0].Status)
		}
	})
}

func TestEvaluate_FullOrder(t *testing.T) {
	required := domain.RequiredSteps{
		Declaration:      true,
		BackgroundCheck:  true,
		References:       true,
		Membership:       true,
		WelcomeToRCC:     true,
		ChildSafety:      true,
		MandatedReporter: true,
		Discipleship:     true,
		Leadership:       true,
		LifeGroup:        true,
		CovenantTier:     domain.CovenantTierMoralConduct,
	}
	p := Evaluate(required, domain.PersonFieldSnapshot{Membership: domain.TwoPhaseField{Submitted: true, Reviewed: true}}, today)

	assert.Equal(t, []domain.StepCategory{
		domain.StepDeclaration,
		domain.StepBackgroundCheck,
		domain.StepChildSafety,
		domain.StepMandatedReporter,
		domain.StepReferences,
		domain.StepMoralConduct,
		domain.StepMembership,
		domain.StepWelcomeToRCC,
		domain.StepDiscipleship,
		domain.StepLeadership,
		domain.StepLifeGroup,
	}, categories(p))
	assert.Equal(t, 11, p.Total)
	assert.Equal(t, 1, p.Completed)
	for _, s := range p.Steps {
		assert.NotEmpty(t, s.Title)
	}
}

func TestProgress_Overall(t *testing.T) {
	step := func(s domain.FieldStatus) domain.Step { return domain.Step{Status: s} }

	assert.Equal(t, domain.FieldStatusNotStarted, domain.Progress{
		Steps: []domain.Step{step(domain.FieldStatusPendingUser)}, Total: 1,
	}.Overall())
	assert.Equal(t, domain.FieldStatusPendingUser, domain.Progress{
		Steps: []domain.Step{step(domain.FieldStatusComplete), step(domain.FieldStatusPendingUser)}, Completed: 1, Total: 2,
	}.Overall())
	assert.Equal(t, domain.FieldStatusPendingAdmin, domain.Progress{
		Steps: []domain.Step{step(domain.FieldStatusComplete), step(domain.FieldStatusPendingAdmin)}, Completed: 1, Total: 2,
	}.Overall())
	assert.Equal(t, domain.FieldStatusComplete, domain.Progress{
		Steps: []domain.Step{step(domain.FieldStatusComplete)}, Completed: 1, Total: 1,
	}.Overall())
}
