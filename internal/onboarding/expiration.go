package onboarding

import (
	"time"

	"volunteer-portal-backend/internal/domain"
)

// ExpiringCertification is a currently valid certification that lapses soon.
type ExpiringCertification struct {
	Category  domain.StepCategory
	Title     string
	ExpiresOn time.Time
}

// ExpiringCertifications lists required certifications that are valid today
// and expire within the next windowDays days, boundary included.
func ExpiringCertifications(required domain.RequiredSteps, snapshot domain.PersonFieldSnapshot, today time.Time, windowDays int) []ExpiringCertification {
	start := dateOnly(today)
	end := start.AddDate(0, 0, windowDays)
	inWindow := func(t time.Time) bool {
		d := dateOnly(t)
		return !d.Before(start) && !d.After(end)
	}

	var out []ExpiringCertification
	add := func(category domain.StepCategory, expiresOn time.Time) {
		out = append(out, ExpiringCertification{
			Category:  category,
			Title:     stepTemplates[category].Title,
			ExpiresOn: dateOnly(expiresOn),
		})
	}

	if required.BackgroundCheck {
		rec := snapshot.BackgroundCheck
		if status, _ := ClassifyBackgroundCheck(rec, today); status == domain.FieldStatusComplete && rec.ExpiresOn != nil && inWindow(*rec.ExpiresOn) {
			add(domain.StepBackgroundCheck, *rec.ExpiresOn)
		}
	}
	trainings := []struct {
		required bool
		category domain.StepCategory
		field    domain.TrainingField
		years    int
	}{
		{required.ChildSafety, domain.StepChildSafety, snapshot.ChildSafety, childSafetyValidYears},
		{required.MandatedReporter, domain.StepMandatedReporter, snapshot.MandatedReporter, mandatedReporterValidYears},
	}
	for _, t := range trainings {
		if !t.required || !IsWithinYears(t.field.LastCompleted, t.years, today) {
			continue
		}
		// Last valid day is the anniversary of completion.
		expiresOn := dateOnly(*t.field.LastCompleted).AddDate(t.years, 0, 0)
		if inWindow(expiresOn) {
			add(t.category, expiresOn)
		}
	}
	return out
}
