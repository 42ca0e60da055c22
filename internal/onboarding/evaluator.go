package onboarding

import (
	"time"

	"volunteer-portal-backend/internal/domain"
)

const (
	childSafetyValidYears      = 2
	mandatedReporterValidYears = 1
)

// Evaluate walks the onboarding categories in their fixed order and emits a
// step for each one the requirements ask for. The result depends only on
// its arguments.
func Evaluate(required domain.RequiredSteps, snapshot domain.PersonFieldSnapshot, today time.Time) domain.Progress {
	steps := make([]domain.Step, 0)

	if required.BackgroundCheck {
		steps = append(steps, newStep(domain.StepDeclaration, twoPhaseStatus(snapshot.Declaration)))
	}
	if required.BackgroundCheck {
		steps = append(steps, backgroundCheckStep(snapshot.BackgroundCheck, today))
	}
	if required.ChildSafety {
		steps = append(steps, newStep(domain.StepChildSafety, trainingStatus(snapshot.ChildSafety, childSafetyValidYears, today)))
	}
	if required.MandatedReporter {
		steps = append(steps, newStep(domain.StepMandatedReporter, trainingStatus(snapshot.MandatedReporter, mandatedReporterValidYears, today)))
	}
	if required.References {
		steps = append(steps, newStep(domain.StepReferences, twoPhaseStatus(snapshot.References)))
	}
	if step, ok := covenantStep(required.CovenantTier, snapshot); ok {
		steps = append(steps, step)
	}

	classes := []struct {
		required bool
		category domain.StepCategory
		field    domain.TwoPhaseField
	}{
		{required.Membership, domain.StepMembership, snapshot.Membership},
		{required.WelcomeToRCC, domain.StepWelcomeToRCC, snapshot.WelcomeToRCC},
		{required.Discipleship, domain.StepDiscipleship, snapshot.Discipleship},
		{required.Leadership, domain.StepLeadership, snapshot.Leadership},
		{required.LifeGroup, domain.StepLifeGroup, snapshot.LifeGroup},
	}
	for _, c := range classes {
		if c.required {
			steps = append(steps, newStep(c.category, twoPhaseStatus(c.field)))
		}
	}

	progress := domain.Progress{Steps: steps, Total: len(steps)}
	for _, s := range steps {
		if s.Status.IsComplete() {
			progress.Completed++
		}
	}
	return progress
}

// twoPhaseStatus classifies a submitted/reviewed pair. An admin review
// completes the item even if the submission flag was never set.
func twoPhaseStatus(f domain.TwoPhaseField) domain.FieldStatus {
	switch {
	case f.Reviewed:
		return domain.FieldStatusComplete
	case f.Submitted:
		return domain.FieldStatusPendingAdmin
	default:
		return domain.FieldStatusPendingUser
	}
}

func trainingStatus(f domain.TrainingField, validYears int, today time.Time) domain.FieldStatus {
	switch {
	case IsWithinYears(f.LastCompleted, validYears, today):
		return domain.FieldStatusComplete
	case f.Submitted:
		return domain.FieldStatusPendingAdmin
	default:
		return domain.FieldStatusPendingUser
	}
}

// ClassifyBackgroundCheck maps a provider record to a FieldStatus. The second
// result is true when the provider did not clear the person.
func ClassifyBackgroundCheck(record *domain.BackgroundCheckRecord, today time.Time) (domain.FieldStatus, bool) {
	if record == nil {
		return domain.FieldStatusPendingUser, false
	}
	switch record.Status {
	case domain.BackgroundCheckAwaitingApplicant:
		return domain.FieldStatusPendingUser, false
	case domain.BackgroundCheckReportProcessing,
		domain.BackgroundCheckNeedsReview,
		domain.BackgroundCheckPendingReview:
		return domain.FieldStatusPendingAdmin, false
	case domain.BackgroundCheckManualClear, domain.BackgroundCheckCompleteClear:
		if notExpired(record.ExpiresOn, today) {
			return domain.FieldStatusComplete, false
		}
		// An expired clearance starts over.
		return domain.FieldStatusPendingUser, false
	case domain.BackgroundCheckManualNotClear,
		domain.BackgroundCheckNotClear,
		domain.BackgroundCheckDenied:
		return domain.FieldStatusPendingAdmin, true
	default:
		return domain.FieldStatusPendingAdmin, false
	}
}

func backgroundCheckStep(record *domain.BackgroundCheckRecord, today time.Time) domain.Step {
	status, notCleared := ClassifyBackgroundCheck(record, today)
	step := newStep(domain.StepBackgroundCheck, status)
	if status != domain.FieldStatusPendingUser {
		step.Link = ""
	}
	if notCleared {
		step.NotCleared = true
		step.Description = notClearedDescription
	}
	if record != nil {
		step.BackgroundCheck = &domain.BackgroundCheckDetail{
			Status: record.Status,
			Date:   record.CompletedAt,
		}
	}
	return step
}

// covenantStep emits a single step for the highest required tier and checks
// only that tier's signature.
func covenantStep(tier domain.CovenantTier, snapshot domain.PersonFieldSnapshot) (domain.Step, bool) {
	var (
		category domain.StepCategory
		signed   bool
	)
	switch tier {
	case domain.CovenantTierPublicPresence:
		category, signed = domain.StepPublicPresence, snapshot.PublicPresence
	case domain.CovenantTierMoralConduct:
		category, signed = domain.StepMoralConduct, snapshot.MoralConduct
	case domain.CovenantTierCovenant:
		category, signed = domain.StepCovenant, snapshot.Covenant
	default:
		return domain.Step{}, false
	}
	status := domain.FieldStatusPendingUser
	if signed {
		status = domain.FieldStatusComplete
	}
	return newStep(category, status), true
}
