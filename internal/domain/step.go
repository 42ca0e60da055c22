package domain

import "time"

type FieldStatus string

const (
	FieldStatusNotStarted   FieldStatus = "not_started"
	FieldStatusPendingUser  FieldStatus = "pending_user"
	FieldStatusPendingAdmin FieldStatus = "pending_admin"
	FieldStatusComplete     FieldStatus = "complete"
)

func (s FieldStatus) IsComplete() bool {
	return s == FieldStatusComplete
}

type StepCategory string

const (
	StepDeclaration      StepCategory = "declaration"
	StepBackgroundCheck  StepCategory = "background_check"
	StepChildSafety      StepCategory = "child_safety"
	StepMandatedReporter StepCategory = "mandated_reporter"
	StepReferences       StepCategory = "references"
	StepCovenant         StepCategory = "covenant"
	StepMoralConduct     StepCategory = "moral_conduct"
	StepPublicPresence   StepCategory = "public_presence"
	StepMembership       StepCategory = "membership"
	StepWelcomeToRCC     StepCategory = "welcome_to_rcc"
	StepDiscipleship     StepCategory = "discipleship"
	StepLeadership       StepCategory = "leadership"
	StepLifeGroup        StepCategory = "life_group"
)

// BackgroundCheckDetail is the provider status and date shown next to the
// background check step.
type BackgroundCheckDetail struct {
	Status BackgroundCheckStatus `json:"status,omitempty"`
	Date   *time.Time            `json:"date,omitempty"`
}

type Step struct {
	Category    StepCategory `json:"category"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Link        string       `json:"link,omitempty"`
	Status      FieldStatus  `json:"status"`
	// NotCleared marks a background check the provider did not clear. The
	// step stays incomplete until an admin intervenes.
	NotCleared      bool                   `json:"not_cleared,omitempty"`
	BackgroundCheck *BackgroundCheckDetail `json:"background_check,omitempty"`
}

type Progress struct {
	Steps     []Step `json:"steps"`
	Completed int    `json:"completed"`
	Total     int    `json:"total"`
}

// Overall collapses the per-step statuses into one status for dashboards.
func (p Progress) Overall() FieldStatus {
	if p.Completed == p.Total {
		return FieldStatusComplete
	}
	for _, s := range p.Steps {
		if s.Status == FieldStatusPendingAdmin {
			return FieldStatusPendingAdmin
		}
	}
	if p.Completed == 0 {
		return FieldStatusNotStarted
	}
	return FieldStatusPendingUser
}

// Step returns the step for a category, if it was emitted.
func (p Progress) Step(category StepCategory) (Step, bool) {
	for _, s := range p.Steps {
		if s.Category == category {
			return s, true
		}
	}
	return Step{}, false
}

// Onboarding is a person's evaluated onboarding state.
type Onboarding struct {
	PersonID string        `json:"person_id"`
	Name     string        `json:"name"`
	Teams    []TeamKey     `json:"teams"`
	Required RequiredSteps `json:"required"`
	Progress Progress      `json:"progress"`
	Overall  FieldStatus   `json:"overall"`
}

// RosterEntry is one volunteer's progress as seen by a team leader.
type RosterEntry struct {
	PersonID  string      `json:"person_id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Completed int         `json:"completed"`
	Total     int         `json:"total"`
	Overall   FieldStatus `json:"overall"`
	// OnboardingComplete is set when the team is among the person's completed teams.
	OnboardingComplete bool `json:"onboarding_complete"`
}
