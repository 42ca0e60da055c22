package domain

import "time"

type BackgroundCheckStatus string

const (
	BackgroundCheckAwaitingApplicant BackgroundCheckStatus = "awaiting_applicant"
	BackgroundCheckReportProcessing  BackgroundCheckStatus = "report_processing"
	BackgroundCheckNeedsReview       BackgroundCheckStatus = "needs_review"
	BackgroundCheckPendingReview     BackgroundCheckStatus = "pending_review"
	BackgroundCheckManualClear       BackgroundCheckStatus = "manual_clear"
	BackgroundCheckCompleteClear     BackgroundCheckStatus = "complete_clear"
	BackgroundCheckManualNotClear    BackgroundCheckStatus = "manual_not_clear"
	BackgroundCheckNotClear          BackgroundCheckStatus = "not_clear"
	BackgroundCheckDenied            BackgroundCheckStatus = "denied"
)

type BackgroundCheckRecord struct {
	Status      BackgroundCheckStatus `json:"status"`
	CompletedAt *time.Time            `json:"completed_at,omitempty"`
	ExpiresOn   *time.Time            `json:"expires_on,omitempty"`
}

// TwoPhaseField is a volunteer-submitted item that an admin confirms.
type TwoPhaseField struct {
	Submitted bool `json:"submitted"`
	Reviewed  bool `json:"reviewed"`
}

// TrainingField is a certification that is only valid for a number of years
// after LastCompleted.
type TrainingField struct {
	Submitted     bool       `json:"submitted"`
	LastCompleted *time.Time `json:"last_completed,omitempty"`
}

// PersonFieldSnapshot is the typed view of a person's compliance fields.
type PersonFieldSnapshot struct {
	PersonID string `json:"person_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`

	ActiveTeams    []string `json:"active_teams"`
	CompletedTeams []string `json:"completed_teams"`

	Declaration  TwoPhaseField `json:"declaration"`
	References   TwoPhaseField `json:"references"`
	Membership   TwoPhaseField `json:"membership"`
	WelcomeToRCC TwoPhaseField `json:"welcome_to_rcc"`
	Discipleship TwoPhaseField `json:"discipleship"`
	Leadership   TwoPhaseField `json:"leadership"`
	LifeGroup    TwoPhaseField `json:"life_group"`

	ChildSafety      TrainingField `json:"child_safety"`
	MandatedReporter TrainingField `json:"mandated_reporter"`

	BackgroundCheck *BackgroundCheckRecord `json:"background_check,omitempty"`

	Covenant       bool `json:"covenant"`
	MoralConduct   bool `json:"moral_conduct"`
	PublicPresence bool `json:"public_presence"`
}
