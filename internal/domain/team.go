package domain

// TeamKey is a normalized team identifier, e.g. "kids" or "first-impressions".
type TeamKey string

func (k TeamKey) String() string {
	return string(k)
}

// CovenantTier orders the conduct agreements. A higher tier subsumes the lower ones.
type CovenantTier int

const (
	CovenantTierNone           CovenantTier = 0
	CovenantTierCovenant       CovenantTier = 1
	CovenantTierMoralConduct   CovenantTier = 2
	CovenantTierPublicPresence CovenantTier = 3
)

type TeamRequirements struct {
	TeamKey          TeamKey `json:"team_key"`
	DisplayName      string  `json:"display_name"`
	BackgroundCheck  bool    `json:"background_check"`
	References       bool    `json:"references"`
	Membership       bool    `json:"membership"`
	WelcomeToRCC     bool    `json:"welcome_to_rcc"`
	ChildSafety      bool    `json:"child_safety"`
	MandatedReporter bool    `json:"mandated_reporter"`
	Discipleship     bool    `json:"discipleship"`
	Leadership       bool    `json:"leadership"`
	LifeGroup        bool    `json:"life_group"`
	Covenant         bool    `json:"covenant"`
	MoralConduct     bool    `json:"moral_conduct"`
	PublicPresence   bool    `json:"public_presence"`
	UpdatedOn        string  `json:"updated_on,omitempty"`
}

// CovenantTier returns the highest covenant tier the team asks for.
func (t TeamRequirements) CovenantTier() CovenantTier {
	switch {
	case t.PublicPresence:
		return CovenantTierPublicPresence
	case t.MoralConduct:
		return CovenantTierMoralConduct
	case t.Covenant:
		return CovenantTierCovenant
	default:
		return CovenantTierNone
	}
}

// RequiredSteps is the merge of one or more TeamRequirements. It is comparable
// and can be used as a map key.
type RequiredSteps struct {
	Declaration      bool         `json:"declaration"`
	BackgroundCheck  bool         `json:"background_check"`
	References       bool         `json:"references"`
	Membership       bool         `json:"membership"`
	WelcomeToRCC     bool         `json:"welcome_to_rcc"`
	ChildSafety      bool         `json:"child_safety"`
	MandatedReporter bool         `json:"mandated_reporter"`
	Discipleship     bool         `json:"discipleship"`
	Leadership       bool         `json:"leadership"`
	LifeGroup        bool         `json:"life_group"`
	CovenantTier     CovenantTier `json:"covenant_tier"`
}

// Covenant reports whether any covenant form is required.
func (r RequiredSteps) Covenant() bool {
	return r.CovenantTier > CovenantTierNone
}
