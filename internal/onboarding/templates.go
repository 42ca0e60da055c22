package onboarding

import "volunteer-portal-backend/internal/domain"

type stepTemplate struct {
	Title       string
	Description string
	Link        string
}

const (
	backgroundCheckLink   = "https://forms.rcc.church/background-check"
	notClearedDescription = "Your background check needs attention. Please contact the volunteer office before continuing."
)

var stepTemplates = map[domain.StepCategory]stepTemplate{
	domain.StepDeclaration: {
		Title:       "Volunteer Declaration",
		Description: "Complete the declaration form. It is required before your background check can start.",
		Link:        "https://forms.rcc.church/declaration",
	},
	domain.StepBackgroundCheck: {
		Title:       "Background Check",
		Description: "Submit your background check through our screening partner. You will receive an email invitation.",
		Link:        backgroundCheckLink,
	},
	domain.StepChildSafety: {
		Title:       "Child Safety Training",
		Description: "Complete the child safety course. Certification is valid for two years.",
		Link:        "https://training.rcc.church/child-safety",
	},
	domain.StepMandatedReporter: {
		Title:       "Mandated Reporter Training",
		Description: "Complete the mandated reporter course. Certification is valid for one year.",
		Link:        "https://training.rcc.church/mandated-reporter",
	},
	domain.StepReferences: {
		Title:       "References",
		Description: "Provide two personal references who have known you for at least two years.",
		Link:        "https://forms.rcc.church/references",
	},
	domain.StepCovenant: {
		Title:       "Volunteer Covenant",
		Description: "Read and sign the volunteer covenant.",
		Link:        "https://forms.rcc.church/covenant",
	},
	domain.StepMoralConduct: {
		Title:       "Moral Conduct Covenant",
		Description: "Read and sign the moral conduct covenant. It includes the volunteer covenant.",
		Link:        "https://forms.rcc.church/moral-conduct",
	},
	domain.StepPublicPresence: {
		Title:       "Public Presence Covenant",
		Description: "Read and sign the public presence covenant. It includes the moral conduct and volunteer covenants.",
		Link:        "https://forms.rcc.church/public-presence",
	},
	domain.StepMembership: {
		Title:       "Church Membership",
		Description: "Become a member of RCC.",
		Link:        "https://rcc.church/membership",
	},
	domain.StepWelcomeToRCC: {
		Title:       "Welcome to RCC",
		Description: "Attend a Welcome to RCC session.",
		Link:        "https://rcc.church/welcome",
	},
	domain.StepDiscipleship: {
		Title:       "Discipleship Class",
		Description: "Complete the discipleship class.",
		Link:        "https://rcc.church/discipleship",
	},
	domain.StepLeadership: {
		Title:       "Leadership Training",
		Description: "Complete leadership training with your team leader.",
	},
	domain.StepLifeGroup: {
		Title:       "Life Group",
		Description: "Join a life group.",
		Link:        "https://rcc.church/groups",
	},
}

func newStep(category domain.StepCategory, status domain.FieldStatus) domain.Step {
	tpl := stepTemplates[category]
	return domain.Step{
		Category:    category,
		Title:       tpl.Title,
		Description: tpl.Description,
		Link:        tpl.Link,
		Status:      status,
	}
}
