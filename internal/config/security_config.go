package config

type SecurityLevel int

const (
	SecurityPublic    SecurityLevel = iota // No authentication
	SecurityVolunteer                      // Any signed-in person
	SecurityLeader                         // Team leaders and admins
	SecurityAdmin                          // Admins only
)

// Role names carried in access tokens
const (
	RoleVolunteer = "volunteer"
	RoleLeader    = "leader"
	RoleAdmin     = "admin"
)

// EndpointSecurityConfig maps route templates to their required security level
var EndpointSecurityConfig = map[string]SecurityLevel{
	"GET /api/v1/health": SecurityPublic,
	"GET /metrics":       SecurityPublic,

	"GET /api/v1/me/onboarding": SecurityVolunteer,
	// Volunteers may read their own record; the handler enforces ownership.
	"GET /api/v1/people/{personID}/onboarding": SecurityVolunteer,

	"GET /api/v1/teams/{teamKey}/roster":       SecurityLeader,
	"GET /api/v1/teams/requirements":           SecurityLeader,
	"GET /api/v1/teams/{teamKey}/requirements": SecurityLeader,

	"PUT /api/v1/teams/{teamKey}/requirements":    SecurityAdmin,
	"DELETE /api/v1/teams/{teamKey}/requirements": SecurityAdmin,
}

// GetSecurityLevel returns the level for a route, defaulting to admin so that
// unlisted routes are never exposed by accident
func GetSecurityLevel(method, pathTemplate string) SecurityLevel {
	if level, ok := EndpointSecurityConfig[method+" "+pathTemplate]; ok {
		return level
	}
	return SecurityAdmin
}

// RoleSatisfies reports whether any of the roles meets the security level
func RoleSatisfies(level SecurityLevel, roles []string) bool {
	if level <= SecurityVolunteer {
		return true
	}
	for _, r := range roles {
		switch r {
		case RoleAdmin:
			return true
		case RoleLeader:
			if level == SecurityLeader {
				return true
			}
		}
	}
	return false
}
