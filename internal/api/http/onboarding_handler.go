package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"volunteer-portal-backend/internal/config"
	"volunteer-portal-backend/internal/domain"
	"volunteer-portal-backend/internal/service"
)

type OnboardingHandler struct {
	svc service.OnboardingService
}

func NewOnboardingHandler(svc service.OnboardingService) *OnboardingHandler {
	return &OnboardingHandler{svc: svc}
}

// GetMyOnboarding returns the caller's own progress, optionally for one team.
func (h *OnboardingHandler) GetMyOnboarding(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())
	if claims == nil {
		writeError(w, http.StatusUnauthorized, "not signed in")
		return
	}
	h.writeOnboarding(w, r, claims.PersonID)
}

// GetPersonOnboarding returns another person's progress. Volunteers may only
// read their own.
func (h *OnboardingHandler) GetPersonOnboarding(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())
	if claims == nil {
		writeError(w, http.StatusUnauthorized, "not signed in")
		return
	}
	personID := mux.Vars(r)["personID"]
	if personID != claims.PersonID && !config.RoleSatisfies(config.SecurityLeader, claims.Roles) {
		writeServiceError(w, r, domain.ErrForbidden)
		return
	}
	h.writeOnboarding(w, r, personID)
}

func (h *OnboardingHandler) writeOnboarding(w http.ResponseWriter, r *http.Request, personID string) {
	result, err := h.svc.GetOnboarding(r.Context(), personID, r.URL.Query().Get("team"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *OnboardingHandler) GetTeamRoster(w http.ResponseWriter, r *http.Request) {
	team := mux.Vars(r)["teamKey"]
	entries, err := h.svc.ListTeamRoster(r.Context(), team)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"team":   team,
		"people": entries,
	})
}
