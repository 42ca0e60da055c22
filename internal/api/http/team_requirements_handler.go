package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"volunteer-portal-backend/internal/domain"
	"volunteer-portal-backend/internal/service"
)

const maxRequirementsBody = 64 << 10

type TeamRequirementsHandler struct {
	svc service.TeamRequirementsService
}

func NewTeamRequirementsHandler(svc service.TeamRequirementsService) *TeamRequirementsHandler {
	return &TeamRequirementsHandler{svc: svc}
}

func (h *TeamRequirementsHandler) List(w http.ResponseWriter, r *http.Request) {
	teams, err := h.svc.ListTeamRequirements(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if teams == nil {
		teams = []domain.TeamRequirements{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"teams": teams})
}

func (h *TeamRequirementsHandler) Get(w http.ResponseWriter, r *http.Request) {
	team, err := h.svc.GetTeamRequirements(r.Context(), mux.Vars(r)["teamKey"])
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, team)
}

// Put creates or replaces a team's requirements. The team comes from the
// path; any team_key in the body is ignored.
func (h *TeamRequirementsHandler) Put(w http.ResponseWriter, r *http.Request) {
	var req domain.TeamRequirements
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequirementsBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	req.TeamKey = domain.TeamKey(mux.Vars(r)["teamKey"])

	if err := h.svc.SaveTeamRequirements(r.Context(), &req); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func (h *TeamRequirementsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteTeamRequirements(r.Context(), mux.Vars(r)["teamKey"]); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
