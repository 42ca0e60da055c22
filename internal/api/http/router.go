package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"volunteer-portal-backend/internal/security"
	"volunteer-portal-backend/internal/service"
)

// Services holds the dependencies the API routes call into.
type Services struct {
	Onboarding       service.OnboardingService
	TeamRequirements service.TeamRequirementsService
	// Metrics serves /metrics; defaults to the Prometheus default gatherer.
	Metrics http.Handler
}

// NewRouter registers every API route behind request ID, access log and
// auth middleware.
func NewRouter(tm security.TokenManager, svcs Services) *mux.Router {
	onboardingHandler := NewOnboardingHandler(svcs.Onboarding)
	teamHandler := NewTeamRequirementsHandler(svcs.TeamRequirements)
	metricsHandler := svcs.Metrics
	if metricsHandler == nil {
		metricsHandler = promhttp.Handler()
	}

	router := mux.NewRouter()
	router.Use(RequestID, AccessLog, NewAuthMiddleware(tm).Middleware)

	router.Handle("/metrics", metricsHandler).Methods(http.MethodGet)

	api := router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/health", health).Methods(http.MethodGet)

	api.HandleFunc("/me/onboarding", onboardingHandler.GetMyOnboarding).Methods(http.MethodGet)
	api.HandleFunc("/people/{personID}/onboarding", onboardingHandler.GetPersonOnboarding).Methods(http.MethodGet)
	api.HandleFunc("/teams/{teamKey}/roster", onboardingHandler.GetTeamRoster).Methods(http.MethodGet)

	api.HandleFunc("/teams/requirements", teamHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/teams/{teamKey}/requirements", teamHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/teams/{teamKey}/requirements", teamHandler.Put).Methods(http.MethodPut)
	api.HandleFunc("/teams/{teamKey}/requirements", teamHandler.Delete).Methods(http.MethodDelete)

	return router
}

func health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
