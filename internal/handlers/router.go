package handlers

import (
	"net/http"

	"github.com/go-chi/cors"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"github.com/white/lead-management/internal/middleware"
	"go.uber.org/zap"
)

// RouterConfig bundles everything NewRouter wires together
type RouterConfig struct {
	Agents   *AgentHandler
	Leads    *LeadHandler
	Tags     *TagHandler
	Comments *CommentHandler
	Reports  *ReportHandler
	Health   *HealthHandler

	Logger         *zap.Logger
	AllowedOrigins []string
}

// NewRouter registers every route and returns the CORS-wrapped handler
func NewRouter(cfg RouterConfig) http.Handler {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	router := mux.NewRouter()
	router.Use(middleware.RequestLogger(cfg.Logger), middleware.Metrics)

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondWithError(w, http.StatusNotFound, "Endpoint not found")
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondWithError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	// Agents
	router.HandleFunc("/agents", cfg.Agents.CreateAgent).Methods(http.MethodPost)
	router.HandleFunc("/agents", cfg.Agents.ListAgents).Methods(http.MethodGet)
	router.HandleFunc("/agents/{id}", cfg.Agents.GetAgent).Methods(http.MethodGet)

	// Leads. The agent listing goes first so "agent" is never read as a lead id.
	router.HandleFunc("/leads/agent/{agentId}", cfg.Leads.GetLeadsByAgent).Methods(http.MethodGet)
	router.HandleFunc("/leads", cfg.Leads.CreateLead).Methods(http.MethodPost)
	router.HandleFunc("/leads", cfg.Leads.ListLeads).Methods(http.MethodGet)
	router.HandleFunc("/leads/{id}", cfg.Leads.GetLead).Methods(http.MethodGet)
	router.HandleFunc("/leads/{id}", cfg.Leads.UpdateLead).Methods(http.MethodPut)
	router.HandleFunc("/leads/{id}", cfg.Leads.DeleteLead).Methods(http.MethodDelete)

	// Comments
	router.HandleFunc("/leads/{id}/comments", cfg.Comments.ListComments).Methods(http.MethodGet)
	router.HandleFunc("/leads/{id}/comments", cfg.Comments.CreateComment).Methods(http.MethodPost)

	// Tags
	router.HandleFunc("/tags", cfg.Tags.CreateTag).Methods(http.MethodPost)
	router.HandleFunc("/tags", cfg.Tags.ListTags).Methods(http.MethodGet)

	// Reports
	router.HandleFunc("/report/last-week", cfg.Reports.LastWeek).Methods(http.MethodGet)
	router.HandleFunc("/report/pipeline", cfg.Reports.Pipeline).Methods(http.MethodGet)
	router.HandleFunc("/report/closed-by-agent", cfg.Reports.ClosedByAgent).Methods(http.MethodGet)

	// Operational endpoints
	if cfg.Health != nil {
		router.HandleFunc("/health", cfg.Health.GetOverallHealth).Methods(http.MethodGet)
	}
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	router.PathPrefix("/swagger/").Handler(httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("none"),
		httpSwagger.DomID("swagger-ui"),
	)).Methods(http.MethodGet)

	return cors.Handler(corsOptions(cfg.AllowedOrigins))(router)
}

// corsOptions allows credentials only for an explicit origin list
func corsOptions(origins []string) cors.Options {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	wildcard := false
	for _, o := range origins {
		if o == "*" {
			wildcard = true
			break
		}
	}
	return cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: !wildcard,
		MaxAge:           300,
	}
}
