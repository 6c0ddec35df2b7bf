package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/white/lead-management/internal/models"
)

// AgentHandler handles sales agent endpoints
type AgentHandler struct {
	agents AgentStore
}

// NewAgentHandler creates a new AgentHandler
func NewAgentHandler(agents AgentStore) *AgentHandler {
	return &AgentHandler{agents: agents}
}

// AgentCreatedResponse is the body of POST /agents
type AgentCreatedResponse struct {
	Message string             `json:"message"`
	Agent   *models.SalesAgent `json:"agent"`
}

// CreateAgent godoc
// @Summary Create a sales agent
// @Tags Agents
// @Accept json
// @Produce json
// @Param agent body models.CreateAgentRequest true "Agent"
// @Success 201 {object} AgentCreatedResponse
// @Failure 400 {object} ErrorResponse "Invalid input or missing required fields"
// @Failure 409 {object} ErrorResponse "Email already exists"
// @Failure 500 {object} ErrorResponse
// @Router /agents [post]
func (h *AgentHandler) CreateAgent(w http.ResponseWriter, r *http.Request) {
	msgs := errorMessages{
		Conflict: "Email already exists.",
		Internal: "Failed to create new agent.",
	}

	var req models.CreateAgentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondWithStoreError(w, r, err, msgs)
		return
	}

	agent, err := models.NewSalesAgent(req)
	if err != nil {
		respondWithStoreError(w, r, err, msgs)
		return
	}

	if err := h.agents.Create(r.Context(), agent); err != nil {
		respondWithStoreError(w, r, err, msgs)
		return
	}

	respondWithJSON(w, http.StatusCreated, AgentCreatedResponse{
		Message: "New Sales agent created successfully!",
		Agent:   agent,
	})
}

// ListAgents godoc
// @Summary List sales agents
// @Tags Agents
// @Produce json
// @Success 200 {array} models.SalesAgent
// @Failure 404 {object} ErrorResponse "No agents found"
// @Failure 500 {object} ErrorResponse
// @Router /agents [get]
func (h *AgentHandler) ListAgents(w http.ResponseWriter, r *http.Request) {
	agents, err := h.agents.List(r.Context())
	if err != nil {
		respondWithStoreError(w, r, err, errorMessages{Internal: "Failed to fetch agents!"})
		return
	}
	if len(agents) == 0 {
		respondWithError(w, http.StatusNotFound, "No agents found")
		return
	}
	respondWithJSON(w, http.StatusOK, agents)
}

// GetAgent godoc
// @Summary Get a sales agent
// @Tags Agents
// @Produce json
// @Param id path string true "Agent ID"
// @Success 200 {object} models.SalesAgent
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Agent not found"
// @Failure 500 {object} ErrorResponse
// @Router /agents/{id} [get]
func (h *AgentHandler) GetAgent(w http.ResponseWriter, r *http.Request) {
	msgs := errorMessages{
		NotFound: "Agent not found",
		Internal: "An error occurred while fetching the agent",
	}

	id, err := models.ParseObjectID("id", mux.Vars(r)["id"])
	if err != nil {
		respondWithStoreError(w, r, err, msgs)
		return
	}

	agent, err := h.agents.GetByID(r.Context(), id)
	if err != nil {
		respondWithStoreError(w, r, err, msgs)
		return
	}
	respondWithJSON(w, http.StatusOK, agent)
}
