package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/white/lead-management/internal/events"
	"github.com/white/lead-management/internal/middleware"
	"github.com/white/lead-management/internal/models"
)

// LeadHandler handles lead endpoints
type LeadHandler struct {
	leads  LeadStore
	events *events.LeadPublisher
}

// NewLeadHandler creates a new LeadHandler. publisher may be nil.
func NewLeadHandler(leads LeadStore, publisher *events.LeadPublisher) *LeadHandler {
	return &LeadHandler{leads: leads, events: publisher}
}

// LeadCreatedResponse is the body of POST /leads
type LeadCreatedResponse struct {
	Message string       `json:"message"`
	Lead    *models.Lead `json:"lead"`
}

// LeadDeletedResponse is the body of DELETE /leads/{id}
type LeadDeletedResponse struct {
	Message string       `json:"message"`
	Lead    *models.Lead `json:"lead"`
}

// CreateLead godoc
// @Summary Create a lead
// @Description closedAt is stamped when the lead is created with status Closed.
// @Tags Leads
// @Accept json
// @Produce json
// @Param lead body models.CreateLeadRequest true "Lead"
// @Success 201 {object} LeadCreatedResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /leads [post]
func (h *LeadHandler) CreateLead(w http.ResponseWriter, r *http.Request) {
	msgs := errorMessages{Internal: "Failed to create new lead."}

	var req models.CreateLeadRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondWithStoreError(w, r, err, msgs)
		return
	}

	lead, err := models.NewLead(req)
	if err != nil {
		respondWithStoreError(w, r, err, msgs)
		return
	}

	if err := h.leads.Create(r.Context(), lead); err != nil {
		respondWithStoreError(w, r, err, msgs)
		return
	}

	middleware.RecordLeadCreated(string(lead.Status))
	h.events.PublishLead(r, events.ActionLeadCreated, lead)
	if lead.IsClosed() {
		middleware.RecordLeadClosed()
		h.events.PublishLead(r, events.ActionLeadClosed, lead)
	}

	respondWithJSON(w, http.StatusCreated, LeadCreatedResponse{
		Message: "New Lead created successfully!",
		Lead:    lead,
	})
}

// ListLeads godoc
// @Summary List leads
// @Description All provided filters must match. tags is a comma separated list of tag ids matched as "any of".
// @Tags Leads
// @Produce json
// @Param salesAgent query string false "Agent ID"
// @Param status query string false "Status"
// @Param priority query string false "Priority"
// @Param tags query string false "Comma separated tag IDs"
// @Success 200 {array} models.LeadView
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "No leads found"
// @Failure 500 {object} ErrorResponse
// @Router /leads [get]
func (h *LeadHandler) ListLeads(w http.ResponseWriter, r *http.Request) {
	msgs := errorMessages{Internal: "An error occurred while fetching leads"}

	q := r.URL.Query()
	filter, err := models.ParseLeadFilter(q.Get("salesAgent"), q.Get("status"), q.Get("priority"), q.Get("tags"))
	if err != nil {
		respondWithStoreError(w, r, err, msgs)
		return
	}

	leads, err := h.leads.List(r.Context(), filter)
	if err != nil {
		respondWithStoreError(w, r, err, msgs)
		return
	}
	if len(leads) == 0 {
		respondWithError(w, http.StatusNotFound, "No leads found")
		return
	}
	respondWithJSON(w, http.StatusOK, leads)
}

// GetLeadsByAgent godoc
// @Summary List the leads assigned to an agent
// @Tags Leads
// @Produce json
// @Param agentId path string true "Agent ID"
// @Success 200 {array} models.LeadView
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "No assigned leads found for this agent."
// @Failure 500 {object} ErrorResponse
// @Router /leads/agent/{agentId} [get]
func (h *LeadHandler) GetLeadsByAgent(w http.ResponseWriter, r *http.Request) {
	msgs := errorMessages{Internal: "An error occurred while fetching the lead for agent"}

	agentID, err := models.ParseObjectID("agentId", mux.Vars(r)["agentId"])
	if err != nil {
		respondWithStoreError(w, r, err, msgs)
		return
	}

	leads, err := h.leads.ListByAgent(r.Context(), agentID)
	if err != nil {
		respondWithStoreError(w, r, err, msgs)
		return
	}
	if len(leads) == 0 {
		respondWithError(w, http.StatusNotFound, "No assigned leads found for this agent.")
		return
	}
	respondWithJSON(w, http.StatusOK, leads)
}

// GetLead godoc
// @Summary Get a lead
// @Tags Leads
// @Produce json
// @Param id path string true "Lead ID"
// @Success 200 {object} models.LeadView
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Lead not found"
// @Failure 500 {object} ErrorResponse
// @Router /leads/{id} [get]
func (h *LeadHandler) GetLead(w http.ResponseWriter, r *http.Request) {
	msgs := errorMessages{
		NotFound: "Lead not found",
		Internal: "An error occurred while fetching the lead",
	}

	id, err := models.ParseObjectID("id", mux.Vars(r)["id"])
	if err != nil {
		respondWithStoreError(w, r, err, msgs)
		return
	}

	lead, err := h.leads.GetByID(r.Context(), id)
	if err != nil {
		respondWithStoreError(w, r, err, msgs)
		return
	}
	respondWithJSON(w, http.StatusOK, lead)
}

// UpdateLead godoc
// @Summary Update a lead
// @Description Partial update. Setting status to Closed stamps closedAt with the current time on every call.
// @Tags Leads
// @Accept json
// @Produce json
// @Param id path string true "Lead ID"
// @Param lead body models.UpdateLeadRequest true "Fields to change"
// @Success 200 {object} models.Lead
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Lead not found"
// @Failure 500 {object} ErrorResponse
// @Router /leads/{id} [put]
func (h *LeadHandler) UpdateLead(w http.ResponseWriter, r *http.Request) {
	msgs := errorMessages{
		NotFound: "Lead not found",
		Internal: "An error occurred while updating the lead",
	}

	id, err := models.ParseObjectID("id", mux.Vars(r)["id"])
	if err != nil {
		respondWithStoreError(w, r, err, msgs)
		return
	}

	var req models.UpdateLeadRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondWithStoreError(w, r, err, msgs)
		return
	}

	upd, err := models.NewLeadUpdate(req)
	if err != nil {
		respondWithStoreError(w, r, err, msgs)
		return
	}

	lead, err := h.leads.Update(r.Context(), id, upd)
	if err != nil {
		respondWithStoreError(w, r, err, msgs)
		return
	}

	if upd.Status != nil && *upd.Status == models.LeadStatusClosed {
		middleware.RecordLeadClosed()
		h.events.PublishLead(r, events.ActionLeadClosed, lead)
	} else {
		h.events.PublishLead(r, events.ActionLeadUpdated, lead)
	}

	respondWithJSON(w, http.StatusOK, lead)
}

// DeleteLead godoc
// @Summary Delete a lead
// @Description Comments on the lead are not removed.
// @Tags Leads
// @Produce json
// @Param id path string true "Lead ID"
// @Success 200 {object} LeadDeletedResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Lead not found"
// @Failure 500 {object} ErrorResponse
// @Router /leads/{id} [delete]
func (h *LeadHandler) DeleteLead(w http.ResponseWriter, r *http.Request) {
	msgs := errorMessages{
		NotFound: "Lead not found",
		Internal: "An error occurred while deleting the lead!",
	}

	id, err := models.ParseObjectID("id", mux.Vars(r)["id"])
	if err != nil {
		respondWithStoreError(w, r, err, msgs)
		return
	}

	lead, err := h.leads.Delete(r.Context(), id)
	if err != nil {
		respondWithStoreError(w, r, err, msgs)
		return
	}

	h.events.PublishLead(r, events.ActionLeadDeleted, lead)
	respondWithJSON(w, http.StatusOK, LeadDeletedResponse{
		Message: "Lead deleted successfully",
		Lead:    lead,
	})
}
