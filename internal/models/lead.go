package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type LeadStatus string

const (
	LeadStatusNew          LeadStatus = "New"
	LeadStatusContacted    LeadStatus = "Contacted"
	LeadStatusQualified    LeadStatus = "Qualified"
	LeadStatusProposalSent LeadStatus = "Proposal Sent"
	LeadStatusClosed       LeadStatus = "Closed"
)

type LeadSource string

const (
	LeadSourceWebsite       LeadSource = "Website"
	LeadSourceReferral      LeadSource = "Referral"
	LeadSourceColdCall      LeadSource = "Cold Call"
	LeadSourceAdvertisement LeadSource = "Advertisement"
	LeadSourceEmail         LeadSource = "Email"
	LeadSourceOther         LeadSource = "Other"
)

type LeadPriority string

const (
	LeadPriorityHigh   LeadPriority = "High"
	LeadPriorityMedium LeadPriority = "Medium"
	LeadPriorityLow    LeadPriority = "Low"
)

func LeadStatuses() []LeadStatus {
	return []LeadStatus{
		LeadStatusNew,
		LeadStatusContacted,
		LeadStatusQualified,
		LeadStatusProposalSent,
		LeadStatusClosed,
	}
}

func LeadSources() []LeadSource {
	return []LeadSource{
		LeadSourceWebsite,
		LeadSourceReferral,
		LeadSourceColdCall,
		LeadSourceAdvertisement,
		LeadSourceEmail,
		LeadSourceOther,
	}
}

func LeadPriorities() []LeadPriority {
	return []LeadPriority{LeadPriorityHigh, LeadPriorityMedium, LeadPriorityLow}
}

// IsValidLeadStatus checks if the status is one of the pipeline stages
func IsValidLeadStatus(status string) bool {
	for _, s := range LeadStatuses() {
		if LeadStatus(status) == s {
			return true
		}
	}
	return false
}

// IsValidLeadSource checks if the source is a known acquisition channel
func IsValidLeadSource(source string) bool {
	for _, s := range LeadSources() {
		if LeadSource(source) == s {
			return true
		}
	}
	return false
}

// IsValidLeadPriority checks if the priority is known
func IsValidLeadPriority(priority string) bool {
	for _, p := range LeadPriorities() {
		if LeadPriority(priority) == p {
			return true
		}
	}
	return false
}

// Lead is a sales prospect tracked through the status pipeline.
// Collection: leads
//
// ClosedAt is set if and only if Status is Closed.
type Lead struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name        string               `bson:"name" json:"name"`
	Source      LeadSource           `bson:"source" json:"source"`
	SalesAgent  primitive.ObjectID   `bson:"salesAgent" json:"salesAgent"`
	Status      LeadStatus           `bson:"status" json:"status"`
	Tags        []primitive.ObjectID `bson:"tags" json:"tags"`
	TimeToClose int                  `bson:"timeToClose" json:"timeToClose"`
	Priority    LeadPriority         `bson:"priority" json:"priority"`
	CreatedAt   time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time            `bson:"updatedAt" json:"updatedAt"`
	ClosedAt    *time.Time           `bson:"closedAt,omitempty" json:"closedAt,omitempty"`
}

// IsClosed reports whether the lead has left the pipeline
func (l *Lead) IsClosed() bool {
	return l.Status == LeadStatusClosed
}

// SyncClosedAt stamps ClosedAt with now when the lead is Closed and clears it otherwise.
func (l *Lead) SyncClosedAt(now time.Time) {
	if l.IsClosed() {
		t := now
		l.ClosedAt = &t
		return
	}
	l.ClosedAt = nil
}

// CreateLeadRequest is the body of POST /leads
type CreateLeadRequest struct {
	Name        string   `json:"name" validate:"required"`
	Source      string   `json:"source" validate:"required,leadsource"`
	SalesAgent  string   `json:"salesAgent" validate:"required,objectid"`
	Status      string   `json:"status" validate:"omitempty,leadstatus"`
	Tags        []string `json:"tags" validate:"omitempty,dive,objectid"`
	TimeToClose int      `json:"timeToClose" validate:"required,min=1"`
	Priority    string   `json:"priority" validate:"omitempty,leadpriority"`
}

// NewLead validates req and returns a lead ready to be stored. Status
// defaults to New and priority to Medium. Timestamps are left to the
// repository.
func NewLead(req CreateLeadRequest) (*Lead, error) {
	req.Name = strings.TrimSpace(req.Name)

	if err := validateStruct(req); err != nil {
		return nil, err
	}

	// Both already passed the objectid rule
	agentID, _ := primitive.ObjectIDFromHex(req.SalesAgent)
	tags := make([]primitive.ObjectID, 0, len(req.Tags))
	for _, t := range req.Tags {
		id, _ := primitive.ObjectIDFromHex(t)
		tags = append(tags, id)
	}

	lead := &Lead{
		Name:        req.Name,
		Source:      LeadSource(req.Source),
		SalesAgent:  agentID,
		Status:      LeadStatus(req.Status),
		Tags:        tags,
		TimeToClose: req.TimeToClose,
		Priority:    LeadPriority(req.Priority),
	}
	if lead.Status == "" {
		lead.Status = LeadStatusNew
	}
	if lead.Priority == "" {
		lead.Priority = LeadPriorityMedium
	}

	return lead, nil
}

// UpdateLeadRequest is the body of PUT /leads/{id}. Absent fields are left untouched.
type UpdateLeadRequest struct {
	Name        *string   `json:"name"`
	Source      *string   `json:"source"`
	SalesAgent  *string   `json:"salesAgent"`
	Status      *string   `json:"status"`
	Tags        *[]string `json:"tags"`
	TimeToClose *int      `json:"timeToClose"`
	Priority    *string   `json:"priority"`
}

// LeadUpdate is a validated partial update.
type LeadUpdate struct {
	Name        *string
	Source      *LeadSource
	SalesAgent  *primitive.ObjectID
	Status      *LeadStatus
	Tags        []primitive.ObjectID
	SetTags     bool
	TimeToClose *int
	Priority    *LeadPriority
}

// IsEmpty reports whether the update changes nothing.
func (u *LeadUpdate) IsEmpty() bool {
	return u.Name == nil && u.Source == nil && u.SalesAgent == nil && u.Status == nil &&
		!u.SetTags && u.TimeToClose == nil && u.Priority == nil
}

// NewLeadUpdate re-runs the schema rules on the fields present in req.
func NewLeadUpdate(req UpdateLeadRequest) (*LeadUpdate, error) {
	verr := &ValidationError{}
	upd := &LeadUpdate{}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		validateValue(verr, "name", name, "required")
		upd.Name = &name
	}
	if req.Source != nil {
		validateValue(verr, "source", *req.Source, "required,leadsource")
		src := LeadSource(*req.Source)
		upd.Source = &src
	}
	if req.SalesAgent != nil {
		id, err := primitive.ObjectIDFromHex(*req.SalesAgent)
		if err != nil {
			verr.add("salesAgent", "objectid", ruleMessage("objectid", ""))
		}
		upd.SalesAgent = &id
	}
	if req.Status != nil {
		validateValue(verr, "status", *req.Status, "required,leadstatus")
		status := LeadStatus(*req.Status)
		upd.Status = &status
	}
	if req.Tags != nil {
		upd.SetTags = true
		upd.Tags = make([]primitive.ObjectID, 0, len(*req.Tags))
		for _, t := range *req.Tags {
			id, err := primitive.ObjectIDFromHex(t)
			if err != nil {
				verr.add("tags", "objectid", ruleMessage("objectid", ""))
				break
			}
			upd.Tags = append(upd.Tags, id)
		}
	}
	if req.TimeToClose != nil {
		validateValue(verr, "timeToClose", *req.TimeToClose, "min=1")
		upd.TimeToClose = req.TimeToClose
	}
	if req.Priority != nil {
		validateValue(verr, "priority", *req.Priority, "required,leadpriority")
		p := LeadPriority(*req.Priority)
		upd.Priority = &p
	}

	if err := verr.orNil(); err != nil {
		return nil, err
	}
	if upd.IsEmpty() {
		return nil, NewValidationError("body", "required", "must contain at least one field")
	}
	return upd, nil
}

// LeadView is a lead with its agent reference populated.
type LeadView struct {
	ID          primitive.ObjectID   `json:"id"`
	Name        string               `json:"name"`
	Source      LeadSource           `json:"source"`
	SalesAgent  *AgentRef            `json:"salesAgent"`
	Status      LeadStatus           `json:"status"`
	Tags        []primitive.ObjectID `json:"tags"`
	TimeToClose int                  `json:"timeToClose"`
	Priority    LeadPriority         `json:"priority"`
	CreatedAt   time.Time            `json:"createdAt"`
	ClosedAt    *time.Time           `json:"closedAt,omitempty"`
}

// View composes the lead with its resolved agent.
func (l *Lead) View(agent *AgentRef) *LeadView {
	tags := l.Tags
	if tags == nil {
		tags = []primitive.ObjectID{}
	}
	return &LeadView{
		ID:          l.ID,
		Name:        l.Name,
		Source:      l.Source,
		SalesAgent:  agent,
		Status:      l.Status,
		Tags:        tags,
		TimeToClose: l.TimeToClose,
		Priority:    l.Priority,
		CreatedAt:   l.CreatedAt,
		ClosedAt:    l.ClosedAt,
	}
}

// LeadRef is the populated form of a lead reference.
type LeadRef struct {
	ID   primitive.ObjectID `bson:"_id" json:"id"`
	Name string             `bson:"name" json:"name"`
}

// LeadFilter narrows GET /leads. Unset fields impose no constraint.
type LeadFilter struct {
	SalesAgent *primitive.ObjectID
	Status     LeadStatus
	Priority   LeadPriority
	Tags       []primitive.ObjectID
}

// ParseLeadFilter builds a filter from raw query values. tags is a comma
// separated list matched as "any of".
func ParseLeadFilter(salesAgent, status, priority, tags string) (LeadFilter, error) {
	var f LeadFilter
	verr := &ValidationError{}

	if s := strings.TrimSpace(salesAgent); s != "" {
		id, err := primitive.ObjectIDFromHex(s)
		if err != nil {
			verr.add("salesAgent", "objectid", ruleMessage("objectid", ""))
		} else {
			f.SalesAgent = &id
		}
	}
	f.Status = LeadStatus(strings.TrimSpace(status))
	f.Priority = LeadPriority(strings.TrimSpace(priority))

	for _, t := range strings.Split(tags, ",") {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		id, err := primitive.ObjectIDFromHex(t)
		if err != nil {
			verr.add("tags", "objectid", ruleMessage("objectid", ""))
			break
		}
		f.Tags = append(f.Tags, id)
	}

	if err := verr.orNil(); err != nil {
		return LeadFilter{}, err
	}
	return f, nil
}
