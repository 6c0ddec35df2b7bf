package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ClosedDeal is a row of the last-week report.
type ClosedDeal struct {
	ID         primitive.ObjectID `json:"id"`
	Name       string             `json:"name"`
	Source     LeadSource         `json:"source"`
	SalesAgent *AgentRef          `json:"salesAgent"`
	Status     LeadStatus         `json:"status"`
	ClosedAt   *time.Time         `json:"closedAt"`
	Priority   LeadPriority       `json:"priority"`
}

// ClosedDealView composes a closed lead with its resolved agent.
func (l *Lead) ClosedDealView(agent *AgentRef) *ClosedDeal {
	return &ClosedDeal{
		ID:         l.ID,
		Name:       l.Name,
		Source:     l.Source,
		SalesAgent: agent,
		Status:     l.Status,
		ClosedAt:   l.ClosedAt,
		Priority:   l.Priority,
	}
}

// PipelineSummary is the body of GET /report/pipeline
type PipelineSummary struct {
	TotalLeadsInPipeline int64 `json:"totalLeadsInPipeline"`
}

// AgentClosedCount is one group of the closed-by-agent aggregation.
type AgentClosedCount struct {
	SalesAgentID     primitive.ObjectID `bson:"salesAgentId" json:"salesAgentId"`
	SalesAgentName   string             `bson:"salesAgentName" json:"salesAgentName"`
	ClosedLeadsCount int                `bson:"closedLeadsCount" json:"closedLeadsCount"`
}
