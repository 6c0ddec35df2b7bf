package handlers

import (
	"context"

	"github.com/white/lead-management/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AgentStore is implemented by repositories.MongoAgentRepository
type AgentStore interface {
	Create(ctx context.Context, agent *models.SalesAgent) error
	List(ctx context.Context) ([]*models.SalesAgent, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.SalesAgent, error)
}

// LeadStore is implemented by repositories.MongoLeadRepository
type LeadStore interface {
	Create(ctx context.Context, lead *models.Lead) error
	List(ctx context.Context, filter models.LeadFilter) ([]*models.LeadView, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.LeadView, error)
	ListByAgent(ctx context.Context, agentID primitive.ObjectID) ([]*models.LeadView, error)
	Update(ctx context.Context, id primitive.ObjectID, upd *models.LeadUpdate) (*models.Lead, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*models.Lead, error)
}

// TagStore is implemented by repositories.MongoTagRepository
type TagStore interface {
	Create(ctx context.Context, tag *models.Tag) error
	List(ctx context.Context) ([]*models.Tag, error)
}

// CommentStore is implemented by repositories.MongoCommentRepository
type CommentStore interface {
	Create(ctx context.Context, comment *models.Comment) error
	ListByLead(ctx context.Context, leadID primitive.ObjectID) ([]*models.CommentView, error)
}

// ReportStore is implemented by repositories.MongoReportRepository
type ReportStore interface {
	RecentClosedDeals(ctx context.Context) ([]*models.ClosedDeal, error)
	PipelineCount(ctx context.Context) (int64, error)
	ClosedByAgent(ctx context.Context) ([]*models.AgentClosedCount, error)
}
