package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/white/lead-management/internal/models"
	"github.com/white/lead-management/pkg/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// RecentClosedWindow is how far back the last-week report looks
const RecentClosedWindow = 7 * 24 * time.Hour

// MongoReportRepository runs the read-only lead reports
type MongoReportRepository struct {
	leads    *mongo.Collection
	populate populator
	now      func() time.Time
}

func NewMongoReportRepository(client *mongodb.Client) *MongoReportRepository {
	leads := client.Collection(CollectionLeads)
	return &MongoReportRepository{
		leads: leads,
		populate: populator{
			agents: client.Collection(CollectionAgents),
			leads:  leads,
		},
		now: time.Now,
	}
}

// RecentClosedDeals returns the leads closed within the last seven days,
// newest first. The cutoff is recomputed from the current time on every call.
func (r *MongoReportRepository) RecentClosedDeals(ctx context.Context) ([]*models.ClosedDeal, error) {
	cutoff := storeTime(r.now().Add(-RecentClosedWindow))

	filter := bson.M{
		"status":   models.LeadStatusClosed,
		"closedAt": bson.M{"$gte": cutoff},
	}
	opts := options.Find().
		SetProjection(bson.M{
			"name":       1,
			"source":     1,
			"salesAgent": 1,
			"status":     1,
			"closedAt":   1,
			"priority":   1,
		}).
		SetSort(bson.D{{Key: "closedAt", Value: -1}})

	cursor, err := r.leads.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding recent closed leads: %w", err)
	}
	defer cursor.Close(ctx)

	var leads []*models.Lead
	if err := cursor.All(ctx, &leads); err != nil {
		return nil, fmt.Errorf("error decoding recent closed leads: %w", err)
	}

	deals := make([]*models.ClosedDeal, 0, len(leads))
	if len(leads) == 0 {
		return deals, nil
	}

	agentIDs := make([]primitive.ObjectID, 0, len(leads))
	for _, l := range leads {
		agentIDs = append(agentIDs, l.SalesAgent)
	}
	agents, err := r.populate.agentRefs(ctx, agentIDs, true)
	if err != nil {
		return nil, err
	}

	for _, l := range leads {
		deals = append(deals, l.ClosedDealView(agents[l.SalesAgent]))
	}
	return deals, nil
}

// PipelineCount counts the leads that are not Closed
func (r *MongoReportRepository) PipelineCount(ctx context.Context) (int64, error) {
	count, err := r.leads.CountDocuments(ctx, bson.M{"status": bson.M{"$ne": models.LeadStatusClosed}})
	if err != nil {
		return 0, fmt.Errorf("error counting pipeline leads: %w", err)
	}
	return count, nil
}

// ClosedByAgent groups Closed leads by agent and joins the agent name onto
// each group. Agents without closed leads do not appear. Rows are ordered
// by count descending, then agent id.
func (r *MongoReportRepository) ClosedByAgent(ctx context.Context) ([]*models.AgentClosedCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "status", Value: models.LeadStatusClosed}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$salesAgent"},
			{Key: "closedLeadsCount", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: CollectionAgents},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "salesAgentDetails"},
		}}},
		{{Key: "$unwind", Value: "$salesAgentDetails"}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "salesAgentId", Value: "$salesAgentDetails._id"},
			{Key: "salesAgentName", Value: "$salesAgentDetails.name"},
			{Key: "closedLeadsCount", Value: 1},
		}}},
		{{Key: "$sort", Value: bson.D{
			{Key: "closedLeadsCount", Value: -1},
			{Key: "salesAgentId", Value: 1},
		}}},
	}

	cursor, err := r.leads.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("error aggregating closed leads by agent: %w", err)
	}
	defer cursor.Close(ctx)

	rows := []*models.AgentClosedCount{}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("error decoding closed leads by agent: %w", err)
	}
	return rows, nil
}
