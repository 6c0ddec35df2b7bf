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

// leadListProjection is the field subset returned by the lead listings
var leadListProjection = bson.M{
	"name":        1,
	"source":      1,
	"salesAgent":  1,
	"status":      1,
	"tags":        1,
	"timeToClose": 1,
	"priority":    1,
	"createdAt":   1,
}

// MongoLeadRepository handles lead data access with MongoDB
type MongoLeadRepository struct {
	collection *mongo.Collection
	populate   populator
	now        func() time.Time
}

// NewMongoLeadRepository creates a new MongoLeadRepository
func NewMongoLeadRepository(client *mongodb.Client) *MongoLeadRepository {
	leads := client.Collection(CollectionLeads)
	return &MongoLeadRepository{
		collection: leads,
		populate: populator{
			agents: client.Collection(CollectionAgents),
			leads:  leads,
		},
		now: time.Now,
	}
}

// Create inserts a new lead, stamping closedAt when it is created Closed
func (r *MongoLeadRepository) Create(ctx context.Context, lead *models.Lead) error {
	now := storeTime(r.now())

	lead.ID = primitive.NewObjectID()
	lead.CreatedAt = now
	lead.UpdatedAt = now
	if lead.Tags == nil {
		lead.Tags = []primitive.ObjectID{}
	}
	lead.SyncClosedAt(now)

	if _, err := r.collection.InsertOne(ctx, lead); err != nil {
		return fmt.Errorf("error creating lead: %w", err)
	}
	return nil
}

// List retrieves the leads matching every set field of filter
func (r *MongoLeadRepository) List(ctx context.Context, filter models.LeadFilter) ([]*models.LeadView, error) {
	opts := options.Find().
		SetProjection(leadListProjection).
		SetSort(bson.D{{Key: "createdAt", Value: -1}})

	return r.findViews(ctx, leadQuery(filter), opts)
}

// GetByID retrieves a single lead with its agent populated
func (r *MongoLeadRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.LeadView, error) {
	var lead models.Lead

	opts := options.FindOne().SetProjection(leadListProjection)
	err := r.collection.FindOne(ctx, bson.M{"_id": id}, opts).Decode(&lead)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, WrapNotFound(err, ErrLeadNotFound)
		}
		return nil, fmt.Errorf("error finding lead by ID: %w", err)
	}

	agents, err := r.populate.agentRefs(ctx, []primitive.ObjectID{lead.SalesAgent}, true)
	if err != nil {
		return nil, err
	}
	return lead.View(agents[lead.SalesAgent]), nil
}

// ListByAgent retrieves every lead assigned to agentID
func (r *MongoLeadRepository) ListByAgent(ctx context.Context, agentID primitive.ObjectID) ([]*models.LeadView, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return r.findViews(ctx, bson.M{"salesAgent": agentID}, opts)
}

// Update applies a partial update. Setting status to Closed re-stamps
// closedAt on every call; any other status clears it.
func (r *MongoLeadRepository) Update(ctx context.Context, id primitive.ObjectID, upd *models.LeadUpdate) (*models.Lead, error) {
	now := storeTime(r.now())

	set := bson.M{"updatedAt": now}
	unset := bson.M{}

	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Source != nil {
		set["source"] = *upd.Source
	}
	if upd.SalesAgent != nil {
		set["salesAgent"] = *upd.SalesAgent
	}
	if upd.SetTags {
		tags := upd.Tags
		if tags == nil {
			tags = []primitive.ObjectID{}
		}
		set["tags"] = tags
	}
	if upd.TimeToClose != nil {
		set["timeToClose"] = *upd.TimeToClose
	}
	if upd.Priority != nil {
		set["priority"] = *upd.Priority
	}
	if upd.Status != nil {
		set["status"] = *upd.Status
		if *upd.Status == models.LeadStatusClosed {
			set["closedAt"] = now
		} else {
			unset["closedAt"] = ""
		}
	}

	update := bson.M{"$set": set}
	if len(unset) > 0 {
		update["$unset"] = unset
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var lead models.Lead
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&lead)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, WrapNotFound(err, ErrLeadNotFound)
		}
		return nil, fmt.Errorf("error updating lead: %w", err)
	}
	return &lead, nil
}

// Delete removes a lead and returns it. Comments on the lead are kept.
func (r *MongoLeadRepository) Delete(ctx context.Context, id primitive.ObjectID) (*models.Lead, error) {
	var lead models.Lead

	err := r.collection.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&lead)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, WrapNotFound(err, ErrLeadNotFound)
		}
		return nil, fmt.Errorf("error deleting lead: %w", err)
	}
	return &lead, nil
}

func (r *MongoLeadRepository) findViews(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*models.LeadView, error) {
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing leads: %w", err)
	}
	defer cursor.Close(ctx)

	var leads []*models.Lead
	if err := cursor.All(ctx, &leads); err != nil {
		return nil, fmt.Errorf("error decoding leads: %w", err)
	}

	views := make([]*models.LeadView, 0, len(leads))
	if len(leads) == 0 {
		return views, nil
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
		views = append(views, l.View(agents[l.SalesAgent]))
	}
	return views, nil
}

// leadQuery builds the conjunction of the set filter fields
func leadQuery(f models.LeadFilter) bson.M {
	query := bson.M{}
	if f.SalesAgent != nil {
		query["salesAgent"] = *f.SalesAgent
	}
	if f.Status != "" {
		query["status"] = f.Status
	}
	if f.Priority != "" {
		query["priority"] = f.Priority
	}
	if len(f.Tags) > 0 {
		query["tags"] = bson.M{"$in": f.Tags}
	}
	return query
}
