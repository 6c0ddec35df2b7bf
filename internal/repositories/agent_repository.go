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

// MongoAgentRepository handles sales agent data access with MongoDB
type MongoAgentRepository struct {
	collection *mongo.Collection
	now        func() time.Time
}

// NewMongoAgentRepository creates a new MongoAgentRepository
func NewMongoAgentRepository(client *mongodb.Client) *MongoAgentRepository {
	return &MongoAgentRepository{
		collection: client.Collection(CollectionAgents),
		now:        time.Now,
	}
}

// Create inserts a new agent. A second agent with the same email fails
// with a duplicate key error from the unique index.
func (r *MongoAgentRepository) Create(ctx context.Context, agent *models.SalesAgent) error {
	agent.ID = primitive.NewObjectID()
	agent.CreatedAt = storeTime(r.now())

	if _, err := r.collection.InsertOne(ctx, agent); err != nil {
		return fmt.Errorf("error creating agent: %w", err)
	}
	return nil
}

// List retrieves all agents in creation order
func (r *MongoAgentRepository) List(ctx context.Context) ([]*models.SalesAgent, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing agents: %w", err)
	}
	defer cursor.Close(ctx)

	agents := []*models.SalesAgent{}
	if err := cursor.All(ctx, &agents); err != nil {
		return nil, fmt.Errorf("error decoding agents: %w", err)
	}
	return agents, nil
}

// GetByID retrieves an agent by its ObjectID
func (r *MongoAgentRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.SalesAgent, error) {
	var agent models.SalesAgent

	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&agent)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, WrapNotFound(err, ErrAgentNotFound)
		}
		return nil, fmt.Errorf("error finding agent by ID: %w", err)
	}
	return &agent, nil
}
