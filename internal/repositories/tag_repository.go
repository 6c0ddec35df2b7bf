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

// MongoTagRepository handles tag data access with MongoDB
type MongoTagRepository struct {
	collection *mongo.Collection
	now        func() time.Time
}

func NewMongoTagRepository(client *mongodb.Client) *MongoTagRepository {
	return &MongoTagRepository{
		collection: client.Collection(CollectionTags),
		now:        time.Now,
	}
}

// Create inserts a tag. Names are not required to be unique.
func (r *MongoTagRepository) Create(ctx context.Context, tag *models.Tag) error {
	tag.ID = primitive.NewObjectID()
	tag.CreatedAt = storeTime(r.now())

	if _, err := r.collection.InsertOne(ctx, tag); err != nil {
		return fmt.Errorf("error creating tag: %w", err)
	}
	return nil
}

func (r *MongoTagRepository) List(ctx context.Context) ([]*models.Tag, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing tags: %w", err)
	}
	defer cursor.Close(ctx)

	tags := []*models.Tag{}
	if err := cursor.All(ctx, &tags); err != nil {
		return nil, fmt.Errorf("error decoding tags: %w", err)
	}
	return tags, nil
}
