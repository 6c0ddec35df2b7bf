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

// MongoCommentRepository handles lead comment data access with MongoDB
type MongoCommentRepository struct {
	collection *mongo.Collection
	populate   populator
	now        func() time.Time
}

func NewMongoCommentRepository(client *mongodb.Client) *MongoCommentRepository {
	return &MongoCommentRepository{
		collection: client.Collection(CollectionComments),
		populate: populator{
			agents: client.Collection(CollectionAgents),
			leads:  client.Collection(CollectionLeads),
		},
		now: time.Now,
	}
}

// Create inserts the comment with its references as given. The lead is
// not checked for existence.
func (r *MongoCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	comment.ID = primitive.NewObjectID()
	comment.CreatedAt = storeTime(r.now())

	if _, err := r.collection.InsertOne(ctx, comment); err != nil {
		return fmt.Errorf("error creating comment: %w", err)
	}
	return nil
}

// ListByLead retrieves the comments of a lead, oldest first, with the lead
// name and the author's name and email populated
func (r *MongoCommentRepository) ListByLead(ctx context.Context, leadID primitive.ObjectID) ([]*models.CommentView, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{"lead": leadID}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing comments: %w", err)
	}
	defer cursor.Close(ctx)

	var comments []*models.Comment
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, fmt.Errorf("error decoding comments: %w", err)
	}

	views := make([]*models.CommentView, 0, len(comments))
	if len(comments) == 0 {
		return views, nil
	}

	leads, err := r.populate.leadRefs(ctx, []primitive.ObjectID{leadID})
	if err != nil {
		return nil, err
	}

	authorIDs := make([]primitive.ObjectID, 0, len(comments))
	for _, c := range comments {
		authorIDs = append(authorIDs, c.Author)
	}
	authors, err := r.populate.agentRefs(ctx, authorIDs, true)
	if err != nil {
		return nil, err
	}

	for _, c := range comments {
		views = append(views, c.View(leads[c.Lead], authors[c.Author]))
	}
	return views, nil
}
