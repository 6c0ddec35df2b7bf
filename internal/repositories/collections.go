package repositories

import (
	"context"
	"fmt"

	"github.com/white/lead-management/pkg/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names
const (
	CollectionAgents   = "agents"
	CollectionLeads    = "leads"
	CollectionTags     = "tags"
	CollectionComments = "comments"
)

// EnsureIndexes creates the indexes the repositories rely on. The unique
// email index is what turns a second agent with the same address into a
// duplicate key error.
func EnsureIndexes(ctx context.Context, client *mongodb.Client) error {
	indexes := map[string][]mongo.IndexModel{
		CollectionAgents: {
			{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("uniq_email"),
			},
		},
		CollectionLeads: {
			{Keys: bson.D{{Key: "salesAgent", Value: 1}}},
			{Keys: bson.D{{Key: "status", Value: 1}, {Key: "closedAt", Value: -1}}},
			{Keys: bson.D{{Key: "tags", Value: 1}}},
		},
		CollectionComments: {
			{Keys: bson.D{{Key: "lead", Value: 1}, {Key: "createdAt", Value: 1}}},
		},
	}

	for _, name := range []string{CollectionAgents, CollectionLeads, CollectionComments} {
		if _, err := client.Collection(name).Indexes().CreateMany(ctx, indexes[name]); err != nil {
			return fmt.Errorf("error creating indexes on %s: %w", name, err)
		}
	}
	return nil
}
