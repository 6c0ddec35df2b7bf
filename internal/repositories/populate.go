package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/white/lead-management/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// populator resolves stored references into the referenced records'
// display fields with one $in query per collection.
type populator struct {
	agents *mongo.Collection
	leads  *mongo.Collection
}

// agentRefs loads name (and email when withEmail) for every id.
func (p populator) agentRefs(ctx context.Context, ids []primitive.ObjectID, withEmail bool) (map[primitive.ObjectID]*models.AgentRef, error) {
	refs := make(map[primitive.ObjectID]*models.AgentRef)
	unique := uniqueIDs(ids)
	if len(unique) == 0 {
		return refs, nil
	}

	projection := bson.M{"name": 1}
	if withEmail {
		projection["email"] = 1
	}

	cursor, err := p.agents.Find(ctx, bson.M{"_id": bson.M{"$in": unique}}, options.Find().SetProjection(projection))
	if err != nil {
		return nil, fmt.Errorf("error populating agents: %w", err)
	}
	defer cursor.Close(ctx)

	var found []*models.AgentRef
	if err := cursor.All(ctx, &found); err != nil {
		return nil, fmt.Errorf("error decoding agents: %w", err)
	}
	for _, a := range found {
		refs[a.ID] = a
	}
	return refs, nil
}

// leadRefs loads the name of every lead id.
func (p populator) leadRefs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]*models.LeadRef, error) {
	refs := make(map[primitive.ObjectID]*models.LeadRef)
	unique := uniqueIDs(ids)
	if len(unique) == 0 {
		return refs, nil
	}

	opts := options.Find().SetProjection(bson.M{"name": 1})
	cursor, err := p.leads.Find(ctx, bson.M{"_id": bson.M{"$in": unique}}, opts)
	if err != nil {
		return nil, fmt.Errorf("error populating leads: %w", err)
	}
	defer cursor.Close(ctx)

	var found []*models.LeadRef
	if err := cursor.All(ctx, &found); err != nil {
		return nil, fmt.Errorf("error decoding leads: %w", err)
	}
	for _, l := range found {
		refs[l.ID] = l
	}
	return refs, nil
}

func uniqueIDs(ids []primitive.ObjectID) []primitive.ObjectID {
	seen := make(map[primitive.ObjectID]struct{}, len(ids))
	out := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if id.IsZero() {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// storeTime matches the millisecond precision BSON dates are kept at, so a
// returned record equals what a later read would decode.
func storeTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}
