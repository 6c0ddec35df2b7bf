package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/white/lead-management/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestMongoAgentRepository(t *testing.T) {
	mt := mtest.New(t, mockOpts())

	mt.Run("create assigns id and creation time", func(mt *mtest.T) {
		repo := NewMongoAgentRepository(clientFor(mt))
		repo.now = fixedClock
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		agent := &models.SalesAgent{Name: "Ada", Email: "ada@example.com"}
		require.NoError(mt, repo.Create(context.Background(), agent))

		assert.False(mt, agent.ID.IsZero())
		assert.Equal(mt, fixedNow, agent.CreatedAt)
	})

	mt.Run("create with a taken email is a duplicate key error", func(mt *mtest.T) {
		repo := NewMongoAgentRepository(clientFor(mt))
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error collection: agents index: uniq_email",
		}))

		err := repo.Create(context.Background(), &models.SalesAgent{Name: "Ada", Email: "ada@example.com"})
		require.Error(mt, err)
		assert.True(mt, IsDuplicateKey(err))
	})

	mt.Run("list decodes every agent", func(mt *mtest.T) {
		repo := NewMongoAgentRepository(clientFor(mt))
		id1, id2 := primitive.NewObjectID(), primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt, CollectionAgents), mtest.FirstBatch,
			bson.D{{Key: "_id", Value: id1}, {Key: "name", Value: "Ada"}, {Key: "email", Value: "ada@example.com"}},
			bson.D{{Key: "_id", Value: id2}, {Key: "name", Value: "Grace"}, {Key: "email", Value: "grace@example.com"}},
		))

		agents, err := repo.List(context.Background())
		require.NoError(mt, err)
		require.Len(mt, agents, 2)
		assert.Equal(mt, id1, agents[0].ID)
		assert.Equal(mt, "grace@example.com", agents[1].Email)
	})

	mt.Run("list of an empty collection is empty not nil", func(mt *mtest.T) {
		repo := NewMongoAgentRepository(clientFor(mt))
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt, CollectionAgents), mtest.FirstBatch))

		agents, err := repo.List(context.Background())
		require.NoError(mt, err)
		assert.NotNil(mt, agents)
		assert.Empty(mt, agents)
	})

	mt.Run("get by id reports a missing agent", func(mt *mtest.T) {
		repo := NewMongoAgentRepository(clientFor(mt))
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt, CollectionAgents), mtest.FirstBatch))

		_, err := repo.GetByID(context.Background(), primitive.NewObjectID())
		require.Error(mt, err)
		assert.True(mt, IsNotFound(err))
		assert.True(mt, errors.Is(err, ErrAgentNotFound))
	})
}
