package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/white/lead-management/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestMongoCommentRepository(t *testing.T) {
	mt := mtest.New(t, mockOpts())

	mt.Run("create keeps the references as given", func(mt *mtest.T) {
		repo := NewMongoCommentRepository(clientFor(mt))
		repo.now = fixedClock
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		lead, author := primitive.NewObjectID(), primitive.NewObjectID()
		c := &models.Comment{Lead: lead, Author: author, CommentText: "Sent pricing"}
		require.NoError(mt, repo.Create(context.Background(), c))

		assert.False(mt, c.ID.IsZero())
		assert.Equal(mt, fixedNow, c.CreatedAt)
		assert.Equal(mt, lead, c.Lead)
	})

	mt.Run("list populates lead and author", func(mt *mtest.T) {
		repo := NewMongoCommentRepository(clientFor(mt))
		lead, author := primitive.NewObjectID(), primitive.NewObjectID()
		c1, c2 := primitive.NewObjectID(), primitive.NewObjectID()

		comment := func(id primitive.ObjectID, text string) bson.D {
			return bson.D{
				{Key: "_id", Value: id},
				{Key: "lead", Value: lead},
				{Key: "author", Value: author},
				{Key: "commentText", Value: text},
				{Key: "createdAt", Value: fixedNow},
			}
		}
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, ns(mt, CollectionComments), mtest.FirstBatch,
				comment(c1, "First call"), comment(c2, "Follow up")),
			mtest.CreateCursorResponse(0, ns(mt, CollectionLeads), mtest.FirstBatch,
				bson.D{{Key: "_id", Value: lead}, {Key: "name", Value: "Acme"}}),
			mtest.CreateCursorResponse(0, ns(mt, CollectionAgents), mtest.FirstBatch,
				bson.D{{Key: "_id", Value: author}, {Key: "name", Value: "Ada"}, {Key: "email", Value: "ada@example.com"}}),
		)

		views, err := repo.ListByLead(context.Background(), lead)
		require.NoError(mt, err)
		require.Len(mt, views, 2)

		assert.Equal(mt, "First call", views[0].CommentText)
		require.NotNil(mt, views[0].Lead)
		assert.Equal(mt, "Acme", views[0].Lead.Name)
		require.NotNil(mt, views[1].Author)
		assert.Equal(mt, "ada@example.com", views[1].Author.Email)
	})

	mt.Run("list for a lead without comments is empty", func(mt *mtest.T) {
		repo := NewMongoCommentRepository(clientFor(mt))
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt, CollectionComments), mtest.FirstBatch))

		views, err := repo.ListByLead(context.Background(), primitive.NewObjectID())
		require.NoError(mt, err)
		assert.Empty(mt, views)
	})
}

func TestMongoTagRepository(t *testing.T) {
	mt := mtest.New(t, mockOpts())

	mt.Run("create and list", func(mt *mtest.T) {
		repo := NewMongoTagRepository(clientFor(mt))
		repo.now = fixedClock
		id := primitive.NewObjectID()
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(),
			mtest.CreateCursorResponse(0, ns(mt, CollectionTags), mtest.FirstBatch,
				bson.D{{Key: "_id", Value: id}, {Key: "name", Value: "urgent"}, {Key: "createdAt", Value: fixedNow}}),
		)

		tag := &models.Tag{Name: "urgent"}
		require.NoError(mt, repo.Create(context.Background(), tag))
		assert.Equal(mt, fixedNow, tag.CreatedAt)

		tags, err := repo.List(context.Background())
		require.NoError(mt, err)
		require.Len(mt, tags, 1)
		assert.Equal(mt, id, tags[0].ID)
		assert.Equal(mt, "urgent", tags[0].Name)
	})
}

func TestWrapNotFound(t *testing.T) {
	assert.Nil(t, WrapNotFound(nil, ErrLeadNotFound))
	assert.True(t, IsDuplicateKey(ErrDuplicateKey))
	assert.False(t, IsDuplicateKey(nil))
}
