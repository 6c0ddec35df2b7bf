package events

import (
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/white/lead-management/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type published struct {
	topic string
	key   string
	event *LeadEvent
}

type fakeProducer struct {
	sent []published
	err  error
}

func (p *fakeProducer) PublishJSON(topic, key string, data interface{}) error {
	if p.err != nil {
		return p.err
	}
	p.sent = append(p.sent, published{topic: topic, key: key, event: data.(*LeadEvent)})
	return nil
}

func TestPublishLead(t *testing.T) {
	producer := &fakeProducer{}
	pub := NewLeadPublisher(producer, "leads.events", nil)
	pub.now = func() time.Time { return time.Unix(1700000000, 0) }

	closedAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	lead := &models.Lead{
		ID:         primitive.NewObjectID(),
		SalesAgent: primitive.NewObjectID(),
		Status:     models.LeadStatusClosed,
		Priority:   models.LeadPriorityHigh,
		ClosedAt:   &closedAt,
	}

	req := httptest.NewRequest("PUT", "/leads/"+lead.ID.Hex(), nil)
	req.Header.Set("X-Request-ID", "req-1")
	req.Header.Set("X-Forwarded-For", "10.0.0.7")

	pub.PublishLead(req, ActionLeadClosed, lead)

	require.Len(t, producer.sent, 1)
	msg := producer.sent[0]
	assert.Equal(t, "leads.events", msg.topic)
	assert.Equal(t, lead.ID.Hex(), msg.key)
	assert.Equal(t, ActionLeadClosed, msg.event.Action)
	assert.Equal(t, "Closed", msg.event.Status)
	assert.Equal(t, lead.SalesAgent.Hex(), msg.event.SalesAgent)
	assert.Equal(t, int64(1700000000), msg.event.Timestamp)
	assert.NotEmpty(t, msg.event.EventID)
	assert.Equal(t, "req-1", msg.event.RequestID)
	assert.Equal(t, "10.0.0.7", msg.event.IPAddress)
	assert.Equal(t, &closedAt, msg.event.ClosedAt)
}

func TestPublishFailureIsLogged(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	pub := NewLeadPublisher(&fakeProducer{err: errors.New("queue full")}, "leads.events", zap.New(core))

	pub.Publish(&LeadEvent{Action: ActionLeadCreated, LeadID: "abc"})

	entries := logs.FilterMessage("failed to publish lead event").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "abc", entries[0].ContextMap()["lead_id"])
}

func TestNilPublisherIsSafe(t *testing.T) {
	var pub *LeadPublisher
	assert.NotPanics(t, func() {
		pub.Publish(&LeadEvent{})
		pub.PublishLead(nil, ActionLeadDeleted, &models.Lead{})
	})

	logOnly := NewLeadPublisher(nil, "", nil)
	assert.NotPanics(t, func() {
		logOnly.PublishLead(nil, ActionLeadCreated, &models.Lead{ID: primitive.NewObjectID()})
	})
}
